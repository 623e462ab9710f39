package scan

// Chunk is a contiguous run of rule lines owned by exactly one worker.
type Chunk struct {
	Start int // 1-based line number of Lines[0] in the input file
	Lines []string
}

// Split divides lines into exactly n contiguous chunks, n > 0. Sizes
// differ by at most one, with the first len(lines) % n chunks taking
// the extra line, so concatenating the chunks in order reproduces the
// input with nothing dropped or duplicated. Chunks may be empty when
// there are fewer lines than workers.
func Split(lines []string, n int) []Chunk {
	base := len(lines) / n
	rem := len(lines) % n

	chunks := make([]Chunk, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks = append(chunks, Chunk{
			Start: start + 1,
			Lines: lines[start : start+size],
		})
		start += size
	}
	return chunks
}
