package types

// Match is one rule line whose msg field contained the search target.
type Match struct {
	Line   string // raw line, terminator included
	Number int    // 1-based position in the input file
	Msg    string // msg field contents, verbatim
}

// Run identifies one scan invocation.
type Run struct {
	Service string
	Input   string
	Digest  string // BLAKE2b-256 of the input file, hex
	Workers int
}
