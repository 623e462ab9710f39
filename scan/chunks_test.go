package scan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf(`alert tcp any any -> any any (msg:"rule %d";)`+"\n", i+1)
	}
	return lines
}

func TestSplitCoverageAndBalance(t *testing.T) {
	for _, l := range []int{0, 1, 2, 3, 4, 7, 10, 100, 101} {
		for _, n := range []int{1, 2, 3, 4, 5, 8, 16} {
			t.Run(fmt.Sprintf("l=%d n=%d", l, n), func(t *testing.T) {
				lines := ruleLines(l)
				chunks := Split(lines, n)

				require.Len(t, chunks, n)

				joined := []string{}
				next := 1
				min, max := l, 0
				for _, chunk := range chunks {
					if len(chunk.Lines) > 0 {
						assert.Equal(t, next, chunk.Start)
					}
					next += len(chunk.Lines)
					joined = append(joined, chunk.Lines...)
					if len(chunk.Lines) < min {
						min = len(chunk.Lines)
					}
					if len(chunk.Lines) > max {
						max = len(chunk.Lines)
					}
				}

				assert.Equal(t, lines, joined)
				assert.LessOrEqual(t, max-min, 1)
			})
		}
	}
}

func TestSplitSizeRule(t *testing.T) {
	cases := []struct {
		l, n  int
		sizes []int
	}{
		{10, 4, []int{3, 3, 2, 2}},
		{7, 3, []int{3, 2, 2}},
		{3, 5, []int{1, 1, 1, 0, 0}},
		{5, 5, []int{1, 1, 1, 1, 1}},
		{4, 1, []int{4}},
		{0, 3, []int{0, 0, 0}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("l=%d n=%d", c.l, c.n), func(t *testing.T) {
			chunks := Split(ruleLines(c.l), c.n)
			require.Len(t, chunks, c.n)

			sizes := make([]int, 0, len(chunks))
			for _, chunk := range chunks {
				sizes = append(sizes, len(chunk.Lines))
			}
			assert.Equal(t, c.sizes, sizes)
		})
	}
}
