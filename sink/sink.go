package sink

import (
	"rulescan/types"
)

// Sink receives matched rule lines from concurrent chunk workers.
// Implementations must be safe for use by multiple goroutines; a
// single Write must never interleave with another mid-line.
type Sink interface {
	Write(m *types.Match) error
	Close() error
}

// Multi forwards every match to each sink in order, the way entries
// fan out to every registered pipeline. All sinks see the match even
// if an earlier one fails; the first error wins.
type Multi []Sink

func (s Multi) Write(m *types.Match) error {
	var first error
	for _, out := range s {
		if err := out.Write(m); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s Multi) Close() error {
	var first error
	for _, out := range s {
		if err := out.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
