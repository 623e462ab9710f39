package scan

import (
	"context"
	"strings"

	"rulescan/rules"
	"rulescan/sink"
	"rulescan/types"
)

// Scanner checks rule lines for a service name inside the msg field.
// One Scanner is shared by all workers of a run; it holds no per-chunk
// state.
type Scanner struct {
	parser *rules.MsgParser
	target string // lowercased once, comparisons are case-insensitive
}

func NewScanner(target string) *Scanner {
	return &Scanner{
		parser: rules.NewMsgParser(),
		target: strings.ToLower(target),
	}
}

// Scan runs one chunk against the target and forwards every matching
// line to out in chunk order, unmodified. It returns the number of
// matches. A sink failure aborts this chunk only; the caller decides
// what to do with the partial count.
func (s *Scanner) Scan(ctx context.Context, chunk Chunk, out sink.Sink) (int, error) {
	matched := 0
	for i, line := range chunk.Lines {
		if err := ctx.Err(); err != nil {
			return matched, err
		}

		msg, ok := s.parser.Extract(line)
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(msg), s.target) {
			continue
		}

		matched++
		err := out.Write(&types.Match{
			Line:   line,
			Number: chunk.Start + i,
			Msg:    msg,
		})
		if err != nil {
			return matched, err
		}
	}
	return matched, nil
}
