package sink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulescan/types"
)

type recorder struct {
	lines  []string
	closed bool
	err    error
}

func (r *recorder) Write(m *types.Match) error {
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, m.Line)
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return r.err
}

func TestMultiWritesAll(t *testing.T) {
	boom := errors.New("short write")
	a := &recorder{}
	b := &recorder{err: boom}
	c := &recorder{}
	out := Multi{a, b, c}

	err := out.Write(&types.Match{Line: "alert\n"})
	require.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"alert\n"}, a.lines)
	assert.Equal(t, []string{"alert\n"}, c.lines)
}

func TestMultiClosesAll(t *testing.T) {
	boom := errors.New("short write")
	a := &recorder{}
	b := &recorder{err: boom}
	c := &recorder{}
	out := Multi{a, b, c}

	require.True(t, errors.Is(out.Close(), boom))
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.True(t, c.closed)
}
