package sink

import (
	"os"
	"sync"

	"rulescan/types"
)

// File appends matched lines, raw, to a single shared handle. Writes
// are serialized so concurrent workers never corrupt a line; order
// across chunks is whatever the workers produce.
type File struct {
	mu sync.Mutex
	f  *os.File
}

func NewFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (s *File) Write(m *types.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.f.WriteString(m.Line)
	return err
}

func (s *File) Close() error {
	return s.f.Close()
}
