package rules

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"

	"golang.org/x/crypto/blake2b"
)

// File is a rule file loaded whole into memory. Lines keep their
// terminators so sinks can reproduce the input byte for byte.
type File struct {
	Path   string
	Lines  []string
	Digest string // BLAKE2b-256 of the raw contents, hex
}

// Load reads the entire rule file up front. Inputs are bounded by
// available memory, which is an accepted constraint of the scanner.
func Load(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(data)
	return &File{
		Path:   path,
		Lines:  splitLines(data),
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}

func splitLines(data []byte) []string {
	var lines []string
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines
}
