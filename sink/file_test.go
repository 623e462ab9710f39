package sink

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulescan/types"
)

func TestFileAppendsRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.rules")
	require.NoError(t, ioutil.WriteFile(path, []byte("existing\n"), 0644))

	out, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, out.Write(&types.Match{Line: "alert one\r\n"}))
	require.NoError(t, out.Write(&types.Match{Line: "alert two\n"}))
	require.NoError(t, out.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing\nalert one\r\nalert two\n", string(data))
}

func TestFileConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.rules")
	out, err := NewFile(path)
	require.NoError(t, err)

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				line := fmt.Sprintf(`alert tcp any any -> any any (msg:"worker %d match %d";)`+"\n", w, i)
				if err := out.Write(&types.Match{Line: line}); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	require.NoError(t, out.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, workers*perWorker)

	seen := make(map[string]int)
	for _, line := range lines {
		seen[line]++
	}
	for w := 0; w < workers; w++ {
		for i := 0; i < perWorker; i++ {
			line := fmt.Sprintf(`alert tcp any any -> any any (msg:"worker %d match %d";)`, w, i)
			assert.Equal(t, 1, seen[line])
		}
	}
}
