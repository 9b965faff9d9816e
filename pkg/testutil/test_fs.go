package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tre/pkg/filesystem"
	"github.com/arthur-debert/tre/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewSeededFS creates an in-memory filesystem holding the given files.
// Keys ending in "/" become directories, everything else a file with the
// value as content.
func NewSeededFS(t *testing.T, files map[string]string) (types.FS, afero.Fs) {
	t.Helper()

	mem := afero.NewMemMapFs()
	for name, content := range files {
		if name[len(name)-1] == '/' {
			require.NoError(t, mem.MkdirAll(filepath.Clean(name), 0o755))
			continue
		}
		require.NoError(t, mem.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0o644))
	}
	return filesystem.NewAferoFS(mem), mem
}
