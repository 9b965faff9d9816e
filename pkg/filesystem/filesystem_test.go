package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tre/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_Create(t *testing.T) {
	mem := afero.NewMemMapFs()
	fsys := filesystem.NewAferoFS(mem)

	f, err := fsys.Create("/tmp/out.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, "/tmp/out.txt", f.Name())

	data, err := afero.ReadFile(mem, "/tmp/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	// Create truncates
	f, err = fsys.Create("/tmp/out.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	data, err = afero.ReadFile(mem, "/tmp/out.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestAferoFS_ReadOnlyCreateFails(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := fsys.Create("/tmp/out.txt")
	assert.Error(t, err)
}

func TestAferoFS_ReadDirSorted(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, name := range []string{"b.txt", "a.txt", "c"} {
		require.NoError(t, afero.WriteFile(mem, filepath.Join("/root", name), nil, 0o644))
	}
	require.NoError(t, mem.MkdirAll("/root/dir", 0o755))

	entries, err := filesystem.NewAferoFS(mem).ReadDir("/root")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c", "dir"}, names)
	assert.True(t, entries[3].IsDir())
}

func TestOS_CreateInMissingDirFails(t *testing.T) {
	fsys := filesystem.NewOS()

	_, err := fsys.Create(filepath.Join(t.TempDir(), "missing", "file"))
	assert.Error(t, err)
}

func TestOS_Lstat(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	f, err := fsys.Create(filepath.Join(dir, "file"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := fsys.Lstat(filepath.Join(dir, "file"))
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}
