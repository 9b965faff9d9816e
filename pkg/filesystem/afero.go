package filesystem

import (
	"io/fs"
	"sort"

	"github.com/arthur-debert/tre/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Create(name string) (types.File, error) {
	f, err := a.fs.Create(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	// Only OsFs and a few wrappers support Lstat; MemMapFs has no symlinks
	// so Stat is equivalent there.
	if l, ok := a.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	// afero.ReadDir sorts already, keep the os.ReadDir contract explicit
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}
