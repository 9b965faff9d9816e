package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for tre operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)

	// Create truncates or creates the named file for writing
	Create(name string) (File, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// File is a writable handle returned by FS.Create
type File interface {
	io.Writer
	io.Closer
	Name() string
}

// StyleLookup resolves the display style of a filesystem path.
// The boolean is false when the lookup has no opinion about the path.
type StyleLookup interface {
	StyleForPath(path string) (*Style, bool)
}
