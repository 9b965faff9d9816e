package testutil

import (
	"errors"

	"github.com/arthur-debert/tre/pkg/types"
)

// ErrWriteFailed is returned by files created through FailingFS
var ErrWriteFailed = errors.New("simulated write failure")

// FailingFS wraps a types.FS so that every created file fails on its
// (FailAfter+1)th write. Files whose name is in Healthy never fail.
type FailingFS struct {
	types.FS
	FailAfter int
	Healthy   map[string]bool

	// Writes counts successful writes per file name
	Writes map[string]int
}

// NewFailingFS wraps fsys
func NewFailingFS(fsys types.FS, failAfter int) *FailingFS {
	return &FailingFS{
		FS:        fsys,
		FailAfter: failAfter,
		Healthy:   make(map[string]bool),
		Writes:    make(map[string]int),
	}
}

// Create implements types.FS
func (f *FailingFS) Create(name string) (types.File, error) {
	file, err := f.FS.Create(name)
	if err != nil {
		return nil, err
	}
	if f.Healthy[name] {
		return file, nil
	}
	return &failingFile{File: file, owner: f}, nil
}

type failingFile struct {
	types.File
	owner *FailingFS
}

func (f *failingFile) Write(p []byte) (int, error) {
	name := f.Name()
	if f.owner.Writes[name] >= f.owner.FailAfter {
		return 0, ErrWriteFailed
	}
	n, err := f.File.Write(p)
	if err == nil {
		f.owner.Writes[name]++
	}
	return n, err
}
