// Package tree walks a directory and produces the entries of a tree
// listing, each with its branch prefix already rendered.
package tree

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/arthur-debert/tre/pkg/logging"
	"github.com/arthur-debert/tre/pkg/types"
)

// Branch glyphs
const (
	branchMiddle = "├── "
	branchLast   = "└── "
	indentOpen   = "│   "
	indentClosed = "    "
)

// Options controls which entries Walk produces
type Options struct {
	// All includes names starting with a dot
	All bool
	// DirectoriesOnly skips everything but directories
	DirectoriesOnly bool
	// MaxDepth limits how far below root Walk descends; 0 is unlimited
	MaxDepth int
	// RootName is the label of the first entry; defaults to root
	RootName string
}

// Walk lists root and its descendants depth first, children sorted by
// name. Unreadable subdirectories are listed without their contents.
func Walk(fsys types.FS, root string, opts Options) ([]types.Entry, error) {
	logger := logging.GetLogger("tree")
	done := logging.LogOperationStart(logger, "walk")
	defer done()

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot list %s", root)
	}

	name := opts.RootName
	if name == "" {
		name = root
	}
	entries := []types.Entry{{Prefix: "", Name: name, Path: root}}
	if !info.IsDir() {
		return entries, nil
	}

	w := &walker{fs: fsys, opts: opts}
	if err := w.walk(root, "", 1, &entries); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("entries", len(entries)).Msg("Walk finished")
	return entries, nil
}

type walker struct {
	fs   types.FS
	opts Options
}

func (w *walker) walk(dir, indent string, depth int, entries *[]types.Entry) error {
	children, err := w.fs.ReadDir(dir)
	if err != nil {
		if depth == 1 {
			return errors.Wrapf(err, errors.ErrDirRead, "cannot read %s", dir)
		}
		logger := logging.GetLogger("tree")
		logger.Warn().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return nil
	}

	visible := children[:0]
	for _, child := range children {
		if !w.opts.All && strings.HasPrefix(child.Name(), ".") {
			continue
		}
		if w.opts.DirectoriesOnly && !child.IsDir() {
			continue
		}
		visible = append(visible, child)
	}

	for i, child := range visible {
		last := i == len(visible)-1
		branch, next := branchMiddle, indentOpen
		if last {
			branch, next = branchLast, indentClosed
		}

		path := filepath.Join(dir, child.Name())
		*entries = append(*entries, types.Entry{
			Prefix: indent + branch,
			Name:   child.Name(),
			Path:   path,
		})

		if child.IsDir() && (w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth) {
			if err := w.walk(path, indent+next, depth+1, entries); err != nil {
				return err
			}
		}
	}
	return nil
}
