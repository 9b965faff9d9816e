package alias

import (
	"path/filepath"

	"github.com/arthur-debert/tre/pkg/config"
	"github.com/arthur-debert/tre/pkg/types"
)

type posixEmitter struct {
	env    config.Environment
	writer *scriptWriter
}

// Path returns the location of the alias file
func (e *posixEmitter) Path() string {
	return filepath.Join(e.env.TempDir, FilePrefix+e.env.User)
}

func (e *posixEmitter) CreateEditAliases(editor string, entries []types.Entry) {
	e.writer.write(e.Path(), DialectPOSIX, Bindings(DialectPOSIX, editor, entries), "")
}
