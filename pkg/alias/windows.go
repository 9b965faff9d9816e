package alias

import (
	"path/filepath"

	"github.com/arthur-debert/tre/pkg/config"
	"github.com/arthur-debert/tre/pkg/types"
)

// powerShellTrailer makes every function of the module visible once imported
const powerShellTrailer = "Export-ModuleMember -Function *"

type windowsEmitter struct {
	env    config.Environment
	writer *scriptWriter
}

func (e *windowsEmitter) path(ext string) string {
	return filepath.Join(e.env.TempDir, FilePrefix+e.env.User+"."+ext)
}

// Paths returns the PowerShell module and batch file locations
func (e *windowsEmitter) Paths() (psm1, bat string) {
	return e.path("psm1"), e.path("bat")
}

func (e *windowsEmitter) CreateEditAliases(editor string, entries []types.Entry) {
	psm1, bat := e.Paths()

	// The files are independent: a failure in the module does not stop the
	// batch file.
	e.writer.write(psm1, DialectPowerShell, Bindings(DialectPowerShell, editor, entries), powerShellTrailer)
	e.writer.write(bat, DialectCmd, Bindings(DialectCmd, editor, entries), "")
}
