package alias

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tre/pkg/config"
	"github.com/arthur-debert/tre/pkg/types"
)

// FilePrefix is the stem shared by every alias file
const FilePrefix = "tre_aliases_"

// Emitter writes alias scripts for a listing
type Emitter interface {
	// CreateEditAliases binds e<i> to opening entries[i].Path with editor.
	// An empty editor means the platform's default open action.
	CreateEditAliases(editor string, entries []types.Entry)
}

// New returns the emitter for platform. Scripts are written through fsys
// under env.TempDir and failures are reported on stderr.
func New(platform types.Platform, env config.Environment, fsys types.FS, stderr io.Writer) Emitter {
	w := &scriptWriter{fs: fsys, stderr: stderr}
	if platform == types.PlatformWindows {
		return &windowsEmitter{env: env, writer: w}
	}
	return &posixEmitter{env: env, writer: w}
}

// Dialect is the script language a binding is rendered in
type Dialect int

const (
	DialectPOSIX Dialect = iota
	DialectPowerShell
	DialectCmd
)

// String returns the string representation of the dialect
func (d Dialect) String() string {
	switch d {
	case DialectPOSIX:
		return "shell"
	case DialectPowerShell:
		return "PowerShell"
	case DialectCmd:
		return "CMD"
	default:
		return "unknown"
	}
}

// Binding associates an entry index with the script line defining e<index>
type Binding struct {
	Index   int
	Command string
}

// Bindings renders one binding per entry, in input order
func Bindings(d Dialect, editor string, entries []types.Entry) []Binding {
	bindings := make([]Binding, len(entries))
	for index, entry := range entries {
		bindings[index] = Binding{
			Index:   index,
			Command: FormatLine(d, editor, index, entry.Path),
		}
	}
	return bindings
}

// FormatLine renders the definition of alias e<index> in dialect d
func FormatLine(d Dialect, editor string, index int, path string) string {
	switch d {
	case DialectPowerShell:
		if editor == "" {
			return fmt.Sprintf(`Function e%d { Start-Process "%s"}`, index, path)
		}
		return fmt.Sprintf(`Function e%d { %s $args "%s"}`, index, editor, path)
	case DialectCmd:
		if editor == "" {
			editor = "START"
		}
		return fmt.Sprintf("doskey /exename=cmd.exe e%d=%s %s", index, editor, path)
	default:
		return fmt.Sprintf(`alias e%d="eval '%s \"%s\"'"`, index, editor, quotePOSIX(path))
	}
}

// doubleQuoteEscaper backslash-escapes the characters that stay special
// inside a double-quoted shell string.
var doubleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// quotePOSIX escapes path for the alias line. The path is parsed twice, once
// when the alias file is sourced (outer double quotes) and once by eval when
// the alias runs (inner double quotes), so it is escaped for each pass.
// Single quotes are written as \'.
func quotePOSIX(path string) string {
	escaped := doubleQuoteEscaper.Replace(doubleQuoteEscaper.Replace(path))
	return strings.ReplaceAll(escaped, "'", `\'`)
}
