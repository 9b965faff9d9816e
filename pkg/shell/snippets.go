// Package shell produces the wrapper functions that make e<N> aliases
// available in the calling shell after each tre run.
package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/tre/pkg/alias"
	"github.com/arthur-debert/tre/pkg/errors"
)

const (
	bashZshSnippet = `tre() { command tre "$@" -e && source "/tmp/%s$USER" 2>/dev/null; }`

	fishSnippet = `function tre
    command tre $argv -e; and source "/tmp/%s$USER" 2>/dev/null
end`

	powerShellSnippet = `function tre {
    tre.exe $args -e
    Import-Module "$Env:TEMP\%s$Env:USERNAME.psm1" -Force
}`
)

var snippets = map[string]string{
	"bash":       bashZshSnippet,
	"zsh":        bashZshSnippet,
	"sh":         bashZshSnippet,
	"fish":       fishSnippet,
	"powershell": powerShellSnippet,
	"pwsh":       powerShellSnippet,
}

// Supported lists the shell names Snippet accepts
func Supported() []string {
	names := make([]string, 0, len(snippets))
	for name := range snippets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snippet returns the wrapper function for shell. Adding it to the shell's
// startup file makes every `tre` call reload the alias file.
func Snippet(shell string) (string, error) {
	tmpl, ok := snippets[strings.ToLower(shell)]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q (supported: %s)",
			shell, strings.Join(Supported(), ", ")).
			WithDetail("shell", shell)
	}
	return fmt.Sprintf(tmpl, alias.FilePrefix), nil
}

// DetectShell guesses the user's shell from $SHELL, falling back to bash.
// On Windows, where $SHELL is normally unset, it answers powershell.
func DetectShell(getenv func(string) string, windows bool) string {
	if sh := getenv("SHELL"); sh != "" {
		name := strings.TrimSuffix(sh[strings.LastIndexAny(sh, `/\`)+1:], ".exe")
		if _, ok := snippets[name]; ok {
			return name
		}
	}
	if windows {
		return "powershell"
	}
	return "bash"
}
