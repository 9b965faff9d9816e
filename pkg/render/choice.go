package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorChoice is the user's preference for colored output
type ColorChoice int

const (
	// ColorAuto colors only when writing to a terminal and NO_COLOR is unset
	ColorAuto ColorChoice = iota
	// ColorAlways colors even when piped or redirected
	ColorAlways
	// ColorNever disables color
	ColorNever
)

// String returns the string representation of the color choice
func (c ColorChoice) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorChoice parses a string into a ColorChoice value
func ParseColorChoice(s string) (ColorChoice, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color choice: %s", s)
	}
}

// DetectProfile determines the termenv profile to render with, based on the
// user's choice, NO_COLOR and whether f is a terminal.
func DetectProfile(f *os.File, choice ColorChoice) termenv.Profile {
	tty := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	noColor := os.Getenv("NO_COLOR") != ""

	return resolveProfile(choice, tty, noColor, func() termenv.Profile {
		// WithUnsafe skips termenv's own tty check, which we already did
		return termenv.NewOutput(f, termenv.WithUnsafe()).EnvColorProfile()
	})
}

func resolveProfile(choice ColorChoice, tty, noColor bool, envProfile func() termenv.Profile) termenv.Profile {
	switch choice {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := envProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	}

	if noColor || !tty {
		return termenv.Ascii
	}
	return envProfile()
}

// ProfileName returns a readable name for a termenv profile
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	case termenv.Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}
