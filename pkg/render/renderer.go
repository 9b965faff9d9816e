// Package render prints tree entries to the terminal.
//
// Each entry becomes one line: its prefix, an optional "[i] " handle and its
// name colored according to the style lookup. Coloring is best effort. When
// a styled write fails the same text is written plain, so the listing is
// always printed in full.
package render

import (
	"io"
	"strconv"

	"github.com/arthur-debert/tre/pkg/color"
	"github.com/arthur-debert/tre/pkg/logging"
	"github.com/arthur-debert/tre/pkg/types"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

var indexColor = color.NamedColor(color.Red)

// Renderer writes entries to out
type Renderer struct {
	out     io.Writer
	profile termenv.Profile
	lookup  types.StyleLookup
	logger  zerolog.Logger
}

// New creates a renderer. A nil lookup disables color entirely, including
// the index handles.
func New(out io.Writer, profile termenv.Profile, lookup types.StyleLookup) *Renderer {
	return &Renderer{
		out:     out,
		profile: profile,
		lookup:  lookup,
		logger:  logging.GetLogger("render"),
	}
}

// PrintEntries writes one line per entry in input order. When createAlias
// is set each name is preceded by its zero-based index in brackets.
func (r *Renderer) PrintEntries(entries []types.Entry, createAlias bool) {
	var numberSpec *color.Spec
	if r.lookup != nil {
		numberSpec = &color.Spec{Foreground: &indexColor}
	}

	for index, entry := range entries {
		r.print(entry.Prefix)
		if createAlias {
			r.print("[")
			r.colorPrint(strconv.Itoa(index), numberSpec)
			r.print("] ")
		}

		r.colorPrint(entry.Name, r.specFor(entry.Path))
		r.print("\n")
	}
}

func (r *Renderer) specFor(path string) *color.Spec {
	if r.lookup == nil {
		return nil
	}
	style, ok := r.lookup.StyleForPath(path)
	if !ok {
		return nil
	}
	return color.FromStyle(style)
}

// colorPrint writes text styled by spec and reports whether the styled
// write went through. On failure the text is written again unstyled.
func (r *Renderer) colorPrint(text string, spec *color.Spec) bool {
	if spec == nil {
		r.print(text)
		return true
	}

	if _, err := io.WriteString(r.out, spec.Styled(r.profile, text)); err != nil {
		r.logger.Debug().Err(err).Str("text", text).Msg("styled write failed, writing plain text")
		r.print(text)
		return false
	}
	return true
}

func (r *Renderer) print(s string) {
	_, _ = io.WriteString(r.out, s)
}
