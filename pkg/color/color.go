// Package color translates path styles into terminal color specs.
//
// The terminal model has 24-bit colors, the 256 color palette and the eight
// basic named colors. It has no separate bright category, so bright named
// colors are mapped onto palette indices 8-15, which is where every 256
// color palette keeps them.
package color

import (
	"fmt"

	"github.com/arthur-debert/tre/pkg/types"
	"github.com/muesli/termenv"
)

// Kind distinguishes the three terminal color encodings
type Kind int

const (
	KindNamed Kind = iota
	KindAnsi256
	KindRGB
)

// Named is one of the eight basic terminal colors, in SGR order
type Named uint8

const (
	Black Named = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// TermColor is a color the terminal layer can emit directly
type TermColor struct {
	Kind    Kind
	Named   Named
	Index   uint8
	R, G, B uint8
}

// NamedColor returns a basic named terminal color
func NamedColor(n Named) TermColor {
	return TermColor{Kind: KindNamed, Named: n}
}

// Ansi256 returns a 256 palette color
func Ansi256(index uint8) TermColor {
	return TermColor{Kind: KindAnsi256, Index: index}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) TermColor {
	return TermColor{Kind: KindRGB, R: r, G: g, B: b}
}

// Spec is the terminal-facing form of a types.Style
type Spec struct {
	Foreground *TermColor
	Background *TermColor
	Bold       bool
	Italic     bool
	Underline  bool
}

var namedColors = map[types.ColorKind]Named{
	types.Black:   Black,
	types.Red:     Red,
	types.Green:   Green,
	types.Yellow:  Yellow,
	types.Blue:    Blue,
	types.Magenta: Magenta,
	types.Cyan:    Cyan,
	types.White:   White,
}

var brightFallback = map[types.ColorKind]uint8{
	types.BrightBlack:   8,
	types.BrightRed:     9,
	types.BrightGreen:   10,
	types.BrightYellow:  11,
	types.BrightBlue:    12,
	types.BrightMagenta: 13,
	types.BrightCyan:    14,
	types.BrightWhite:   15,
}

// Convert maps a style color onto the terminal color model. Nil maps to nil,
// and so does a kind outside the types.ColorKind range.
func Convert(c *types.Color) *TermColor {
	if c == nil {
		return nil
	}

	var tc TermColor
	switch c.Kind {
	case types.RGB:
		tc = RGB(c.R, c.G, c.B)
	case types.Fixed:
		tc = Ansi256(c.Index)
	default:
		if n, ok := namedColors[c.Kind]; ok {
			tc = NamedColor(n)
		} else if idx, ok := brightFallback[c.Kind]; ok {
			tc = Ansi256(idx)
		} else {
			return nil
		}
	}
	return &tc
}

// FromStyle converts a style into a Spec. A nil style yields a nil spec,
// meaning the text is written unstyled.
func FromStyle(style *types.Style) *Spec {
	if style == nil {
		return nil
	}

	return &Spec{
		Foreground: Convert(style.Foreground),
		Background: Convert(style.Background),
		Bold:       style.Bold,
		Italic:     style.Italic,
		Underline:  style.Underline,
	}
}

func (c TermColor) termenv() termenv.Color {
	switch c.Kind {
	case KindRGB:
		return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	case KindAnsi256:
		return termenv.ANSI256Color(c.Index)
	default:
		return termenv.ANSIColor(c.Named)
	}
}

// Style builds the termenv style for text under the given profile. Colors
// the profile cannot show are downsampled by termenv.
func (s *Spec) Style(profile termenv.Profile, text string) termenv.Style {
	st := profile.String(text)
	if s == nil {
		return st
	}
	if s.Foreground != nil {
		st = st.Foreground(profile.Convert(s.Foreground.termenv()))
	}
	if s.Background != nil {
		st = st.Background(profile.Convert(s.Background.termenv()))
	}
	if s.Bold {
		st = st.Bold()
	}
	if s.Italic {
		st = st.Italic()
	}
	if s.Underline {
		st = st.Underline()
	}
	return st
}

// Styled returns text wrapped in the SGR sequences of s followed by
// a reset. Under termenv.Ascii, or for a spec with nothing set, the text is
// returned unchanged.
func (s *Spec) Styled(profile termenv.Profile, text string) string {
	return s.Style(profile, text).String()
}
