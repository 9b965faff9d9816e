package types

// ColorKind enumerates the colors a style can carry.
type ColorKind int

const (
	Black ColorKind = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	// Fixed is an index into the 256 color palette
	Fixed
	// RGB is a 24-bit color
	RGB
)

var colorKindNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
	"fixed", "rgb",
}

// String returns the string representation of the color kind
func (k ColorKind) String() string {
	if k < 0 || int(k) >= len(colorKindNames) {
		return "unknown"
	}
	return colorKindNames[k]
}

// IsBright reports whether the kind is one of the eight bright named colors
func (k ColorKind) IsBright() bool {
	return k >= BrightBlack && k <= BrightWhite
}

// Color is a color as described by a style source such as LS_COLORS.
// Index is only meaningful for Fixed, R/G/B only for RGB.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// NamedColor returns one of the 16 named colors
func NamedColor(kind ColorKind) Color {
	return Color{Kind: kind}
}

// FixedColor returns a 256 palette color
func FixedColor(index uint8) Color {
	return Color{Kind: Fixed, Index: index}
}

// RGBColor returns a 24-bit color
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: RGB, R: r, G: g, B: b}
}

// Style is the desired look of a path. Nil colors mean the terminal default.
type Style struct {
	Foreground *Color
	Background *Color
	Bold       bool
	Italic     bool
	Underline  bool
}
