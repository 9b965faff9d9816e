package color_test

import (
	"testing"

	"github.com/arthur-debert/tre/pkg/color"
	"github.com/arthur-debert/tre/pkg/types"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(c types.Color) *types.Color { return &c }

func TestConvert_NamedColors(t *testing.T) {
	tests := []struct {
		kind types.ColorKind
		want color.Named
	}{
		{types.Black, color.Black},
		{types.Red, color.Red},
		{types.Green, color.Green},
		{types.Yellow, color.Yellow},
		{types.Blue, color.Blue},
		{types.Magenta, color.Magenta},
		{types.Cyan, color.Cyan},
		{types.White, color.White},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := color.Convert(ptr(types.NamedColor(tt.kind)))
			require.NotNil(t, got)
			assert.Equal(t, color.NamedColor(tt.want), *got)
			assert.Equal(t, color.KindNamed, got.Kind, "standard colors never fall back to an index")
		})
	}
}

func TestConvert_BrightColorsFallBackToPalette(t *testing.T) {
	tests := []struct {
		kind types.ColorKind
		want uint8
	}{
		{types.BrightBlack, 8},
		{types.BrightRed, 9},
		{types.BrightGreen, 10},
		{types.BrightYellow, 11},
		{types.BrightBlue, 12},
		{types.BrightMagenta, 13},
		{types.BrightCyan, 14},
		{types.BrightWhite, 15},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := color.Convert(ptr(types.NamedColor(tt.kind)))
			require.NotNil(t, got)
			assert.Equal(t, color.Ansi256(tt.want), *got)
		})
	}
}

func TestConvert_PassThrough(t *testing.T) {
	assert.Equal(t, color.RGB(1, 2, 3), *color.Convert(ptr(types.RGBColor(1, 2, 3))))
	assert.Equal(t, color.Ansi256(208), *color.Convert(ptr(types.FixedColor(208))))
	assert.Nil(t, color.Convert(nil))
	assert.Nil(t, color.Convert(&types.Color{Kind: types.ColorKind(99)}))
}

func TestFromStyle(t *testing.T) {
	t.Run("nil style renders unstyled", func(t *testing.T) {
		assert.Nil(t, color.FromStyle(nil))
	})

	t.Run("colors and flags copy through", func(t *testing.T) {
		style := &types.Style{
			Foreground: ptr(types.NamedColor(types.BrightCyan)),
			Background: ptr(types.RGBColor(10, 20, 30)),
			Bold:       true,
			Italic:     true,
			Underline:  true,
		}

		spec := color.FromStyle(style)
		require.NotNil(t, spec)

		fg, bg := color.Ansi256(14), color.RGB(10, 20, 30)
		assert.Equal(t, &color.Spec{
			Foreground: &fg,
			Background: &bg,
			Bold:       true,
			Italic:     true,
			Underline:  true,
		}, spec)
	})

	t.Run("deterministic", func(t *testing.T) {
		style := &types.Style{Foreground: ptr(types.FixedColor(42)), Underline: true}
		assert.Equal(t, color.FromStyle(style), color.FromStyle(style))
	})
}

func TestSpecStyled(t *testing.T) {
	red := color.NamedColor(color.Red)
	brightRed := color.Ansi256(9)
	magenta := color.RGB(255, 0, 255)

	tests := []struct {
		name    string
		spec    *color.Spec
		profile termenv.Profile
		want    string
	}{
		{
			name:    "nil spec",
			spec:    nil,
			profile: termenv.TrueColor,
			want:    "name",
		},
		{
			name:    "empty spec",
			spec:    &color.Spec{},
			profile: termenv.TrueColor,
			want:    "name",
		},
		{
			name:    "named foreground",
			spec:    &color.Spec{Foreground: &red},
			profile: termenv.TrueColor,
			want:    "\x1b[31mname\x1b[0m",
		},
		{
			name:    "palette foreground with bold",
			spec:    &color.Spec{Foreground: &brightRed, Bold: true},
			profile: termenv.ANSI256,
			want:    "\x1b[38;5;9;1mname\x1b[0m",
		},
		{
			name:    "rgb background",
			spec:    &color.Spec{Background: &magenta},
			profile: termenv.TrueColor,
			want:    "\x1b[48;2;255;0;255mname\x1b[0m",
		},
		{
			name:    "italic and underline",
			spec:    &color.Spec{Italic: true, Underline: true},
			profile: termenv.ANSI,
			want:    "\x1b[3;4mname\x1b[0m",
		},
		{
			name:    "ascii profile drops everything",
			spec:    &color.Spec{Foreground: &red, Bold: true},
			profile: termenv.Ascii,
			want:    "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Styled(tt.profile, "name"))
		})
	}
}
