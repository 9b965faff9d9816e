package lscolors

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/tre/pkg/types"
)

// ParseStyle interprets a ";"-separated list of SGR parameters such as
// "01;38;5;208". Unknown parameters are ignored.
func ParseStyle(codes string) *types.Style {
	style := &types.Style{}
	params := strings.Split(codes, ";")

	for i := 0; i < len(params); i++ {
		n, err := strconv.Atoi(params[i])
		if err != nil {
			continue
		}

		switch {
		case n == 0:
			*style = types.Style{}
		case n == 1:
			style.Bold = true
		case n == 3:
			style.Italic = true
		case n == 4:
			style.Underline = true
		case n >= 30 && n <= 37:
			style.Foreground = named(types.Black + types.ColorKind(n-30))
		case n == 38:
			c, used := extended(params[i+1:])
			if c != nil {
				style.Foreground = c
			}
			i += used
		case n == 39:
			style.Foreground = nil
		case n >= 40 && n <= 47:
			style.Background = named(types.Black + types.ColorKind(n-40))
		case n == 48:
			c, used := extended(params[i+1:])
			if c != nil {
				style.Background = c
			}
			i += used
		case n == 49:
			style.Background = nil
		case n >= 90 && n <= 97:
			style.Foreground = named(types.BrightBlack + types.ColorKind(n-90))
		case n >= 100 && n <= 107:
			style.Background = named(types.BrightBlack + types.ColorKind(n-100))
		}
	}

	return style
}

func named(kind types.ColorKind) *types.Color {
	c := types.NamedColor(kind)
	return &c
}

// extended parses the arguments following 38 or 48: "5;n" or "2;r;g;b".
// It returns the color, or nil, and how many parameters it consumed.
func extended(params []string) (*types.Color, int) {
	if len(params) == 0 {
		return nil, 0
	}

	switch params[0] {
	case "5":
		if len(params) < 2 {
			return nil, len(params)
		}
		n, ok := byteParam(params[1])
		if !ok {
			return nil, 2
		}
		c := types.FixedColor(n)
		return &c, 2
	case "2":
		if len(params) < 4 {
			return nil, len(params)
		}
		r, okR := byteParam(params[1])
		g, okG := byteParam(params[2])
		b, okB := byteParam(params[3])
		if !okR || !okG || !okB {
			return nil, 4
		}
		c := types.RGBColor(r, g, b)
		return &c, 4
	default:
		return nil, 1
	}
}

func byteParam(s string) (uint8, bool) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}
