package ggplot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

// namedColors maps color names to their values. Single letters follow the
// usual plotting shorthand (b, g, r, c, m, y, k, w); longer names are the
// common CSS colors.
var namedColors = map[string]gg.RGBA{
	"b": gg.RGB(0, 0, 1),
	"g": gg.RGB(0, 0.5, 0),
	"r": gg.RGB(1, 0, 0),
	"c": gg.RGB(0, 0.75, 0.75),
	"m": gg.RGB(0.75, 0, 0.75),
	"y": gg.RGB(0.75, 0.75, 0),
	"k": gg.RGB(0, 0, 0),
	"w": gg.RGB(1, 1, 1),

	"black":     gg.RGB(0, 0, 0),
	"white":     gg.RGB(1, 1, 1),
	"red":       gg.Hex("#ff0000"),
	"green":     gg.Hex("#008000"),
	"blue":      gg.Hex("#0000ff"),
	"cyan":      gg.Hex("#00ffff"),
	"magenta":   gg.Hex("#ff00ff"),
	"yellow":    gg.Hex("#ffff00"),
	"gray":      gg.Hex("#808080"),
	"grey":      gg.Hex("#808080"),
	"darkgray":  gg.Hex("#a9a9a9"),
	"lightgray": gg.Hex("#d3d3d3"),
	"orange":    gg.Hex("#ffa500"),
	"purple":    gg.Hex("#800080"),
	"brown":     gg.Hex("#a52a2a"),
	"pink":      gg.Hex("#ffc0cb"),
	"olive":     gg.Hex("#808000"),
	"navy":      gg.Hex("#000080"),
	"teal":      gg.Hex("#008080"),
	"steelblue": gg.Hex("#4682b4"),
	"firebrick": gg.Hex("#b22222"),
	"goldenrod": gg.Hex("#daa520"),
	"seagreen":  gg.Hex("#2e8b57"),
	"slategray": gg.Hex("#708090"),
	"tomato":    gg.Hex("#ff6347"),
	"orchid":    gg.Hex("#da70d6"),
	"indigo":    gg.Hex("#4b0082"),
}

// ParseColor resolves a color name or "#rrggbb"-style hex string.
func ParseColor(s string) (gg.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return gg.Hex(s), nil
	}
	return gg.RGBA{}, fmt.Errorf("ggplot: unknown color %q", s)
}

// resolveColor converts an aesthetic value to a concrete color. Accepts
// gg.RGBA, anything implementing color.Color, and name or hex strings.
// A nil value resolves to the fallback.
func resolveColor(v any, fallback gg.RGBA) (gg.RGBA, error) {
	switch c := v.(type) {
	case nil:
		return fallback, nil
	case gg.RGBA:
		return c, nil
	case color.Color:
		return gg.FromColor(c), nil
	case string:
		return ParseColor(c)
	default:
		return gg.RGBA{}, fmt.Errorf("ggplot: cannot use %T as a color", v)
	}
}

// withAlpha scales the color's alpha component. Values outside (0, 1)
// leave the color unchanged.
func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	if alpha > 0 && alpha < 1 {
		c.A *= alpha
	}
	return c
}
