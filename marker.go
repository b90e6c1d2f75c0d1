package ggplot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Marker shapes, by their usual shorthand.
const (
	MarkerCircle   = "o"
	MarkerSquare   = "s"
	MarkerTriangle = "^"
	MarkerDiamond  = "D"
	MarkerPlus     = "+"
	MarkerCross    = "x"
	MarkerNone     = "none"
)

// Line styles.
const (
	LineSolid   = "solid"
	LineDashed  = "dashed"
	LineDotted  = "dotted"
	LineDashDot = "dashdot"
	LineNone    = "none"
)

// markerString coerces a marker aesthetic value to its shorthand name.
func markerString(v any) (string, error) {
	switch m := v.(type) {
	case nil:
		return MarkerNone, nil
	case string:
		switch m {
		case MarkerCircle, MarkerSquare, MarkerTriangle, MarkerDiamond,
			MarkerPlus, MarkerCross, MarkerNone, "":
			if m == "" {
				return MarkerNone, nil
			}
			return m, nil
		}
		return "", fmt.Errorf("ggplot: unknown marker %q", m)
	default:
		return "", fmt.Errorf("ggplot: cannot use %T as a marker", v)
	}
}

// lineStyleString coerces a line style aesthetic value to its name.
func lineStyleString(v any) (string, error) {
	switch ls := v.(type) {
	case nil:
		return LineSolid, nil
	case string:
		switch ls {
		case LineSolid, LineDashed, LineDotted, LineDashDot, LineNone:
			return ls, nil
		case "", "-":
			return LineSolid, nil
		case "--":
			return LineDashed, nil
		case ":":
			return LineDotted, nil
		case "-.":
			return LineDashDot, nil
		}
		return "", fmt.Errorf("ggplot: unknown line style %q", ls)
	default:
		return "", fmt.Errorf("ggplot: cannot use %T as a line style", v)
	}
}

// setDash configures the context's dash pattern for a line style. Pattern
// lengths scale with the line width so dashes stay readable at any weight.
func setDash(dc *gg.Context, style string, lw float64) {
	if lw <= 0 {
		lw = 1
	}
	switch style {
	case LineDashed:
		dc.SetDash(4*lw, 3*lw)
	case LineDotted:
		dc.SetDash(lw, 2*lw)
	case LineDashDot:
		dc.SetDash(4*lw, 2*lw, lw, 2*lw)
	default:
		dc.ClearDash()
	}
}

// drawMarker draws one marker centered at (x, y) in pixel space. size is
// the marker radius in pixels. Filled shapes use fill; open shapes
// (plus, cross) use edge, falling back to fill.
func drawMarker(dc *gg.Context, marker string, x, y, size float64, fill, edge gg.RGBA) {
	if marker == MarkerNone || size <= 0 {
		return
	}
	switch marker {
	case MarkerCircle:
		dc.SetColor(fill.Color())
		dc.DrawCircle(x, y, size)
		dc.Fill()
	case MarkerSquare:
		dc.SetColor(fill.Color())
		dc.DrawRectangle(x-size, y-size, 2*size, 2*size)
		dc.Fill()
	case MarkerTriangle:
		dc.SetColor(fill.Color())
		dc.MoveTo(x, y-size)
		dc.LineTo(x+size, y+size)
		dc.LineTo(x-size, y+size)
		dc.ClosePath()
		dc.Fill()
	case MarkerDiamond:
		dc.SetColor(fill.Color())
		dc.MoveTo(x, y-size)
		dc.LineTo(x+size, y)
		dc.LineTo(x, y+size)
		dc.LineTo(x-size, y)
		dc.ClosePath()
		dc.Fill()
	case MarkerPlus:
		dc.SetColor(edge.Color())
		dc.SetLineWidth(1.5)
		dc.ClearDash()
		dc.DrawLine(x-size, y, x+size, y)
		dc.DrawLine(x, y-size, x, y+size)
		dc.Stroke()
	case MarkerCross:
		dc.SetColor(edge.Color())
		dc.SetLineWidth(1.5)
		dc.ClearDash()
		dc.DrawLine(x-size, y-size, x+size, y+size)
		dc.DrawLine(x-size, y+size, x+size, y-size)
		dc.Stroke()
	}
}
