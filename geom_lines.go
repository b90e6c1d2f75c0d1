package ggplot

import "github.com/gogpu/gg"

// Reference line geoms. GeomHLines and GeomVLines place lines at data
// coordinates with optional data-coordinate extents; GeomAxHLine and
// GeomAxVLine span the panel with extents given as axis fractions.

var lineStyleAesthetics = []string{"color", "alpha", "lw", "ls"}

func lineStyleDefaults() Params {
	return Params{"color": "k", "lw": 1.0, "ls": LineSolid, "alpha": 1.0}
}

// strokeGroupLine applies a group's line style and strokes the segment
// from (x0, y0) to (x1, y1) in pixel space.
func strokeGroupLine(pn *panel, vals groupValues, x0, y0, x1, y1 float64) error {
	alpha, err := styleFloat(vals, "alpha", 1)
	if err != nil {
		return err
	}
	col, err := styleColor(vals, "color", gg.RGB(0, 0, 0))
	if err != nil {
		return err
	}
	lw, err := styleFloat(vals, "lw", 1)
	if err != nil {
		return err
	}
	ls, err := styleLine(vals)
	if err != nil {
		return err
	}
	if lw <= 0 || ls == LineNone {
		return nil
	}
	dc := pn.dc
	dc.SetColor(withAlpha(col, alpha).Color())
	dc.SetLineWidth(lw)
	setDash(dc, ls, lw)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
	dc.ClearDash()
	return nil
}

// GeomHLines draws horizontal lines at y intercepts, optionally clipped
// to [xmin, xmax] in data coordinates. A column mapped to yintercept
// yields one line per distinct value.
type GeomHLines struct {
	GeomCommon
}

func (g *GeomHLines) aesthetics() []string {
	return append([]string{"yintercept", "xmin", "xmax"}, lineStyleAesthetics...)
}

func (g *GeomHLines) requiredAesthetics() []string { return []string{"yintercept"} }

// Every aesthetic is grouped: each render group is a single line.
func (g *GeomHLines) groupedAesthetics() []string { return g.aesthetics() }

func (g *GeomHLines) defaults() Params { return lineStyleDefaults() }
func (g *GeomHLines) label() string    { return geomLabel("hlines geom", g.Name) }

func (g *GeomHLines) drawGroup(pn *panel, vals groupValues) error {
	y, err := styleFloat(vals, "yintercept", 0)
	if err != nil {
		return err
	}
	x0, x1 := pn.xFrac(0), pn.xFrac(1)
	if v, ok := vals["xmin"]; ok && v != nil {
		x, err := styleFloat(vals, "xmin", 0)
		if err != nil {
			return err
		}
		x0 = pn.xPix(x)
	}
	if v, ok := vals["xmax"]; ok && v != nil {
		x, err := styleFloat(vals, "xmax", 0)
		if err != nil {
			return err
		}
		x1 = pn.xPix(x)
	}
	py := pn.yPix(y)
	return strokeGroupLine(pn, vals, x0, py, x1, py)
}

// GeomVLines draws vertical lines at x intercepts, optionally clipped to
// [ymin, ymax] in data coordinates.
type GeomVLines struct {
	GeomCommon
}

func (g *GeomVLines) aesthetics() []string {
	return append([]string{"xintercept", "ymin", "ymax"}, lineStyleAesthetics...)
}

func (g *GeomVLines) requiredAesthetics() []string { return []string{"xintercept"} }
func (g *GeomVLines) groupedAesthetics() []string  { return g.aesthetics() }
func (g *GeomVLines) defaults() Params             { return lineStyleDefaults() }
func (g *GeomVLines) label() string                { return geomLabel("vlines geom", g.Name) }

func (g *GeomVLines) drawGroup(pn *panel, vals groupValues) error {
	x, err := styleFloat(vals, "xintercept", 0)
	if err != nil {
		return err
	}
	y0, y1 := pn.yFrac(0), pn.yFrac(1)
	if v, ok := vals["ymin"]; ok && v != nil {
		y, err := styleFloat(vals, "ymin", 0)
		if err != nil {
			return err
		}
		y0 = pn.yPix(y)
	}
	if v, ok := vals["ymax"]; ok && v != nil {
		y, err := styleFloat(vals, "ymax", 0)
		if err != nil {
			return err
		}
		y1 = pn.yPix(y)
	}
	px := pn.xPix(x)
	return strokeGroupLine(pn, vals, px, y0, px, y1)
}

// GeomAxHLine draws a horizontal line at a y intercept spanning the panel
// between left_limit and right_limit, both fractions of the panel width.
// The fraction aesthetics bypass the axis scales.
type GeomAxHLine struct {
	GeomCommon
}

func (g *GeomAxHLine) aesthetics() []string {
	return append([]string{"yintercept", "left_limit", "right_limit"}, lineStyleAesthetics...)
}

func (g *GeomAxHLine) requiredAesthetics() []string { return []string{"yintercept"} }
func (g *GeomAxHLine) groupedAesthetics() []string  { return g.aesthetics() }
func (g *GeomAxHLine) label() string                { return geomLabel("axhline geom", g.Name) }

func (g *GeomAxHLine) defaults() Params {
	d := lineStyleDefaults()
	d["left_limit"] = 0.0
	d["right_limit"] = 1.0
	return d
}

// expandDomains only widens y: the x extent is panel-relative.
func (g *GeomAxHLine) expandDomains(vals groupValues, x, y AxisScale) {
	if v, ok := vals["yintercept"]; ok {
		y.ExpandDomain(v)
	}
}

func (g *GeomAxHLine) drawGroup(pn *panel, vals groupValues) error {
	yv, err := styleFloat(vals, "yintercept", 0)
	if err != nil {
		return err
	}
	lo, err := styleFloat(vals, "left_limit", 0)
	if err != nil {
		return err
	}
	hi, err := styleFloat(vals, "right_limit", 1)
	if err != nil {
		return err
	}
	py := pn.yPix(yv)
	return strokeGroupLine(pn, vals, pn.xFrac(lo), py, pn.xFrac(hi), py)
}

// GeomAxVLine draws a vertical line at an x intercept spanning the panel
// between bottom_limit and top_limit, both fractions of the panel height.
type GeomAxVLine struct {
	GeomCommon
}

func (g *GeomAxVLine) aesthetics() []string {
	return append([]string{"xintercept", "bottom_limit", "top_limit"}, lineStyleAesthetics...)
}

func (g *GeomAxVLine) requiredAesthetics() []string { return []string{"xintercept"} }
func (g *GeomAxVLine) groupedAesthetics() []string  { return g.aesthetics() }
func (g *GeomAxVLine) label() string                { return geomLabel("axvline geom", g.Name) }

func (g *GeomAxVLine) defaults() Params {
	d := lineStyleDefaults()
	d["bottom_limit"] = 0.0
	d["top_limit"] = 1.0
	return d
}

func (g *GeomAxVLine) expandDomains(vals groupValues, x, y AxisScale) {
	if v, ok := vals["xintercept"]; ok {
		x.ExpandDomain(v)
	}
}

func (g *GeomAxVLine) drawGroup(pn *panel, vals groupValues) error {
	xv, err := styleFloat(vals, "xintercept", 0)
	if err != nil {
		return err
	}
	lo, err := styleFloat(vals, "bottom_limit", 0)
	if err != nil {
		return err
	}
	hi, err := styleFloat(vals, "top_limit", 1)
	if err != nil {
		return err
	}
	px := pn.xPix(xv)
	return strokeGroupLine(pn, vals, px, pn.yFrac(lo), px, pn.yFrac(hi))
}
