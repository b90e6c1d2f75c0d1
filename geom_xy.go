package ggplot

import "github.com/gogpu/gg"

// The point, line, and pointline geoms share one drawing routine: an
// ordered x/y trace rendered as a connecting line, markers, or both.
// They differ only in their default marker and line width.

var (
	xyAesthetics = []string{
		"x", "y", "color", "alpha", "marker", "markersize",
		"markeredgecolor", "lw", "ls",
	}
	xyRequired = []string{"x", "y"}

	// Everything but the positions must be constant within a group.
	xyGrouped = []string{
		"color", "alpha", "marker", "markersize", "markeredgecolor", "lw", "ls",
	}
)

func drawXYGroup(pn *panel, vals groupValues) error {
	xs, ys, err := pairXY(vals["x"], vals["y"])
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return nil
	}

	alpha, err := styleFloat(vals, "alpha", 1)
	if err != nil {
		return err
	}
	col, err := styleColor(vals, "color", gg.RGB(0, 0, 0))
	if err != nil {
		return err
	}
	col = withAlpha(col, alpha)
	lw, err := styleFloat(vals, "lw", 0)
	if err != nil {
		return err
	}
	ls, err := styleLine(vals)
	if err != nil {
		return err
	}
	marker, err := styleMarker(vals)
	if err != nil {
		return err
	}
	msize, err := styleFloat(vals, "markersize", 4)
	if err != nil {
		return err
	}
	edge, err := styleColor(vals, "markeredgecolor", col)
	if err != nil {
		return err
	}
	edge = withAlpha(edge, alpha)

	dc := pn.dc
	if lw > 0 && ls != LineNone && len(xs) > 1 {
		dc.SetColor(col.Color())
		dc.SetLineWidth(lw)
		setDash(dc, ls, lw)
		dc.MoveTo(pn.xPix(xs[0]), pn.yPix(ys[0]))
		for i := 1; i < len(xs); i++ {
			dc.LineTo(pn.xPix(xs[i]), pn.yPix(ys[i]))
		}
		dc.Stroke()
		dc.ClearDash()
	}
	for i := range xs {
		drawMarker(dc, marker, pn.xPix(xs[i]), pn.yPix(ys[i]), msize, col, edge)
	}
	return nil
}

// GeomPoint draws one marker per observation.
type GeomPoint struct {
	GeomCommon
}

func (g *GeomPoint) aesthetics() []string         { return xyAesthetics }
func (g *GeomPoint) requiredAesthetics() []string { return xyRequired }
func (g *GeomPoint) groupedAesthetics() []string  { return xyGrouped }
func (g *GeomPoint) label() string                { return geomLabel("point geom", g.Name) }

func (g *GeomPoint) defaults() Params {
	return Params{"marker": MarkerCircle, "lw": 0.0}
}

func (g *GeomPoint) drawGroup(pn *panel, vals groupValues) error {
	return drawXYGroup(pn, vals)
}

// GeomLine draws a line connecting the observations in data order.
type GeomLine struct {
	GeomCommon
}

func (g *GeomLine) aesthetics() []string         { return xyAesthetics }
func (g *GeomLine) requiredAesthetics() []string { return xyRequired }
func (g *GeomLine) groupedAesthetics() []string  { return xyGrouped }
func (g *GeomLine) label() string                { return geomLabel("line geom", g.Name) }

func (g *GeomLine) defaults() Params {
	return Params{"marker": MarkerNone, "lw": 1.0}
}

func (g *GeomLine) drawGroup(pn *panel, vals groupValues) error {
	return drawXYGroup(pn, vals)
}

// GeomPointLine draws the connecting line plus per-observation markers.
type GeomPointLine struct {
	GeomCommon
}

func (g *GeomPointLine) aesthetics() []string         { return xyAesthetics }
func (g *GeomPointLine) requiredAesthetics() []string { return xyRequired }
func (g *GeomPointLine) groupedAesthetics() []string  { return xyGrouped }
func (g *GeomPointLine) label() string                { return geomLabel("pointline geom", g.Name) }

func (g *GeomPointLine) defaults() Params {
	return Params{"marker": MarkerCircle, "lw": 1.0}
}

func (g *GeomPointLine) drawGroup(pn *panel, vals groupValues) error {
	return drawXYGroup(pn, vals)
}
