package ggplot

import "github.com/gogpu/gg"

// Point-interval geoms summarize samples into a point estimate with error
// bars. The default stat is StatPointInterval, which stores the interval
// half-widths under "xerr" and "yerr" as [below, above] offsets.

var (
	pointIntervalAesthetics = []string{
		"x", "y", "color", "alpha", "marker", "markersize",
		"markeredgecolor", "lw",
	}
	pointIntervalStyle = []string{
		"color", "alpha", "marker", "markersize", "markeredgecolor", "lw",
	}
)

func pointIntervalDefaults() Params {
	return Params{
		"color":      "k",
		"marker":     MarkerCircle,
		"lw":         1.0,
		"alpha":      1.0,
		"markersize": 4.0,
	}
}

func drawPointIntervalGroup(pn *panel, vals groupValues) error {
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
	lw, err := styleFloat(vals, "lw", 1)
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

	xerr, err := errPairs(vals["xerr"], len(xs))
	if err != nil {
		return err
	}
	yerr, err := errPairs(vals["yerr"], len(ys))
	if err != nil {
		return err
	}

	dc := pn.dc
	dc.SetLineWidth(lw)
	dc.ClearDash()
	capLen := msize * 0.8
	for i := range xs {
		px, py := pn.xPix(xs[i]), pn.yPix(ys[i])
		dc.SetColor(col.Color())
		if xerr != nil {
			lo, hi := pn.xPix(xs[i]-xerr[i][0]), pn.xPix(xs[i]+xerr[i][1])
			dc.DrawLine(lo, py, hi, py)
			dc.DrawLine(lo, py-capLen, lo, py+capLen)
			dc.DrawLine(hi, py-capLen, hi, py+capLen)
			dc.Stroke()
		}
		if yerr != nil {
			lo, hi := pn.yPix(ys[i]-yerr[i][0]), pn.yPix(ys[i]+yerr[i][1])
			dc.DrawLine(px, lo, px, hi)
			dc.DrawLine(px-capLen, lo, px+capLen, lo)
			dc.DrawLine(px-capLen, hi, px+capLen, hi)
			dc.Stroke()
		}
		drawMarker(dc, marker, px, py, msize, col, edge)
	}
	return nil
}

// errPairs normalizes an error value to one [below, above] pair per
// observation. A flat two-element slice is a single shared pair.
func errPairs(v any, n int) ([][2]float64, error) {
	if v == nil {
		return nil, nil
	}
	xs, err := floatsOf(v)
	if err != nil {
		return nil, err
	}
	switch {
	case len(xs) == 2:
		out := make([][2]float64, n)
		for i := range out {
			out[i] = [2]float64{xs[0], xs[1]}
		}
		return out, nil
	case len(xs) == 1:
		out := make([][2]float64, n)
		for i := range out {
			out[i] = [2]float64{xs[0], xs[0]}
		}
		return out, nil
	case len(xs) == n:
		out := make([][2]float64, n)
		for i, x := range xs {
			out[i] = [2]float64{x, x}
		}
		return out, nil
	}
	return nil, nil
}

// expandPointIntervalDomains widens the axes to include the error bar
// extents, not just the point estimates.
func expandPointIntervalDomains(vals groupValues, x, y AxisScale) {
	xs, xok := floatsOfOK(vals["x"])
	ys, yok := floatsOfOK(vals["y"])
	if xok {
		expandWithErr(x, xs, vals["xerr"])
	}
	if yok {
		expandWithErr(y, ys, vals["yerr"])
	}
}

func floatsOfOK(v any) ([]float64, bool) {
	xs, err := floatsOf(v)
	return xs, err == nil && xs != nil
}

func expandWithErr(ax AxisScale, centers []float64, errVal any) {
	pairs, _ := errPairs(errVal, len(centers))
	for i, c := range centers {
		if pairs != nil {
			ax.Include(c - pairs[i][0])
			ax.Include(c + pairs[i][1])
		} else {
			ax.Include(c)
		}
	}
}

// GeomPointInterval summarizes both axes: each group renders as a point
// at the estimates with error bars in both directions.
type GeomPointInterval struct {
	GeomCommon
}

func (g *GeomPointInterval) aesthetics() []string         { return pointIntervalAesthetics }
func (g *GeomPointInterval) requiredAesthetics() []string { return []string{"x", "y"} }
func (g *GeomPointInterval) groupedAesthetics() []string  { return pointIntervalStyle }
func (g *GeomPointInterval) defaults() Params             { return pointIntervalDefaults() }
func (g *GeomPointInterval) label() string                { return geomLabel("pointinterval geom", g.Name) }
func (g *GeomPointInterval) defaultStat() Stat            { return StatPointInterval{} }

func (g *GeomPointInterval) expandDomains(vals groupValues, x, y AxisScale) {
	expandPointIntervalDomains(vals, x, y)
}

func (g *GeomPointInterval) drawGroup(pn *panel, vals groupValues) error {
	return drawPointIntervalGroup(pn, vals)
}

// GeomPointIntervalX summarizes only x; y is grouped, so each group draws
// one horizontal interval at its y value.
type GeomPointIntervalX struct {
	GeomCommon
}

func (g *GeomPointIntervalX) aesthetics() []string         { return pointIntervalAesthetics }
func (g *GeomPointIntervalX) requiredAesthetics() []string { return []string{"x", "y"} }
func (g *GeomPointIntervalX) defaults() Params             { return pointIntervalDefaults() }
func (g *GeomPointIntervalX) label() string                { return geomLabel("pointinterval-x geom", g.Name) }

func (g *GeomPointIntervalX) groupedAesthetics() []string {
	return append([]string{"y"}, pointIntervalStyle...)
}

func (g *GeomPointIntervalX) defaultStat() Stat {
	return StatPointInterval{Axes: []string{"x"}}
}

func (g *GeomPointIntervalX) expandDomains(vals groupValues, x, y AxisScale) {
	expandPointIntervalDomains(vals, x, y)
}

func (g *GeomPointIntervalX) drawGroup(pn *panel, vals groupValues) error {
	return drawPointIntervalGroup(pn, vals)
}

// GeomPointIntervalY summarizes only y; x is grouped, so each group draws
// one vertical interval at its x value.
type GeomPointIntervalY struct {
	GeomCommon
}

func (g *GeomPointIntervalY) aesthetics() []string         { return pointIntervalAesthetics }
func (g *GeomPointIntervalY) requiredAesthetics() []string { return []string{"x", "y"} }
func (g *GeomPointIntervalY) defaults() Params             { return pointIntervalDefaults() }
func (g *GeomPointIntervalY) label() string                { return geomLabel("pointinterval-y geom", g.Name) }

func (g *GeomPointIntervalY) groupedAesthetics() []string {
	return append([]string{"x"}, pointIntervalStyle...)
}

func (g *GeomPointIntervalY) defaultStat() Stat {
	return StatPointInterval{Axes: []string{"y"}}
}

func (g *GeomPointIntervalY) expandDomains(vals groupValues, x, y AxisScale) {
	expandPointIntervalDomains(vals, x, y)
}

func (g *GeomPointIntervalY) drawGroup(pn *panel, vals groupValues) error {
	return drawPointIntervalGroup(pn, vals)
}
