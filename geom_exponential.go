package ggplot

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/gogpu/gg"
)

// Exponential growth-curve geoms. GeomExponentialX draws
// value = intercept * base^(rate*t) with t on the x axis;
// GeomExponentialY puts t on the y axis. The curve is sampled at n_points
// between the min and max of the time axis. Every aesthetic is grouped,
// so a column mapped to rate yields one curve per distinct rate.

func exponentialDefaults() Params {
	return Params{
		"color":    "k",
		"marker":   MarkerNone,
		"lw":       1.0,
		"alpha":    1.0,
		"n_points": 100.0,
		"base":     math.E,
	}
}

// exponentialCurve samples the curve over [tMin, tMax].
func exponentialCurve(vals groupValues, timeAxis string) (ts, values []float64, err error) {
	valueAxis := "y"
	if timeAxis == "y" {
		valueAxis = "x"
	}
	rate, err := styleFloat(vals, "rate", 0)
	if err != nil {
		return nil, nil, err
	}
	intercept, err := styleFloat(vals, valueAxis+"intercept", 1)
	if err != nil {
		return nil, nil, err
	}
	tMin, err := styleFloat(vals, timeAxis+"min", 0)
	if err != nil {
		return nil, nil, err
	}
	tMax, err := styleFloat(vals, timeAxis+"max", 1)
	if err != nil {
		return nil, nil, err
	}
	base, err := styleFloat(vals, "base", math.E)
	if err != nil {
		return nil, nil, err
	}
	n, err := styleFloat(vals, "n_points", 100)
	if err != nil {
		return nil, nil, err
	}
	if n < 2 {
		n = 2
	}

	ts = vec.Linspace(tMin, tMax, int(n))
	logIntercept := math.Log(intercept)
	logBase := math.Log(base)
	values = vec.Map(func(t float64) float64 {
		return math.Exp(logIntercept + logBase*rate*t)
	}, ts)
	return ts, values, nil
}

func drawExponentialGroup(pn *panel, vals groupValues, timeAxis string) error {
	ts, values, err := exponentialCurve(vals, timeAxis)
	if err != nil {
		return err
	}
	xs, ys := ts, values
	if timeAxis == "y" {
		xs, ys = values, ts
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

	dc := pn.dc
	if lw > 0 {
		dc.SetColor(col.Color())
		dc.SetLineWidth(lw)
		dc.ClearDash()
		dc.MoveTo(pn.xPix(xs[0]), pn.yPix(ys[0]))
		for i := 1; i < len(xs); i++ {
			dc.LineTo(pn.xPix(xs[i]), pn.yPix(ys[i]))
		}
		dc.Stroke()
	}
	for i := range xs {
		drawMarker(dc, marker, pn.xPix(xs[i]), pn.yPix(ys[i]), 3, col, col)
	}
	return nil
}

// expandExponentialDomains covers both the time extent and the sampled
// curve values, so the value axis grows to fit the whole curve.
func expandExponentialDomains(vals groupValues, timeAxis string, x, y AxisScale) {
	ts, values, err := exponentialCurve(vals, timeAxis)
	if err != nil {
		return
	}
	timeScale, valueScale := x, y
	if timeAxis == "y" {
		timeScale, valueScale = y, x
	}
	for _, t := range ts {
		timeScale.Include(t)
	}
	for _, v := range values {
		valueScale.Include(v)
	}
}

// GeomExponentialX draws exponential growth in x: starting from
// yintercept at x=0, the value grows at the given rate over [xmin, xmax].
type GeomExponentialX struct {
	GeomCommon
}

func (g *GeomExponentialX) aesthetics() []string {
	return []string{"rate", "yintercept", "xmin", "xmax", "n_points", "base",
		"color", "marker", "alpha", "lw"}
}

func (g *GeomExponentialX) requiredAesthetics() []string {
	return []string{"rate", "yintercept", "xmin", "xmax", "n_points", "base"}
}

func (g *GeomExponentialX) groupedAesthetics() []string { return g.aesthetics() }
func (g *GeomExponentialX) defaults() Params            { return exponentialDefaults() }
func (g *GeomExponentialX) label() string               { return geomLabel("exponential-x geom", g.Name) }

func (g *GeomExponentialX) expandDomains(vals groupValues, x, y AxisScale) {
	expandExponentialDomains(vals, "x", x, y)
}

func (g *GeomExponentialX) drawGroup(pn *panel, vals groupValues) error {
	return drawExponentialGroup(pn, vals, "x")
}

// GeomExponentialY draws exponential growth in y: starting from
// xintercept at y=0, the value grows at the given rate over [ymin, ymax].
type GeomExponentialY struct {
	GeomCommon
}

func (g *GeomExponentialY) aesthetics() []string {
	return []string{"rate", "xintercept", "ymin", "ymax", "n_points", "base",
		"color", "marker", "alpha", "lw"}
}

func (g *GeomExponentialY) requiredAesthetics() []string {
	return []string{"rate", "xintercept", "ymin", "ymax", "n_points", "base"}
}

func (g *GeomExponentialY) groupedAesthetics() []string { return g.aesthetics() }
func (g *GeomExponentialY) defaults() Params            { return exponentialDefaults() }
func (g *GeomExponentialY) label() string               { return geomLabel("exponential-y geom", g.Name) }

func (g *GeomExponentialY) expandDomains(vals groupValues, x, y AxisScale) {
	expandExponentialDomains(vals, "y", x, y)
}

func (g *GeomExponentialY) drawGroup(pn *panel, vals groupValues) error {
	return drawExponentialGroup(pn, vals, "y")
}
