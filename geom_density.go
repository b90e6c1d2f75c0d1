package ggplot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Density geoms. GeomDensity draws a kernel density estimate as a curve
// with an optional filled region under it. GeomViolin mirrors the density
// around a position value on the other axis. Both default to StatDensity,
// which stores the sampled estimate under "support" and "density".

var densityStyleAesthetics = []string{
	"linecolor", "fillcolor", "marker", "linealpha", "fillalpha", "ls", "lw",
}

// colorOrNone resolves an optional paint. The name "none" and a nil
// value both mean "do not paint".
func colorOrNone(vals groupValues, aes string) (gg.RGBA, bool, error) {
	v := vals[aes]
	if v == nil {
		return gg.RGBA{}, false, nil
	}
	if s, ok := v.(string); ok && (s == "none" || s == "") {
		return gg.RGBA{}, false, nil
	}
	c, err := styleColor(vals, aes, gg.RGBA{})
	if err != nil {
		return gg.RGBA{}, false, err
	}
	return c, true, nil
}

// supportCurve extracts the stat output as float slices.
func supportCurve(vals groupValues) (support, density []float64, err error) {
	support, err = floatsOf(vals["support"])
	if err != nil {
		return nil, nil, err
	}
	density, err = floatsOf(vals["density"])
	if err != nil {
		return nil, nil, err
	}
	if len(support) != len(density) {
		return nil, nil, fmt.Errorf(
			"ggplot: support and density must have matching lengths, got %d and %d",
			len(support), len(density))
	}
	return support, density, nil
}

// strokeCurve draws a styled polyline through pixel points.
func strokeCurve(pn *panel, vals groupValues, pxs, pys []float64) error {
	col, paint, err := colorOrNone(vals, "linecolor")
	if err != nil || !paint || len(pxs) < 2 {
		return err
	}
	alpha, err := styleFloat(vals, "linealpha", 1)
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
	dc.MoveTo(pxs[0], pys[0])
	for i := 1; i < len(pxs); i++ {
		dc.LineTo(pxs[i], pys[i])
	}
	dc.Stroke()
	dc.ClearDash()
	return nil
}

// fillBetween fills the region between two pixel curves sharing x order.
func fillBetween(pn *panel, vals groupValues, pxs, pysHi, pysLo []float64, vertical bool) error {
	col, paint, err := colorOrNone(vals, "fillcolor")
	if err != nil || !paint || len(pxs) < 2 {
		return err
	}
	alpha, err := styleFloat(vals, "fillalpha", 1)
	if err != nil {
		return err
	}
	dc := pn.dc
	dc.SetColor(withAlpha(col, alpha).Color())
	moveTo := func(i int, lo bool) {
		a, b := pxs[i], pysHi[i]
		if lo {
			b = pysLo[i]
		}
		if vertical {
			a, b = b, a
		}
		if i == 0 && !lo {
			dc.MoveTo(a, b)
		} else {
			dc.LineTo(a, b)
		}
	}
	for i := range pxs {
		moveTo(i, false)
	}
	for i := len(pxs) - 1; i >= 0; i-- {
		moveTo(i, true)
	}
	dc.ClosePath()
	dc.Fill()
	return nil
}

// GeomDensity draws a kernel density estimate of the samples mapped to
// the support axis, as a curve over the density on the other axis.
type GeomDensity struct {
	GeomCommon

	// SupportAxis is the aesthetic holding the samples, "x" or "y".
	// Defaults to "x".
	SupportAxis string
}

func (g *GeomDensity) supportAxis() string {
	if g.SupportAxis == "" {
		return "x"
	}
	return g.SupportAxis
}

func (g *GeomDensity) aesthetics() []string {
	return append([]string{g.supportAxis(), "support", "density"}, densityStyleAesthetics...)
}

func (g *GeomDensity) requiredAesthetics() []string { return []string{g.supportAxis()} }
func (g *GeomDensity) groupedAesthetics() []string  { return densityStyleAesthetics }
func (g *GeomDensity) label() string                { return geomLabel("density geom", g.Name) }

func (g *GeomDensity) defaults() Params {
	return Params{
		"linecolor": "k",
		"marker":    MarkerNone,
		"lw":        1.0,
		"ls":        LineSolid,
		"linealpha": 1.0,
		"fillalpha": 0.25,
	}
}

func (g *GeomDensity) defaultStat() Stat {
	return StatDensity{SupportAxis: g.supportAxis()}
}

// The support expands the support axis; the density axis starts at zero
// and grows to the estimate's peak.
func (g *GeomDensity) expandDomains(vals groupValues, x, y AxisScale) {
	support, density, err := supportCurve(vals)
	if err != nil {
		return
	}
	sAx, dAx := x, y
	if g.supportAxis() == "y" {
		sAx, dAx = y, x
	}
	for _, s := range support {
		sAx.Include(s)
	}
	dAx.Include(0)
	for _, d := range density {
		dAx.Include(d)
	}
}

func (g *GeomDensity) drawGroup(pn *panel, vals groupValues) error {
	support, density, err := supportCurve(vals)
	if err != nil {
		return err
	}
	if len(support) == 0 {
		return nil
	}

	vertical := g.supportAxis() == "y"
	pxs := make([]float64, len(support))
	pys := make([]float64, len(support))
	base := make([]float64, len(support))
	for i := range support {
		if vertical {
			pxs[i] = pn.yPix(support[i])
			pys[i] = pn.xPix(density[i])
			base[i] = pn.xPix(0)
		} else {
			pxs[i] = pn.xPix(support[i])
			pys[i] = pn.yPix(density[i])
			base[i] = pn.yPix(0)
		}
	}
	if err := fillBetween(pn, vals, pxs, pys, base, vertical); err != nil {
		return err
	}
	if vertical {
		// strokeCurve takes pixel points directly; swap back for it.
		sx := make([]float64, len(pxs))
		sy := make([]float64, len(pxs))
		for i := range pxs {
			sx[i], sy[i] = pys[i], pxs[i]
		}
		return strokeCurve(pn, vals, sx, sy)
	}
	return strokeCurve(pn, vals, pxs, pys)
}

// GeomViolin mirrors a density estimate around a position value: samples
// on the support axis, one violin per group at its position-axis value.
type GeomViolin struct {
	GeomCommon

	// SupportAxis is the aesthetic holding the samples, "x" or "y".
	// Defaults to "y" (vertical violins positioned along x).
	SupportAxis string
}

func (g *GeomViolin) supportAxis() string {
	if g.SupportAxis == "" {
		return "y"
	}
	return g.SupportAxis
}

func (g *GeomViolin) positionAxis() string {
	if g.supportAxis() == "x" {
		return "y"
	}
	return "x"
}

func (g *GeomViolin) aesthetics() []string {
	return append([]string{
		g.supportAxis(), g.positionAxis(), "support", "density",
		"violinwidth", "norm", "trimtails",
	}, densityStyleAesthetics...)
}

func (g *GeomViolin) requiredAesthetics() []string {
	return []string{g.supportAxis(), g.positionAxis()}
}

func (g *GeomViolin) groupedAesthetics() []string {
	return append([]string{
		g.positionAxis(), "violinwidth", "norm", "trimtails",
	}, densityStyleAesthetics...)
}

func (g *GeomViolin) label() string { return geomLabel("violin geom", g.Name) }

func (g *GeomViolin) defaults() Params {
	return Params{
		"linecolor":   "none",
		"fillcolor":   "white",
		"marker":      MarkerNone,
		"lw":          1.0,
		"ls":          LineSolid,
		"linealpha":   1.0,
		"fillalpha":   1.0,
		"norm":        "area",
		"violinwidth": 1.0,
		"trimtails":   0.0,
	}
}

func (g *GeomViolin) defaultStat() Stat {
	return StatDensity{SupportAxis: g.supportAxis()}
}

// violinDeltas converts densities to half-widths around the position
// value, normalized so violins are comparable across groups.
func violinDeltas(support, density []float64, transform func(float64) float64, norm string, width float64) ([]float64, error) {
	switch norm {
	case "area":
		// Normalize by the integral over the transformed support
		// (trapezoid rule) so each violin has the same area.
		total := 0.0
		for i := 1; i < len(support); i++ {
			dt := transform(support[i]) - transform(support[i-1])
			total += 0.5 * (density[i] + density[i-1]) * dt
		}
		if total == 0 {
			return make([]float64, len(density)), nil
		}
		out := make([]float64, len(density))
		for i, d := range density {
			out[i] = 0.5 * width * d / total
		}
		return out, nil
	case "max":
		peak := 0.0
		for _, d := range density {
			if d > peak {
				peak = d
			}
		}
		if peak == 0 {
			return make([]float64, len(density)), nil
		}
		out := make([]float64, len(density))
		for i, d := range density {
			out[i] = 0.5 * width * d / peak
		}
		return out, nil
	}
	return nil, fmt.Errorf("ggplot: unknown violin norm %q", norm)
}

func (g *GeomViolin) violinParams(vals groupValues) (pos, width, trim float64, norm string, err error) {
	pos, err = styleFloat(vals, g.positionAxis(), 0)
	if err != nil {
		return
	}
	width, err = styleFloat(vals, "violinwidth", 1)
	if err != nil {
		return
	}
	trim, err = styleFloat(vals, "trimtails", 0)
	if err != nil {
		return
	}
	norm = "area"
	if s, ok := vals["norm"].(string); ok && s != "" {
		norm = s
	}
	return
}

func (g *GeomViolin) expandDomains(vals groupValues, x, y AxisScale) {
	support, _, err := supportCurve(vals)
	if err != nil {
		return
	}
	pos, width, _, _, err := g.violinParams(vals)
	if err != nil {
		return
	}
	sAx, pAx := y, x
	if g.supportAxis() == "x" {
		sAx, pAx = x, y
	}
	for _, s := range support {
		sAx.Include(s)
	}
	pAx.Include(pos - 0.5*width)
	pAx.Include(pos + 0.5*width)
}

func (g *GeomViolin) drawGroup(pn *panel, vals groupValues) error {
	support, density, err := supportCurve(vals)
	if err != nil {
		return err
	}
	if len(support) < 2 {
		return nil
	}
	pos, width, trim, norm, err := g.violinParams(vals)
	if err != nil {
		return err
	}

	sScale := pn.ys
	vertical := true
	if g.supportAxis() == "x" {
		sScale = pn.xs
		vertical = false
	}

	deltas, err := violinDeltas(support, density, sScale.Transform, norm, width)
	if err != nil {
		return err
	}

	// Trim the tails: keep points strictly above the trim fraction of
	// the peak width.
	peak := 0.0
	for _, d := range deltas {
		if d > peak {
			peak = d
		}
	}
	var ts, td []float64
	for i, d := range deltas {
		if d > trim*peak {
			ts = append(ts, support[i])
			td = append(td, d)
		}
	}
	if len(ts) < 2 {
		return nil
	}

	// Pixel curves for the two mirrored edges.
	n := len(ts)
	pSup := make([]float64, n)
	pPlus := make([]float64, n)
	pMinus := make([]float64, n)
	for i := range ts {
		if vertical {
			pSup[i] = pn.yPix(ts[i])
			pPlus[i] = pn.xPix(pos + td[i])
			pMinus[i] = pn.xPix(pos - td[i])
		} else {
			pSup[i] = pn.xPix(ts[i])
			pPlus[i] = pn.yPix(pos + td[i])
			pMinus[i] = pn.yPix(pos - td[i])
		}
	}

	if err := fillBetween(pn, vals, pSup, pPlus, pMinus, vertical); err != nil {
		return err
	}
	edge := func(pys []float64) error {
		if vertical {
			sx := make([]float64, n)
			sy := make([]float64, n)
			for i := range pSup {
				sx[i], sy[i] = pys[i], pSup[i]
			}
			return strokeCurve(pn, vals, sx, sy)
		}
		return strokeCurve(pn, vals, pSup, pys)
	}
	if err := edge(pPlus); err != nil {
		return err
	}
	return edge(pMinus)
}
