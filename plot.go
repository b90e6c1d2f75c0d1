package ggplot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/gogpu/gg"
)

// Plot is a declarative plot description: a dataset, aesthetic mappings,
// a list of geoms, and optional scales, facets, and labels. Build one
// with New and chained setters, then call Render.
//
// A Plot is not safe for concurrent use.
type Plot struct {
	data    table.Grouping
	mapping Aes
	params  Params
	geoms   []Geom
	scales  map[string]Scale
	facet   Facet
	faceter Faceter

	title  string
	xLabel string
	yLabel string
}

// New returns a plot over the given dataset. data may be nil when every
// geom carries its own dataset or renders from parameters.
func New(data table.Grouping) *Plot {
	return &Plot{
		data:   data,
		scales: make(map[string]Scale),
	}
}

// SetAes sets the plot-level aesthetic mapping, inherited by geoms.
func (p *Plot) SetAes(mapping Aes) *Plot {
	p.mapping = mapping
	return p
}

// Param sets a plot-level fixed aesthetic value, inherited by geoms.
func (p *Plot) Param(aes string, value any) *Plot {
	if p.params == nil {
		p.params = make(Params)
	}
	p.params[aes] = value
	return p
}

// Add appends geoms to the plot. Geoms render in the order added.
func (p *Plot) Add(geoms ...Geom) *Plot {
	p.geoms = append(p.geoms, geoms...)
	return p
}

// SetScale fixes the scale for an aesthetic, overriding geom defaults.
func (p *Plot) SetScale(aes string, s Scale) *Plot {
	p.scales[aes] = s
	return p
}

// SetFacet configures faceting declaratively.
func (p *Plot) SetFacet(f Facet) *Plot {
	p.facet = f
	return p
}

// SetFaceter installs a faceter directly, bypassing the Facet spec.
func (p *Plot) SetFaceter(f Faceter) *Plot {
	p.faceter = f
	return p
}

// Title sets the figure title.
func (p *Plot) Title(s string) *Plot { p.title = s; return p }

// XLabel sets the x axis title. Defaults to the column mapped to x.
func (p *Plot) XLabel(s string) *Plot { p.xLabel = s; return p }

// YLabel sets the y axis title. Defaults to the column mapped to y.
func (p *Plot) YLabel(s string) *Plot { p.yLabel = s; return p }

// Aesthetics routed to the x and y axis scales. Panel-fraction
// aesthetics (the ax-line limits) deliberately stay on identity scales.
func axisForAesthetic(aes string) string {
	switch aes {
	case "x", "xmin", "xmax", "xintercept":
		return "x"
	case "y", "ymin", "ymax", "yintercept":
		return "y"
	}
	return ""
}

// collateScales picks one scale per aesthetic: an explicit plot scale
// wins; otherwise all geom defaults for that aesthetic must agree.
// Aesthetics with no opinion get the identity scale.
func (p *Plot) collateScales(aesthetics []string) (map[string]Scale, error) {
	out := make(map[string]Scale, len(aesthetics))
	for _, aes := range aesthetics {
		if s, ok := p.scales[aes]; ok {
			out[aes] = s
			continue
		}
		var chosen Scale
		for _, g := range p.geoms {
			def, ok := g.defaultScales()[aes]
			if !ok {
				continue
			}
			if chosen == nil {
				chosen = def
			} else if !sameScale(chosen, def) {
				return nil, &ScaleConflictError{Aesthetic: aes}
			}
		}
		if chosen == nil {
			chosen = ScaleIdentity{}
		}
		out[aes] = chosen
	}
	return out, nil
}

// axisScale resolves the scale for one axis: the explicit scale if set
// (which must be an AxisScale), otherwise linear, switching to
// categorical when the mapped data is not numeric.
func (p *Plot) axisScale(axis string) (AxisScale, error) {
	if s, ok := p.scales[axis]; ok {
		ax, isAxis := s.(AxisScale)
		if !isAxis {
			return nil, fmt.Errorf("ggplot: scale for %q must be an axis scale, got %T", axis, s)
		}
		return ax, nil
	}
	if p.axisDataIsDiscrete(axis) {
		Logger().Debug("ggplot: defaulting to categorical axis scale", "axis", axis)
		return ScaleCategorical(), nil
	}
	return ScaleLinear(), nil
}

// axisDataIsDiscrete probes the columns mapped to an axis aesthetic
// across the plot and geom datasets for non-numeric values.
func (p *Plot) axisDataIsDiscrete(axis string) bool {
	probe := func(data table.Grouping, mapping Aes) bool {
		if data == nil {
			return false
		}
		col, ok := mapping[axis]
		if !ok {
			return false
		}
		tab := flattenGrouping(data)
		if !hasColumn(tab, col) {
			return false
		}
		v := tab.Column(col)
		if _, numeric := asFloats(v); numeric {
			return false
		}
		return sliceLen(v) > 0
	}
	if probe(p.data, p.mapping) {
		return true
	}
	for _, g := range p.geoms {
		c := g.common()
		if probe(chooseData(c, p.data), combinedMapping(c, p.mapping)) {
			return true
		}
	}
	return false
}

// usedAesthetics returns the union of all geom aesthetics, in first-use
// order.
func (p *Plot) usedAesthetics() []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range p.geoms {
		for _, aes := range g.aesthetics() {
			if !seen[aes] {
				seen[aes] = true
				out = append(out, aes)
			}
		}
	}
	return out
}

// panelState carries one facet panel's scales and resolved geom groups.
type panelState struct {
	x, y   AxisScale
	groups [][]groupValues // indexed by geom
	labels []FacetLabel
}

// Render draws the plot and returns the backend context, ready for
// EncodePNG or SavePNG.
func (p *Plot) Render(opts ...RenderOption) (*gg.Context, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	th := o.theme
	if th == nil {
		th = DefaultTheme()
	}

	faceter := p.faceter
	if faceter == nil {
		var err error
		faceter, err = p.facet.Faceter()
		if err != nil {
			return nil, err
		}
	}
	if err := faceter.AddLevels(p.data, "plot data"); err != nil {
		return nil, err
	}
	for _, g := range p.geoms {
		if d := g.common().Data; d != nil {
			if err := faceter.AddLevels(d, g.label()); err != nil {
				return nil, err
			}
		}
	}
	nFacets := faceter.NumFacets()
	rows, cols, err := faceter.Shape()
	if err != nil {
		return nil, err
	}
	Logger().Debug("ggplot: facet layout", "facets", nFacets, "rows", rows, "cols", cols)

	aesthetics := p.usedAesthetics()
	collated, err := p.collateScales(aesthetics)
	if err != nil {
		return nil, err
	}
	sharedX, err := p.axisScale("x")
	if err != nil {
		return nil, err
	}
	sharedY, err := p.axisScale("y")
	if err != nil {
		return nil, err
	}

	// Phase one: resolve every panel's render groups and grow the axis
	// domains, so panels can share final domains before any drawing.
	panels := make([]panelState, nFacets)
	for i := 0; i < nFacets; i++ {
		ps := &panels[i]
		ps.x, ps.y = sharedX, sharedY
		if !faceter.SharedX() {
			ps.x = sharedX.Clone()
		}
		if !faceter.SharedY() {
			ps.y = sharedY.Clone()
		}
		ps.labels = faceter.Labels(i)

		scales := make(map[string]Scale, len(aesthetics))
		for _, aes := range aesthetics {
			switch axisForAesthetic(aes) {
			case "x":
				scales[aes] = ps.x
			case "y":
				scales[aes] = ps.y
			default:
				scales[aes] = collated[aes]
			}
		}

		ps.groups = make([][]groupValues, len(p.geoms))
		for gi, g := range p.geoms {
			chosen := chooseData(g.common(), p.data)
			var tab *table.Table
			if chosen != nil {
				tab, err = faceter.Subset(chosen, i)
				if err != nil {
					return nil, err
				}
			}
			groups, err := geomGroups(g, tab, p.mapping, p.params, scales)
			if err != nil {
				return nil, err
			}
			ps.groups[gi] = groups
			for _, vals := range groups {
				g.expandDomains(vals, ps.x, ps.y)
			}
		}
	}

	// Phase two: lay out the figure and draw.
	dc := o.dc
	if dc == nil {
		dc = gg.NewContext(o.width, o.height)
	}
	dc.ClearWithColor(themeColor(th.Background))

	face := o.face
	if face == nil {
		face = defaultFace(th.FontSize)
	}
	if face != nil {
		dc.SetFont(face)
	}

	xLabel, yLabel := p.xLabel, p.yLabel
	if xLabel == "" {
		xLabel = p.mapping["x"]
	}
	if yLabel == "" {
		yLabel = p.mapping["y"]
	}

	lay := layoutFigure(float64(dc.Width()), float64(dc.Height()), th,
		p.title != "", xLabel != "", yLabel != "", rows, cols)

	for i := 0; i < nFacets; i++ {
		ps := &panels[i]
		row, col := faceter.RowCol(i)
		topStrip, rightStrip := false, false
		for _, lbl := range ps.labels {
			if lbl.Side == "top" {
				topStrip = true
			}
			if lbl.Side == "right" {
				rightStrip = true
			}
		}
		pn := &panel{
			dc:    dc,
			area:  panelArea(lay.cells[row*cols+col], th, topStrip, rightStrip),
			xs:    ps.x,
			ys:    ps.y,
			theme: th,
		}
		drawXTicks := !faceter.SharedX() || row == rows-1
		drawYTicks := !faceter.SharedY() || col == 0
		drawPanelFrame(pn, o.maxTicks, drawXTicks, drawYTicks)

		dc.ClipRect(pn.area.x0, pn.area.y0, pn.area.width(), pn.area.height())
		for gi, g := range p.geoms {
			for _, vals := range ps.groups[gi] {
				if err := g.drawGroup(pn, vals); err != nil {
					dc.ResetClip()
					return nil, err
				}
			}
		}
		dc.ResetClip()
		drawFacetLabels(pn, ps.labels)
	}

	drawFigureText(dc, lay, th, face, p.title, xLabel, yLabel)
	return dc, nil
}
