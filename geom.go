package ggplot

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Geom is a geometric mark: it expresses data attributes as visual
// features (an x/y scatter point expresses one column as left-right
// position and another as up-down position). Concrete geoms are structs
// that embed GeomCommon; users configure them with struct literals:
//
//	&ggplot.GeomPoint{GeomCommon: ggplot.GeomCommon{
//	    Mapping: ggplot.Aes{"color": "species"},
//	    Params:  ggplot.Params{"alpha": 0.5},
//	}}
type Geom interface {
	// common returns the shared configuration block.
	common() *GeomCommon

	// aesthetics lists the aesthetics the geom accepts.
	aesthetics() []string

	// requiredAesthetics lists aesthetics that must resolve to a value.
	requiredAesthetics() []string

	// groupedAesthetics lists aesthetics that must be constant within a
	// render group; distinct values split the data into groups.
	groupedAesthetics() []string

	// defaults returns the geom's default aesthetic values.
	defaults() Params

	// defaultScales returns per-aesthetic default scales, or nil when
	// identity is fine for everything.
	defaultScales() map[string]Scale

	// defaultStat returns the stat used when GeomCommon.Stat is nil.
	defaultStat() Stat

	// expandDomains widens the panel's axis domains to cover one
	// group's render values.
	expandDomains(vals groupValues, x, y AxisScale)

	// drawGroup issues the drawing calls for one render group.
	drawGroup(pn *panel, vals groupValues) error

	// label names the geom for error messages.
	label() string
}

// GeomCommon is the configuration shared by every geom.
//
// Geom-level Data, Mapping, and Params take priority over the plot-level
// ones. By default missing pieces are inherited from the plot; the
// NoInherit flags opt out.
type GeomCommon struct {
	// Data is the dataset for this geom. When nil the plot's dataset
	// is used (unless NoInheritData is set).
	Data table.Grouping

	// Mapping associates this geom's aesthetics with data columns.
	Mapping Aes

	// Params holds fixed aesthetic values. A parameter shadows an
	// inherited mapping for the same aesthetic.
	Params Params

	// Stat is the statistical transform applied to each render group.
	// When nil the geom's default stat is used.
	Stat Stat

	// Position adjusts groups after stats run. Defaults to identity.
	Position Position

	// Name identifies the geom in error messages.
	Name string

	NoInheritData    bool
	NoInheritMapping bool
	NoInheritParams  bool
}

func (c *GeomCommon) common() *GeomCommon             { return c }
func (c *GeomCommon) defaults() Params                { return nil }
func (c *GeomCommon) defaultScales() map[string]Scale { return nil }
func (c *GeomCommon) defaultStat() Stat               { return StatIdentity{} }

// Aesthetics that expand the x and y axis domains.
var (
	xDomainAes = []string{"x", "xmin", "xmax", "xintercept"}
	yDomainAes = []string{"y", "ymin", "ymax", "yintercept"}
)

// expandDomains covers the standard positional aesthetics. Geoms whose
// stats produce positional columns (density, violin) override this.
func (c *GeomCommon) expandDomains(vals groupValues, x, y AxisScale) {
	for _, aes := range xDomainAes {
		if v, ok := vals[aes]; ok {
			x.ExpandDomain(v)
		}
	}
	for _, aes := range yDomainAes {
		if v, ok := vals[aes]; ok {
			y.ExpandDomain(v)
		}
	}
}

func geomLabel(kind, name string) string {
	if name == "" {
		return kind
	}
	return fmt.Sprintf("%s %q", kind, name)
}

// chooseData picks the geom's dataset: its own when set, the plot's
// otherwise (unless inheritance is disabled).
func chooseData(c *GeomCommon, inherited table.Grouping) table.Grouping {
	if c.Data == nil && !c.NoInheritData {
		return inherited
	}
	return c.Data
}

// combinedMapping merges the plot mapping under the geom mapping.
// Plot mappings for aesthetics the geom fixes as parameters are dropped,
// so a global mapping cannot force a column the geom overrides.
func combinedMapping(c *GeomCommon, inherited Aes) Aes {
	if c.NoInheritMapping || inherited == nil {
		return c.Mapping
	}
	merged := make(Aes, len(inherited)+len(c.Mapping))
	for aes, col := range inherited {
		if _, shadowed := c.Params[aes]; shadowed {
			continue
		}
		merged[aes] = col
	}
	for aes, col := range c.Mapping {
		merged[aes] = col
	}
	return merged
}

// groupColumns returns the columns that partition the geom's data:
// columns mapped to grouped aesthetics plus any explicit "group" mapping.
func groupColumns(g Geom, mapping Aes) []string {
	seen := map[string]bool{}
	var cols []string
	add := func(col string) {
		if col != "" && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	for _, aes := range g.groupedAesthetics() {
		if col, ok := mapping[aes]; ok {
			add(col)
		}
	}
	add(mapping["group"])
	return cols
}

// resolveAesthetic resolves one aesthetic to a raw value. Precedence:
// geom mapping, geom parameter, inherited mapping, inherited parameter,
// geom default.
func resolveAesthetic(g Geom, aes string, tab *table.Table, inhMap Aes, inhParams Params) (any, error) {
	c := g.common()

	if col, ok := c.Mapping[aes]; ok {
		return resolveColumn(g, aes, col, tab)
	}
	if v, ok := c.Params[aes]; ok {
		return v, nil
	}
	if !c.NoInheritMapping {
		if col, ok := inhMap[aes]; ok {
			// A geom parameter shadows the inherited mapping.
			if _, shadowed := c.Params[aes]; !shadowed {
				return resolveColumn(g, aes, col, tab)
			}
		}
	}
	if !c.NoInheritParams {
		if v, ok := inhParams[aes]; ok {
			return v, nil
		}
	}
	if v, ok := g.defaults()[aes]; ok {
		return v, nil
	}
	return nil, nil
}

func resolveColumn(g Geom, aes, col string, tab *table.Table) (any, error) {
	if tab == nil || !hasColumn(tab, col) {
		return nil, &MissingColumnError{Geom: g.label(), Aesthetic: aes, Column: col}
	}
	return tab.Column(col), nil
}

// scaledValues resolves and scales every aesthetic of g for one group,
// enforces that grouped aesthetics are constant within the group, and
// applies the geom's stat.
func scaledValues(g Geom, tab *table.Table, inhMap Aes, inhParams Params, scales map[string]Scale) (groupValues, error) {
	grouped := map[string]bool{}
	for _, aes := range g.groupedAesthetics() {
		grouped[aes] = true
	}

	vals := make(groupValues)
	for _, aes := range g.aesthetics() {
		raw, err := resolveAesthetic(g, aes, tab, inhMap, inhParams)
		if err != nil {
			return nil, err
		}
		sc, ok := scales[aes]
		if !ok {
			return nil, fmt.Errorf("ggplot: %s: no scale for aesthetic %q", g.label(), aes)
		}
		scaled, err := sc.Apply(raw)
		if err != nil {
			return nil, err
		}
		if scaled != nil && grouped[aes] && isSlice(scaled) {
			v, uniform, present := uniformValue(scaled)
			if !uniform {
				return nil, &GroupedAestheticError{Geom: g.label(), Aesthetic: aes}
			}
			if present {
				scaled = v
			} else {
				scaled = nil
			}
		}
		vals[aes] = scaled
	}

	stat := g.common().Stat
	if stat == nil {
		stat = g.defaultStat()
	}
	return stat.Apply(vals, scales)
}

// geomGroups runs the resolve -> scale -> stat -> position pipeline for
// one geom against one facet's table and returns the per-group render
// values, validated against the geom's required aesthetics. tab is the
// geom's effective dataset, already subset to the facet; nil means the
// geom renders from parameters alone.
func geomGroups(g Geom, tab *table.Table, inhMap Aes, inhParams Params, scales map[string]Scale) ([]groupValues, error) {
	c := g.common()
	mapping := combinedMapping(c, inhMap)
	var parts []*table.Table
	if tab == nil {
		// No dataset: the geom renders once from parameters alone.
		parts = []*table.Table{nil}
	} else if tab.Len() == 0 {
		// The facet has no rows for this geom; draw nothing there.
		return nil, nil
	} else {
		parts = partitionBy(tab, groupColumns(g, mapping))
	}

	groups := make([]groupValues, 0, len(parts))
	for _, part := range parts {
		vals, err := scaledValues(g, part, inhMap, inhParams, scales)
		if err != nil {
			return nil, err
		}
		groups = append(groups, vals)
	}

	pos := c.Position
	if pos == nil {
		pos = PositionIdentity{}
	}
	groups, err := pos.Apply(groups, scales)
	if err != nil {
		return nil, err
	}

	for _, vals := range groups {
		for _, aes := range g.requiredAesthetics() {
			if v, ok := vals[aes]; !ok || v == nil {
				return nil, &MissingAestheticError{Geom: g.label(), Aesthetic: aes}
			}
		}
	}
	return groups, nil
}
