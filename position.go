package ggplot

import "fmt"

// Position adjusts the scaled values of all of a geom's render groups at
// once, after stats run. Adjustments operate across groups: dodging, for
// example, offsets groups that would otherwise draw on top of each other.
type Position interface {
	Apply(groups []groupValues, scales map[string]Scale) ([]groupValues, error)
}

// PositionIdentity leaves group values where the scales put them.
type PositionIdentity struct{}

func (PositionIdentity) Apply(groups []groupValues, _ map[string]Scale) ([]groupValues, error) {
	return groups, nil
}

// PositionDodge offsets groups that share a coordinate value so they
// render side by side instead of overlapping. Each group must carry a
// single coordinate value on the dodged axis (or none). Groups that share
// a value are spread symmetrically around it, spaced by offset/n.
type PositionDodge struct {
	// OffsetX and OffsetY are the total dodge widths, in data units,
	// for the x and y coordinates. A zero offset leaves that
	// coordinate alone.
	OffsetX float64
	OffsetY float64
}

func (p PositionDodge) Apply(groups []groupValues, _ map[string]Scale) ([]groupValues, error) {
	offsets := map[string]float64{}
	if p.OffsetX != 0 {
		offsets["x"] = p.OffsetX
	}
	if p.OffsetY != 0 {
		// Pixel y grows downward; negate so positive offsets dodge up.
		offsets["y"] = -p.OffsetY
	}

	for coord, offset := range offsets {
		clashes, ranks, err := dodgeClashes(groups, coord)
		if err != nil {
			return nil, err
		}
		for i, vals := range groups {
			v, present := vals[coord]
			if !present || v == nil {
				continue
			}
			n := clashes[i]
			delta := 0.0
			if n > 1 {
				delta = 1 / float64(n)
			}
			shift := offset * (float64(ranks[i]) - 0.5*float64(n) + 0.5) * delta
			groups[i] = vals.clone()
			groups[i][coord] = shiftValue(v, shift)
		}
	}
	return groups, nil
}

// dodgeClashes counts, for each group, how many groups share its
// coordinate value, and the group's rank among them in group order.
func dodgeClashes(groups []groupValues, coord string) (clashes, ranks []int, err error) {
	counts := map[float64]int{}
	vals := make([]float64, len(groups))
	has := make([]bool, len(groups))
	ranks = make([]int, len(groups))

	for i, g := range groups {
		v, present := g[coord]
		if !present || v == nil {
			continue
		}
		x, uniform, ok := uniformValue(v)
		if !uniform {
			return nil, nil, fmt.Errorf(
				"ggplot: dodge position needs a unique %q value per group", coord)
		}
		if !ok {
			continue
		}
		f, isNum := asFloat(x)
		if !isNum {
			return nil, nil, fmt.Errorf(
				"ggplot: dodge position needs numeric %q values, got %T", coord, x)
		}
		vals[i], has[i] = f, true
		ranks[i] = counts[f]
		counts[f]++
	}

	clashes = make([]int, len(groups))
	for i := range groups {
		if has[i] {
			clashes[i] = counts[vals[i]]
		}
	}
	return clashes, ranks, nil
}

// shiftValue adds shift to a scalar or to every element of a slice.
func shiftValue(v any, shift float64) any {
	if xs, ok := asFloats(v); ok {
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x + shift
		}
		return out
	}
	if x, ok := asFloat(v); ok {
		return x + shift
	}
	return v
}
