package ggplot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Helpers for pulling drawing attributes out of a group's render values.
// Grouped aesthetics arrive collapsed to scalars, so these only have to
// handle single values.

func styleFloat(vals groupValues, aes string, def float64) (float64, error) {
	v, ok := vals[aes]
	if !ok || v == nil {
		return def, nil
	}
	if f, ok := asFloat(v); ok {
		return f, nil
	}
	return 0, fmt.Errorf("ggplot: aesthetic %q must be numeric, got %T", aes, v)
}

func styleColor(vals groupValues, aes string, fallback gg.RGBA) (gg.RGBA, error) {
	c, err := resolveColor(vals[aes], fallback)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("ggplot: aesthetic %q: %w", aes, err)
	}
	return c, nil
}

func styleMarker(vals groupValues) (string, error) {
	m, err := markerString(vals["marker"])
	if err != nil {
		return "", fmt.Errorf("ggplot: aesthetic \"marker\": %w", err)
	}
	return m, nil
}

func styleLine(vals groupValues) (string, error) {
	ls, err := lineStyleString(vals["ls"])
	if err != nil {
		return "", fmt.Errorf("ggplot: aesthetic \"ls\": %w", err)
	}
	return ls, nil
}

// floatsOf flattens a position value to a float slice: slices convert,
// scalars become a one-element slice, nil becomes nil.
func floatsOf(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	if xs, ok := asFloats(v); ok {
		return xs, nil
	}
	if x, ok := asFloat(v); ok {
		return []float64{x}, nil
	}
	return nil, fmt.Errorf("ggplot: position value must be numeric, got %T", v)
}

// pairXY converts two position values to equal-length float slices,
// broadcasting a scalar against a slice.
func pairXY(xv, yv any) (xs, ys []float64, err error) {
	xs, err = floatsOf(xv)
	if err != nil {
		return nil, nil, err
	}
	ys, err = floatsOf(yv)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case len(xs) == len(ys):
	case len(xs) == 1:
		xs = repeatScalar(xs[0], len(ys))
	case len(ys) == 1:
		ys = repeatScalar(ys[0], len(xs))
	default:
		return nil, nil, fmt.Errorf(
			"ggplot: x and y must have matching lengths, got %d and %d", len(xs), len(ys))
	}
	return xs, ys, nil
}
