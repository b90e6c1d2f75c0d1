package ggplot

import (
	"fmt"
	"reflect"
)

// Scale maps raw aesthetic values to the natural range of the aesthetic.
// For example, plotting categorical values such as manufacturer names on
// the x axis requires a scale that associates each name with a numeric
// position; mapping a treatment column to color requires a scale that
// associates each level with a color.
//
// Axis scales additionally control domain, transform, and ticks; see
// AxisScale.
type Scale interface {
	// Apply maps a resolved aesthetic value (scalar or slice) into the
	// aesthetic's range. Nil input passes through as nil.
	Apply(v any) (any, error)

	// Discrete reports whether the scale maps a discrete set of levels.
	Discrete() bool
}

// sameScale reports whether two scales are interchangeable for default
// scale collation. Scales of the same concrete type are considered equal.
func sameScale(a, b Scale) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// ScaleIdentity passes values through unchanged. It is the default scale
// for every aesthetic a geom does not override.
type ScaleIdentity struct{}

func (ScaleIdentity) Apply(v any) (any, error) { return v, nil }
func (ScaleIdentity) Discrete() bool           { return false }

// ScaleManual maps discrete keys to explicit values. Keys are compared by
// their string form. Unmatched keys map to nil, or return an error when
// Strict is set.
type ScaleManual struct {
	Values map[string]any
	Strict bool
}

// ScaleColorManual returns a manual discrete scale from level to color
// spec (a named color or hex string, see ParseColor).
func ScaleColorManual(values map[string]string, strict bool) *ScaleManual {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &ScaleManual{Values: m, Strict: strict}
}

func (s *ScaleManual) Discrete() bool { return true }

func (s *ScaleManual) Apply(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if !isSlice(v) {
		return s.lookup(v)
	}
	n := sliceLen(v)
	out := make([]any, n)
	for i := 0; i < n; i++ {
		mapped, err := s.lookup(sliceElem(v, i))
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

func (s *ScaleManual) lookup(key any) (any, error) {
	k := fmt.Sprint(key)
	val, ok := s.Values[k]
	if !ok {
		if s.Strict {
			return nil, fmt.Errorf("ggplot: manual scale could not match key %q", k)
		}
		return nil, nil
	}
	return val, nil
}
