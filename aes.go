package ggplot

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
)

// Aes is an aesthetic mapping: it associates aesthetic names that a geom
// may use, such as "x", "y", "color", or "marker", with column names in a
// tidy data table. Geom-level mappings take priority over plot-level ones.
//
// The special aesthetic "group" does not draw anything; it adds its column
// to the grouping of every geom that inherits the mapping.
type Aes map[string]string

// Params holds fixed aesthetic values, keyed by aesthetic name. A
// parameter applies to a whole geom (or plot) rather than varying per row.
// Geom-level parameters take priority over plot-level ones and shadow
// inherited mappings for the same aesthetic.
type Params map[string]any

// groupValues holds the resolved aesthetic values for one render group.
// Values are either scalars (float64, string, or any literal) or slices
// with one element per row in the group.
type groupValues map[string]any

// clone returns a shallow copy. Stats and positions mutate their result
// maps, so each stage copies before writing.
func (v groupValues) clone() groupValues {
	out := make(groupValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

var float64Type = reflect.TypeOf(float64(0))

// asFloats converts v to a []float64 if v is a slice of a numeric type.
func asFloats(v any) ([]float64, bool) {
	if v == nil {
		return nil, false
	}
	if xs, ok := v.([]float64); ok {
		return xs, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	if !rv.Type().Elem().ConvertibleTo(float64Type) {
		return nil, false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var out []float64
		slice.Convert(&out, v)
		return out, true
	}
	return nil, false
}

// asFloat converts a scalar v to float64 if it is numeric.
func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Convert(float64Type).Float(), true
	}
	return 0, false
}

// isSlice reports whether v is a slice (as opposed to a scalar value).
func isSlice(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// sliceLen returns the length of v if it is a slice, or -1 for scalars.
func sliceLen(v any) int {
	if v == nil {
		return -1
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return -1
	}
	return rv.Len()
}

// sliceElem returns element i of slice v as an any.
func sliceElem(v any, i int) any {
	return reflect.ValueOf(v).Index(i).Interface()
}

// uniformValue collapses a slice whose elements are all equal to that
// single element. Scalars pass through. The second result is false when
// the slice holds more than one distinct value, and the third is false
// when the slice is empty.
func uniformValue(v any) (val any, uniform, ok bool) {
	if !isSlice(v) {
		return v, true, v != nil
	}
	rv := reflect.ValueOf(v)
	if rv.Len() == 0 {
		return nil, true, false
	}
	first := rv.Index(0).Interface()
	for i := 1; i < rv.Len(); i++ {
		if !reflect.DeepEqual(first, rv.Index(i).Interface()) {
			return nil, false, false
		}
	}
	return first, true, true
}

// repeatScalar expands a scalar to a []float64 of length n. Used by
// geoms that accept a mapped or constant value for a positional channel.
func repeatScalar(x float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}
	return out
}
