package ggplot

import (
	"fmt"
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// AxisScale is a Scale for a positional aesthetic. Besides mapping values
// it owns the axis domain (expanded from the data or fixed by the user),
// a monotone transform, and tick placement.
//
// An AxisScale bound to "x" also scales the related aesthetics xmin, xmax,
// and xintercept; likewise for "y".
type AxisScale interface {
	Scale

	// ExpandDomain widens the domain to cover the values in v.
	// v holds scaled values, i.e. the output of Apply.
	ExpandDomain(v any)

	// Include widens the domain to cover a single value.
	Include(x float64)

	// Norm maps a data value to a fraction in [0, 1] along the axis.
	Norm(x float64) float64

	// Transform applies the scale's monotone transform (identity for
	// linear scales, log10 for log scales). Stats that operate in
	// transformed space use Transform and Invert.
	Transform(x float64) float64

	// Invert is the inverse of Transform.
	Invert(t float64) float64

	// Ticks returns at most max major tick positions in data space,
	// with their labels.
	Ticks(max int) (pos []float64, labels []string)

	// Clone returns a scale with the same configuration and an empty
	// domain. Used for facets with free axes.
	Clone() AxisScale
}

// LinearScale is a continuous linear axis scale. The domain is computed
// from the data unless fixed with SetMin/SetMax.
type LinearScale struct {
	min, max         float64 // fixed limits; NaN means from data
	dataMin, dataMax float64
}

// ScaleLinear returns a continuous linear axis scale.
func ScaleLinear() *LinearScale {
	return &LinearScale{
		min: math.NaN(), max: math.NaN(),
		dataMin: math.NaN(), dataMax: math.NaN(),
	}
}

// SetMin fixes the lower limit of the domain.
func (s *LinearScale) SetMin(v float64) *LinearScale { s.min = v; return s }

// SetMax fixes the upper limit of the domain.
func (s *LinearScale) SetMax(v float64) *LinearScale { s.max = v; return s }

// IncludeZero widens the domain to include zero.
func (s *LinearScale) IncludeZero() *LinearScale { s.Include(0); return s }

func (s *LinearScale) Discrete() bool { return false }

// Apply converts numeric values to float64 without changing them.
func (s *LinearScale) Apply(v any) (any, error) {
	return applyNumeric(v, "linear")
}

func (s *LinearScale) ExpandDomain(v any) {
	expandFloats(v, s.Include)
}

func (s *LinearScale) Include(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	if x < s.dataMin || math.IsNaN(s.dataMin) {
		s.dataMin = x
	}
	if x > s.dataMax || math.IsNaN(s.dataMax) {
		s.dataMax = x
	}
}

// domain resolves the effective [lo, hi]: fixed limits win, then data
// bounds, then a [-1, 1] fallback for empty domains.
func (s *LinearScale) domain() (lo, hi float64) {
	lo, hi = s.min, s.max
	if math.IsNaN(lo) {
		lo = s.dataMin
	}
	if math.IsNaN(hi) {
		hi = s.dataMax
	}
	if math.IsNaN(lo) {
		return -1, 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		// Degenerate domain; pad so Norm stays finite.
		return lo - 1, hi + 1
	}
	return lo, hi
}

func (s *LinearScale) Norm(x float64) float64 {
	lo, hi := s.domain()
	return (mscale.Linear{Min: lo, Max: hi}).Map(x)
}

func (s *LinearScale) Transform(x float64) float64 { return x }
func (s *LinearScale) Invert(t float64) float64    { return t }

func (s *LinearScale) Ticks(max int) ([]float64, []string) {
	lo, hi := s.domain()
	ls := mscale.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(mscale.TickOptions{Max: max})
	labels := make([]string, len(major))
	for i, x := range major {
		labels[i] = fmt.Sprintf("%.6g", x)
	}
	return major, labels
}

func (s *LinearScale) Clone() AxisScale {
	s2 := ScaleLinear()
	s2.min, s2.max = s.min, s.max
	return s2
}

// LogScale is a continuous base-10 logarithmic axis scale. Values that
// are not strictly positive are dropped from the domain with a warning.
type LogScale struct {
	min, max         float64
	dataMin, dataMax float64
	dropped          int
}

// ScaleLog returns a continuous base-10 logarithmic axis scale.
func ScaleLog() *LogScale {
	return &LogScale{
		min: math.NaN(), max: math.NaN(),
		dataMin: math.NaN(), dataMax: math.NaN(),
	}
}

// SetMin fixes the lower limit of the domain. Must be positive.
func (s *LogScale) SetMin(v float64) *LogScale { s.min = v; return s }

// SetMax fixes the upper limit of the domain. Must be positive.
func (s *LogScale) SetMax(v float64) *LogScale { s.max = v; return s }

func (s *LogScale) Discrete() bool { return false }

func (s *LogScale) Apply(v any) (any, error) {
	return applyNumeric(v, "log")
}

func (s *LogScale) ExpandDomain(v any) {
	expandFloats(v, s.Include)
}

func (s *LogScale) Include(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	if x <= 0 {
		s.dropped++
		Logger().Warn("ggplot: dropping non-positive value from log scale domain",
			"value", x)
		return
	}
	if x < s.dataMin || math.IsNaN(s.dataMin) {
		s.dataMin = x
	}
	if x > s.dataMax || math.IsNaN(s.dataMax) {
		s.dataMax = x
	}
}

func (s *LogScale) domain() (lo, hi float64) {
	lo, hi = s.min, s.max
	if math.IsNaN(lo) {
		lo = s.dataMin
	}
	if math.IsNaN(hi) {
		hi = s.dataMax
	}
	if math.IsNaN(lo) || lo <= 0 {
		lo = 0.1
	}
	if math.IsNaN(hi) || hi <= 0 {
		hi = 10
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return lo / 10, hi * 10
	}
	return lo, hi
}

func (s *LogScale) Norm(x float64) float64 {
	lo, hi := s.domain()
	return (math.Log10(x) - math.Log10(lo)) / (math.Log10(hi) - math.Log10(lo))
}

func (s *LogScale) Transform(x float64) float64 { return math.Log10(x) }
func (s *LogScale) Invert(t float64) float64    { return math.Pow(10, t) }

// Ticks places major ticks at powers of ten inside the domain, striding
// decades when there are more than max.
func (s *LogScale) Ticks(max int) ([]float64, []string) {
	lo, hi := s.domain()
	kLo := int(math.Ceil(math.Log10(lo) - 1e-9))
	kHi := int(math.Floor(math.Log10(hi) + 1e-9))
	if kHi < kLo {
		kLo, kHi = kLo-1, kLo
	}
	stride := 1
	if max > 0 {
		for (kHi-kLo)/stride+1 > max {
			stride++
		}
	}
	var pos []float64
	var labels []string
	for k := kLo; k <= kHi; k += stride {
		x := math.Pow(10, float64(k))
		pos = append(pos, x)
		labels = append(labels, fmt.Sprintf("%g", x))
	}
	return pos, labels
}

func (s *LogScale) Clone() AxisScale {
	s2 := ScaleLog()
	s2.min, s2.max = s.min, s.max
	return s2
}

// CategoricalScale maps discrete string levels to consecutive integer
// positions in order of first appearance. Levels are shared across every
// dataset the scale sees, so the same level gets the same position in
// every facet panel.
type CategoricalScale struct {
	levels []string
	index  map[string]int
}

// ScaleCategorical returns a discrete axis scale.
func ScaleCategorical() *CategoricalScale {
	return &CategoricalScale{index: make(map[string]int)}
}

func (s *CategoricalScale) Discrete() bool { return true }

// Levels returns the levels seen so far, in position order.
func (s *CategoricalScale) Levels() []string { return s.levels }

// Apply converts level values (their string form) to positions,
// registering unseen levels in order of appearance.
func (s *CategoricalScale) Apply(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if !isSlice(v) {
		return float64(s.position(fmt.Sprint(v))), nil
	}
	n := sliceLen(v)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = float64(s.position(fmt.Sprint(sliceElem(v, i))))
	}
	return out, nil
}

func (s *CategoricalScale) position(level string) int {
	if i, ok := s.index[level]; ok {
		return i
	}
	i := len(s.levels)
	s.levels = append(s.levels, level)
	s.index[level] = i
	return i
}

func (s *CategoricalScale) ExpandDomain(v any) {
	// Levels are registered by Apply; positions bound the domain.
	expandFloats(v, func(float64) {})
}

func (s *CategoricalScale) Include(float64) {}

// domain pads half a step on each side so marks at the first and last
// level do not sit on the panel edge.
func (s *CategoricalScale) domain() (lo, hi float64) {
	n := len(s.levels)
	if n == 0 {
		return -0.5, 0.5
	}
	return -0.5, float64(n-1) + 0.5
}

func (s *CategoricalScale) Norm(x float64) float64 {
	lo, hi := s.domain()
	return (x - lo) / (hi - lo)
}

func (s *CategoricalScale) Transform(x float64) float64 { return x }
func (s *CategoricalScale) Invert(t float64) float64    { return t }

func (s *CategoricalScale) Ticks(max int) ([]float64, []string) {
	pos := make([]float64, len(s.levels))
	labels := make([]string, len(s.levels))
	for i, l := range s.levels {
		pos[i] = float64(i)
		labels[i] = l
	}
	return pos, labels
}

func (s *CategoricalScale) Clone() AxisScale {
	return ScaleCategorical()
}

// applyNumeric converts v to float64 form for a continuous axis scale.
func applyNumeric(v any, kind string) (any, error) {
	if v == nil {
		return nil, nil
	}
	if isSlice(v) {
		if xs, ok := asFloats(v); ok {
			return xs, nil
		}
		return nil, fmt.Errorf("ggplot: %s scale requires numeric values, got %T", kind, v)
	}
	if x, ok := asFloat(v); ok {
		return x, nil
	}
	return nil, fmt.Errorf("ggplot: %s scale requires numeric values, got %T", kind, v)
}

// expandFloats feeds every float in v (scalar or slice) to include.
func expandFloats(v any, include func(float64)) {
	if v == nil {
		return
	}
	if xs, ok := asFloats(v); ok {
		for _, x := range xs {
			include(x)
		}
		return
	}
	if x, ok := asFloat(v); ok {
		include(x)
	}
}
