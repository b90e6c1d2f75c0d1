package ggplot

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Stat is a statistical transform applied to the scaled values of one
// render group before the geom draws them. The identity stat leaves the
// values alone; StatDensity replaces samples with a density estimate;
// StatPointInterval summarizes samples into a point and an interval.
type Stat interface {
	Apply(vals groupValues, scales map[string]Scale) (groupValues, error)
}

// StatIdentity passes group values through unchanged.
type StatIdentity struct{}

func (StatIdentity) Apply(vals groupValues, _ map[string]Scale) (groupValues, error) {
	return vals, nil
}

// StatPointInterval summarizes samples on each interval axis into a point
// estimate plus a lower/upper error pair, stored under "<axis>err" as a
// two-element slice of absolute offsets from the point.
type StatPointInterval struct {
	// Point computes the point estimate. Defaults to the median.
	Point func(xs []float64) float64

	// Interval computes one interval endpoint at quantile q.
	// Defaults to the sample quantile.
	Interval func(xs []float64, q float64) float64

	// Lower and Upper are the interval quantiles. They default to
	// 0.025 and 0.975 (a central 95% interval).
	Lower, Upper float64

	// Axes lists the aesthetics to summarize. Defaults to x and y.
	Axes []string
}

func (s StatPointInterval) Apply(vals groupValues, _ map[string]Scale) (groupValues, error) {
	point := s.Point
	if point == nil {
		point = func(xs []float64) float64 {
			return stats.Sample{Xs: xs}.Quantile(0.5)
		}
	}
	interval := s.Interval
	if interval == nil {
		interval = func(xs []float64, q float64) float64 {
			return stats.Sample{Xs: xs}.Quantile(q)
		}
	}
	lower, upper := s.Lower, s.Upper
	if lower == 0 && upper == 0 {
		lower, upper = 0.025, 0.975
	}
	axes := s.Axes
	if axes == nil {
		axes = []string{"x", "y"}
	}

	out := vals.clone()
	for _, axis := range axes {
		v, present := vals[axis]
		if !present || v == nil {
			continue
		}
		xs, ok := asFloats(v)
		if !ok {
			// A grouped (scalar) axis carries no spread.
			if x, isNum := asFloat(v); isNum {
				out[axis] = x
				out[axis+"err"] = []float64{0, 0}
			}
			continue
		}
		if len(xs) == 0 {
			continue
		}
		p := point(xs)
		lo, hi := interval(xs, lower), interval(xs, upper)
		out[axis] = p
		out[axis+"err"] = []float64{abs(p - lo), abs(hi - p)}
	}
	return out, nil
}

// StatDensity replaces the samples on the support axis with a kernel
// density estimate, adding "support" (sample points) and "density"
// (estimated density) to the group values. The estimate is computed in
// the support axis's transformed space and the support is mapped back, so
// densities on a log axis are log-space densities, as in the original
// samples' display space.
type StatDensity struct {
	// SupportAxis is the aesthetic holding the samples, "x" or "y".
	// Defaults to "y".
	SupportAxis string

	// N is the number of points the estimate is sampled at.
	// Defaults to 200.
	N int

	// Kernel selects the KDE kernel. The zero value is Gaussian.
	Kernel stats.KDEKernel

	// Bandwidth fixes the KDE bandwidth. When zero, Scott's rule is
	// used.
	Bandwidth float64

	// Widen expands the support beyond the sample bounds by
	// Widen*bandwidth on each side. Defaults to 3.
	Widen float64
}

func (s StatDensity) Apply(vals groupValues, scales map[string]Scale) (groupValues, error) {
	axis := s.SupportAxis
	if axis == "" {
		axis = "y"
	}
	n := s.N
	if n == 0 {
		n = 200
	}
	widen := s.Widen
	if widen == 0 {
		widen = 3
	}

	xs, ok := asFloats(vals[axis])
	if !ok {
		return nil, fmt.Errorf("ggplot: density stat requires numeric samples on %q", axis)
	}
	if len(xs) == 0 {
		out := vals.clone()
		out["support"] = []float64{}
		out["density"] = []float64{}
		return out, nil
	}

	// Fit in transformed space so log-scaled supports estimate sanely.
	transform := func(x float64) float64 { return x }
	invert := transform
	if ax, isAxis := scales[axis].(AxisScale); isAxis {
		transform = ax.Transform
		invert = ax.Invert
	}
	txs := make([]float64, len(xs))
	for i, x := range xs {
		txs[i] = transform(x)
	}

	sample := stats.Sample{Xs: txs}
	bw := s.Bandwidth
	if bw == 0 {
		bw = stats.BandwidthScott(sample)
	}
	kde := stats.KDE{Sample: sample, Kernel: s.Kernel, Bandwidth: bw}

	lo, hi := sample.Bounds()
	support := vec.Linspace(lo-widen*bw, hi+widen*bw, n)
	density := vec.Map(kde.PDF, support)

	out := vals.clone()
	out["support"] = vec.Map(invert, support)
	out["density"] = density
	return out, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
