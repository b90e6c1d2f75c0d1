package ggplot

import (
	"math"
	"testing"
)

func TestStatIdentity(t *testing.T) {
	in := groupValues{"x": []float64{1, 2}, "color": "r"}
	out, err := StatIdentity{}.Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("identity changed the value set: %v", out)
	}
}

func TestStatPointIntervalMedian(t *testing.T) {
	in := groupValues{
		"x": 3.0,
		"y": []float64{1, 2, 3, 4, 5},
	}
	out, err := StatPointInterval{}.Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	y, ok := out["y"].(float64)
	if !ok || y != 3 {
		t.Errorf("point estimate = %v, want median 3", out["y"])
	}
	yerr, ok := out["yerr"].([]float64)
	if !ok || len(yerr) != 2 {
		t.Fatalf("yerr = %v, want [below, above]", out["yerr"])
	}
	if yerr[0] < 0 || yerr[1] < 0 {
		t.Errorf("yerr = %v, want non-negative offsets", yerr)
	}
	if yerr[0] > 2 || yerr[1] > 2 {
		t.Errorf("yerr = %v, offsets cannot exceed the sample range from the median", yerr)
	}

	// The scalar axis carries no spread.
	if x, _ := out["x"].(float64); x != 3 {
		t.Errorf("x = %v, want 3", out["x"])
	}
	xerr, ok := out["xerr"].([]float64)
	if !ok || xerr[0] != 0 || xerr[1] != 0 {
		t.Errorf("xerr = %v, want [0, 0]", out["xerr"])
	}
}

func TestStatPointIntervalCustomFuncs(t *testing.T) {
	mean := func(xs []float64) float64 {
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		return sum / float64(len(xs))
	}
	minMax := func(xs []float64, q float64) float64 {
		lo, hi := xs[0], xs[0]
		for _, x := range xs {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
		if q < 0.5 {
			return lo
		}
		return hi
	}
	in := groupValues{"y": []float64{0, 10}}
	out, err := StatPointInterval{Point: mean, Interval: minMax, Axes: []string{"y"}}.Apply(in, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if y := out["y"].(float64); y != 5 {
		t.Errorf("point = %v, want mean 5", y)
	}
	yerr := out["yerr"].([]float64)
	if yerr[0] != 5 || yerr[1] != 5 {
		t.Errorf("yerr = %v, want [5, 5]", yerr)
	}
}

func TestStatDensityOutput(t *testing.T) {
	xs := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5}
	in := groupValues{"y": xs}
	scales := map[string]Scale{"y": ScaleLinear()}

	out, err := StatDensity{}.Apply(in, scales)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	support, ok := out["support"].([]float64)
	if !ok {
		t.Fatalf("support = %T, want []float64", out["support"])
	}
	density, ok := out["density"].([]float64)
	if !ok {
		t.Fatalf("density = %T, want []float64", out["density"])
	}
	if len(support) != 200 || len(density) != 200 {
		t.Fatalf("lengths = %d/%d, want 200/200", len(support), len(density))
	}
	if support[0] >= 1 || support[len(support)-1] <= 5 {
		t.Errorf("support [%v, %v] should widen beyond the sample bounds [1, 5]",
			support[0], support[len(support)-1])
	}
	peak := 0.0
	for _, d := range density {
		if d < 0 {
			t.Fatalf("negative density %v", d)
		}
		if d > peak {
			peak = d
		}
	}
	if peak == 0 {
		t.Error("density is identically zero")
	}
}

func TestStatDensityLogSpace(t *testing.T) {
	// On a log axis the KDE runs in transformed space; the inverted
	// support must stay positive.
	in := groupValues{"y": []float64{1, 10, 100, 1000}}
	scales := map[string]Scale{"y": ScaleLog()}

	out, err := StatDensity{N: 50}.Apply(in, scales)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	support := out["support"].([]float64)
	if len(support) != 50 {
		t.Fatalf("len(support) = %d, want 50", len(support))
	}
	for i, s := range support {
		if s <= 0 {
			t.Fatalf("support[%d] = %v, want positive after inverting the log transform", i, s)
		}
	}
}

func TestStatDensityCustomSupportAxis(t *testing.T) {
	in := groupValues{"x": []float64{1, 2, 3}}
	scales := map[string]Scale{"x": ScaleLinear()}
	out, err := StatDensity{SupportAxis: "x", N: 10}.Apply(in, scales)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(out["support"].([]float64)) != 10 {
		t.Errorf("len(support) = %d, want 10", len(out["support"].([]float64)))
	}
}

func TestStatDensityRequiresNumericSamples(t *testing.T) {
	in := groupValues{"y": []string{"a"}}
	if _, err := (StatDensity{}).Apply(in, map[string]Scale{"y": ScaleLinear()}); err == nil {
		t.Error("Apply should error on non-numeric samples")
	}
}
