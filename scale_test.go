package ggplot

import (
	"math"
	"testing"
)

func TestLinearScaleDomain(t *testing.T) {
	s := ScaleLinear()
	s.ExpandDomain([]float64{2, 8, 5})

	lo, hi := s.domain()
	if lo != 2 || hi != 8 {
		t.Errorf("domain = [%v, %v], want [2, 8]", lo, hi)
	}
	if got := s.Norm(2); got != 0 {
		t.Errorf("Norm(2) = %v, want 0", got)
	}
	if got := s.Norm(8); got != 1 {
		t.Errorf("Norm(8) = %v, want 1", got)
	}
	if got := s.Norm(5); got != 0.5 {
		t.Errorf("Norm(5) = %v, want 0.5", got)
	}
}

func TestLinearScaleFixedLimits(t *testing.T) {
	s := ScaleLinear().SetMin(0).SetMax(10)
	s.ExpandDomain([]float64{100, -50})
	lo, hi := s.domain()
	if lo != 0 || hi != 10 {
		t.Errorf("domain = [%v, %v], want fixed [0, 10]", lo, hi)
	}
}

func TestLinearScaleEmptyDomain(t *testing.T) {
	s := ScaleLinear()
	lo, hi := s.domain()
	if lo != -1 || hi != 1 {
		t.Errorf("empty domain = [%v, %v], want fallback [-1, 1]", lo, hi)
	}
}

func TestLinearScaleDegenerateDomain(t *testing.T) {
	s := ScaleLinear()
	s.Include(3)
	lo, hi := s.domain()
	if lo >= hi {
		t.Errorf("degenerate domain = [%v, %v], want padded", lo, hi)
	}
	if n := s.Norm(3); math.IsNaN(n) || math.IsInf(n, 0) {
		t.Errorf("Norm(3) = %v, want finite", n)
	}
}

func TestLinearScaleApplyNonNumeric(t *testing.T) {
	s := ScaleLinear()
	if _, err := s.Apply([]string{"a"}); err == nil {
		t.Error("Apply(strings) should error on a linear scale")
	}
}

func TestLinearScaleTicks(t *testing.T) {
	s := ScaleLinear().SetMin(0).SetMax(10)
	pos, labels := s.Ticks(6)
	if len(pos) == 0 || len(pos) != len(labels) {
		t.Fatalf("Ticks = %v / %v, want matching non-empty", pos, labels)
	}
	lo, hi := s.domain()
	for i, p := range pos {
		if p < lo || p > hi {
			t.Errorf("tick %d at %v outside domain [%v, %v]", i, p, lo, hi)
		}
	}
}

func TestLogScaleDropsNonPositive(t *testing.T) {
	s := ScaleLog()
	s.ExpandDomain([]float64{-1, 0, 1, 1000})
	lo, hi := s.domain()
	if lo != 1 || hi != 1000 {
		t.Errorf("domain = [%v, %v], want [1, 1000]", lo, hi)
	}
	if s.dropped != 2 {
		t.Errorf("dropped = %d, want 2", s.dropped)
	}
}

func TestLogScaleNorm(t *testing.T) {
	s := ScaleLog().SetMin(1).SetMax(100)
	if got := s.Norm(10); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Norm(10) = %v, want 0.5", got)
	}
}

func TestLogScaleTicksDecades(t *testing.T) {
	s := ScaleLog().SetMin(1).SetMax(1000)
	pos, labels := s.Ticks(6)
	want := []float64{1, 10, 100, 1000}
	if len(pos) != len(want) {
		t.Fatalf("Ticks = %v, want %v", pos, want)
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, pos[i], want[i])
		}
	}
	if labels[1] != "10" {
		t.Errorf("label[1] = %q, want 10", labels[1])
	}
}

func TestLogScaleTransformRoundTrip(t *testing.T) {
	s := ScaleLog()
	for _, x := range []float64{0.1, 1, 42, 1e6} {
		if got := s.Invert(s.Transform(x)); math.Abs(got-x)/x > 1e-12 {
			t.Errorf("Invert(Transform(%v)) = %v", x, got)
		}
	}
}

func TestCategoricalScaleLevels(t *testing.T) {
	s := ScaleCategorical()
	got, err := s.Apply([]string{"b", "a", "b", "c"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	xs, ok := got.([]float64)
	if !ok {
		t.Fatalf("Apply returned %T, want []float64", got)
	}
	// Levels register in order of first appearance.
	want := []float64{0, 1, 0, 2}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("position[%d] = %v, want %v", i, xs[i], want[i])
		}
	}
	pos, labels := s.Ticks(10)
	if len(pos) != 3 || labels[0] != "b" || labels[1] != "a" || labels[2] != "c" {
		t.Errorf("Ticks = %v / %v, want levels b, a, c", pos, labels)
	}
}

func TestCategoricalScaleSharedAcrossDatasets(t *testing.T) {
	s := ScaleCategorical()
	if _, err := s.Apply([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Apply([]string{"y"})
	if err != nil {
		t.Fatal(err)
	}
	xs := got.([]float64)
	if xs[0] != 1 {
		t.Errorf("second dataset level y at %v, want shared position 1", xs[0])
	}
}

func TestCategoricalScaleDomainPadding(t *testing.T) {
	s := ScaleCategorical()
	s.Apply([]string{"a", "b", "c"})
	lo, hi := s.domain()
	if lo != -0.5 || hi != 2.5 {
		t.Errorf("domain = [%v, %v], want [-0.5, 2.5]", lo, hi)
	}
}

func TestScaleManual(t *testing.T) {
	s := ScaleColorManual(map[string]string{"a": "#ff0000", "b": "#00ff00"}, false)
	got, err := s.Apply("a")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != "#ff0000" {
		t.Errorf("Apply(a) = %v, want #ff0000", got)
	}
	if got, _ := s.Apply("missing"); got != nil {
		t.Errorf("Apply(missing) = %v, want nil in lenient mode", got)
	}
}

func TestScaleManualStrict(t *testing.T) {
	s := ScaleColorManual(map[string]string{"a": "#ff0000"}, true)
	if _, err := s.Apply("missing"); err == nil {
		t.Error("strict manual scale should error on unmatched key")
	}
}

func TestSameScale(t *testing.T) {
	if !sameScale(ScaleIdentity{}, ScaleIdentity{}) {
		t.Error("identical scale types should collate")
	}
	if sameScale(ScaleIdentity{}, ScaleLinear()) {
		t.Error("different scale types should not collate")
	}
}
