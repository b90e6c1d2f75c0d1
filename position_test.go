package ggplot

import (
	"math"
	"testing"
)

func TestPositionIdentity(t *testing.T) {
	groups := []groupValues{{"x": 1.0}, {"x": 2.0}}
	out, err := PositionIdentity{}.Apply(groups, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out[0]["x"] != 1.0 || out[1]["x"] != 2.0 {
		t.Errorf("identity moved values: %v", out)
	}
}

func TestPositionDodgeSpreadsClashingGroups(t *testing.T) {
	groups := []groupValues{
		{"x": 1.0, "y": 10.0},
		{"x": 1.0, "y": 20.0},
		{"x": 2.0, "y": 30.0},
	}
	out, err := PositionDodge{OffsetX: 0.4}.Apply(groups, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	x0 := out[0]["x"].(float64)
	x1 := out[1]["x"].(float64)
	x2 := out[2]["x"].(float64)

	// Two groups clash at x=1: they spread symmetrically around it,
	// spaced by offset/n = 0.2.
	if math.Abs((x0+x1)/2-1.0) > 1e-12 {
		t.Errorf("dodged pair midpoint = %v, want 1", (x0+x1)/2)
	}
	if math.Abs((x1-x0)-0.2) > 1e-12 {
		t.Errorf("dodged spacing = %v, want 0.2", x1-x0)
	}
	// Earlier groups come first.
	if x0 >= x1 {
		t.Errorf("group order not preserved: %v >= %v", x0, x1)
	}
	// The lone group at x=2 stays put.
	if x2 != 2.0 {
		t.Errorf("unclashed group moved to %v, want 2", x2)
	}
}

func TestPositionDodgeYNegated(t *testing.T) {
	groups := []groupValues{
		{"y": 5.0},
		{"y": 5.0},
	}
	out, err := PositionDodge{OffsetY: 1.0}.Apply(groups, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	y0 := out[0]["y"].(float64)
	y1 := out[1]["y"].(float64)
	// Positive y offsets dodge the first group upward in data space.
	if y0 <= y1 {
		t.Errorf("y dodge order = %v, %v; want first group above second", y0, y1)
	}
	if math.Abs((y0+y1)/2-5.0) > 1e-12 {
		t.Errorf("dodged pair midpoint = %v, want 5", (y0+y1)/2)
	}
}

func TestPositionDodgeShiftsWholeGroup(t *testing.T) {
	groups := []groupValues{
		{"x": 1.0, "y": []float64{1, 2, 3}},
		{"x": 1.0, "y": []float64{4, 5, 6}},
	}
	out, err := PositionDodge{OffsetX: 0.5}.Apply(groups, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if ys := out[0]["y"].([]float64); len(ys) != 3 {
		t.Errorf("y values disturbed: %v", ys)
	}
	if out[0]["x"] == out[1]["x"] {
		t.Error("clashing groups were not separated")
	}
}

func TestPositionDodgeRequiresUniqueCoordinate(t *testing.T) {
	groups := []groupValues{
		{"x": []float64{1, 2}},
	}
	if _, err := (PositionDodge{OffsetX: 1}).Apply(groups, nil); err == nil {
		t.Error("Apply should error when a group has multiple coordinate values")
	}
}

func TestPositionDodgeNonNumeric(t *testing.T) {
	groups := []groupValues{{"x": "a"}, {"x": "a"}}
	if _, err := (PositionDodge{OffsetX: 1}).Apply(groups, nil); err == nil {
		t.Error("Apply should error on non-numeric coordinates")
	}
}
