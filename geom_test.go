package ggplot

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()
	b := new(table.Builder)
	b.Add("xs", []float64{1, 2, 3, 4})
	b.Add("ys", []float64{10, 20, 30, 40})
	b.Add("grp", []string{"a", "a", "b", "b"})
	return b.Done()
}

// identityScales builds a scale map covering a geom's aesthetics, with
// linear axis scales for the positional ones.
func identityScales(g Geom) map[string]Scale {
	scales := make(map[string]Scale)
	for _, aes := range g.aesthetics() {
		switch axisForAesthetic(aes) {
		case "x":
			scales[aes] = ScaleLinear()
		case "y":
			scales[aes] = ScaleLinear()
		default:
			scales[aes] = ScaleIdentity{}
		}
	}
	return scales
}

func TestResolveAestheticPrecedence(t *testing.T) {
	tab := testTable(t)
	inhMap := Aes{"x": "xs", "color": "grp"}
	inhParams := Params{"alpha": 0.5, "color": "b"}

	tests := []struct {
		name string
		geom *GeomPoint
		aes  string
		want any
	}{
		{
			name: "geom mapping wins over geom param",
			geom: &GeomPoint{GeomCommon: GeomCommon{
				Mapping: Aes{"color": "grp"},
				Params:  Params{"color": "r"},
			}},
			aes:  "color",
			want: []string{"a", "a", "b", "b"},
		},
		{
			name: "geom param wins over inherited mapping",
			geom: &GeomPoint{GeomCommon: GeomCommon{
				Params: Params{"color": "r"},
			}},
			aes:  "color",
			want: "r",
		},
		{
			name: "inherited mapping wins over inherited param",
			geom: &GeomPoint{},
			aes:  "color",
			want: []string{"a", "a", "b", "b"},
		},
		{
			name: "inherited param when nothing else resolves",
			geom: &GeomPoint{},
			aes:  "alpha",
			want: 0.5,
		},
		{
			name: "geom default as last resort",
			geom: &GeomPoint{},
			aes:  "marker",
			want: MarkerCircle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAesthetic(tt.geom, tt.aes, tab, inhMap, inhParams)
			if err != nil {
				t.Fatalf("resolveAesthetic(%q) error: %v", tt.aes, err)
			}
			switch want := tt.want.(type) {
			case []string:
				gotS, ok := got.([]string)
				if !ok || len(gotS) != len(want) {
					t.Fatalf("resolveAesthetic(%q) = %v, want %v", tt.aes, got, want)
				}
				for i := range want {
					if gotS[i] != want[i] {
						t.Errorf("resolveAesthetic(%q)[%d] = %q, want %q", tt.aes, i, gotS[i], want[i])
					}
				}
			default:
				if got != tt.want {
					t.Errorf("resolveAesthetic(%q) = %v, want %v", tt.aes, got, tt.want)
				}
			}
		})
	}
}

func TestCombinedMappingShadowing(t *testing.T) {
	g := &GeomPoint{GeomCommon: GeomCommon{
		Mapping: Aes{"y": "ys"},
		Params:  Params{"color": "r"},
	}}
	merged := combinedMapping(g.common(), Aes{"x": "xs", "color": "grp"})

	if merged["x"] != "xs" {
		t.Errorf("merged[x] = %q, want %q", merged["x"], "xs")
	}
	if merged["y"] != "ys" {
		t.Errorf("merged[y] = %q, want %q", merged["y"], "ys")
	}
	// The geom's color param shadows the inherited color mapping.
	if _, ok := merged["color"]; ok {
		t.Errorf("merged[color] = %q, want absent", merged["color"])
	}
}

func TestGeomGroupsPartitioning(t *testing.T) {
	tab := testTable(t)
	g := &GeomPoint{}
	groups, err := geomGroups(g, tab, Aes{"x": "xs", "y": "ys", "color": "grp"}, nil, identityScales(g))
	if err != nil {
		t.Fatalf("geomGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (one per grp level)", len(groups))
	}
	for i, vals := range groups {
		xs, ok := vals["x"].([]float64)
		if !ok || len(xs) != 2 {
			t.Errorf("group %d x = %v, want 2 values", i, vals["x"])
		}
		if _, ok := vals["color"].(string); !ok {
			t.Errorf("group %d color = %v (%T), want collapsed scalar", i, vals["color"], vals["color"])
		}
	}
}

func TestGeomGroupsExplicitGroupMapping(t *testing.T) {
	tab := testTable(t)
	g := &GeomLine{}
	groups, err := geomGroups(g, tab, Aes{"x": "xs", "y": "ys", "group": "grp"}, nil, identityScales(g))
	if err != nil {
		t.Fatalf("geomGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("got %d groups, want 2 (split by group mapping)", len(groups))
	}
}

func TestGeomGroupsMissingColumn(t *testing.T) {
	tab := testTable(t)
	g := &GeomPoint{}
	_, err := geomGroups(g, tab, Aes{"x": "nope", "y": "ys"}, nil, identityScales(g))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("geomGroups error = %v, want ErrMissingColumn", err)
	}
	var colErr *MissingColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("geomGroups error type = %T, want *MissingColumnError", err)
	}
	if colErr.Column != "nope" || colErr.Aesthetic != "x" {
		t.Errorf("error detail = %+v, want column nope, aesthetic x", colErr)
	}
}

func TestGeomGroupsMissingRequiredAesthetic(t *testing.T) {
	tab := testTable(t)
	g := &GeomPoint{}
	_, err := geomGroups(g, tab, Aes{"x": "xs"}, nil, identityScales(g))
	if !errors.Is(err, ErrMissingAesthetic) {
		t.Fatalf("geomGroups error = %v, want ErrMissingAesthetic", err)
	}
}

func TestGeomGroupsGroupedAestheticConflict(t *testing.T) {
	// Mapping color to a multi-valued column without grouping by it is
	// impossible: color is a grouped aesthetic, so partitioning splits
	// on it first. Force the conflict with an explicit single group.
	b := new(table.Builder)
	b.Add("xs", []float64{1, 2})
	b.Add("ys", []float64{1, 2})
	b.Add("c", []string{"a", "b"})
	b.Add("one", []float64{1, 1})
	tab := b.Done()

	g := &GeomPoint{GeomCommon: GeomCommon{
		Mapping: Aes{"marker": "c"},
	}}
	// marker maps to a column, so partitioning normally splits on it;
	// removing it from the group columns requires it to be uniform.
	groups, err := geomGroups(g, tab, Aes{"x": "xs", "y": "ys"}, nil, identityScales(g))
	if err != nil {
		t.Fatalf("geomGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("got %d groups, want 2 (split on marker column)", len(groups))
	}

	// Now the same data but with the grouped aesthetic resolved via a
	// parameter-level slice, which cannot be split.
	vals, err := scaledValues(&GeomPoint{GeomCommon: GeomCommon{
		Params: Params{"marker": []string{"o", "s"}},
	}}, tab, Aes{"x": "xs", "y": "ys"}, nil, identityScales(g))
	if vals != nil || err == nil {
		t.Fatalf("scaledValues = %v, %v; want GroupedAestheticError", vals, err)
	}
	var gErr *GroupedAestheticError
	if !errors.As(err, &gErr) {
		t.Fatalf("error type = %T, want *GroupedAestheticError", err)
	}
	if gErr.Aesthetic != "marker" {
		t.Errorf("error aesthetic = %q, want marker", gErr.Aesthetic)
	}
}

func TestGeomGroupsNoData(t *testing.T) {
	g := &GeomHLines{GeomCommon: GeomCommon{
		Params:        Params{"yintercept": 2.5},
		NoInheritData: true,
	}}
	groups, err := geomGroups(g, nil, nil, nil, identityScales(g))
	if err != nil {
		t.Fatalf("geomGroups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 (parameters only)", len(groups))
	}
	if y, _ := groups[0]["yintercept"].(float64); y != 2.5 {
		t.Errorf("yintercept = %v, want 2.5", groups[0]["yintercept"])
	}
}

func TestGeomGroupsEmptyTable(t *testing.T) {
	b := new(table.Builder)
	b.Add("xs", []float64{})
	b.Add("ys", []float64{})
	tab := b.Done()

	g := &GeomPoint{}
	groups, err := geomGroups(g, tab, Aes{"x": "xs", "y": "ys"}, nil, identityScales(g))
	if err != nil {
		t.Fatalf("geomGroups: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("got %d groups, want 0 for an empty table", len(groups))
	}
}
