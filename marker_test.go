package ggplot

import "testing"

func TestMarkerString(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{nil, MarkerNone, false},
		{"", MarkerNone, false},
		{"o", MarkerCircle, false},
		{"s", MarkerSquare, false},
		{"^", MarkerTriangle, false},
		{"D", MarkerDiamond, false},
		{"none", MarkerNone, false},
		{"star", "", true},
		{42, "", true},
	}
	for _, tt := range tests {
		got, err := markerString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("markerString(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("markerString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLineStyleString(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{nil, LineSolid, false},
		{"", LineSolid, false},
		{"solid", LineSolid, false},
		{"-", LineSolid, false},
		{"--", LineDashed, false},
		{":", LineDotted, false},
		{"-.", LineDashDot, false},
		{"dashed", LineDashed, false},
		{"wavy", "", true},
		{1.5, "", true},
	}
	for _, tt := range tests {
		got, err := lineStyleString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("lineStyleString(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("lineStyleString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
