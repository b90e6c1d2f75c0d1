package ggplot

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultRenderOptions(t *testing.T) {
	o := defaultRenderOptions()
	if o.width != 800 || o.height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", o.width, o.height)
	}
	if o.maxTicks != 6 {
		t.Errorf("default maxTicks = %d, want 6", o.maxTicks)
	}
	if o.theme != nil || o.face != nil || o.dc != nil {
		t.Error("theme, face, and context should default to nil")
	}
}

func TestRenderOptions(t *testing.T) {
	th := DefaultTheme()
	dc := gg.NewContext(10, 10)

	o := defaultRenderOptions()
	for _, opt := range []RenderOption{
		WithSize(1200, 900),
		WithTheme(th),
		WithContext(dc),
		WithMaxTicks(4),
	} {
		opt(&o)
	}

	if o.width != 1200 || o.height != 900 {
		t.Errorf("size = %dx%d, want 1200x900", o.width, o.height)
	}
	if o.theme != th {
		t.Error("WithTheme not applied")
	}
	if o.dc != dc {
		t.Error("WithContext not applied")
	}
	if o.maxTicks != 4 {
		t.Errorf("maxTicks = %d, want 4", o.maxTicks)
	}
}

func TestWithMaxTicksIgnoresNonPositive(t *testing.T) {
	o := defaultRenderOptions()
	WithMaxTicks(0)(&o)
	if o.maxTicks != 6 {
		t.Errorf("maxTicks = %d, want default 6 preserved", o.maxTicks)
	}
	WithMaxTicks(-3)(&o)
	if o.maxTicks != 6 {
		t.Errorf("maxTicks = %d, want default 6 preserved", o.maxTicks)
	}
}
