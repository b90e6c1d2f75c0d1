package ggplot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func testPanel() *panel {
	x := ScaleLinear().SetMin(0).SetMax(10)
	y := ScaleLinear().SetMin(0).SetMax(100)
	return &panel{
		dc:    gg.NewContext(200, 200),
		area:  rect{x0: 50, y0: 20, x1: 150, y1: 120},
		xs:    x,
		ys:    y,
		theme: DefaultTheme(),
	}
}

func TestPanelPixelMapping(t *testing.T) {
	pn := testPanel()

	if got := pn.xPix(0); got != 50 {
		t.Errorf("xPix(0) = %v, want left edge 50", got)
	}
	if got := pn.xPix(10); got != 150 {
		t.Errorf("xPix(10) = %v, want right edge 150", got)
	}
	if got := pn.xPix(5); got != 100 {
		t.Errorf("xPix(5) = %v, want 100", got)
	}

	// Pixel y grows downward: data 0 is the bottom edge.
	if got := pn.yPix(0); got != 120 {
		t.Errorf("yPix(0) = %v, want bottom edge 120", got)
	}
	if got := pn.yPix(100); got != 20 {
		t.Errorf("yPix(100) = %v, want top edge 20", got)
	}
}

func TestPanelFractionMapping(t *testing.T) {
	pn := testPanel()
	if got := pn.xFrac(0); got != 50 {
		t.Errorf("xFrac(0) = %v, want 50", got)
	}
	if got := pn.xFrac(1); got != 150 {
		t.Errorf("xFrac(1) = %v, want 150", got)
	}
	// Fractions measure up from the panel bottom.
	if got := pn.yFrac(0); got != 120 {
		t.Errorf("yFrac(0) = %v, want 120", got)
	}
	if got := pn.yFrac(1); got != 20 {
		t.Errorf("yFrac(1) = %v, want 20", got)
	}
}

func TestLayoutFigureSinglePanel(t *testing.T) {
	th := DefaultTheme()
	lay := layoutFigure(800, 600, th, true, true, true, 1, 1)
	if len(lay.cells) != 1 {
		t.Fatalf("got %d cells, want 1", len(lay.cells))
	}
	cell := lay.cells[0]
	if cell.x0 >= cell.x1 || cell.y0 >= cell.y1 {
		t.Fatalf("degenerate cell %+v", cell)
	}
	// Title band above, x label band below the panel grid.
	if lay.title.y1 > cell.y0 {
		t.Errorf("title band [%v, %v] overlaps cell top %v", lay.title.y0, lay.title.y1, cell.y0)
	}
	if lay.xLabel.y0 < cell.y1 {
		t.Errorf("x label band [%v, %v] overlaps cell bottom %v", lay.xLabel.y0, lay.xLabel.y1, cell.y1)
	}
}

func TestLayoutFigureGrid(t *testing.T) {
	th := DefaultTheme()
	lay := layoutFigure(900, 600, th, false, false, false, 2, 3)
	if len(lay.cells) != 6 {
		t.Fatalf("got %d cells, want 6", len(lay.cells))
	}
	// Cells on the same row share y bounds; columns advance left to right.
	if lay.cells[0].y0 != lay.cells[1].y0 {
		t.Errorf("row 0 cells y0 = %v and %v, want equal", lay.cells[0].y0, lay.cells[1].y0)
	}
	if lay.cells[0].x1 > lay.cells[1].x0 {
		t.Errorf("cell 0 [%v, %v] overlaps cell 1 at %v", lay.cells[0].x0, lay.cells[0].x1, lay.cells[1].x0)
	}
	if lay.cells[3].y0 <= lay.cells[0].y1 {
		t.Errorf("second row y0 = %v, want below first row end %v", lay.cells[3].y0, lay.cells[0].y1)
	}
	// All cells have equal width.
	w0 := lay.cells[0].width()
	for i, c := range lay.cells {
		if math.Abs(c.width()-w0) > 1e-9 {
			t.Errorf("cell %d width = %v, want %v", i, c.width(), w0)
		}
	}
}

func TestPanelAreaReservesStrips(t *testing.T) {
	th := DefaultTheme()
	cell := rect{0, 0, 300, 300}
	plain := panelArea(cell, th, false, false)
	withStrips := panelArea(cell, th, true, true)
	if withStrips.y0 <= plain.y0 {
		t.Errorf("top strip not reserved: %v vs %v", withStrips.y0, plain.y0)
	}
	if withStrips.x1 >= plain.x1 {
		t.Errorf("right strip not reserved: %v vs %v", withStrips.x1, plain.x1)
	}
	if plain.x0 <= cell.x0 {
		t.Error("tick gutter not reserved on the left")
	}
	if plain.y1 >= cell.y1 {
		t.Error("tick gutter not reserved at the bottom")
	}
}

func TestDefaultFace(t *testing.T) {
	face := defaultFace(12)
	if face == nil {
		t.Skip("embedded default font unavailable")
	}
	// A second call reuses the cached source.
	if again := defaultFace(14); again == nil {
		t.Error("second defaultFace call returned nil")
	}
}
