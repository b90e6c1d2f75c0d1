package ggplot

import (
	"math"

	"github.com/aclements/go-gg/table"
)

// FacetLabel is one panel annotation produced by a faceter.
type FacetLabel struct {
	Text string
	Side string // "top", "bottom", "left", or "right"
}

// A Faceter splits the plot into panels by the levels of faceting
// variables. Levels are discovered up front from the plot's dataset and
// every geom dataset, so panels agree across layers.
type Faceter interface {
	// AddLevels registers the facet levels found in data. source names
	// the dataset for error messages.
	AddLevels(data table.Grouping, source string) error

	// NumFacets returns the number of panels.
	NumFacets() int

	// Shape returns the panel grid geometry.
	Shape() (rows, cols int, err error)

	// RowCol locates panel i in the grid. Panels are row-major.
	RowCol(i int) (row, col int)

	// Subset returns the rows of data belonging to panel i, or nil for
	// nil data.
	Subset(data table.Grouping, i int) (*table.Table, error)

	// Labels returns panel i's annotations.
	Labels(i int) []FacetLabel

	// SharedX and SharedY report whether panels share axis domains.
	SharedX() bool
	SharedY() bool
}

// Facet is a declarative facet spec. Row/Col produce a grid faceter,
// Wrap a wrap faceter; setting both is ambiguous. The zero value means a
// single panel.
type Facet struct {
	// Row and Col are the grid faceting variables.
	Row, Col []string

	// Wrap is the wrap faceting variable set.
	Wrap []string

	// NRows and NCols fix the wrap grid geometry. When only one is set
	// the other is derived; when neither is, the grid is near-square.
	NRows, NCols int

	// FreeX and FreeY give each panel its own axis domain.
	FreeX, FreeY bool

	// HideLabels suppresses panel labels.
	HideLabels bool
}

// Faceter builds the faceter the spec describes.
func (f Facet) Faceter() (Faceter, error) {
	grid := len(f.Row) > 0 || len(f.Col) > 0
	wrap := len(f.Wrap) > 0
	switch {
	case grid && wrap:
		return nil, ErrAmbiguousFacet
	case wrap:
		return &WrapFaceter{
			By:         f.Wrap,
			NRows:      f.NRows,
			NCols:      f.NCols,
			FreeX:      f.FreeX,
			FreeY:      f.FreeY,
			HideLabels: f.HideLabels,
		}, nil
	case grid:
		return &GridFaceter{
			Rows:       f.Row,
			Cols:       f.Col,
			FreeX:      f.FreeX,
			FreeY:      f.FreeY,
			HideLabels: f.HideLabels,
		}, nil
	}
	return NullFaceter{}, nil
}

// NullFaceter renders everything in a single panel.
type NullFaceter struct{}

func (NullFaceter) AddLevels(table.Grouping, string) error { return nil }
func (NullFaceter) NumFacets() int                         { return 1 }
func (NullFaceter) Shape() (int, int, error)               { return 1, 1, nil }
func (NullFaceter) RowCol(int) (int, int)                  { return 0, 0 }
func (NullFaceter) Labels(int) []FacetLabel                { return nil }
func (NullFaceter) SharedX() bool                          { return true }
func (NullFaceter) SharedY() bool                          { return true }

func (NullFaceter) Subset(data table.Grouping, i int) (*table.Table, error) {
	return flattenGrouping(data), nil
}

// addDimensionLevels merges the levels of one facet dimension found in
// data into the known set, keeping the result sorted.
func addDimensionLevels(known []level, data table.Grouping, cols []string, source string) ([]level, error) {
	if data == nil || len(cols) == 0 {
		return known, nil
	}
	tab := flattenGrouping(data)
	for _, col := range cols {
		if !hasColumn(tab, col) {
			return nil, &FacetColumnError{Source: source, Column: col}
		}
	}
	seen := map[string]bool{}
	for _, lv := range known {
		seen[lv.key] = true
	}
	for _, lv := range uniqueLevels(tab, cols) {
		if !seen[lv.key] {
			seen[lv.key] = true
			known = append(known, lv)
		}
	}
	sortLevels(known)
	return known, nil
}

// subsetLevel filters data to the rows matching a level, or returns the
// whole table when the dimension is not faceted.
func subsetLevel(tab *table.Table, cols []string, levels []level, id int, source string) (*table.Table, error) {
	if len(cols) == 0 || len(levels) == 0 {
		return tab, nil
	}
	for _, col := range cols {
		if !hasColumn(tab, col) {
			return nil, &FacetColumnError{Source: source, Column: col}
		}
	}
	return subsetRows(tab, matchLevel(tab, cols, levels[id])), nil
}

// GridFaceter lays panels out on a grid: one row per level of the Rows
// variables, one column per level of the Cols variables. Facet ids are
// row-major. Row labels draw on the right edge of the last column, column
// labels on top of the first row.
type GridFaceter struct {
	Rows, Cols []string

	FreeX, FreeY bool
	HideLabels   bool

	rowLevels, colLevels []level
}

func (f *GridFaceter) AddLevels(data table.Grouping, source string) error {
	var err error
	f.rowLevels, err = addDimensionLevels(f.rowLevels, data, f.Rows, source)
	if err != nil {
		return err
	}
	f.colLevels, err = addDimensionLevels(f.colLevels, data, f.Cols, source)
	return err
}

func (f *GridFaceter) nRows() int { return max(1, len(f.rowLevels)) }
func (f *GridFaceter) nCols() int { return max(1, len(f.colLevels)) }

func (f *GridFaceter) NumFacets() int           { return f.nRows() * f.nCols() }
func (f *GridFaceter) Shape() (int, int, error) { return f.nRows(), f.nCols(), nil }
func (f *GridFaceter) RowCol(i int) (int, int)  { return i / f.nCols(), i % f.nCols() }
func (f *GridFaceter) SharedX() bool            { return !f.FreeX }
func (f *GridFaceter) SharedY() bool            { return !f.FreeY }

func (f *GridFaceter) Subset(data table.Grouping, i int) (*table.Table, error) {
	if data == nil {
		return nil, nil
	}
	row, col := f.RowCol(i)
	tab, err := subsetLevel(flattenGrouping(data), f.Rows, f.rowLevels, row, "facet data")
	if err != nil {
		return nil, err
	}
	return subsetLevel(tab, f.Cols, f.colLevels, col, "facet data")
}

func (f *GridFaceter) Labels(i int) []FacetLabel {
	if f.HideLabels {
		return nil
	}
	row, col := f.RowCol(i)
	var labels []FacetLabel
	if len(f.rowLevels) > 0 && col == f.nCols()-1 {
		labels = append(labels, FacetLabel{Text: f.rowLevels[row].String(), Side: "right"})
	}
	if len(f.colLevels) > 0 && row == 0 {
		labels = append(labels, FacetLabel{Text: f.colLevels[col].String(), Side: "top"})
	}
	return labels
}

// WrapFaceter lays the levels of one variable set out row-major on a
// near-square grid, or on an explicit NRows x NCols grid.
type WrapFaceter struct {
	By []string

	// NRows and NCols fix the grid. When only one is set the other is
	// derived from the level count; when neither is, the grid is
	// ceil(sqrt(n)) columns.
	NRows, NCols int

	FreeX, FreeY bool
	HideLabels   bool

	levels []level
}

func (f *WrapFaceter) AddLevels(data table.Grouping, source string) error {
	var err error
	f.levels, err = addDimensionLevels(f.levels, data, f.By, source)
	return err
}

func (f *WrapFaceter) NumFacets() int { return max(1, len(f.levels)) }

func (f *WrapFaceter) Shape() (int, int, error) {
	n := f.NumFacets()
	rows, cols := f.NRows, f.NCols
	if rows == 0 {
		if cols != 0 {
			rows = (n + cols - 1) / cols
		} else {
			rows = int(math.Ceil(math.Sqrt(float64(n))))
		}
	}
	if cols == 0 {
		cols = (n + rows - 1) / rows
	}
	if rows*cols < n {
		return 0, 0, ErrFacetOverflow
	}
	return rows, cols, nil
}

func (f *WrapFaceter) RowCol(i int) (int, int) {
	_, cols, err := f.Shape()
	if err != nil || cols == 0 {
		return 0, 0
	}
	return i / cols, i % cols
}

func (f *WrapFaceter) SharedX() bool { return !f.FreeX }
func (f *WrapFaceter) SharedY() bool { return !f.FreeY }

func (f *WrapFaceter) Subset(data table.Grouping, i int) (*table.Table, error) {
	if data == nil {
		return nil, nil
	}
	return subsetLevel(flattenGrouping(data), f.By, f.levels, i, "facet data")
}

func (f *WrapFaceter) Labels(i int) []FacetLabel {
	if f.HideLabels || len(f.levels) == 0 {
		return nil
	}
	return []FacetLabel{{Text: f.levels[i].String(), Side: "top"}}
}
