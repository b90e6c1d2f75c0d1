package ggplot

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Font handling. The default face comes from the embedded Go Regular
// font; loading happens once and failure degrades to no text rather than
// an error (the backend skips text when no face is set).
var (
	fontOnce   sync.Once
	fontSource *text.FontSource
)

func defaultFace(size float64) text.Face {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("ggplot: default font unavailable, text disabled", "error", err)
			return
		}
		fontSource = src
	})
	if fontSource == nil {
		return nil
	}
	return fontSource.Face(size)
}

// themeColor parses a theme color, falling back to black for bad names.
func themeColor(name string) gg.RGBA {
	c, err := ParseColor(name)
	if err != nil {
		return gg.RGB(0, 0, 0)
	}
	return c
}

// rect is a pixel-space rectangle; y grows downward.
type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) width() float64  { return r.x1 - r.x0 }
func (r rect) height() float64 { return r.y1 - r.y0 }

// panel is one facet's drawing surface: a pixel rectangle plus the axis
// scales that map data coordinates into it.
type panel struct {
	dc     *gg.Context
	area   rect
	xs, ys AxisScale
	theme  *Theme
}

// xPix maps a data x value to a pixel x coordinate.
func (p *panel) xPix(v float64) float64 {
	return p.area.x0 + p.xs.Norm(v)*p.area.width()
}

// yPix maps a data y value to a pixel y coordinate. Pixel y grows
// downward, so the axis is flipped.
func (p *panel) yPix(v float64) float64 {
	return p.area.y1 - p.ys.Norm(v)*p.area.height()
}

// xFrac maps a panel-width fraction to a pixel x coordinate.
func (p *panel) xFrac(f float64) float64 {
	return p.area.x0 + f*p.area.width()
}

// yFrac maps a panel-height fraction to a pixel y coordinate, measured
// up from the panel bottom.
func (p *panel) yFrac(f float64) float64 {
	return p.area.y1 - f*p.area.height()
}

// figureLayout carves the canvas into the title band, the axis label
// bands, and a row-major grid of panel cells.
type figureLayout struct {
	title  rect
	xLabel rect
	yLabel rect
	cells  []rect
	rows   int
	cols   int
}

// layoutFigure computes the figure regions. Each cell still contains its
// own tick gutters and facet label strips; panelArea carves those off.
func layoutFigure(w, h float64, th *Theme, hasTitle, hasXLabel, hasYLabel bool, rows, cols int) figureLayout {
	m := th.Margin
	top, bottom, left, right := m, h-m, m, w-m

	var lay figureLayout
	lay.rows, lay.cols = rows, cols

	if hasTitle {
		bandH := th.TitleFontSize * 1.8
		lay.title = rect{left, top, right, top + bandH}
		top += bandH
	}
	if hasXLabel {
		bandH := th.LabelFontSize * 1.8
		lay.xLabel = rect{left, bottom - bandH, right, bottom}
		bottom -= bandH
	}
	if hasYLabel {
		bandW := th.LabelFontSize * 1.8
		lay.yLabel = rect{left, top, left + bandW, bottom}
		left += bandW
	}

	gap := th.PanelGap
	cellW := (right - left - gap*float64(cols-1)) / float64(cols)
	cellH := (bottom - top - gap*float64(rows-1)) / float64(rows)
	lay.cells = make([]rect, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0 := left + float64(c)*(cellW+gap)
			y0 := top + float64(r)*(cellH+gap)
			lay.cells[r*cols+c] = rect{x0, y0, x0 + cellW, y0 + cellH}
		}
	}
	return lay
}

// panelArea shrinks a cell to the data area, reserving tick gutters and
// facet label strips.
func panelArea(cell rect, th *Theme, topStrip, rightStrip bool) rect {
	tickGutterX := th.FontSize * 3.2 // y tick labels on the left
	tickGutterY := th.FontSize * 1.6 // x tick labels below
	area := rect{
		x0: cell.x0 + tickGutterX,
		y0: cell.y0,
		x1: cell.x1,
		y1: cell.y1 - tickGutterY,
	}
	strip := th.FontSize * 1.5
	if topStrip {
		area.y0 += strip
	}
	if rightStrip {
		area.x1 -= strip
	}
	if area.x1 < area.x0 {
		area.x1 = area.x0
	}
	if area.y1 < area.y0 {
		area.y1 = area.y0
	}
	return area
}

// drawPanelFrame paints the panel background, grid lines, frame, ticks,
// and tick labels.
func drawPanelFrame(pn *panel, maxTicks int, drawXTickLabels, drawYTickLabels bool) {
	dc := pn.dc
	th := pn.theme
	a := pn.area

	dc.SetColor(themeColor(th.PanelBackground).Color())
	dc.DrawRectangle(a.x0, a.y0, a.width(), a.height())
	dc.Fill()

	xPos, xLabels := pn.xs.Ticks(maxTicks)
	yPos, yLabels := pn.ys.Ticks(maxTicks)

	if th.ShowGrid {
		dc.SetColor(themeColor(th.GridColor).Color())
		dc.SetLineWidth(th.GridLineWidth)
		dc.ClearDash()
		for _, x := range xPos {
			px := pn.xPix(x)
			dc.DrawLine(px, a.y0, px, a.y1)
		}
		for _, y := range yPos {
			py := pn.yPix(y)
			dc.DrawLine(a.x0, py, a.x1, py)
		}
		dc.Stroke()
	}

	frame := themeColor(th.FrameColor)
	dc.SetColor(frame.Color())
	dc.SetLineWidth(th.FrameLineWidth)
	dc.DrawRectangle(a.x0, a.y0, a.width(), a.height())
	dc.Stroke()

	tick := th.TickLength
	for i, x := range xPos {
		px := pn.xPix(x)
		dc.DrawLine(px, a.y1, px, a.y1+tick)
		dc.Stroke()
		if drawXTickLabels {
			dc.SetColor(themeColor(th.TextColor).Color())
			dc.DrawStringAnchored(xLabels[i], px, a.y1+tick+2, 0.5, 1)
			dc.SetColor(frame.Color())
		}
	}
	for i, y := range yPos {
		py := pn.yPix(y)
		dc.DrawLine(a.x0-tick, py, a.x0, py)
		dc.Stroke()
		if drawYTickLabels {
			dc.SetColor(themeColor(th.TextColor).Color())
			dc.DrawStringAnchored(yLabels[i], a.x0-tick-2, py, 1, 0.5)
			dc.SetColor(frame.Color())
		}
	}
}

// drawFacetLabels draws panel annotations in the strips panelArea
// reserved for them.
func drawFacetLabels(pn *panel, labels []FacetLabel) {
	dc := pn.dc
	th := pn.theme
	a := pn.area
	dc.SetColor(themeColor(th.TextColor).Color())
	for _, lbl := range labels {
		switch lbl.Side {
		case "top":
			dc.DrawStringAnchored(lbl.Text, (a.x0+a.x1)/2, a.y0-4, 0.5, 0)
		case "bottom":
			dc.DrawStringAnchored(lbl.Text, (a.x0+a.x1)/2, a.y1+4, 0.5, 1)
		case "right":
			dc.DrawStringAnchored(lbl.Text, a.x1+4, (a.y0+a.y1)/2, 0, 0.5)
		case "left":
			dc.DrawStringAnchored(lbl.Text, a.x0-4, (a.y0+a.y1)/2, 1, 0.5)
		}
	}
}

// drawFigureText draws the title and the axis titles.
func drawFigureText(dc *gg.Context, lay figureLayout, th *Theme, face text.Face, title, xLabel, yLabel string) {
	dc.SetColor(themeColor(th.TextColor).Color())
	if title != "" {
		if face != nil {
			dc.SetFont(defaultFaceOr(face, th.TitleFontSize))
		}
		dc.DrawStringAnchored(title,
			(lay.title.x0+lay.title.x1)/2, (lay.title.y0+lay.title.y1)/2, 0.5, 0.5)
	}
	if face != nil {
		dc.SetFont(face)
	}
	if xLabel != "" {
		dc.DrawStringAnchored(xLabel,
			(lay.xLabel.x0+lay.xLabel.x1)/2, (lay.xLabel.y0+lay.xLabel.y1)/2, 0.5, 0.5)
	}
	if yLabel != "" {
		// No rotated text in the backend; anchor at the band center.
		dc.DrawStringAnchored(yLabel,
			(lay.yLabel.x0+lay.yLabel.x1)/2, (lay.yLabel.y0+lay.yLabel.y1)/2, 0.5, 0.5)
	}
}

// defaultFaceOr returns a face at the given size from the default source,
// falling back to the provided face.
func defaultFaceOr(face text.Face, size float64) text.Face {
	if f := defaultFace(size); f != nil {
		return f
	}
	return face
}
