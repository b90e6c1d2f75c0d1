package ggplot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// RenderOption configures a single Render call.
// Use functional options to customize rendering without mutating the Plot.
//
// Example:
//
//	// Default 800x600 figure with the default theme
//	dc, err := p.Render()
//
//	// Custom size and theme
//	dc, err := p.Render(ggplot.WithSize(1200, 800), ggplot.WithTheme(th))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a Render call.
type renderOptions struct {
	width, height int
	theme         *Theme
	face          text.Face
	dc            *gg.Context
	maxTicks      int
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		width:    800,
		height:   600,
		maxTicks: 6,
	}
}

// WithSize sets the output figure size in pixels.
// Ignored when a caller-provided context is supplied with WithContext.
func WithSize(width, height int) RenderOption {
	return func(o *renderOptions) {
		o.width = width
		o.height = height
	}
}

// WithTheme sets the theme used for figure chrome (backgrounds, axis and
// grid colors, font sizes, margins). When unset, DefaultTheme is used.
func WithTheme(t *Theme) RenderOption {
	return func(o *renderOptions) {
		o.theme = t
	}
}

// WithFont sets the font face used for the title, axis labels, tick
// labels, and facet labels. When unset, an embedded default face is used.
//
// Example:
//
//	source, _ := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	dc, err := p.Render(ggplot.WithFont(source.Face(12)))
func WithFont(face text.Face) RenderOption {
	return func(o *renderOptions) {
		o.face = face
	}
}

// WithContext renders onto a caller-provided gg.Context instead of
// creating a new one. The figure fills the context's full extent.
// The caller keeps ownership of the context.
func WithContext(dc *gg.Context) RenderOption {
	return func(o *renderOptions) {
		o.dc = dc
	}
}

// WithMaxTicks caps the number of major ticks per axis. The default is 6.
func WithMaxTicks(n int) RenderOption {
	return func(o *renderOptions) {
		if n > 0 {
			o.maxTicks = n
		}
	}
}
