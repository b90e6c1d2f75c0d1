package ggplot

// Theme controls the figure's non-data ink. Colors are names or hex
// strings, sizes are pixels. The yaml tags let chart spec files carry a
// theme block.
type Theme struct {
	Background      string `yaml:"background"`
	PanelBackground string `yaml:"panel_background"`
	FrameColor      string `yaml:"frame_color"`
	GridColor       string `yaml:"grid_color"`
	TextColor       string `yaml:"text_color"`

	FontSize      float64 `yaml:"font_size"`
	TitleFontSize float64 `yaml:"title_font_size"`
	LabelFontSize float64 `yaml:"label_font_size"`

	FrameLineWidth float64 `yaml:"frame_line_width"`
	GridLineWidth  float64 `yaml:"grid_line_width"`
	TickLength     float64 `yaml:"tick_length"`
	ShowGrid       bool    `yaml:"show_grid"`

	Margin   float64 `yaml:"margin"`
	PanelGap float64 `yaml:"panel_gap"`
}

// DefaultTheme returns the standard light theme.
func DefaultTheme() *Theme {
	return &Theme{
		Background:      "white",
		PanelBackground: "white",
		FrameColor:      "#444444",
		GridColor:       "#dddddd",
		TextColor:       "#222222",
		FontSize:        12,
		TitleFontSize:   16,
		LabelFontSize:   13,
		FrameLineWidth:  1,
		GridLineWidth:   1,
		TickLength:      5,
		ShowGrid:        true,
		Margin:          10,
		PanelGap:        8,
	}
}
