package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"github.com/gogpu/gg"
	"github.com/gogpu/ggplot"
	"gopkg.in/yaml.v3"
)

// chartSpec is the YAML chart description.
type chartSpec struct {
	Title  string `yaml:"title"`
	XLabel string `yaml:"xlabel"`
	YLabel string `yaml:"ylabel"`

	// Data is the path to a CSV data file, relative to the spec file.
	Data string `yaml:"data"`

	Mapping map[string]string    `yaml:"mapping"`
	Params  map[string]any       `yaml:"params"`
	Geoms   []geomSpec           `yaml:"geoms"`
	Scales  map[string]scaleSpec `yaml:"scales"`
	Facet   facetSpec            `yaml:"facet"`
	Theme   *ggplot.Theme        `yaml:"theme"`

	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`

	dir string // directory of the spec file, for relative data paths
}

type geomSpec struct {
	Type    string            `yaml:"type"`
	Name    string            `yaml:"name"`
	Mapping map[string]string `yaml:"mapping"`
	Params  map[string]any    `yaml:"params"`

	// SupportAxis configures density and violin geoms.
	SupportAxis string `yaml:"support_axis"`
}

type scaleSpec struct {
	// Type is linear, log, categorical, identity, or manual.
	Type string `yaml:"type"`

	// Min and Max fix continuous axis limits.
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	// Values defines a manual scale; Strict errors on unmatched keys.
	Values map[string]string `yaml:"values"`
	Strict bool              `yaml:"strict"`
}

type facetSpec struct {
	Row        []string `yaml:"row"`
	Col        []string `yaml:"col"`
	Wrap       []string `yaml:"wrap"`
	NRows      int      `yaml:"nrows"`
	NCols      int      `yaml:"ncols"`
	FreeX      bool     `yaml:"free_x"`
	FreeY      bool     `yaml:"free_y"`
	HideLabels bool     `yaml:"hide_labels"`
}

func loadChartSpec(path string) (*chartSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec chartSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	spec.dir = filepath.Dir(path)
	return &spec, nil
}

// loadCSV reads a CSV file into a table, coercing numeric-looking
// columns to float64.
func loadCSV(path string) (table.Grouping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: empty CSV file", path)
	}
	return table.TableFromStrings(records[0], records[1:], true), nil
}

func (s *chartSpec) render() (*gg.Context, error) {
	var data table.Grouping
	if s.Data != "" {
		path := s.Data
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, path)
		}
		var err error
		data, err = loadCSV(path)
		if err != nil {
			return nil, err
		}
	}

	plot := ggplot.New(data).
		SetAes(ggplot.Aes(s.Mapping)).
		SetFacet(ggplot.Facet{
			Row:        s.Facet.Row,
			Col:        s.Facet.Col,
			Wrap:       s.Facet.Wrap,
			NRows:      s.Facet.NRows,
			NCols:      s.Facet.NCols,
			FreeX:      s.Facet.FreeX,
			FreeY:      s.Facet.FreeY,
			HideLabels: s.Facet.HideLabels,
		}).
		Title(s.Title).
		XLabel(s.XLabel).
		YLabel(s.YLabel)

	for aes, v := range s.Params {
		plot.Param(aes, v)
	}
	for _, gs := range s.Geoms {
		g, err := buildGeom(gs)
		if err != nil {
			return nil, err
		}
		plot.Add(g)
	}
	for aes, ss := range s.Scales {
		sc, err := buildScale(ss)
		if err != nil {
			return nil, fmt.Errorf("scale for %q: %w", aes, err)
		}
		plot.SetScale(aes, sc)
	}

	opts := []ggplot.RenderOption{}
	if s.Width > 0 && s.Height > 0 {
		opts = append(opts, ggplot.WithSize(s.Width, s.Height))
	}
	if s.Theme != nil {
		opts = append(opts, ggplot.WithTheme(s.Theme))
	}
	return plot.Render(opts...)
}

func buildGeom(gs geomSpec) (ggplot.Geom, error) {
	common := ggplot.GeomCommon{
		Mapping: ggplot.Aes(gs.Mapping),
		Params:  ggplot.Params(gs.Params),
		Name:    gs.Name,
	}
	switch gs.Type {
	case "point":
		return &ggplot.GeomPoint{GeomCommon: common}, nil
	case "line":
		return &ggplot.GeomLine{GeomCommon: common}, nil
	case "pointline":
		return &ggplot.GeomPointLine{GeomCommon: common}, nil
	case "hlines":
		return &ggplot.GeomHLines{GeomCommon: common}, nil
	case "vlines":
		return &ggplot.GeomVLines{GeomCommon: common}, nil
	case "axhline":
		return &ggplot.GeomAxHLine{GeomCommon: common}, nil
	case "axvline":
		return &ggplot.GeomAxVLine{GeomCommon: common}, nil
	case "exponential-x":
		return &ggplot.GeomExponentialX{GeomCommon: common}, nil
	case "exponential-y":
		return &ggplot.GeomExponentialY{GeomCommon: common}, nil
	case "pointinterval":
		return &ggplot.GeomPointInterval{GeomCommon: common}, nil
	case "pointinterval-x":
		return &ggplot.GeomPointIntervalX{GeomCommon: common}, nil
	case "pointinterval-y":
		return &ggplot.GeomPointIntervalY{GeomCommon: common}, nil
	case "density":
		return &ggplot.GeomDensity{GeomCommon: common, SupportAxis: gs.SupportAxis}, nil
	case "violin":
		return &ggplot.GeomViolin{GeomCommon: common, SupportAxis: gs.SupportAxis}, nil
	}
	return nil, fmt.Errorf("unknown geom type %q", gs.Type)
}

func buildScale(ss scaleSpec) (ggplot.Scale, error) {
	switch ss.Type {
	case "linear", "":
		sc := ggplot.ScaleLinear()
		if ss.Min != nil {
			sc.SetMin(*ss.Min)
		}
		if ss.Max != nil {
			sc.SetMax(*ss.Max)
		}
		return sc, nil
	case "log":
		sc := ggplot.ScaleLog()
		if ss.Min != nil {
			sc.SetMin(*ss.Min)
		}
		if ss.Max != nil {
			sc.SetMax(*ss.Max)
		}
		return sc, nil
	case "categorical":
		return ggplot.ScaleCategorical(), nil
	case "identity":
		return ggplot.ScaleIdentity{}, nil
	case "manual":
		return ggplot.ScaleColorManual(ss.Values, ss.Strict), nil
	}
	return nil, fmt.Errorf("unknown scale type %q", ss.Type)
}
