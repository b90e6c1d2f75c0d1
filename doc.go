// Package ggplot provides a declarative grammar-of-graphics layer on top
// of the gg 2D graphics library.
//
// # Overview
//
// A chart is described as a value: a tabular dataset, a set of aesthetic
// mappings (data column -> visual channel), one or more geometric marks
// ("geoms"), optional aesthetic scales, and an optional faceting scheme.
// Rendering walks the description, resolves column references, applies
// statistical and scale transforms, and issues drawing calls to a
// gg.Context. The description itself never draws; it is plain data until
// Render is called.
//
// # Quick Start
//
//	import (
//	    "github.com/aclements/go-gg/table"
//	    "github.com/gogpu/ggplot"
//	)
//
//	tab := table.TableFromStructs(measurements)
//
//	p := ggplot.New(tab).
//	    SetAes(ggplot.Aes{"x": "Day", "y": "Weight", "color": "Bear"}).
//	    Add(&ggplot.GeomPointLine{}).
//	    Title("Hibernation weight")
//
//	dc, err := p.Render(ggplot.WithSize(800, 600))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("weight.png")
//
// # Data
//
// Datasets are go-gg tables (github.com/aclements/go-gg/table). The
// library only reads from them; ownership and lifecycle stay with the
// caller. Every aesthetic mapping must name a column present in the
// dataset it resolves against, or Render returns an error.
//
// # Architecture
//
// The library is organized into:
//   - Description: Plot, Aes, Params, the Geom implementations
//   - Transforms: Scale (identity, manual, axis), Stat, Position
//   - Layout: Faceter (null, grid, wrap) and the panel layout
//   - Backend: a thin adapter issuing gg.Context drawing calls
package ggplot
