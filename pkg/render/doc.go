// Package render turns finished layouts into output files.
//
// # Overview
//
// A layout pass produces a [layout.MultiLayout]: page sizes plus positioned
// actions. This package and its subpackages write that result out:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Layout sinks: text dump, JSON, SVG debug view (in [sink])
//   - Content tree diagrams via Graphviz (in [tree])
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.SVG(pages, sink.WithFonts(loader))
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Content Trees
//
//	dot := tree.ToDOT(root, tree.Options{})
//	svg, err := tree.RenderSVG(dot)
//
// [layout.MultiLayout]: github.com/matzehuels/stackbox/pkg/layout.MultiLayout
// [sink]: github.com/matzehuels/stackbox/pkg/render/sink
// [tree]: github.com/matzehuels/stackbox/pkg/render/tree
package render
