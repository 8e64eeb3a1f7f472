// Package tree draws a content tree as a Graphviz diagram.
//
// Every node becomes a box labelled with [content.Label]; edges run from a
// composite node to each of its children in order.
//
//	dot := tree.ToDOT(root, tree.Options{})
//	svg, err := tree.RenderSVG(ctx, dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; PDF and PNG go through [render.ToPDF] and [render.ToPNG].
//
// [content.Label]: github.com/matzehuels/stackbox/pkg/content.Label
// [render.ToPDF]: github.com/matzehuels/stackbox/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/stackbox/pkg/render.ToPNG
package tree
