package tree

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/render"
)

// Options configures content tree rendering.
type Options struct {
	// Annotate returns an extra label line for a node, or "" for none.
	// Leave nil for a structure-only diagram.
	Annotate func(n content.Node) string

	// Horizontal lays the tree out left to right instead of top down.
	Horizontal bool
}

// ToDOT converts a content tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Composite nodes (stacks and repeats) are drawn with a grey fill; spacing
// nodes are dashed.
func ToDOT(root content.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Horizontal {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var (
		edges   []string
		parents []string // ids of the current ancestors, by depth
		next    int
	)
	_ = content.Walk(root, func(n content.Node, depth int) error {
		id := "n" + strconv.Itoa(next)
		next++

		label := content.Label(n)
		if opts.Annotate != nil {
			if extra := opts.Annotate(n); extra != "" {
				label += "\n" + extra
			}
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(n, label), ", "))

		parents = parents[:depth]
		if depth > 0 {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", parents[depth-1], id))
		}
		parents = append(parents, id)
		return nil
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// Dimensions formats the box sizes of a layout result, one per line. It is
// meant for [Options.Annotate].
func Dimensions(ml layout.MultiLayout) string {
	dims := ml.Dimensions()
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%.1f x %.1f", d.X.ToPt(), d.Y.ToPt())
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n content.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.(type) {
	case content.Stack, *content.Stack, content.Repeat, *content.Repeat:
		attrs = append(attrs, "fillcolor=lightgrey")
	case content.Spacing:
		attrs = append(attrs, "style=\"rounded,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one whose
// width and height match the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
