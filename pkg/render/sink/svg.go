package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

const svgStyle = `
    .page { fill: white; stroke: #888; stroke-width: 0.5; }
    .debug { fill: none; stroke: #e4572e; stroke-width: 0.5; stroke-dasharray: 2 1; }
    .text { fill: #222; }`

// DefaultGap separates pages in the SVG view.
const DefaultGap = size.Size(20)

// SVGOption configures SVG rendering via [SVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	loader     *fonts.Loader
	family     string
	gap        size.Size
	horizontal bool
	debug      bool
}

// WithFonts resolves font indices to the names of the loaded fonts.
func WithFonts(l *fonts.Loader) SVGOption { return func(r *svgRenderer) { r.loader = l } }

// WithFontFamily sets the fallback font family for text runs.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.family = f } }

// WithGap sets the distance between pages.
func WithGap(g size.Size) SVGOption { return func(r *svgRenderer) { r.gap = g } }

// WithHorizontal places pages side by side instead of below each other.
func WithHorizontal() SVGOption { return func(r *svgRenderer) { r.horizontal = true } }

// WithoutDebugBoxes leaves out the box outlines.
func WithoutDebugBoxes() SVGOption { return func(r *svgRenderer) { r.debug = false } }

// SVG draws every page of m with its boxes and text runs.
func SVG(m layout.MultiLayout, opts ...SVGOption) []byte {
	r := svgRenderer{family: "sans-serif", gap: DefaultGap, debug: true}
	for _, opt := range opts {
		opt(&r)
	}

	origins, total := r.arrange(m)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		total.X.ToPt(), total.Y.ToPt(), total.X.ToPt(), total.Y.ToPt())
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgStyle)

	for i, page := range m.Layouts {
		o := origins[i]
		fmt.Fprintf(&buf, `  <g id="page-%d" transform="translate(%.2f %.2f)">`+"\n", i+1, o.X.ToPt(), o.Y.ToPt())
		fmt.Fprintf(&buf, `    <rect class="page" x="0" y="0" width="%.2f" height="%.2f"/>`+"\n",
			page.Dimensions.X.ToPt(), page.Dimensions.Y.ToPt())
		r.renderActions(&buf, page.Actions)
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// arrange returns each page's offset and the size of the whole canvas.
func (r *svgRenderer) arrange(m layout.MultiLayout) ([]size.Size2D, size.Size2D) {
	origins := make([]size.Size2D, len(m.Layouts))
	var cursor size.Size
	var extent size.Size2D
	for i, page := range m.Layouts {
		d := page.Dimensions
		if r.horizontal {
			origins[i] = size.WithX(cursor)
			cursor += d.X + r.gap
			extent = size.New2D(cursor-r.gap, size.Max(extent.Y, d.Y))
		} else {
			origins[i] = size.WithY(cursor)
			cursor += d.Y + r.gap
			extent = size.New2D(size.Max(extent.X, d.X), cursor-r.gap)
		}
	}
	return origins, extent
}

func (r *svgRenderer) renderActions(buf *bytes.Buffer, actions []layout.Action) {
	var (
		pos  size.Size2D
		font = layout.SetFont{Index: -1, Size: fonts.DefaultTextStyle().FontSize}
	)
	for _, a := range actions {
		switch a := a.(type) {
		case layout.MoveAbsolute:
			pos = a.Pos
		case layout.SetFont:
			font = a
		case layout.WriteText:
			// Positions are line tops; SVG places text on its baseline.
			baseline := pos.Y + size.Size(0.8*float64(font.Size))
			fmt.Fprintf(buf, `    <text class="text" x="%.2f" y="%.2f" font-family="%s" font-size="%.2f">`,
				pos.X.ToPt(), baseline.ToPt(), r.familyOf(font.Index), font.Size.ToPt())
			_ = xml.EscapeText(buf, []byte(a.Text))
			buf.WriteString("</text>\n")
		case layout.DebugBox:
			if !r.debug {
				continue
			}
			fmt.Fprintf(buf, `    <rect class="debug" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
				a.Pos.X.ToPt(), a.Pos.Y.ToPt(), a.Size.X.ToPt(), a.Size.Y.ToPt())
		}
	}
}

func (r *svgRenderer) familyOf(index int) string {
	if r.loader != nil {
		if f, ok := r.loader.Face(index); ok {
			return escapeAttr(f.Name + ", " + r.family)
		}
	}
	return escapeAttr(r.family)
}

func escapeAttr(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
