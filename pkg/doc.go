// Package pkg provides the libraries behind stackbox, a box layout engine.
//
// # Overview
//
// Stackbox places content in one or more rectangular regions ("spaces"):
// boxes and text runs are stacked along a secondary axis, aligned along a
// primary axis, and moved on to the next space when the current one is full.
// The result is a list of positioned drawing actions per used space that any
// renderer can replay. The pkg directory is organized into four areas:
//
//  1. Geometry and layout: [size], [layout]
//  2. Content: [fonts], [content], [document]
//  3. Output: [render], [render/sink], [render/tree]
//  4. Orchestration and infrastructure: [pipeline], [cache], [observability], [errors]
//
// # Architecture
//
// The typical data flow through stackbox:
//
//	JSON/TOML document
//	         ↓
//	    [document] package (decode, validate, build)
//	         ↓
//	    [content] tree + [layout.Context]
//	         ↓
//	    [layout.StackLayouter] (place boxes, overflow into next spaces)
//	         ↓
//	    [layout.MultiLayout] (one box per used space)
//	         ↓
//	    dump / JSON / SVG / PDF / PNG
//
// # Quick Start
//
// Lay out two boxes in a space and print the result:
//
//	ctx := layout.Context{
//	    Spaces: layout.Spaces{{Dimensions: size.New2D(100, 50)}},
//	    Axes:   layout.DefaultAxes(),
//	}
//	root := content.Stack{Children: []content.Node{
//	    content.Box{Width: 40, Height: 20},
//	    content.Spacing{Amount: 5},
//	    content.Box{Width: 60, Height: 20},
//	}}
//	ml, _ := content.Layout(ctx, root)
//	_ = ml.Serialize(os.Stdout)
//
// # Main Packages
//
// ## Layout Core
//
// [size] - Lengths in points with unit parsing, 2D sizes and padding boxes.
//
// [layout] - Axes and alignments, generalized/specialized coordinates, spaces,
// the action list and the stack layouter. Errors are typed as [layout.Error]
// with a kind: not enough space, no suitable font, font error.
//
// ## Content
//
// [fonts] - Font registry over golang.org/x/image/font/sfnt with the bundled
// Go fonts, class-based lookup and a memoized coverage cache.
//
// [content] - Content nodes (box, text, spacing, stack, repeat) and tree walking.
//
// [document] - The document format: spaces, axes, style, fonts and a tagged
// node tree, decoded from JSON or TOML.
//
// ## Output
//
// [render/sink] - Text dump, JSON and an SVG debug view of a [layout.MultiLayout].
//
// [render/tree] - The content tree as Graphviz DOT, SVG, PDF or PNG.
//
// [render] - SVG to PDF/PNG conversion via rsvg-convert.
//
// ## Infrastructure
//
// [pipeline] - decode → layout → render with caching, used by every command
// and the HTTP server.
//
// [cache] - Layout and artifact cache with file, Redis and null backends.
//
// [observability] - Hook registry for pipeline, cache and HTTP events.
//
// [errors] - Error codes shared by the CLI and the HTTP server.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// Redis tests run when STACKBOX_TEST_REDIS_ADDR is set; PDF and PNG tests
// need rsvg-convert.
//
// [size]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/size
// [layout]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout
// [fonts]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/fonts
// [content]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/content
// [document]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/document
// [render]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render/sink
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/render/tree
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/errors
// [layout.MultiLayout]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout#MultiLayout
// [layout.Error]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout#Error
//
// [layout.Context]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout#Context
// [layout.StackLayouter]: https://pkg.go.dev/github.com/matzehuels/stackbox/pkg/layout#StackLayouter
package pkg
