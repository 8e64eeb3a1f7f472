package observability

import (
	"context"
	"time"
)

// TraceDecode fires OnDecodeStart and returns the matching completion call,
// which measures the elapsed time itself.
//
//	done := observability.TraceDecode(ctx, "toml")
//	doc, err := document.Read(r, document.FormatTOML)
//	done(nodes, err)
func TraceDecode(ctx context.Context, format string) func(nodes int, err error) {
	h := Pipeline()
	h.OnDecodeStart(ctx, format)
	start := time.Now()
	return func(nodes int, err error) {
		h.OnDecodeComplete(ctx, format, nodes, time.Since(start), err)
	}
}

// TraceLayout is [TraceDecode] for a layout pass.
func TraceLayout(ctx context.Context, passID string, spaces int) func(pages int, err error) {
	h := Pipeline()
	h.OnLayoutStart(ctx, passID, spaces)
	start := time.Now()
	return func(pages int, err error) {
		h.OnLayoutComplete(ctx, passID, pages, time.Since(start), err)
	}
}

// TraceRender is [TraceDecode] for rendering an artifact.
func TraceRender(ctx context.Context, format string) func(bytes int, err error) {
	h := Pipeline()
	h.OnRenderStart(ctx, format)
	start := time.Now()
	return func(bytes int, err error) {
		h.OnRenderComplete(ctx, format, bytes, time.Since(start), err)
	}
}
