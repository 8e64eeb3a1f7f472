package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Laid out 3 pages (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

// logHooks writes pipeline, cache and HTTP events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnDecodeStart(_ context.Context, format string) {
	h.logger.Debug("decoding document", "format", format)
}

func (h *logHooks) OnDecodeComplete(_ context.Context, format string, nodes int, d time.Duration, err error) {
	h.logger.Debug("decoded document", "format", format, "nodes", nodes, "duration", d, "error", err)
}

func (h *logHooks) OnLayoutStart(_ context.Context, passID string, spaces int) {
	h.logger.Debug("layout started", "pass", passID, "spaces", spaces)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, passID string, pages int, d time.Duration, err error) {
	h.logger.Debug("layout finished", "pass", passID, "pages", pages, "duration", d, "error", err)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render started", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, n int, d time.Duration, err error) {
	h.logger.Debug("render finished", "format", format, "bytes", n, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, n int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", n)
}

func (h *logHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *logHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}
