// Package pipeline runs a layout document through decode → layout → render.
//
// The CLI commands and the HTTP server both go through a [Runner], so a
// document produces the same output and hits the same cache entries whatever
// the entry point.
//
// # Stages
//
//  1. Decode: read a JSON or TOML document and build its content tree
//  2. Layout: lay the tree out in the document's spaces
//  3. Render: turn the resulting boxes into dump, JSON, SVG, PDF or PNG
//
// The layout and the rendered artifact are cached separately, keyed by the
// document hash and by the layout hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, err := pipeline.DecodeFile(ctx, "letter.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Format: "svg"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifact)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackbox/pkg/cache"
	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the width of the fallback page in points (A4).
	DefaultWidth = 595.0

	// DefaultHeight is the height of the fallback page in points (A4).
	DefaultHeight = 842.0

	// DefaultScale is the PNG raster scale.
	DefaultScale = 2.0

	// DefaultFormat is the default output format.
	DefaultFormat = FormatDump
)

// Format constants for output formats.
const (
	FormatDump = "dump"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists the supported output formats.
var Formats = []string{FormatDump, FormatJSON, FormatSVG, FormatPDF, FormatPNG}

// ContentType returns the MIME type of an output format.
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Layout options
	Width  float64 `json:"width,omitempty"`  // fallback page width when the document has no spaces
	Height float64 `json:"height,omitempty"` // fallback page height
	Fresh  bool    `json:"fresh,omitempty"`  // ignore cached entries

	// Render options
	Format     string  `json:"format,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	NoDebug    bool    `json:"no_debug,omitempty"`
	Horizontal bool    `json:"horizontal,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if err := errors.ValidatePageSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := errors.ValidateFormat(o.Format, Formats...); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale cannot be negative (got %g)", o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Page returns the fallback page size.
func (o *Options) Page() size.Size2D {
	return size.New2D(size.Size(o.Width), size.Size(o.Height))
}

// LayoutKeyOpts returns cache key options for a layout pass.
func (o *Options) LayoutKeyOpts(fonts []string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:  o.Width,
		Height: o.Height,
		Fonts:  fonts,
	}
}

// ArtifactKeyOpts returns cache key options for rendering. Settings that do
// not affect the chosen format are left out so they do not split the cache.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: o.Format}
	switch o.Format {
	case FormatSVG, FormatPDF, FormatPNG:
		opts.NoDebug = o.NoDebug
		opts.Horizontal = o.Horizontal
	}
	if o.Format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// PassID identifies the run in logs and JSON output.
	PassID string

	// DocHash is the content hash of the document.
	DocHash string

	// Root is the document's content tree.
	Root content.Node

	// Layout holds one box per used space.
	Layout layout.MultiLayout

	// Artifact is the rendered output in Options.Format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Nodes      int
	Pages      int
	Actions    int
	BuildTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether the artifact came from cache
}
