package pipeline

import (
	"context"

	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/observability"
	"github.com/matzehuels/stackbox/pkg/render"
	"github.com/matzehuels/stackbox/pkg/render/sink"
)

// =============================================================================
// Rendering
// =============================================================================

// RenderFromLayout renders ml in opts.Format. The loader names the fonts
// referenced by SetFont actions and may be nil.
func RenderFromLayout(ctx context.Context, ml layout.MultiLayout, loader *fonts.Loader, passID string, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	done := observability.TraceRender(ctx, opts.Format)
	data, err := renderFormat(ctx, ml, loader, passID, opts)
	done(len(data), err)
	return data, err
}

func renderFormat(ctx context.Context, ml layout.MultiLayout, loader *fonts.Loader, passID string, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatDump:
		return sink.Dump(ml)
	case FormatJSON:
		return sink.JSON(ml, sink.WithJSONFonts(loader), sink.WithJSONPassID(passID), sink.WithJSONIndent())
	case FormatSVG:
		return sink.SVG(ml, svgOptions(loader, opts)...), nil
	case FormatPDF:
		return convert(render.ToPDF(ctx, sink.SVG(ml, svgOptions(loader, opts)...)))
	case FormatPNG:
		return convert(render.ToPNG(ctx, sink.SVG(ml, svgOptions(loader, opts)...), opts.Scale))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", opts.Format)
	}
}

func svgOptions(loader *fonts.Loader, opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if loader != nil {
		svgOpts = append(svgOpts, sink.WithFonts(loader))
	}
	if opts.Horizontal {
		svgOpts = append(svgOpts, sink.WithHorizontal())
	}
	if opts.NoDebug {
		svgOpts = append(svgOpts, sink.WithoutDebugBoxes())
	}
	return svgOpts
}

// convert reports a missing rsvg-convert as unsupported instead of internal.
func convert(data []byte, err error) ([]byte, error) {
	if err == nil {
		return data, nil
	}
	if !render.Available() {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "rsvg-convert is not installed")
	}
	return nil, errors.Wrap(errors.ErrCodeInternal, err, "convert svg")
}
