package pipeline

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/observability"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout lays root out in lctx. Layout errors are returned with the
// matching error code so surfaces can report them without knowing the
// layout package.
func GenerateLayout(ctx context.Context, root content.Node, lctx layout.Context, passID string) (layout.MultiLayout, error) {
	if err := ctx.Err(); err != nil {
		return layout.MultiLayout{}, errors.Wrap(errors.ErrCodeTimeout, err, "layout cancelled")
	}

	done := observability.TraceLayout(ctx, passID, len(lctx.Spaces))
	ml, err := content.Layout(lctx, root)
	err = classifyLayoutError(err)
	done(ml.Len(), err)
	if err != nil {
		return layout.MultiLayout{}, err
	}
	return ml, nil
}

// classifyLayoutError attaches an error code to a layout failure.
func classifyLayoutError(err error) error {
	if err == nil {
		return nil
	}
	var le *layout.Error
	if stderrors.As(err, &le) {
		switch le.Kind {
		case layout.KindNotEnoughSpace:
			return errors.Wrap(errors.ErrCodeNotEnoughSpace, err, "layout")
		case layout.KindNoSuitableFont:
			return errors.Wrap(errors.ErrCodeNoSuitableFont, err, "layout")
		case layout.KindFont:
			return errors.Wrap(errors.ErrCodeFont, err, "layout")
		}
	}
	if stderrors.Is(err, layout.ErrNoSpaces) {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "layout")
	}
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "layout")
}
