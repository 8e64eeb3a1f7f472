package content

import (
	"errors"
	"strings"

	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

// Text is a single line of text. It is measured glyph by glyph with the
// context's font loader; there is no shaping and no line breaking.
type Text struct {
	Body string
	// Classes override the context style's font classes when set.
	Classes []fonts.Class
	// FontSize overrides the context style's font size when non-zero.
	FontSize size.Size
}

// Layout measures the text as a single line in the context style.
func (t Text) Layout(ctx layout.Context) (layout.MultiLayout, error) {
	if ctx.Loader == nil {
		return layout.MultiLayout{}, layout.FontError(errors.New("no font loader in context"))
	}

	style := ctx.Style
	if len(t.Classes) > 0 {
		style.Classes = t.Classes
	}
	if t.FontSize > 0 {
		style.FontSize = t.FontSize
	}

	actions := layout.NewActionList()
	var (
		x        size.Size
		runStart size.Size
		run      strings.Builder
		current  = -1
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		actions.Add(layout.MoveAbsolute{Pos: size.WithX(runStart)})
		actions.Add(layout.SetFont{Index: current, Size: style.FontSize})
		actions.Add(layout.WriteText{Text: run.String()})
		run.Reset()
	}

	for _, r := range t.Body {
		idx, err := ctx.Loader.Query(r, style.Classes...)
		if err != nil {
			if errors.Is(err, fonts.ErrNoGlyph) {
				return layout.MultiLayout{}, layout.NoSuitableFont(r)
			}
			return layout.MultiLayout{}, layout.FontError(err)
		}
		if idx != current {
			flush()
			current = idx
			runStart = x
		}
		adv, err := ctx.Loader.Advance(idx, r, style.FontSize)
		if err != nil {
			return layout.MultiLayout{}, layout.FontError(err)
		}
		run.WriteRune(r)
		x += adv
	}
	flush()

	var m layout.MultiLayout
	m.Add(layout.Layout{
		Dimensions: size.New2D(x, style.LineHeight()),
		Actions:    actions.Actions(),
	})
	return m, nil
}
