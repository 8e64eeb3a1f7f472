package content

import (
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

// Box is a fixed-size leaf without content.
type Box struct {
	Width  size.Size
	Height size.Size
	// Debug asks for an outline around the box.
	Debug bool
}

// Layout returns one box of the configured size without actions.
func (b Box) Layout(layout.Context) (layout.MultiLayout, error) {
	var m layout.MultiLayout
	m.Add(layout.Layout{
		Dimensions:  size.New2D(b.Width, b.Height),
		DebugRender: b.Debug,
	})
	return m, nil
}

// Spacing is a gap along the stacking direction. Inside a [Stack] it becomes
// a layouter gap; on its own it lays out as an empty box of that extent.
type Spacing struct {
	Amount size.Size
}

// Layout returns an empty box that is Amount long on the secondary axis.
func (s Spacing) Layout(ctx layout.Context) (layout.MultiLayout, error) {
	var m layout.MultiLayout
	m.Add(layout.Layout{Dimensions: ctx.Axes.Specialize(size.WithY(s.Amount))})
	return m, nil
}

// Repeat wraps a body and lays it out unchanged.
type Repeat struct {
	Body Node
}

// Layout lays out the body in ctx unchanged.
func (r Repeat) Layout(ctx layout.Context) (layout.MultiLayout, error) {
	if r.Body == nil {
		return layout.MultiLayout{}, nil
	}
	return r.Body.Layout(ctx)
}
