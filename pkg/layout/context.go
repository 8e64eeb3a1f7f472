package layout

import (
	"github.com/matzehuels/stackbox/pkg/fonts"
)

// Context is the environment handed to a layouter for one layout pass.
// It is passed by value; derived contexts never share the Spaces slice.
type Context struct {
	// Loader resolves fonts for text. It is shared and read-only.
	Loader *fonts.Loader

	// Style is the active text style.
	Style fonts.TextStyle

	// Spaces are the regions to lay out in.
	Spaces Spaces

	// Axes are the flow directions.
	Axes Axes
}

// WithSpaces returns a copy of ctx laying out in spaces.
func (ctx Context) WithSpaces(spaces Spaces) Context {
	ctx.Spaces = spaces.Clone()
	return ctx
}

// WithAxes returns a copy of ctx flowing along axes.
func (ctx Context) WithAxes(axes Axes) Context {
	ctx.Axes = axes
	return ctx
}

// Stack derives the narrower context a stack layouter needs.
func (ctx Context) Stack() StackContext {
	return StackContext{
		Spaces: ctx.Spaces.Clone(),
		Axes:   ctx.Axes,
	}
}
