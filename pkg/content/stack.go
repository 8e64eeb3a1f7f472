package content

import (
	"fmt"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// Stack places its children one after another. Children that do not fit the
// active space continue in the following spaces of the context.
type Stack struct {
	Children []Node
	// Axes override the context's axes for this stack and its children.
	Axes *layout.Axes
	// Shrink makes every produced box as small as its content.
	Shrink bool
}

// Layout stacks the children in the spaces of ctx.
func (s Stack) Layout(ctx layout.Context) (layout.MultiLayout, error) {
	if s.Axes != nil {
		ctx = ctx.WithAxes(*s.Axes)
	}

	sc := ctx.Stack()
	if s.Shrink {
		for i := range sc.Spaces {
			sc.Spaces[i].ShrinkToFit = true
		}
	}

	stack, err := layout.NewStackLayouter(sc)
	if err != nil {
		return layout.MultiLayout{}, err
	}

	for i, child := range s.Children {
		if gap, ok := child.(Spacing); ok {
			if err := stack.AddSpace(gap.Amount); err != nil {
				return layout.MultiLayout{}, err
			}
			continue
		}

		out, err := child.Layout(ctx.WithSpaces(childSpaces(stack, sc.Spaces)))
		if err != nil {
			return layout.MultiLayout{}, err
		}
		if err := stack.AddMany(out); err != nil {
			return layout.MultiLayout{}, fmt.Errorf("stack child %d: %w", i, err)
		}
	}
	return stack.Finish()
}

// childSpaces offers a child what is left of the active space followed by
// the usable area of every later space. On the last space a fresh copy of it
// is offered too, since the layouter repeats the last space on overflow.
func childSpaces(stack *layout.StackLayouter, spaces layout.Spaces) layout.Spaces {
	active := stack.ActiveSpace()
	out := layout.Spaces{{Dimensions: stack.Remaining(), ShrinkToFit: true}}
	if active == len(spaces)-1 {
		return append(out, spaces[active].UsableSpace(true))
	}
	for _, sp := range spaces[active+1:] {
		out = append(out, sp.UsableSpace(true))
	}
	return out
}
