package layout

import (
	"fmt"
	"io"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Layout is one finished box.
type Layout struct {
	// Dimensions is the final physical size of the box.
	Dimensions size.Size2D

	// Actions position the box's content, relative to its top-left corner.
	Actions []Action

	// DebugRender asks renderers to outline the box.
	DebugRender bool
}

// Empty returns a box of the given size without content.
func Empty(width, height size.Size) Layout {
	return Layout{
		Dimensions:  size.New2D(width, height),
		DebugRender: true,
	}
}

// Serialize writes the box as text: the dimensions in points with four
// decimals, the action count, then one action per line.
func (l Layout) Serialize(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%.4f %.4f\n", l.Dimensions.X.ToPt(), l.Dimensions.Y.ToPt()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%d\n", len(l.Actions)); err != nil {
		return err
	}
	for _, a := range l.Actions {
		if err := a.Serialize(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// MultiLayout is the ordered result of a layouter that may span several
// spaces, one box per used space.
type MultiLayout struct {
	Layouts []Layout
}

// Add appends a box.
func (m *MultiLayout) Add(l Layout) {
	m.Layouts = append(m.Layouts, l)
}

// Len returns the number of boxes.
func (m MultiLayout) Len() int {
	return len(m.Layouts)
}

// IsEmpty reports whether there are no boxes.
func (m MultiLayout) IsEmpty() bool {
	return len(m.Layouts) == 0
}

// Single returns the only box. It fails with [ErrNotSingle] unless there is
// exactly one.
func (m MultiLayout) Single() (Layout, error) {
	if len(m.Layouts) != 1 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrNotSingle, len(m.Layouts))
	}
	return m.Layouts[0], nil
}

// Dimensions returns the size of every box in order.
func (m MultiLayout) Dimensions() []size.Size2D {
	dims := make([]size.Size2D, len(m.Layouts))
	for i, l := range m.Layouts {
		dims[i] = l.Dimensions
	}
	return dims
}

// ActionCount returns the total number of actions over all boxes.
func (m MultiLayout) ActionCount() int {
	n := 0
	for _, l := range m.Layouts {
		n += len(l.Actions)
	}
	return n
}

// Serialize writes the box count followed by each box's dump.
func (m MultiLayout) Serialize(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(m.Layouts)); err != nil {
		return err
	}
	for _, l := range m.Layouts {
		if err := l.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}
