package layout

import (
	"fmt"
	"io"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Action is one positioned drawing instruction inside a [Layout].
type Action interface {
	// Serialize writes the action as a single line without a trailing newline.
	Serialize(w io.Writer) error

	// Translate returns the action moved by offset. Actions without a
	// position return themselves.
	Translate(offset size.Size2D) Action
}

// MoveAbsolute moves the text cursor to Pos.
type MoveAbsolute struct {
	Pos size.Size2D
}

// SetFont selects the font at Index in the loader, set at Size.
type SetFont struct {
	Index int
	Size  size.Size
}

// WriteText writes Text at the current cursor with the current font.
type WriteText struct {
	Text string
}

// DebugBox outlines a box for visual debugging.
type DebugBox struct {
	Pos  size.Size2D
	Size size.Size2D
}

// Serialize writes "m x y".
func (a MoveAbsolute) Serialize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "m %.4f %.4f", a.Pos.X.ToPt(), a.Pos.Y.ToPt())
	return err
}

// Serialize writes "f index size".
func (a SetFont) Serialize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "f %d %.4f", a.Index, a.Size.ToPt())
	return err
}

// Serialize writes "w text".
func (a WriteText) Serialize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "w %s", a.Text)
	return err
}

// Serialize writes "b x y width height".
func (a DebugBox) Serialize(w io.Writer) error {
	_, err := fmt.Fprintf(w, "b %.4f %.4f %.4f %.4f",
		a.Pos.X.ToPt(), a.Pos.Y.ToPt(), a.Size.X.ToPt(), a.Size.Y.ToPt())
	return err
}

// Translate moves the target position by offset.
func (a MoveAbsolute) Translate(offset size.Size2D) Action {
	return MoveAbsolute{Pos: a.Pos.Add(offset)}
}

// Translate returns a unchanged.
func (a SetFont) Translate(size.Size2D) Action { return a }

// Translate returns a unchanged.
func (a WriteText) Translate(size.Size2D) Action { return a }

// Translate moves the outline by offset.
func (a DebugBox) Translate(offset size.Size2D) Action {
	return DebugBox{Pos: a.Pos.Add(offset), Size: a.Size}
}

// ActionList builds an action sequence. Cursor moves and font changes are
// deferred until text is written, so redundant ones are dropped.
type ActionList struct {
	origin     size.Size2D
	actions    []Action
	activeFont *SetFont
	nextPos    *size.Size2D
	nextFont   *SetFont
}

// NewActionList returns an empty list.
func NewActionList() *ActionList {
	return &ActionList{}
}

// Add appends an action, translated by the current origin.
func (l *ActionList) Add(a Action) {
	switch a := a.(type) {
	case MoveAbsolute:
		pos := a.Pos.Add(l.origin)
		l.nextPos = &pos
	case SetFont:
		l.nextFont = &a
	case WriteText:
		l.flush()
		l.actions = append(l.actions, a)
	default:
		l.actions = append(l.actions, a.Translate(l.origin))
	}
}

// AddAll appends every action in order.
func (l *ActionList) AddAll(actions []Action) {
	for _, a := range actions {
		l.Add(a)
	}
}

// AddLayout embeds a finished box at position. A debug outline is emitted
// first when the box asks for it.
func (l *ActionList) AddLayout(position size.Size2D, layout Layout) {
	l.origin = position
	if layout.DebugRender {
		l.actions = append(l.actions, DebugBox{Pos: position, Size: layout.Dimensions})
	}
	l.AddAll(layout.Actions)
}

// Len returns the number of actions emitted so far.
func (l *ActionList) Len() int {
	return len(l.actions)
}

// Actions returns the built sequence.
func (l *ActionList) Actions() []Action {
	return l.actions
}

func (l *ActionList) flush() {
	if l.nextPos != nil {
		l.actions = append(l.actions, MoveAbsolute{Pos: *l.nextPos})
		l.nextPos = nil
	}
	if l.nextFont != nil {
		if l.activeFont == nil || *l.activeFont != *l.nextFont {
			l.actions = append(l.actions, *l.nextFont)
			l.activeFont = l.nextFont
		}
		l.nextFont = nil
	}
}
