package layout

import (
	"github.com/matzehuels/stackbox/pkg/size"
)

// StackContext is the part of a [Context] the stack layouter needs.
type StackContext struct {
	Spaces Spaces
	Axes   Axes
}

// stackedBox is a box waiting to be positioned when the active space is
// finished.
type stackedBox struct {
	offset size.Size   // cursor on the secondary axis when the box was added
	anchor size.Size2D // the box's own generalized anchor
	layout Layout
}

// StackLayouter places boxes one after another along the secondary axis,
// each on its own line, and aligns them along the primary axis. When the
// active space is full it finishes the current box and continues in the next
// space.
//
// A StackLayouter is used by one caller for one layout pass. After Finish it
// rejects further input with [ErrFinished].
type StackLayouter struct {
	ctx     StackContext
	layouts MultiLayout
	boxes   []stackedBox

	// usable is the generalized usable size of the active space.
	usable size.Size2D
	// dimensions holds the maximum primary extent in X and the secondary
	// cursor in Y, both generalized.
	dimensions   size.Size2D
	activeSpace  int
	includeEmpty bool
	finished     bool
}

// NewStackLayouter creates a layouter over the spaces in ctx. The spaces are
// copied.
func NewStackLayouter(ctx StackContext) (*StackLayouter, error) {
	if len(ctx.Spaces) == 0 {
		return nil, ErrNoSpaces
	}
	if _, err := NewAxes(ctx.Axes.Primary, ctx.Axes.Secondary); err != nil {
		return nil, err
	}

	ctx.Spaces = ctx.Spaces.Clone()
	usable := ctx.Axes.Generalize(ctx.Spaces[0].Usable())
	return &StackLayouter{
		ctx:          ctx,
		usable:       usable,
		dimensions:   startDimensions(usable, ctx.Axes),
		includeEmpty: true,
	}, nil
}

// Context returns a copy of the layouter's context.
func (s *StackLayouter) Context() StackContext {
	return StackContext{Spaces: s.ctx.Spaces.Clone(), Axes: s.ctx.Axes}
}

// ActiveSpace returns the index of the space currently being filled.
func (s *StackLayouter) ActiveSpace() int {
	return s.activeSpace
}

// Add places a box after the last one. If it does not fit the active space,
// the current box is finished and the following spaces are tried in order.
// A box that fits no remaining space fails with a [KindNotEnoughSpace] error.
func (s *StackLayouter) Add(layout Layout) error {
	if s.finished {
		return ErrFinished
	}

	sz := s.ctx.Axes.Generalize(layout.Dimensions)
	newDimensions := s.sizeWith(sz)

	for !s.usable.Fits(newDimensions) {
		if s.activeSpace == len(s.ctx.Spaces)-1 {
			return NotEnoughSpace("box is too large for stack spaces")
		}
		if err := s.FinishLayout(); err != nil {
			return err
		}
		s.StartNewSpace(true)
		newDimensions = s.sizeWith(sz)
	}

	s.boxes = append(s.boxes, stackedBox{
		offset: s.dimensions.Y,
		anchor: s.ctx.Axes.Anchor(sz),
		layout: layout,
	})
	s.dimensions = newDimensions
	return nil
}

// AddMany adds every box of a multi-layout in order.
func (s *StackLayouter) AddMany(layouts MultiLayout) error {
	for _, l := range layouts.Layouts {
		if err := s.Add(l); err != nil {
			return err
		}
	}
	return nil
}

// AddSpace inserts a gap on the secondary axis after the last box. A gap that
// overflows the active space finishes it; the next space is only emitted if
// content is added to it afterwards.
func (s *StackLayouter) AddSpace(gap size.Size) error {
	if s.finished {
		return ErrFinished
	}

	if (s.dimensions.Y + gap).Exceeds(s.usable.Y) {
		if err := s.FinishLayout(); err != nil {
			return err
		}
		s.StartNewSpace(false)
		return nil
	}

	s.dimensions.Y += gap
	return nil
}

// FinishLayout positions the pending boxes and appends the resulting box for
// the active space. It does not advance to the next space.
func (s *StackLayouter) FinishLayout() error {
	if s.finished {
		return ErrFinished
	}

	space := s.ctx.Spaces[s.activeSpace]
	axes := s.ctx.Axes
	// Boxes are anchored in the area the finished box will report: the
	// content extent when shrinking, the whole usable area otherwise.
	area := s.usable
	if space.ShrinkToFit {
		area = s.dimensions
	}
	anchor := axes.Anchor(area)
	factor := axes.Secondary.Axis.Factor()
	start := space.Start()

	actions := NewActionList()
	for _, b := range s.boxes {
		offset := size.WithY(size.Size(float64(b.offset) * factor))
		general := anchor.Sub(b.anchor).Add(offset)
		actions.AddLayout(axes.Specialize(general).Add(start), b.layout)
	}
	s.boxes = s.boxes[:0]

	dimensions := space.Dimensions
	if space.ShrinkToFit {
		dimensions = axes.Specialize(s.dimensions).Padded(space.Padding)
	}

	s.layouts.Add(Layout{
		Dimensions:  dimensions,
		Actions:     actions.Actions(),
		DebugRender: true,
	})
	return nil
}

// StartNewSpace moves to the next space, staying on the last one when there
// is none left. With includeEmpty the new box is emitted by Finish even if
// nothing is added to it.
func (s *StackLayouter) StartNewSpace(includeEmpty bool) {
	s.activeSpace = min(s.activeSpace+1, len(s.ctx.Spaces)-1)
	s.usable = s.ctx.Axes.Generalize(s.ctx.Spaces[s.activeSpace].Usable())
	s.dimensions = startDimensions(s.usable, s.ctx.Axes)
	s.includeEmpty = includeEmpty
}

// Finish flushes pending boxes and returns every finished box. Calling it
// again returns an empty result.
func (s *StackLayouter) Finish() (MultiLayout, error) {
	if s.finished {
		return MultiLayout{}, nil
	}
	if s.includeEmpty || len(s.boxes) > 0 {
		if err := s.FinishLayout(); err != nil {
			return MultiLayout{}, err
		}
	}

	out := s.layouts
	s.layouts = MultiLayout{}
	s.boxes = nil
	s.includeEmpty = false
	s.finished = true
	return out, nil
}

// Remaining returns the physical space still free in the active space.
func (s *StackLayouter) Remaining() size.Size2D {
	return s.ctx.Axes.Specialize(size.New2D(s.usable.X, s.usable.Y-s.dimensions.Y))
}

// sizeWith returns the generalized size of the stacked boxes with other
// appended.
func (s *StackLayouter) sizeWith(other size.Size2D) size.Size2D {
	return size.Size2D{
		X: size.Max(s.dimensions.X, other.X),
		Y: s.dimensions.Y + other.Y,
	}
}

// startDimensions seeds the primary extent with the full line for center and
// end alignment so boxes are aligned across the whole usable width.
func startDimensions(usable size.Size2D, axes Axes) size.Size2D {
	switch axes.Primary.Alignment {
	case Center, End:
		return size.WithX(usable.X)
	default:
		return size.Size2D{}
	}
}
