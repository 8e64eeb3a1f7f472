package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/stackbox/pkg/size"
)

// ErrAxesNotOrthogonal is returned when both axes of an [Axes] are horizontal
// or both are vertical.
var ErrAxesNotOrthogonal = errors.New("primary and secondary axis must be orthogonal")

// Axis is a direction content can flow in.
type Axis uint8

const (
	LeftToRight Axis = iota
	RightToLeft
	TopToBottom
	BottomToTop
)

// IsHorizontal reports whether the axis runs along x.
func (a Axis) IsHorizontal() bool {
	switch a {
	case LeftToRight, RightToLeft:
		return true
	case TopToBottom, BottomToTop:
		return false
	}
	panic(fmt.Sprintf("layout: invalid axis %d", a))
}

// IsPositive reports whether the axis points toward increasing coordinates.
func (a Axis) IsPositive() bool {
	switch a {
	case LeftToRight, TopToBottom:
		return true
	case RightToLeft, BottomToTop:
		return false
	}
	panic(fmt.Sprintf("layout: invalid axis %d", a))
}

// Factor returns 1 for positive axes and -1 for negative ones.
func (a Axis) Factor() float64 {
	if a.IsPositive() {
		return 1
	}
	return -1
}

// String returns the short name used in documents ("ltr", "rtl", "ttb", "btt").
func (a Axis) String() string {
	switch a {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	case TopToBottom:
		return "ttb"
	case BottomToTop:
		return "btt"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis parses a short or long axis name.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr", "left-to-right":
		return LeftToRight, nil
	case "rtl", "right-to-left":
		return RightToLeft, nil
	case "ttb", "top-to-bottom":
		return TopToBottom, nil
	case "btt", "bottom-to-top":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("unknown axis: %q", s)
}

// Alignment positions content relative to an axis' direction, not to a
// physical side.
type Alignment uint8

const (
	Origin Alignment = iota
	Center
	End
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case Origin:
		return "origin"
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment parses an alignment name.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "origin", "start":
		return Origin, nil
	case "center":
		return Center, nil
	case "end":
		return End, nil
	}
	return 0, fmt.Errorf("unknown alignment: %q", s)
}

// AlignedAxis pairs an axis with an alignment.
type AlignedAxis struct {
	Axis      Axis
	Alignment Alignment
}

// NewAlignedAxis returns the pair (axis, alignment).
func NewAlignedAxis(axis Axis, alignment Alignment) AlignedAxis {
	return AlignedAxis{Axis: axis, Alignment: alignment}
}

// Anchor returns the offset on a line of the given length at which aligned
// content places its own origin, measured from the line's low-coordinate end.
func (a AlignedAxis) Anchor(line size.Size) size.Size {
	positive := a.Axis.IsPositive()
	switch {
	case a.Alignment == Center:
		return line / 2
	case positive && a.Alignment == Origin, !positive && a.Alignment == End:
		return 0
	default:
		return line
	}
}

// String formats the pair as "axis/alignment".
func (a AlignedAxis) String() string {
	return a.Axis.String() + "/" + a.Alignment.String()
}

// Axes is the primary/secondary axis configuration of a layouter.
type Axes struct {
	Primary   AlignedAxis
	Secondary AlignedAxis
}

// NewAxes validates that primary and secondary are orthogonal.
func NewAxes(primary, secondary AlignedAxis) (Axes, error) {
	if primary.Axis.IsHorizontal() == secondary.Axis.IsHorizontal() {
		return Axes{}, fmt.Errorf("%w: %s and %s", ErrAxesNotOrthogonal, primary.Axis, secondary.Axis)
	}
	return Axes{Primary: primary, Secondary: secondary}, nil
}

// MustAxes is like NewAxes but panics on invalid input.
func MustAxes(primary, secondary AlignedAxis) Axes {
	a, err := NewAxes(primary, secondary)
	if err != nil {
		panic(err)
	}
	return a
}

// DefaultAxes returns left-to-right lines stacked top-to-bottom, both
// aligned at their origin.
func DefaultAxes() Axes {
	return Axes{
		Primary:   AlignedAxis{Axis: LeftToRight, Alignment: Origin},
		Secondary: AlignedAxis{Axis: TopToBottom, Alignment: Origin},
	}
}

// Generalize maps a physical size into (primary, secondary) coordinates.
func (a Axes) Generalize(s size.Size2D) size.Size2D {
	if a.Primary.Axis.IsHorizontal() {
		return s
	}
	return s.Swap()
}

// Specialize maps a generalized size back to physical coordinates.
func (a Axes) Specialize(s size.Size2D) size.Size2D {
	if a.Primary.Axis.IsHorizontal() {
		return s
	}
	return s.Swap()
}

// Anchor combines the primary and secondary anchors for a generalized area.
func (a Axes) Anchor(area size.Size2D) size.Size2D {
	return size.New2D(a.Primary.Anchor(area.X), a.Secondary.Anchor(area.Y))
}

// String formats both axes.
func (a Axes) String() string {
	return a.Primary.String() + " " + a.Secondary.String()
}
