package size

import (
	"fmt"
	"math"
)

// Points per unit.
const (
	ptPerIn = 72.0
	ptPerCm = 72.0 / 2.54
	ptPerMm = 72.0 / 25.4
)

// Size is a length in typographic points.
type Size float64

// Tolerance absorbs the rounding error of unit conversions when sizes are
// compared for fit. Lengths closer than this are treated as equal.
const Tolerance Size = 1e-9

// Exceeds reports whether s is larger than limit by more than [Tolerance].
func (s Size) Exceeds(limit Size) bool { return s > limit+Tolerance }

// Pt returns a size of v points.
func Pt(v float64) Size { return Size(v) }

// Mm returns a size of v millimeters.
func Mm(v float64) Size { return Size(v * ptPerMm) }

// Cm returns a size of v centimeters.
func Cm(v float64) Size { return Size(v * ptPerCm) }

// In returns a size of v inches.
func In(v float64) Size { return Size(v * ptPerIn) }

// ToPt returns the size in points.
func (s Size) ToPt() float64 { return float64(s) }

// ToMm returns the size in millimeters.
func (s Size) ToMm() float64 { return float64(s) / ptPerMm }

// ToCm returns the size in centimeters.
func (s Size) ToCm() float64 { return float64(s) / ptPerCm }

// ToIn returns the size in inches.
func (s Size) ToIn() float64 { return float64(s) / ptPerIn }

// String formats the size in points.
func (s Size) String() string { return fmt.Sprintf("%gpt", float64(s)) }

// Max returns the larger of a and b.
func Max(a, b Size) Size { return Size(math.Max(float64(a), float64(b))) }

// Min returns the smaller of a and b.
func Min(a, b Size) Size { return Size(math.Min(float64(a), float64(b))) }

// Size2D is a pair of sizes.
type Size2D struct {
	X, Y Size
}

// New2D returns the pair (x, y).
func New2D(x, y Size) Size2D { return Size2D{X: x, Y: y} }

// WithX returns (x, 0).
func WithX(x Size) Size2D { return Size2D{X: x} }

// WithY returns (0, y).
func WithY(y Size) Size2D { return Size2D{Y: y} }

// Add returns s + o.
func (s Size2D) Add(o Size2D) Size2D { return Size2D{X: s.X + o.X, Y: s.Y + o.Y} }

// Sub returns s - o.
func (s Size2D) Sub(o Size2D) Size2D { return Size2D{X: s.X - o.X, Y: s.Y - o.Y} }

// Neg returns -s.
func (s Size2D) Neg() Size2D { return Size2D{X: -s.X, Y: -s.Y} }

// Scale multiplies both components by f.
func (s Size2D) Scale(f float64) Size2D {
	return Size2D{X: Size(float64(s.X) * f), Y: Size(float64(s.Y) * f)}
}

// Swap returns (y, x).
func (s Size2D) Swap() Size2D { return Size2D{X: s.Y, Y: s.X} }

// Fits reports whether o fits into s on both axes. Equality, up to
// [Tolerance], fits.
func (s Size2D) Fits(o Size2D) bool { return !o.X.Exceeds(s.X) && !o.Y.Exceeds(s.Y) }

// IsZero reports whether both components are zero.
func (s Size2D) IsZero() bool { return s.X == 0 && s.Y == 0 }

// Padded grows s by the padding on every side.
func (s Size2D) Padded(p SizeBox) Size2D {
	return Size2D{X: s.X + p.Left + p.Right, Y: s.Y + p.Top + p.Bottom}
}

// Unpadded shrinks s by the padding on every side.
func (s Size2D) Unpadded(p SizeBox) Size2D {
	return Size2D{X: s.X - p.Left - p.Right, Y: s.Y - p.Top - p.Bottom}
}

// String formats the pair as "[x, y]".
func (s Size2D) String() string { return fmt.Sprintf("[%s, %s]", s.X, s.Y) }

// SizeBox is a four-sided inset.
type SizeBox struct {
	Left, Top, Right, Bottom Size
}

// Zero returns a box with no inset.
func Zero() SizeBox { return SizeBox{} }

// Uniform returns a box with the same inset on all sides.
func Uniform(v Size) SizeBox { return SizeBox{Left: v, Top: v, Right: v, Bottom: v} }

// String formats the box as "[left, top, right, bottom]".
func (b SizeBox) String() string {
	return fmt.Sprintf("[%s, %s, %s, %s]", b.Left, b.Top, b.Right, b.Bottom)
}
