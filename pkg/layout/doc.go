// Package layout implements the box-layout core: the axis model, layout
// spaces, the finished-box types and the stack layouter.
//
// # Coordinates
//
// Layouters compute in generalized coordinates: X runs along the primary
// axis (the direction content flows within a line) and Y along the secondary
// axis (the direction lines follow each other). [Axes.Generalize] and
// [Axes.Specialize] convert between these and physical (x, y) coordinates, so
// one algorithm serves left-to-right, right-to-left, top-to-bottom and
// bottom-to-top flows.
//
// # Spaces
//
// A [Space] is one candidate region with padding and a sizing policy. A
// layouter receives an ordered list of them ([Spaces]); when content no
// longer fits the active space it finishes the current box and moves on to
// the next, with the last space acting as the final resort.
//
// # Output
//
// A finished box is a [Layout]: its dimensions plus an ordered list of
// positioned [Action] values. Layouters that may overflow return a
// [MultiLayout], one [Layout] per used space. Both serialize to a stable text
// dump for tooling and tests:
//
//	ml, err := stack.Finish()
//	if err != nil {
//	    return err
//	}
//	ml.Serialize(os.Stdout)
//
// # Stack layouting
//
// [StackLayouter] places boxes one after another along the secondary axis,
// aligns each along the primary axis and overflows into the next space when
// the active one is full.
package layout
