// Package size provides the scalar and vector length types used by the
// layout engine.
//
// All lengths are stored as typographic points (1/72 inch) in a float64.
// [Size2D] is a plain value pair; the layout package decides whether its
// components mean physical (x, y) or generalized (primary, secondary)
// coordinates.
//
//	page := size.New2D(size.Mm(210), size.Mm(297))
//	usable := page.Unpadded(size.Uniform(size.Cm(2)))
package size
