package layout

import (
	"slices"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Space is one candidate region to lay content out in.
type Space struct {
	// Dimensions is the outer size of the region.
	Dimensions size.Size2D

	// Padding is respected on each side.
	Padding size.SizeBox

	// ShrinkToFit makes a finished box hug its content instead of reporting
	// the full Dimensions.
	ShrinkToFit bool
}

// Usable returns the dimensions minus padding.
func (s Space) Usable() size.Size2D {
	return s.Dimensions.Unpadded(s.Padding)
}

// Start returns the offset of the padded content origin.
func (s Space) Start() size.Size2D {
	return size.New2D(s.Padding.Left, s.Padding.Top)
}

// UsableSpace returns a padding-free space the size of the usable area,
// for recursing into a padded region.
func (s Space) UsableSpace(shrinkToFit bool) Space {
	return Space{
		Dimensions:  s.Usable(),
		ShrinkToFit: shrinkToFit,
	}
}

// Spaces is an ordered list of overflow targets; the last one is the final
// resort.
type Spaces []Space

// Clone returns an independent copy.
func (s Spaces) Clone() Spaces {
	return slices.Clone(s)
}
