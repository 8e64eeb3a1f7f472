package fonts

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackbox/pkg/size"
)

// Class is a property a font may carry, used to narrow font queries.
type Class string

// Known font classes.
const (
	Regular   Class = "regular"
	Bold      Class = "bold"
	Italic    Class = "italic"
	SansSerif Class = "sans-serif"
	Serif     Class = "serif"
	Monospace Class = "monospace"
)

// ParseClass validates a class name.
func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Regular, Bold, Italic, SansSerif, Serif, Monospace:
		return c, nil
	}
	return "", fmt.Errorf("unknown font class: %q", s)
}

// TextStyle carries the text settings active for a layout pass.
type TextStyle struct {
	// Classes narrow the font selection. Empty means any font.
	Classes []Class

	// FontSize is the em size used for text.
	FontSize size.Size

	// LineSpacing is the line height as a multiple of FontSize.
	LineSpacing float64

	// ParagraphSpacing is the gap between paragraphs as a multiple of FontSize.
	ParagraphSpacing float64
}

// DefaultTextStyle returns 11pt sans-serif text with 1.2 line spacing.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Classes:          []Class{SansSerif, Regular},
		FontSize:         size.Pt(11),
		LineSpacing:      1.2,
		ParagraphSpacing: 1.0,
	}
}

// LineHeight returns FontSize scaled by LineSpacing.
func (s TextStyle) LineHeight() size.Size {
	return size.Size(float64(s.FontSize) * s.LineSpacing)
}
