package document

import (
	"fmt"
	"path/filepath"

	"github.com/matzehuels/stackbox/pkg/content"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

// MaxRepeat bounds the repeat count of a single space entry.
const MaxRepeat = 1000

// BuildConfig supplies what a document does not carry itself.
type BuildConfig struct {
	// Loader receives the document's extra fonts and is placed in the
	// returned context.
	Loader *fonts.Loader

	// Page is the space used when the document lists none.
	Page size.Size2D
}

// Build validates the document and returns its content tree together with
// the context to lay it out in.
func (d *Document) Build(cfg BuildConfig) (content.Node, layout.Context, error) {
	spaces, err := d.buildSpaces(cfg.Page)
	if err != nil {
		return nil, layout.Context{}, err
	}

	axes, err := d.Axes.build()
	if err != nil {
		return nil, layout.Context{}, err
	}

	style, err := d.Style.build()
	if err != nil {
		return nil, layout.Context{}, err
	}

	if err := d.loadFonts(cfg.Loader); err != nil {
		return nil, layout.Context{}, err
	}

	root, err := d.Content.build("content")
	if err != nil {
		return nil, layout.Context{}, err
	}

	ctx := layout.Context{
		Loader: cfg.Loader,
		Style:  style,
		Spaces: spaces,
		Axes:   axes,
	}
	return root, ctx, nil
}

func (d *Document) buildSpaces(page size.Size2D) (layout.Spaces, error) {
	if len(d.Spaces) == 0 {
		if err := errors.ValidatePageSize(page.X.ToPt(), page.Y.ToPt()); err != nil {
			return nil, err
		}
		return layout.Spaces{{Dimensions: page}}, nil
	}

	var spaces layout.Spaces
	for i, s := range d.Spaces {
		if err := errors.ValidatePageSize(s.Width.Size().ToPt(), s.Height.Size().ToPt()); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "spaces[%d]", i)
		}
		sp := layout.Space{
			Dimensions:  size.New2D(s.Width.Size(), s.Height.Size()),
			Padding:     s.Padding.Box(),
			ShrinkToFit: s.Shrink,
		}
		usable := sp.Usable()
		if usable.X < 0 || usable.Y < 0 {
			return nil, errors.New(errors.ErrCodeInvalidLength, "spaces[%d]: padding exceeds dimensions", i)
		}

		n := s.Repeat
		if n < 0 || n > MaxRepeat {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "spaces[%d]: repeat must be between 0 and %d", i, MaxRepeat)
		}
		for range max(n, 1) {
			spaces = append(spaces, sp)
		}
	}
	return spaces, nil
}

func (a AxesSpec) build() (layout.Axes, error) {
	def := layout.DefaultAxes()
	primary, err := parseAligned(a.Primary, a.PrimaryAlign, def.Primary)
	if err != nil {
		return layout.Axes{}, err
	}
	secondary, err := parseAligned(a.Secondary, a.SecondaryAlign, def.Secondary)
	if err != nil {
		return layout.Axes{}, err
	}
	axes, err := layout.NewAxes(primary, secondary)
	if err != nil {
		return layout.Axes{}, errors.Wrap(errors.ErrCodeInvalidAxes, err, "axes %s and %s", primary, secondary)
	}
	return axes, nil
}

func parseAligned(axis, align string, def layout.AlignedAxis) (layout.AlignedAxis, error) {
	out := def
	if axis != "" {
		a, err := layout.ParseAxis(axis)
		if err != nil {
			return out, errors.Wrap(errors.ErrCodeInvalidAxes, err, "axis")
		}
		out.Axis = a
	}
	if align != "" {
		al, err := layout.ParseAlignment(align)
		if err != nil {
			return out, errors.Wrap(errors.ErrCodeInvalidAxes, err, "alignment")
		}
		out.Alignment = al
	}
	return out, nil
}

func (s StyleSpec) build() (fonts.TextStyle, error) {
	style := fonts.DefaultTextStyle()
	if s.FontSize != 0 {
		if err := errors.ValidateLength("font_size", s.FontSize.Size().ToPt()); err != nil {
			return style, err
		}
		style.FontSize = s.FontSize.Size()
	}
	if s.LineSpacing != 0 {
		if s.LineSpacing < 0 {
			return style, errors.New(errors.ErrCodeInvalidStyle, "line_spacing cannot be negative")
		}
		style.LineSpacing = s.LineSpacing
	}
	if len(s.Classes) > 0 {
		classes, err := parseClasses(s.Classes)
		if err != nil {
			return style, err
		}
		style.Classes = classes
	}
	return style, nil
}

func parseClasses(names []string) ([]fonts.Class, error) {
	classes := make([]fonts.Class, 0, len(names))
	for _, n := range names {
		c, err := fonts.ParseClass(n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "font class")
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func (d *Document) loadFonts(loader *fonts.Loader) error {
	if len(d.Fonts) == 0 {
		return nil
	}
	if loader == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "document lists fonts but no loader was given")
	}
	if d.dir == "" {
		return errors.New(errors.ErrCodeUnsupported, "font files are only supported for documents read from disk")
	}
	for _, f := range d.Fonts {
		if err := errors.ValidatePath(f.Path); err != nil {
			return err
		}
		classes, err := parseClasses(f.Classes)
		if err != nil {
			return err
		}
		if _, err := loader.LoadFile(filepath.Join(d.dir, f.Path), classes...); err != nil {
			return errors.Wrap(errors.ErrCodeFont, layout.FontError(err), "load %s", f.Path)
		}
	}
	return nil
}

func (n NodeSpec) build(path string) (content.Node, error) {
	switch n.Type {
	case "box":
		if err := validateLengths(path, map[string]Length{"width": n.Width, "height": n.Height}); err != nil {
			return nil, err
		}
		return content.Box{Width: n.Width.Size(), Height: n.Height.Size(), Debug: n.Debug}, nil

	case "text":
		if err := validateLengths(path, map[string]Length{"size": n.Size}); err != nil {
			return nil, err
		}
		var classes []fonts.Class
		if len(n.Classes) > 0 {
			var err error
			if classes, err = parseClasses(n.Classes); err != nil {
				return nil, err
			}
		}
		return content.Text{Body: n.Text, Classes: classes, FontSize: n.Size.Size()}, nil

	case "space":
		if err := validateLengths(path, map[string]Length{"amount": n.Amount}); err != nil {
			return nil, err
		}
		return content.Spacing{Amount: n.Amount.Size()}, nil

	case "stack":
		stack := content.Stack{Shrink: n.Shrink}
		if n.Axes != nil && !n.Axes.isZero() {
			axes, err := n.Axes.build()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidAxes, err, "%s", path)
			}
			stack.Axes = &axes
		}
		for i, c := range n.Children {
			child, err := c.build(childPath(path, "children", i))
			if err != nil {
				return nil, err
			}
			stack.Children = append(stack.Children, child)
		}
		return stack, nil

	case "repeat":
		if n.Body == nil {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: repeat needs a body", path)
		}
		body, err := n.Body.build(path + ".body")
		if err != nil {
			return nil, err
		}
		return content.Repeat{Body: body}, nil

	case "":
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: missing node type", path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown node type %q", path, n.Type)
	}
}

func validateLengths(path string, lengths map[string]Length) error {
	for name, l := range lengths {
		if err := errors.ValidateLength(path+"."+name, l.Size().ToPt()); err != nil {
			return err
		}
	}
	return nil
}

func childPath(parent, field string, i int) string {
	return fmt.Sprintf("%s.%s[%d]", parent, field, i)
}
