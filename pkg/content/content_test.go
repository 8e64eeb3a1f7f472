package content

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/stackbox/pkg/fonts"
	"github.com/matzehuels/stackbox/pkg/layout"
	"github.com/matzehuels/stackbox/pkg/size"
)

func testContext(t *testing.T, spaces ...layout.Space) layout.Context {
	t.Helper()
	loader := fonts.NewLoader()
	if err := loader.LoadDefault(); err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	return layout.Context{
		Loader: loader,
		Style:  fonts.DefaultTextStyle(),
		Spaces: spaces,
		Axes:   layout.DefaultAxes(),
	}
}

func page(w, h size.Size) layout.Space {
	return layout.Space{Dimensions: size.New2D(w, h)}
}

func outlines(l layout.Layout) []layout.DebugBox {
	var out []layout.DebugBox
	for _, a := range l.Actions {
		if b, ok := a.(layout.DebugBox); ok {
			out = append(out, b)
		}
	}
	return out
}

func outline(x, y, w, h size.Size) layout.DebugBox {
	return layout.DebugBox{Pos: size.New2D(x, y), Size: size.New2D(w, h)}
}

func TestLayoutRequiresSpaces(t *testing.T) {
	ctx := testContext(t)
	if _, err := Layout(ctx, Box{Width: 1, Height: 1}); !errors.Is(err, layout.ErrNoSpaces) {
		t.Errorf("Layout() error = %v, want ErrNoSpaces", err)
	}
	if _, err := Layout(testContext(t, page(10, 10)), nil); err == nil {
		t.Error("Layout(nil) should fail")
	}
}

func TestBox(t *testing.T) {
	out, err := Box{Width: 10, Height: 20, Debug: true}.Layout(testContext(t, page(1, 1)))
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	l, err := out.Single()
	if err != nil {
		t.Fatalf("Single() error: %v", err)
	}
	if l.Dimensions != size.New2D(10, 20) || !l.DebugRender || len(l.Actions) != 0 {
		t.Errorf("Box layout = %+v", l)
	}
}

func TestSpacingStandalone(t *testing.T) {
	ctx := testContext(t, page(10, 10))
	ctx.Axes = layout.MustAxes(
		layout.NewAlignedAxis(layout.TopToBottom, layout.Origin),
		layout.NewAlignedAxis(layout.LeftToRight, layout.Origin),
	)
	out, _ := Spacing{Amount: 5}.Layout(ctx)
	if got := out.Layouts[0].Dimensions; got != size.New2D(5, 0) {
		t.Errorf("Spacing dimensions = %v, want [5pt, 0pt]", got)
	}
}

func TestText(t *testing.T) {
	ctx := testContext(t, page(500, 500))
	out, err := Text{Body: "Hello"}.Layout(ctx)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	l, _ := out.Single()

	if l.Dimensions.X <= 0 {
		t.Errorf("width = %v, want > 0", l.Dimensions.X)
	}
	if want := ctx.Style.LineHeight(); l.Dimensions.Y != want {
		t.Errorf("height = %v, want %v", l.Dimensions.Y, want)
	}

	want := []layout.Action{
		layout.MoveAbsolute{Pos: size.New2D(0, 0)},
		layout.SetFont{Index: 0, Size: ctx.Style.FontSize},
		layout.WriteText{Text: "Hello"},
	}
	if !reflect.DeepEqual(l.Actions, want) {
		t.Errorf("Actions = %#v, want %#v", l.Actions, want)
	}
}

func TestTextOverrides(t *testing.T) {
	ctx := testContext(t, page(500, 500))
	regular, _ := Text{Body: "mmm"}.Layout(ctx)
	big, _ := Text{Body: "mmm", FontSize: 22}.Layout(ctx)
	ratio := float64(big.Layouts[0].Dimensions.X / regular.Layouts[0].Dimensions.X)
	if ratio < 1.99 || ratio > 2.01 {
		t.Errorf("22pt/11pt width ratio = %v, want 2", ratio)
	}

	mono, err := Text{Body: "x", Classes: []fonts.Class{fonts.Monospace}}.Layout(ctx)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	font, ok := mono.Layouts[0].Actions[1].(layout.SetFont)
	if !ok || font.Index != 2 {
		t.Errorf("monospace font action = %#v, want index 2", mono.Layouts[0].Actions[1])
	}
}

func TestTextErrors(t *testing.T) {
	ctx := testContext(t, page(500, 500))
	_, err := Text{Body: "a中"}.Layout(ctx)
	if !layout.Is(err, layout.KindNoSuitableFont) {
		t.Errorf("Layout() error = %v, want no suitable font", err)
	}
	if err != nil && !strings.Contains(err.Error(), "中") {
		t.Errorf("error %q does not name the character", err)
	}

	ctx.Loader = nil
	if _, err := (Text{Body: "a"}).Layout(ctx); !layout.Is(err, layout.KindFont) {
		t.Errorf("Layout() without loader error = %v, want font error", err)
	}
}

func TestStack(t *testing.T) {
	root := Stack{Children: []Node{
		Box{Width: 10, Height: 10, Debug: true},
		Spacing{Amount: 5},
		Box{Width: 20, Height: 10, Debug: true},
	}}

	out, err := Layout(testContext(t, page(100, 100)), root)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	l, err := out.Single()
	if err != nil {
		t.Fatalf("Single() error: %v", err)
	}
	want := []layout.DebugBox{outline(0, 0, 10, 10), outline(0, 15, 20, 10)}
	if got := outlines(l); !reflect.DeepEqual(got, want) {
		t.Errorf("outlines = %v, want %v", got, want)
	}
}

func TestStackOverflow(t *testing.T) {
	var children []Node
	for i := 0; i < 3; i++ {
		children = append(children, Box{Width: 50, Height: 6, Debug: true})
	}

	out, err := Layout(testContext(t, page(100, 10), page(100, 20)), Stack{Children: children})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("Layout() produced %d pages, want 2", out.Len())
	}
	if n := len(outlines(out.Layouts[1])); n != 2 {
		t.Errorf("second page has %d boxes, want 2", n)
	}
}

func TestStackNotEnoughSpace(t *testing.T) {
	root := Stack{Children: []Node{Box{Width: 200, Height: 1}}}
	_, err := Layout(testContext(t, page(100, 100)), root)
	if !layout.Is(err, layout.KindNotEnoughSpace) {
		t.Errorf("Layout() error = %v, want not enough space", err)
	}
}

func TestLayoutBareRoot(t *testing.T) {
	tests := []struct {
		name     string
		root     Node
		wantErr  bool
		wantDims []size.Size2D
	}{
		{"box fits", Box{Width: 30, Height: 40}, false, []size.Size2D{size.New2D(100, 50)}},
		{"box too tall", Box{Width: 30, Height: 80}, true, nil},
		{"box too wide", Box{Width: 101, Height: 1}, true, nil},
		{"repeated box too tall", Repeat{Body: Box{Width: 30, Height: 80}}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Layout(testContext(t, page(100, 50)), tt.root)
			if tt.wantErr {
				if !layout.Is(err, layout.KindNotEnoughSpace) {
					t.Errorf("Layout() error = %v, want not enough space", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout() error: %v", err)
			}
			if got := out.Dimensions(); !reflect.DeepEqual(got, tt.wantDims) {
				t.Errorf("Dimensions() = %v, want %v", got, tt.wantDims)
			}
		})
	}
}

func TestNestedStack(t *testing.T) {
	inner := Stack{Children: []Node{
		Box{Width: 10, Height: 10, Debug: true},
		Box{Width: 30, Height: 10, Debug: true},
	}}
	root := Stack{Children: []Node{
		Box{Width: 5, Height: 5, Debug: true},
		inner,
	}}

	out, err := Layout(testContext(t, page(100, 100)), root)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	want := []layout.DebugBox{
		outline(0, 0, 5, 5),
		outline(0, 5, 30, 20), // the inner stack shrinks to its content
		outline(0, 5, 10, 10),
		outline(0, 15, 30, 10),
	}
	if got := outlines(out.Layouts[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("outlines = %v, want %v", got, want)
	}
}

func TestStackShrinkAndAxes(t *testing.T) {
	axes := layout.MustAxes(
		layout.NewAlignedAxis(layout.TopToBottom, layout.Origin),
		layout.NewAlignedAxis(layout.LeftToRight, layout.Origin),
	)
	root := Stack{
		Axes:   &axes,
		Shrink: true,
		Children: []Node{
			Box{Width: 10, Height: 20},
			Box{Width: 15, Height: 30},
		},
	}
	out, err := Layout(testContext(t, page(100, 100)), root)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if got := out.Layouts[0].Dimensions; got != size.New2D(25, 30) {
		t.Errorf("Dimensions = %v, want [25pt, 30pt]", got)
	}
}

func TestRepeat(t *testing.T) {
	ctx := testContext(t, page(100, 100))
	body := Box{Width: 3, Height: 4}
	got, _ := Repeat{Body: body}.Layout(ctx)
	want, _ := body.Layout(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Repeat layout = %+v, want %+v", got, want)
	}
	if out, err := (Repeat{}).Layout(ctx); err != nil || !out.IsEmpty() {
		t.Errorf("empty Repeat = %+v, %v", out, err)
	}
}

func TestWalk(t *testing.T) {
	root := Stack{Children: []Node{
		Text{Body: "a"},
		Repeat{Body: Stack{Children: []Node{Box{}}}},
		Spacing{Amount: 1},
	}}

	var labels []string
	err := Walk(root, func(n Node, depth int) error {
		labels = append(labels, strings.Repeat("  ", depth)+Label(n))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	want := []string{
		"stack",
		`  text "a"`,
		"  repeat",
		"    stack",
		"      box 0pt x 0pt",
		"  space 1pt",
	}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Walk() visited %q, want %q", labels, want)
	}

	var count int
	_ = Walk(root, func(n Node, depth int) error {
		count++
		if _, ok := n.(Repeat); ok {
			return ErrSkipChildren
		}
		return nil
	})
	if count != 4 {
		t.Errorf("Walk() with skip visited %d nodes, want 4", count)
	}
}
