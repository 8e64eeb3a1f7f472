package content

import (
	"errors"
	"fmt"

	"github.com/matzehuels/stackbox/pkg/layout"
)

// ErrSkipChildren can be returned from a [WalkFunc] to skip a node's children.
var ErrSkipChildren = errors.New("skip children")

// Node is anything that can be laid out.
type Node interface {
	Layout(ctx layout.Context) (layout.MultiLayout, error)
}

// Layout lays out root in ctx. A root that does not place its own boxes
// into the spaces, such as a leaf, is laid out inside an implicit [Stack],
// so every box is checked against the spaces and lands on a page.
func Layout(ctx layout.Context, root Node) (layout.MultiLayout, error) {
	if root == nil {
		return layout.MultiLayout{}, errors.New("nil content node")
	}
	if len(ctx.Spaces) == 0 {
		return layout.MultiLayout{}, layout.ErrNoSpaces
	}
	if !stacks(root) {
		root = Stack{Children: []Node{root}}
	}
	return root.Layout(ctx)
}

// stacks reports whether n places its boxes through a stack layouter.
func stacks(n Node) bool {
	switch n := n.(type) {
	case Stack:
		return true
	case Repeat:
		return n.Body == nil || stacks(n.Body)
	default:
		return false
	}
}

// WalkFunc is called for every node visited by [Walk].
type WalkFunc func(n Node, depth int) error

// Walk visits root and its descendants depth-first, parents before children.
func Walk(root Node, fn WalkFunc) error {
	return walk(root, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range Children(n) {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the direct children of n.
func Children(n Node) []Node {
	switch n := n.(type) {
	case Stack:
		return n.Children
	case *Stack:
		return n.Children
	case Repeat:
		return bodyOf(n.Body)
	case *Repeat:
		return bodyOf(n.Body)
	}
	return nil
}

func bodyOf(n Node) []Node {
	if n == nil {
		return nil
	}
	return []Node{n}
}

// Label returns a short human readable description of n.
func Label(n Node) string {
	switch n := n.(type) {
	case Box:
		return fmt.Sprintf("box %s x %s", n.Width, n.Height)
	case Text:
		return fmt.Sprintf("text %q", truncate(n.Body, 24))
	case Spacing:
		return fmt.Sprintf("space %s", n.Amount)
	case Stack:
		return stackLabel(&n)
	case *Stack:
		return stackLabel(n)
	case Repeat, *Repeat:
		return "repeat"
	}
	return fmt.Sprintf("%T", n)
}

func stackLabel(s *Stack) string {
	if s.Axes != nil {
		return fmt.Sprintf("stack (%s)", s.Axes)
	}
	return "stack"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
