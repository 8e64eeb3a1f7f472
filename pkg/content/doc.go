// Package content defines the content tree that is laid out into boxes.
//
// Every node implements [Node]: given a [layout.Context] it produces a
// [layout.MultiLayout], one box per space it ended up using. Leaves measure
// themselves; composites such as [Stack] build a layouter from the ambient
// context, feed it the layouts of their children and return its result.
//
//	root := content.Stack{Children: []content.Node{
//		content.Text{Body: "Hello"},
//		content.Spacing{Amount: size.Pt(6)},
//		content.Box{Width: size.Pt(100), Height: size.Pt(40), Debug: true},
//	}}
//	pages, err := content.Layout(ctx, root)
package content
