// Package document decodes layout documents from JSON or TOML.
//
// A document names the spaces to fill, the axes, a base text style, optional
// extra fonts and a content tree:
//
//	[[spaces]]
//	width = "210mm"
//	height = "297mm"
//	padding = "20mm"
//	repeat = 3
//
//	[axes]
//	primary = "ltr"
//	secondary = "ttb"
//
//	[content]
//	type = "stack"
//
//	[[content.children]]
//	type = "text"
//	text = "Hello"
//
// Lengths are either plain numbers (points) or strings with one of the units
// pt, mm, cm or in. [Document.Build] turns a decoded document into a
// [content.Node] and the [layout.Context] to lay it out in.
package document
