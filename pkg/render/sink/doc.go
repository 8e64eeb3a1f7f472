// Package sink writes a [layout.MultiLayout] in the supported output formats.
//
//   - [Dump]: the line based text form, one action per line
//   - [JSON]: pages and actions as JSON, readable with [ReadJSON]
//   - [SVG]: a debug view with page frames, box outlines and text runs
//
// [layout.MultiLayout]: github.com/matzehuels/stackbox/pkg/layout.MultiLayout
package sink
