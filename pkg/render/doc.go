// Package render turns algorithm scenes into something a person can look at.
//
// # Overview
//
// Engines in [bst] and [trail] report their state as a step.Scene. The
// subpackages draw those scenes:
//
//   - [text]: coloured character frames for the terminal player
//   - [dot]: Graphviz DOT source and SVG snapshots
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := dot.RenderSVG(ctx, src)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2)  // 2x scale
//
// [bst]: github.com/matzehuels/algoviz/pkg/bst
// [trail]: github.com/matzehuels/algoviz/pkg/trail
// [text]: github.com/matzehuels/algoviz/pkg/render/text
// [dot]: github.com/matzehuels/algoviz/pkg/render/dot
package render
