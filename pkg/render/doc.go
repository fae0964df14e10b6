// Package render draws a preview of the placement surface.
//
// # Overview
//
// The surface is laid out as Graphviz DOT: every grid row becomes a
// rank=same subgraph, slots are fixed-size boxes whose width is proportional
// to their column span, and invisible edges keep slots in rank order.
//
//	dot := render.ToDOT(l.Surface(), render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// An empty surface renders as a single dashed placeholder box.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No external binaries are needed.
package render
