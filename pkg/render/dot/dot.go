// Package dot renders tree and graph scenes as Graphviz diagrams.
//
// # Usage
//
// Convert a scene to DOT, then render it to SVG:
//
//	src, err := dot.ToDOT(tree.Scene(), dot.Options{})
//	svg, err := dot.RenderSVG(ctx, src)
//
// Every node is pinned at the position computed by pkg/layout, so a snapshot
// matches what the terminal player shows. Highlight state is mapped to fill
// and pen colours; faded nodes get a translucent fill.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering with the neato engine. PDF and PNG conversion requires librsvg
// (rsvg-convert), see the parent render package.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/render"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// pointsPerInch converts layout units (pixels) to the inches neato expects.
const pointsPerInch = 72.0

// Options configures diagram generation.
type Options struct {
	// Layout positions the nodes. The zero value means layout.Default().
	Layout layout.Config

	// Title is drawn above the diagram when set.
	Title string
}

func (o Options) layout() layout.Config {
	if o.Layout == (layout.Config{}) {
		return layout.Default()
	}
	return o.Layout
}

// Palette entries, by highlight state.
const (
	colorDefault  = "#ffffff"
	colorPen      = "#333333"
	colorActive   = "#ffa500"
	colorFound    = "#2e8b57"
	colorDeleting = "#cd5c5c"
)

// ToDOT converts a scene to Graphviz DOT source. Scenes other than
// bst.Scene and trail.Scene are rejected.
func ToDOT(scene step.Scene, opts Options) (string, error) {
	switch s := scene.(type) {
	case bst.Scene:
		return treeDOT(s, opts), nil
	case trail.Scene:
		if s.Graph == nil {
			return "", errors.New(errors.ErrCodeInvalidInput, "graph scene has no graph")
		}
		return graphDOT(s, opts), nil
	case nil:
		return "", errors.New(errors.ErrCodeInvalidInput, "no scene")
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "cannot draw %q scene", scene.Kind())
}

func header(buf *bytes.Buffer, kind string, opts Options) {
	fmt.Fprintf(buf, "%s G {\n", kind)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  outputorder=\"edgesfirst\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, width=0.5, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	if opts.Title != "" {
		fmt.Fprintf(buf, "  label=%q;\n  labelloc=t;\n  fontsize=18;\n", opts.Title)
	}
	buf.WriteString("\n")
}

func pos(p layout.Point) string {
	// Graphviz y grows upwards.
	return fmt.Sprintf("%.2f,%.2f!", p.X/pointsPerInch, -p.Y/pointsPerInch)
}

// =============================================================================
// Trees
// =============================================================================

func treeDOT(s bst.Scene, opts Options) string {
	var buf bytes.Buffer
	header(&buf, "digraph", opts)
	buf.WriteString("  edge [arrowhead=none];\n\n")

	positions := layout.Tree(s.Root, opts.layout())

	var nodes func(n *bst.Node)
	nodes = func(n *bst.Node) {
		if n == nil {
			return
		}
		m := s.Mark(n)
		attrs := []string{
			fmt.Sprintf("label=%q", strconv.Itoa(n.Value)),
			fmt.Sprintf("pos=%q", pos(positions[n])),
			fmt.Sprintf("fillcolor=%q", withAlpha(treeFill(m.Outline), m.Opacity)),
			fmt.Sprintf("color=%q", treePen(m.Outline)),
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.Value, strings.Join(attrs, ", "))
		nodes(n.Left)
		nodes(n.Right)
	}
	nodes(s.Root)

	buf.WriteString("\n")
	var edges func(n *bst.Node)
	edges = func(n *bst.Node) {
		if n == nil {
			return
		}
		m := s.Mark(n)
		if n.Left != nil {
			fmt.Fprintf(&buf, "  n%d -> n%d [color=%q];\n", n.Value, n.Left.Value, treePen(m.Left))
		}
		if n.Right != nil {
			fmt.Fprintf(&buf, "  n%d -> n%d [color=%q];\n", n.Value, n.Right.Value, treePen(m.Right))
		}
		edges(n.Left)
		edges(n.Right)
	}
	edges(s.Root)

	buf.WriteString("}\n")
	return buf.String()
}

func treeFill(st bst.State) string {
	switch st {
	case bst.Active:
		return colorActive
	case bst.Found:
		return colorFound
	case bst.Deleting:
		return colorDeleting
	}
	return colorDefault
}

func treePen(st bst.State) string {
	if st == bst.Default {
		return colorPen
	}
	return treeFill(st)
}

// withAlpha appends an alpha channel when opacity is below 1.
func withAlpha(color string, opacity float64) string {
	if opacity >= 1 {
		return color
	}
	a := int(max(opacity, 0) * 255)
	return fmt.Sprintf("%s%02x", color, a)
}

// =============================================================================
// Graphs
// =============================================================================

func graphDOT(s trail.Scene, opts Options) string {
	var buf bytes.Buffer
	kind, arrow := "graph", "--"
	if s.Graph.Directed {
		kind, arrow = "digraph", "->"
	}
	header(&buf, kind, opts)

	ids := make([]int, len(s.Graph.Nodes))
	for i, n := range s.Graph.Nodes {
		ids[i] = n.ID
	}
	positions := layout.Circle(ids, opts.layout())

	for _, id := range ids {
		m := s.NodeMark(id)
		attrs := []string{
			fmt.Sprintf("label=%q", strconv.Itoa(id)),
			fmt.Sprintf("pos=%q", pos(positions[id])),
			fmt.Sprintf("fillcolor=%q", graphColor(m, colorDefault)),
			fmt.Sprintf("color=%q", graphColor(m, colorPen)),
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Graph.Edges {
		fmt.Fprintf(&buf, "  n%d %s n%d [color=%q];\n", e.From, arrow, e.To, graphColor(s.EdgeMark(e), colorPen))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func graphColor(m trail.Mark, plain string) string {
	switch m {
	case trail.Current:
		return colorActive
	case trail.Final:
		return colorFound
	}
	return plain
}

// =============================================================================
// Rendering
// =============================================================================

// RenderSVG renders DOT source to SVG using the neato engine, which honours
// the pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// Format is an output format understood by [Render].
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Formats lists the supported formats.
var Formats = []Format{FormatSVG, FormatDOT, FormatPDF, FormatPNG}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", s)
	}
	return f, nil
}

// Render draws scene in the requested format. PDF and PNG need rsvg-convert.
func Render(ctx context.Context, scene step.Scene, format Format, opts Options) ([]byte, error) {
	src, err := ToDOT(scene, opts)
	if err != nil {
		return nil, err
	}
	if format == FormatDOT {
		return []byte(src), nil
	}
	svg, err := RenderSVG(ctx, src)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	case FormatPNG:
		return render.ToPNG(ctx, svg, 2)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
}
