// Package text renders tree and graph scenes as coloured terminal text.
//
// A [Renderer] implements step.Renderer. Every Redraw lays the scene out on
// a character grid (see pkg/layout), draws edges first and node labels on
// top, and hands the finished frame to a callback:
//
//	r := text.New(80, 20, func(frame string) { fmt.Println(frame) })
//	sink := &step.Sink{Renderer: r, ...}
//
// Node brackets encode the highlight state so frames stay readable without
// colour: (5) default, <5> active or on the current path, [5] found or in
// the final result, {5} being deleted.
package text

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// Theme holds the styles used for each highlight state.
type Theme struct {
	Node     lipgloss.Style
	Edge     lipgloss.Style
	Active   lipgloss.Style
	Found    lipgloss.Style
	Deleting lipgloss.Style
	Faded    lipgloss.Style
	Arrow    lipgloss.Style
}

// DefaultTheme mirrors the CLI palette.
func DefaultTheme() Theme {
	return Theme{
		Node:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Edge:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Found:    lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		Deleting: lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Bold(true),
		Faded:    lipgloss.NewStyle().Foreground(lipgloss.Color("167")).Faint(true),
		Arrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// PlainTheme renders without any styling.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Node: s, Edge: s, Active: s, Found: s, Deleting: s, Faded: s, Arrow: s}
}

func (t Theme) styles() [inkCount]lipgloss.Style {
	var s [inkCount]lipgloss.Style
	s[inkNode] = t.Node
	s[inkEdge] = t.Edge
	s[inkActive] = t.Active
	s[inkFound] = t.Found
	s[inkDeleting] = t.Deleting
	s[inkFaded] = t.Faded
	s[inkArrow] = t.Arrow
	return s
}

// Renderer draws scenes on a cols x rows character grid.
type Renderer struct {
	Cols, Rows int
	Theme      Theme

	// Out receives every frame. It may be nil.
	Out func(frame string)

	mu   sync.Mutex
	last string
}

// New returns a renderer with the default theme.
func New(cols, rows int, out func(frame string)) *Renderer {
	return &Renderer{Cols: cols, Rows: rows, Theme: DefaultTheme(), Out: out}
}

// Redraw implements step.Renderer.
func (r *Renderer) Redraw(scene step.Scene) {
	frame := r.Render(scene)
	r.mu.Lock()
	r.last = frame
	out := r.Out
	r.mu.Unlock()
	if out != nil {
		out(frame)
	}
}

// Last returns the most recent frame.
func (r *Renderer) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Render draws scene and returns the frame. Unknown scene kinds render as
// an empty string.
func (r *Renderer) Render(scene step.Scene) string {
	cols, rows := max(r.Cols, 8), max(r.Rows, 4)
	switch s := scene.(type) {
	case bst.Scene:
		return r.renderTree(s, cols, rows)
	case trail.Scene:
		return r.renderGraph(s, cols, rows)
	}
	return ""
}

// =============================================================================
// Trees
// =============================================================================

func (r *Renderer) renderTree(s bst.Scene, cols, rows int) string {
	c := newCanvas(cols, rows)
	if s.Root == nil {
		c.label(cols/2, 0, "(empty)", inkEdge)
		return c.String(r.Theme.styles())
	}
	cfg := layout.Config{
		Width:         float64(cols),
		Spacing:       float64(cols) / 4,
		LevelDistance: 3,
		TopMargin:     0,
	}
	pos := layout.Tree(s.Root, cfg)

	var edges func(n *bst.Node)
	edges = func(n *bst.Node) {
		if n == nil {
			return
		}
		p := pos[n]
		m := s.Mark(n)
		for _, child := range []struct {
			node  *bst.Node
			state bst.State
		}{{n.Left, m.Left}, {n.Right, m.Right}} {
			if child.node == nil {
				continue
			}
			q := pos[child.node]
			c.line(round(p.X), round(p.Y), round(q.X), round(q.Y), treeInk(child.state, 1))
			edges(child.node)
		}
	}
	edges(s.Root)

	for n, p := range pos {
		m := s.Mark(n)
		c.label(round(p.X), round(p.Y), treeLabel(n.Value, m.Outline), treeInk(m.Outline, m.Opacity))
	}
	return c.String(r.Theme.styles())
}

func treeLabel(v int, st bst.State) string {
	id := strconv.Itoa(v)
	switch st {
	case bst.Active:
		return "<" + id + ">"
	case bst.Found:
		return "[" + id + "]"
	case bst.Deleting:
		return "{" + id + "}"
	}
	return "(" + id + ")"
}

func treeInk(st bst.State, opacity float64) ink {
	switch st {
	case bst.Active:
		return inkActive
	case bst.Found:
		return inkFound
	case bst.Deleting:
		if opacity < 0.5 {
			return inkFaded
		}
		return inkDeleting
	}
	return inkNode
}

// =============================================================================
// Graphs
// =============================================================================

func (r *Renderer) renderGraph(s trail.Scene, cols, rows int) string {
	c := newCanvas(cols, rows)
	if s.Graph == nil || len(s.Graph.Nodes) == 0 {
		c.label(cols/2, 0, "(empty)", inkEdge)
		return c.String(r.Theme.styles())
	}

	// Lay out on a square measured in rows; a cell is about twice as tall
	// as it is wide, so x is doubled.
	size := float64(min(rows, cols/2))
	ids := make([]int, len(s.Graph.Nodes))
	for i, n := range s.Graph.Nodes {
		ids[i] = n.ID
	}
	pts := layout.Circle(ids, layout.Config{Width: size, Height: size, CircleMargin: 1})
	offset := (cols - int(2*size)) / 2
	cellOf := func(id int) (int, int) {
		p := pts[id]
		return offset + round(2*p.X), min(round(p.Y), rows-1)
	}

	for _, e := range s.Graph.Edges {
		x0, y0 := cellOf(e.From)
		x1, y1 := cellOf(e.To)
		k := graphInk(s.EdgeMark(e), inkEdge)
		c.line(x0, y0, x1, y1, k)
		if s.Graph.Directed {
			c.arrow(x0, y0, x1, y1, graphInk(s.EdgeMark(e), inkArrow))
		}
	}
	for _, id := range ids {
		x, y := cellOf(id)
		m := s.NodeMark(id)
		c.label(x, y, graphLabel(id, m), graphInk(m, inkNode))
	}
	return c.String(r.Theme.styles())
}

func graphLabel(id int, m trail.Mark) string {
	s := strconv.Itoa(id)
	switch m {
	case trail.Current:
		return "<" + s + ">"
	case trail.Final:
		return "[" + s + "]"
	}
	return "(" + s + ")"
}

func graphInk(m trail.Mark, plain ink) ink {
	switch m {
	case trail.Current:
		return inkActive
	case trail.Final:
		return inkFound
	}
	return plain
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
