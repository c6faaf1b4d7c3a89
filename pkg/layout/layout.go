// Package layout positions tree and graph nodes on a 2D surface.
//
// Positions are computed from an explicit [Config] passed by the renderer,
// so the same structure can be drawn on a terminal grid, an SVG canvas or
// anything else by changing the configuration alone.
//
// Trees are drawn top-down: the root sits at the horizontal centre, every
// level is LevelDistance lower, and the horizontal offset of a child halves
// at every level. Graphs are drawn on a circle starting at 12 o'clock.
package layout

import (
	"math"

	"github.com/matzehuels/algoviz/pkg/bst"
)

// Point is a position on the drawing surface. Y grows downwards.
type Point struct {
	X, Y float64
}

// Config describes the drawing surface.
type Config struct {
	Width, Height float64

	// NodeCount scales the horizontal spread of a tree. Zero means the number
	// of nodes in the tree being laid out.
	NodeCount int

	// Spacing is the horizontal offset between the root and its children.
	// Zero means NodeCount * SpacingPerNode.
	Spacing float64

	// SpacingPerNode is used when Spacing is zero.
	SpacingPerNode float64

	// LevelDistance is the vertical distance between tree levels.
	LevelDistance float64

	// TopMargin is the y coordinate of the tree root.
	TopMargin float64

	// CircleMargin is subtracted from the smaller half-dimension to get the
	// radius of the graph circle.
	CircleMargin float64
}

// Default returns the canvas configuration of the browser visualizer.
func Default() Config {
	return Config{
		Width:          1600,
		Height:         900,
		SpacingPerNode: 8,
		LevelDistance:  50,
		TopMargin:      125,
		CircleMargin:   300,
	}
}

// Tree returns a position for every node reachable from root.
func Tree(root *bst.Node, cfg Config) map[*bst.Node]Point {
	pos := make(map[*bst.Node]Point)
	if root == nil {
		return pos
	}
	spacing := cfg.Spacing
	if spacing == 0 {
		n := cfg.NodeCount
		if n == 0 {
			n = countNodes(root)
		}
		spacing = float64(n) * cfg.SpacingPerNode
	}

	var place func(n *bst.Node, p Point, dx float64)
	place = func(n *bst.Node, p Point, dx float64) {
		if n == nil {
			return
		}
		pos[n] = p
		place(n.Left, Point{p.X - dx, p.Y + cfg.LevelDistance}, dx/2)
		place(n.Right, Point{p.X + dx, p.Y + cfg.LevelDistance}, dx/2)
	}
	place(root, Point{cfg.Width / 2, cfg.TopMargin}, spacing)
	return pos
}

// Circle places ids evenly on a circle, the first one at the top, in the
// order given.
func Circle(ids []int, cfg Config) map[int]Point {
	pos := make(map[int]Point, len(ids))
	if len(ids) == 0 {
		return pos
	}
	cx, cy := cfg.Width/2, cfg.Height/2
	r := min(cx, cy) - cfg.CircleMargin
	if r <= 0 {
		r = 0.8 * min(cx, cy)
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		a := float64(i)*step - math.Pi/2
		pos[id] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pos
}

func countNodes(n *bst.Node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.Left) + countNodes(n.Right)
}
