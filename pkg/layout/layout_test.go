package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/algoviz/pkg/bst"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTree(t *testing.T) {
	tree := bst.New(nil)
	for _, v := range []int{5, 3, 8, 1} {
		tree.Insert(v)
	}
	cfg := Default()
	pos := Tree(tree.Root, cfg)

	if len(pos) != 4 {
		t.Fatalf("got %d positions, want 4", len(pos))
	}
	root := pos[tree.Root]
	if root != (Point{800, 125}) {
		t.Errorf("root = %+v", root)
	}
	// 4 nodes * 8 = 32 at the first level, 16 at the second.
	if left := pos[tree.Root.Left]; left != (Point{768, 175}) {
		t.Errorf("left = %+v", left)
	}
	if right := pos[tree.Root.Right]; right != (Point{832, 175}) {
		t.Errorf("right = %+v", right)
	}
	if ll := pos[tree.Root.Left.Left]; ll != (Point{752, 225}) {
		t.Errorf("left-left = %+v", ll)
	}
}

func TestTreeExplicitSpacing(t *testing.T) {
	tree := bst.New(nil)
	tree.Insert(2)
	tree.Insert(1)
	pos := Tree(tree.Root, Config{Width: 40, Spacing: 10, LevelDistance: 3, TopMargin: 1, NodeCount: 99})

	if got := pos[tree.Root.Left]; got != (Point{10, 4}) {
		t.Errorf("left = %+v", got)
	}
}

func TestTreeEmpty(t *testing.T) {
	if pos := Tree(nil, Default()); len(pos) != 0 {
		t.Errorf("empty tree has %d positions", len(pos))
	}
}

func TestCircle(t *testing.T) {
	cfg := Config{Width: 100, Height: 60, CircleMargin: 10}
	pos := Circle([]int{7, 8, 9, 10}, cfg)

	// radius = min(50, 30) - 10 = 20
	top := pos[7]
	if !near(top.X, 50) || !near(top.Y, 10) {
		t.Errorf("first node = %+v, want top of circle", top)
	}
	right := pos[8]
	if !near(right.X, 70) || !near(right.Y, 30) {
		t.Errorf("second node = %+v, want 3 o'clock", right)
	}
	for id, p := range pos {
		if r := math.Hypot(p.X-50, p.Y-30); !near(r, 20) {
			t.Errorf("node %d at radius %v", id, r)
		}
	}
}

func TestCircleLargeMargin(t *testing.T) {
	pos := Circle([]int{0, 1}, Config{Width: 100, Height: 100, CircleMargin: 300})
	if r := math.Hypot(pos[0].X-50, pos[0].Y-50); !near(r, 40) {
		t.Errorf("radius = %v, want fallback 40", r)
	}
}
