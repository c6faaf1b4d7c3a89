package text

import (
	"strings"
	"testing"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

func plain(cols, rows int) *Renderer {
	r := New(cols, rows, nil)
	r.Theme = PlainTheme()
	return r
}

func TestRenderTree(t *testing.T) {
	tree := bst.New(nil)
	for _, v := range []int{5, 3, 8} {
		tree.Insert(v)
	}
	frame := plain(40, 8).Render(tree.Scene())
	lines := strings.Split(frame, "\n")

	if !strings.Contains(lines[0], "(5)") {
		t.Errorf("root not on the first row:\n%s", frame)
	}
	if !strings.Contains(lines[3], "(3)") || !strings.Contains(lines[3], "(8)") {
		t.Errorf("children not on row 3:\n%s", frame)
	}
	if strings.Index(lines[3], "(3)") > strings.Index(lines[3], "(8)") {
		t.Errorf("left child drawn right of the right child:\n%s", frame)
	}
	if !strings.ContainsAny(lines[1]+lines[2], "-|/\\") {
		t.Errorf("no edges drawn:\n%s", frame)
	}
}

func TestRenderTreeEmpty(t *testing.T) {
	frame := plain(20, 4).Render(bst.New(nil).Scene())
	if !strings.Contains(frame, "(empty)") {
		t.Errorf("frame = %q", frame)
	}
}

func TestTreeHighlightBrackets(t *testing.T) {
	var frames []string
	r := plain(40, 10)
	r.Out = func(f string) { frames = append(frames, f) }

	tree := bst.New(&step.Sink{Renderer: r, Pacer: step.Instant{}, Quiet: true})
	tree.Insert(5)
	tree.Insert(3)
	if _, err := tree.Find(3); err != nil {
		t.Fatal(err)
	}

	joined := strings.Join(frames, "\n---\n")
	for _, want := range []string{"<5>", "[3]"} {
		if !strings.Contains(joined, want) {
			t.Errorf("no frame shows %s", want)
		}
	}
	if last := r.Last(); !strings.Contains(last, "(5)") || !strings.Contains(last, "(3)") {
		t.Errorf("final frame not reset:\n%s", last)
	}
}

func TestRenderGraph(t *testing.T) {
	g, _ := graph.Preset("hamilton-circuit-directed")
	e := trail.New(g, nil)
	frame := plain(60, 16).Render(e.Scene())

	for _, id := range []string{"(0)", "(1)", "(2)", "(3)"} {
		if !strings.Contains(frame, id) {
			t.Errorf("frame missing %s:\n%s", id, frame)
		}
	}
	if !strings.ContainsAny(frame, "→↘↓↙←↖↑↗") {
		t.Errorf("directed graph drawn without arrows:\n%s", frame)
	}
}

func TestRenderGraphMarks(t *testing.T) {
	g := graph.New(3, false, graph.Edge{From: 0, To: 1}, graph.Edge{From: 1, To: 2})
	st := &trail.State{CurrentNodes: []int{0}, FinalNodes: []int{2}}
	frame := plain(40, 12).Render(trail.Scene{Graph: &g, State: st})

	for _, want := range []string{"<0>", "(1)", "[2]"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %s:\n%s", want, frame)
		}
	}
}

type otherScene struct{}

func (otherScene) Kind() string { return "other" }

func TestRenderUnknownScene(t *testing.T) {
	if got := plain(10, 4).Render(otherScene{}); got != "" {
		t.Errorf("Render(unknown) = %q", got)
	}
}

func TestCanvasLineAndArrow(t *testing.T) {
	tests := []struct {
		dx, dy int
		line   rune
		arrow  rune
	}{
		{5, 0, '-', '→'},
		{0, 5, '|', '↓'},
		{-5, 0, '-', '←'},
		{3, 3, '\\', '↘'},
		{3, -3, '/', '↗'},
	}
	for _, tt := range tests {
		if got := lineRune(tt.dx, tt.dy); got != tt.line {
			t.Errorf("lineRune(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.line)
		}
		if got := arrowRune(tt.dx, tt.dy); got != tt.arrow {
			t.Errorf("arrowRune(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.arrow)
		}
	}

	c := newCanvas(5, 1)
	c.line(0, 0, 4, 0, inkEdge)
	if got := c.String(PlainTheme().styles()); got != " ---" {
		t.Errorf("line = %q, want %q", got, " ---")
	}
}
