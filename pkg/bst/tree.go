package bst

import (
	"github.com/matzehuels/algoviz/pkg/step"
)

// Node is a tree node. It carries no presentation state.
type Node struct {
	Value       int
	Left, Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Tree is a binary search tree that reports its operations through a sink.
//
// A Tree is not safe for concurrent use. At most one operation may run at a
// time; hosts enforce this (see playback.Runner).
type Tree struct {
	Root *Node

	hl   Highlight
	sink *step.Sink
}

// New returns an empty tree that reports through sink. A nil sink is
// replaced by [step.Discard].
func New(sink *step.Sink) *Tree {
	t := &Tree{}
	t.SetSink(sink)
	return t
}

// SetSink replaces the sink used by subsequent operations.
func (t *Tree) SetSink(sink *step.Sink) {
	if sink == nil {
		sink = step.Discard()
	}
	t.sink = sink
}

// Highlight returns the live presentation state of the tree.
func (t *Tree) Highlight() *Highlight { return &t.hl }

// Scene returns a renderable view of the tree in its current state.
func (t *Tree) Scene() Scene { return Scene{Root: t.Root, Marks: &t.hl} }

// ResetColors returns every node to its default presentation state. It never
// changes the structure. Marks of nodes removed mid-animation are dropped
// too.
func (t *Tree) ResetColors() { t.hl.Reset() }

// Clear removes every node.
func (t *Tree) Clear() {
	t.Root = nil
	t.hl.Reset()
}

// Contains reports whether v is in the tree without narrating anything.
func (t *Tree) Contains(v int) bool {
	n := t.Root
	for n != nil {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// InOrder returns the values in ascending order.
func (t *Tree) InOrder() []int {
	var out []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.Root)
	return out
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return count(t.Root) }

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int { return height(t.Root) }

func count(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.Left) + count(n.Right)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}

func minValue(n *Node) *Node {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// step reports one traced step and redraws the tree.
func (t *Tree) step(alg string, line int, text string, units float64) {
	t.sink.Step(step.Step{Algorithm: alg, Line: line, Text: text, Scene: t.Scene(), Units: units})
}

// redraw reports a presentation-only change.
func (t *Tree) redraw(units float64) {
	t.sink.Step(step.Step{Line: step.NoLine, Scene: t.Scene(), Units: units})
}

// say emits a narration line that belongs to no listing line.
func (t *Tree) say(text string) {
	t.sink.Step(step.Step{Line: step.NoLine, Text: text})
}

// finish resets presentation state and shows the final tree.
func (t *Tree) finish() {
	t.ResetColors()
	t.redraw(0)
}

// Scene is the renderable view of a tree. It is only valid during the
// Redraw call that receives it.
type Scene struct {
	Root  *Node
	Marks *Highlight
}

// Kind implements step.Scene.
func (Scene) Kind() string { return "tree" }

// Mark returns the presentation state of n.
func (s Scene) Mark(n *Node) Mark {
	if s.Marks == nil {
		return Mark{Opacity: 1}
	}
	return s.Marks.Get(n)
}

// Len returns the number of nodes in the scene.
func (s Scene) Len() int { return count(s.Root) }
