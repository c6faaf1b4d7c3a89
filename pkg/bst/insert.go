package bst

import (
	"fmt"

	"github.com/matzehuels/algoviz/pkg/step"
)

// Insert adds v to the tree and reports whether it was added. A value that
// is already present is narrated and left alone.
func (t *Tree) Insert(v int) bool {
	var created *Node
	t.Root = t.insert(t.Root, v, &created)
	if created == nil {
		t.say(fmt.Sprintf("// %d is already in the tree, nothing to insert", v))
	}
	t.finish()
	return created != nil
}

func (t *Tree) insert(n *Node, v int, created **Node) *Node {
	t.step(AlgInsert, insEntry, "", 1)

	if n == nil {
		t.step(AlgInsert, insNil, fmt.Sprintf("// node is nil, creating new node with value %d", v), 1)
		t.step(AlgInsert, insCreate, "", 1)
		*created = &Node{Value: v}
		return *created
	}

	t.hl.outline(n, Active)
	t.step(AlgInsert, insLess, "", 1)

	switch {
	case v < n.Value:
		t.step(AlgInsert, insLess, fmt.Sprintf("if %d < %d {\n    node.Left = insert(node.Left, %d)\n}", v, n.Value, v), 1)
		t.hl.left(n, Active)
		t.step(AlgInsert, insLeft, "", step.BranchUnits)
		n.Left = t.insert(n.Left, v, created)
		if n.Left == *created {
			t.hl.outline(n.Left, Found)
			t.redraw(1)
		}
	case v > n.Value:
		t.step(AlgInsert, insGreater, fmt.Sprintf("else if %d > %d {\n    node.Right = insert(node.Right, %d)\n}", v, n.Value, v), 1)
		t.hl.right(n, Active)
		t.step(AlgInsert, insRight, "", step.BranchUnits)
		n.Right = t.insert(n.Right, v, created)
		if n.Right == *created {
			t.hl.outline(n.Right, Found)
			t.redraw(1)
		}
	}

	t.hl.clear(n)
	t.redraw(1)
	t.step(AlgInsert, insReturn, "", 1)
	return n
}
