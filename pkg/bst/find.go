package bst

import (
	"fmt"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/step"
)

// Find looks up v and returns its node. It returns an error with code
// EMPTY_STRUCTURE when the tree is empty and NOT_FOUND when v is absent.
// A found node is held in the Found state for a branch pause before the
// tree returns to its default presentation.
func (t *Tree) Find(v int) (*Node, error) {
	if t.Root == nil {
		t.step(AlgFind, findEntry, "// the tree is empty", 1)
		t.finish()
		return nil, errors.New(errors.ErrCodeEmptyStructure, "tree is empty")
	}

	t.say(fmt.Sprintf("// find node %d", v))
	n := t.find(t.Root, v)
	t.finish()
	if n == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "value %d not found", v)
	}
	return n, nil
}

func (t *Tree) find(n *Node, v int) *Node {
	t.step(AlgFind, findEntry, "", 1)

	if n == nil || n.Value == v {
		if n == nil {
			t.step(AlgFind, findHit, fmt.Sprintf("// node %d not found", v), 1)
		} else {
			t.hl.outline(n, Found)
			t.step(AlgFind, findHit, fmt.Sprintf("// node %d found", v), 1)
		}
		t.step(AlgFind, findReturn, "", step.BranchUnits)
		return n
	}

	t.hl.outline(n, Active)
	t.redraw(1)
	t.step(AlgFind, findLess, "", 1)

	var res *Node
	if v < n.Value {
		t.step(AlgFind, findLeft, fmt.Sprintf("if %d < %d {\n    return find(node.Left, %d)\n}", v, n.Value, v), step.BranchUnits)
		t.hl.left(n, Active)
		t.redraw(0)
		res = t.find(n.Left, v)
		t.hl.left(n, Default)
	} else {
		t.step(AlgFind, findRight, fmt.Sprintf("return find(node.Right, %d)", v), step.BranchUnits)
		t.hl.right(n, Active)
		t.redraw(0)
		res = t.find(n.Right, v)
		t.hl.right(n, Default)
	}
	t.redraw(0)
	return res
}
