package bst

import (
	"fmt"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/step"
)

// fadeFrames is the number of frames of the deletion animation. Each frame
// lasts half a pacing unit.
const fadeFrames = 10

// Delete removes v from the tree. It returns an error with code
// EMPTY_STRUCTURE when the tree is empty and NOT_FOUND when v is absent; both
// are narrated before returning.
//
// A node with two children takes the value of its in-order successor, and
// the successor is then removed from the right subtree.
func (t *Tree) Delete(v int) error {
	if t.Root == nil {
		t.step(AlgDelete, delNil, "// the tree is empty", 1)
		t.finish()
		return errors.New(errors.ErrCodeEmptyStructure, "tree is empty")
	}

	found := false
	t.Root = t.remove(t.Root, v, &found)
	if !found {
		t.finish()
		return errors.New(errors.ErrCodeNotFound, "value %d not found", v)
	}

	t.redraw(0)
	t.say(fmt.Sprintf("// deletion of %d complete", v))
	t.finish()
	return nil
}

func (t *Tree) remove(n *Node, v int, found *bool) *Node {
	t.step(AlgDelete, delEntry, "", 1)

	if n == nil {
		t.step(AlgDelete, delNil, fmt.Sprintf("// node %d not found, return nil", v), 1)
		return nil
	}

	t.hl.outline(n, Active)
	t.redraw(1)

	switch {
	case v < n.Value:
		t.step(AlgDelete, delLess, fmt.Sprintf("if %d < %d {\n    node.Left = remove(node.Left, %d)\n}", v, n.Value, v), 1)
		t.hl.left(n, Active)
		t.step(AlgDelete, delLeft, "", step.BranchUnits)
		n.Left = t.remove(n.Left, v, found)

	case v > n.Value:
		t.step(AlgDelete, delGreater, fmt.Sprintf("else if %d > %d {\n    node.Right = remove(node.Right, %d)\n}", v, n.Value, v), 1)
		t.hl.right(n, Active)
		t.step(AlgDelete, delRight, "", step.BranchUnits)
		n.Right = t.remove(n.Right, v, found)

	default:
		*found = true
		t.step(AlgDelete, delFound, fmt.Sprintf("// node %d found, deleting", v), 1)

		switch {
		case n.IsLeaf():
			t.step(AlgDelete, delLeaf, fmt.Sprintf("// node %d is a leaf, detach it\nif node.Left == nil && node.Right == nil {\n    return nil\n}", v), 1)
			t.step(AlgDelete, delLeafRet, "", 0)
			t.fade(n)
			return nil

		case n.Left == nil:
			t.step(AlgDelete, delNoLeft, fmt.Sprintf("// node %d has only a right child, replace node with it\nif node.Left == nil {\n    return node.Right\n}", v), 1)
			t.step(AlgDelete, delNoLeftRet, "", 0)
			t.fade(n)
			return n.Right

		case n.Right == nil:
			t.step(AlgDelete, delNoRight, fmt.Sprintf("// node %d has only a left child, replace node with it\nif node.Right == nil {\n    return node.Left\n}", v), 1)
			t.step(AlgDelete, delNoRightRet, "", 0)
			t.fade(n)
			return n.Left

		default:
			succ := minValue(n.Right)
			t.step(AlgDelete, delSucc, fmt.Sprintf("// node %d has two children, successor is %d\nsucc := minValue(node.Right)\nnode.Value = succ.Value\nnode.Right = remove(node.Right, succ.Value)", v, succ.Value), 1)
			n.Value = succ.Value
			t.step(AlgDelete, delCopy, "", 1)
			t.hl.right(n, Active)
			t.step(AlgDelete, delRecurse, "", 1)
			n.Right = t.remove(n.Right, succ.Value, found)
		}
	}

	t.hl.clear(n)
	t.redraw(1)
	t.step(AlgDelete, delReturn, "", 0)
	return n
}

// fade plays the deletion animation on n, which is still linked into the
// tree while it fades.
func (t *Tree) fade(n *Node) {
	for i := range fadeFrames {
		t.hl.fade(n, 1-float64(i)/fadeFrames)
		t.redraw(0.5)
	}
	t.hl.clear(n)
}
