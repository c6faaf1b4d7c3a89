package bst

import "github.com/matzehuels/algoviz/pkg/step"

// Listing names registered by this package.
const (
	AlgInsert   = "insert"
	AlgDelete   = "delete"
	AlgFind     = "find"
	AlgBalanced = "balanced"
)

// Line numbers within the listings. Kept next to the listing text so the two
// cannot drift apart.
const (
	insEntry      = 0
	insNil        = 1
	insCreate     = 2
	insLess       = 4
	insLeft       = 5
	insGreater    = 6
	insRight      = 7
	insReturn     = 9
	delEntry      = 0
	delNil        = 1
	delLess       = 4
	delLeft       = 5
	delGreater    = 6
	delRight      = 7
	delFound      = 8
	delLeaf       = 9
	delLeafRet    = 10
	delNoLeft     = 12
	delNoLeftRet  = 13
	delNoRight    = 15
	delNoRightRet = 16
	delSucc       = 18
	delCopy       = 19
	delRecurse    = 20
	delReturn     = 22
	findEntry     = 0
	findHit       = 1
	findReturn    = 2
	findLess      = 4
	findLeft      = 5
	findRight     = 7
	balEntry      = 0
	balEmpty      = 1
	balMid        = 4
	balNode       = 5
	balLeft       = 6
	balRight      = 7
)

func init() {
	step.Register(step.Listing{
		Name:  AlgInsert,
		Title: "BST insert",
		Lines: []string{
			"func insert(node *Node, v int) *Node {",
			"    if node == nil {",
			"        return &Node{Value: v}",
			"    }",
			"    if v < node.Value {",
			"        node.Left = insert(node.Left, v)",
			"    } else if v > node.Value {",
			"        node.Right = insert(node.Right, v)",
			"    }",
			"    return node",
			"}",
		},
	})
	step.Register(step.Listing{
		Name:  AlgDelete,
		Title: "BST delete",
		Lines: []string{
			"func remove(node *Node, v int) *Node {",
			"    if node == nil {",
			"        return nil",
			"    }",
			"    if v < node.Value {",
			"        node.Left = remove(node.Left, v)",
			"    } else if v > node.Value {",
			"        node.Right = remove(node.Right, v)",
			"    } else {",
			"        if node.Left == nil && node.Right == nil {",
			"            return nil",
			"        }",
			"        if node.Left == nil {",
			"            return node.Right",
			"        }",
			"        if node.Right == nil {",
			"            return node.Left",
			"        }",
			"        succ := minValue(node.Right)",
			"        node.Value = succ.Value",
			"        node.Right = remove(node.Right, succ.Value)",
			"    }",
			"    return node",
			"}",
		},
	})
	step.Register(step.Listing{
		Name:  AlgFind,
		Title: "BST find",
		Lines: []string{
			"func find(node *Node, v int) *Node {",
			"    if node == nil || node.Value == v {",
			"        return node",
			"    }",
			"    if v < node.Value {",
			"        return find(node.Left, v)",
			"    }",
			"    return find(node.Right, v)",
			"}",
		},
	})
	step.Register(step.Listing{
		Name:  AlgBalanced,
		Title: "Balanced build",
		Lines: []string{
			"func build(sorted []int, lo, hi int) *Node {",
			"    if lo > hi {",
			"        return nil",
			"    }",
			"    mid := (lo + hi) / 2",
			"    node := &Node{Value: sorted[mid]}",
			"    node.Left = build(sorted, lo, mid-1)",
			"    node.Right = build(sorted, mid+1, hi)",
			"    return node",
			"}",
		},
	})
}
