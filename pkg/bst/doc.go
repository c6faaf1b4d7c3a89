// Package bst implements an instrumented binary search tree.
//
// # Overview
//
// A [Tree] is a plain, unbalanced BST over int values. Its mutating
// operations narrate every comparison and branch decision through a
// [step.Sink] so that a renderer, a code tracer and a transcript can follow
// the algorithm as it runs:
//
//	t := bst.New(sink)
//	t.Insert(5)
//	t.Insert(3)
//	if err := t.Delete(3); err != nil { ... }
//	n, err := t.Find(5)
//
// Pass [step.Discard] for headless use; the algorithms behave the same.
//
// # Highlight State
//
// Nodes carry only a value and two child links. Presentation state (the
// outline of a node and the colour of its two child edges) lives in a
// separate [Highlight] keyed by node identity and is exposed to renderers
// through [Scene]. Every operation ends with [Tree.ResetColors], so the
// tree is always left in its default presentation.
//
// # Duplicates
//
// Inserting a value that is already present takes neither branch and leaves
// the tree unchanged. [Tree.Insert] narrates the no-op and returns false.
//
// # Listings
//
// The package registers four pseudo-code listings with [step.Register]:
// [AlgInsert], [AlgDelete], [AlgFind] and [AlgBalanced]. Line numbers passed
// to the tracer index into these listings.
package bst
