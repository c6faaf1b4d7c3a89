package bst

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/algoviz/pkg/step"
)

// InsertBalanced replaces the tree with a height-balanced tree holding the
// given values. Values are sorted and de-duplicated; the middle element of
// every sub-range becomes the root of that subtree, so a tree of n values
// has height ceil(log2(n+1)).
func (t *Tree) InsertBalanced(values []int) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	t.Clear()
	t.build(sorted, 0, len(sorted)-1, &t.Root)
	t.say(fmt.Sprintf("// balanced tree of %d values built", len(sorted)))
	t.finish()
}

// build links each subtree root into place as soon as it is chosen, so every
// redraw shows the partial tree built so far.
func (t *Tree) build(sorted []int, lo, hi int, link **Node) {
	t.step(AlgBalanced, balEntry, "", 1)
	if lo > hi {
		t.step(AlgBalanced, balEmpty, "", 1)
		return
	}
	mid := (lo + hi) / 2
	t.step(AlgBalanced, balMid, fmt.Sprintf("// mid of [%d..%d] is %d", sorted[lo], sorted[hi], sorted[mid]), 1)
	n := &Node{Value: sorted[mid]}
	*link = n
	t.hl.outline(n, Active)
	t.step(AlgBalanced, balNode, "", 1)

	t.hl.left(n, Active)
	t.step(AlgBalanced, balLeft, "", step.BranchUnits)
	t.build(sorted, lo, mid-1, &n.Left)
	t.hl.left(n, Default)

	t.hl.right(n, Active)
	t.step(AlgBalanced, balRight, "", step.BranchUnits)
	t.build(sorted, mid+1, hi, &n.Right)

	t.hl.clear(n)
	t.redraw(0.5)
}

// MaxRandomValues bounds the size of a generated random tree.
const MaxRandomValues = 64

// RandomValues returns n distinct values drawn from [0, 2n) in the order
// they were drawn.
func RandomValues(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	seen := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		v := rng.IntN(2 * n)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
