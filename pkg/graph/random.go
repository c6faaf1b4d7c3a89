package graph

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/algoviz/pkg/errors"
)

// DefaultSeed seeds the generator when no seed is configured.
const DefaultSeed = 42

// RandomOptions bounds the size of a generated graph. Bounds are inclusive.
type RandomOptions struct {
	MinNodes, MaxNodes int
	MinEdges, MaxEdges int
	Directed           bool
}

// DefaultRandomOptions returns 5 to 10 nodes and 7 to 15 edges.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{MinNodes: 5, MaxNodes: 10, MinEdges: 7, MaxEdges: 15}
}

// Validate checks that the bounds describe a non-empty range.
func (o RandomOptions) Validate() error {
	if o.MinNodes < 1 || o.MaxNodes < o.MinNodes {
		return errors.New(errors.ErrCodeInvalidInput, "invalid node range %d..%d", o.MinNodes, o.MaxNodes)
	}
	if o.MinEdges < 0 || o.MaxEdges < o.MinEdges {
		return errors.New(errors.ErrCodeInvalidInput, "invalid edge range %d..%d", o.MinEdges, o.MaxEdges)
	}
	return nil
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random generates a simple graph: no self-loops and no repeated edges. The
// edge count is capped by the number of distinct node pairs, so small node
// counts may produce fewer edges than requested.
func Random(opts RandomOptions, rng *rand.Rand) (Graph, error) {
	if err := opts.Validate(); err != nil {
		return Graph{}, err
	}
	n := between(rng, opts.MinNodes, opts.MaxNodes)
	m := between(rng, opts.MinEdges, opts.MaxEdges)

	var candidates []Edge
	for i := range n {
		for j := range n {
			if i == j || (!opts.Directed && j < i) {
				continue
			}
			candidates = append(candidates, Edge{From: i, To: j})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	kind := "undirected"
	if opts.Directed {
		kind = "directed"
	}
	g := New(n, opts.Directed, candidates[:min(m, len(candidates))]...)
	g.Name = fmt.Sprintf("random %s graph (%d nodes, %d edges)", kind, len(g.Nodes), len(g.Edges))
	return g, nil
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
