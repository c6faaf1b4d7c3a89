package trail

import (
	"testing"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
)

// eulerExpected applies the degree theorem directly.
func eulerExpected(g graph.Graph, kind Kind) bool {
	if !g.EdgesConnected() {
		return false
	}
	deg := g.Degrees()
	if g.Directed {
		plus, minus, other := 0, 0, 0
		for _, d := range deg {
			switch d.Balance() {
			case 0:
			case 1:
				plus++
			case -1:
				minus++
			default:
				other++
			}
		}
		if kind == Circuit {
			return plus == 0 && minus == 0 && other == 0
		}
		return plus == 1 && minus == 1 && other == 0
	}
	odd := 0
	for _, d := range deg {
		odd += d.Out % 2
	}
	if kind == Circuit {
		return odd == 0
	}
	return odd == 0 || odd == 2
}

// hamiltonExpected searches every permutation of the nodes.
func hamiltonExpected(g graph.Graph, kind Kind) bool {
	ids := g.IDs()
	used := make([]bool, len(ids))
	path := make([]int, 0, len(ids))
	var try func() bool
	try = func() bool {
		if len(path) == len(ids) {
			return kind == Path || g.HasEdge(path[len(path)-1], path[0])
		}
		for i, id := range ids {
			if used[i] || (len(path) > 0 && !g.HasEdge(path[len(path)-1], id)) {
				continue
			}
			used[i] = true
			path = append(path, id)
			if try() {
				return true
			}
			path = path[:len(path)-1]
			used[i] = false
		}
		return false
	}
	return try()
}

func TestEulerianMatchesDegreeTheorem(t *testing.T) {
	rng := graph.NewRand(graph.DefaultSeed)
	opts := graph.RandomOptions{MinNodes: 3, MaxNodes: 7, MinEdges: 2, MaxEdges: 12}
	for i := range 300 {
		opts.Directed = i%2 == 1
		g, err := graph.Random(opts, rng)
		if err != nil {
			t.Fatal(err)
		}
		for _, kind := range []Kind{Path, Circuit} {
			res, err := New(g, nil).Eulerian(kind)
			want := eulerExpected(g, kind)
			switch {
			case want && err != nil:
				t.Fatalf("%+v %s: unexpected %v", g, kind, err)
			case !want && !errors.Is(err, errors.ErrCodeNoEulerianTrail):
				t.Fatalf("%+v %s: got %s, want NO_EULERIAN_TRAIL", g, kind, res)
			case want:
				checkEulerian(t, g, res, kind == Circuit)
			}
		}
	}
}

func TestHamiltonianMatchesExhaustiveSearch(t *testing.T) {
	rng := graph.NewRand(7)
	opts := graph.RandomOptions{MinNodes: 2, MaxNodes: 6, MinEdges: 1, MaxEdges: 10}
	for i := range 200 {
		opts.Directed = i%2 == 1
		g, err := graph.Random(opts, rng)
		if err != nil {
			t.Fatal(err)
		}
		for _, kind := range []Kind{Path, Circuit} {
			res, err := New(g, nil).Hamiltonian(kind)
			want := hamiltonExpected(g, kind)
			switch {
			case want && err != nil:
				t.Fatalf("%+v %s: unexpected %v", g, kind, err)
			case !want && !errors.Is(err, errors.ErrCodeNoHamiltonianTrail):
				t.Fatalf("%+v %s: got %s, want NO_HAMILTONIAN_TRAIL", g, kind, res)
			case want:
				checkHamiltonian(t, g, res, kind)
			}
		}
	}
}
