package trail

import "github.com/matzehuels/algoviz/pkg/step"

// Listing names registered by this package.
const (
	AlgEulerDirected   = "eulerian-directed"
	AlgEulerUndirected = "eulerian-undirected"
	AlgHamiltonian     = "hamiltonian"
)

// eulerLines maps the shared Hierholzer steps onto a listing. The directed
// and undirected listings differ by the reverse-entry removal and the final
// reversal.
type eulerLines struct {
	entry, push, loop, top, check, next, pop, remove, descend, finish, popStack, ret int
}

var (
	directedLines = eulerLines{
		entry: 0, push: 1, loop: 3, top: 4, check: 5, next: 6, pop: 7,
		remove: -1, descend: 8, finish: 10, popStack: 11, ret: 15,
	}
	undirectedLines = eulerLines{
		entry: 0, push: 1, loop: 3, top: 4, check: 5, next: 6, pop: 7,
		remove: 8, descend: 9, finish: 11, popStack: 12, ret: 15,
	}
)

const (
	hamEntry    = 0
	hamAppend   = 1
	hamVisit    = 2
	hamFull     = 3
	hamDone     = 4
	hamLoop     = 6
	hamUnseen   = 7
	hamRecurse  = 8
	hamFound    = 9
	hamUnvisit  = 13
	hamTruncate = 14
	hamFail     = 15
)

func init() {
	step.Register(step.Listing{
		Name:  AlgEulerDirected,
		Title: "Hierholzer (directed)",
		Lines: []string{
			"func euler(adj map[int][]int, start int) []int {",
			"    stack := []int{start}",
			"    var circuit []int",
			"    for len(stack) > 0 {",
			"        cur := stack[len(stack)-1]",
			"        if len(adj[cur]) > 0 {",
			"            next := adj[cur][len(adj[cur])-1]",
			"            adj[cur] = adj[cur][:len(adj[cur])-1]",
			"            stack = append(stack, next)",
			"        } else {",
			"            circuit = append(circuit, cur)",
			"            stack = stack[:len(stack)-1]",
			"        }",
			"    }",
			"    slices.Reverse(circuit)",
			"    return circuit",
			"}",
		},
	})
	step.Register(step.Listing{
		Name:  AlgEulerUndirected,
		Title: "Hierholzer (undirected)",
		Lines: []string{
			"func euler(adj map[int][]int, start int) []int {",
			"    stack := []int{start}",
			"    var circuit []int",
			"    for len(stack) > 0 {",
			"        cur := stack[len(stack)-1]",
			"        if len(adj[cur]) > 0 {",
			"            next := adj[cur][len(adj[cur])-1]",
			"            adj[cur] = adj[cur][:len(adj[cur])-1]",
			"            adj[next] = removeOnce(adj[next], cur)",
			"            stack = append(stack, next)",
			"        } else {",
			"            circuit = append(circuit, cur)",
			"            stack = stack[:len(stack)-1]",
			"        }",
			"    }",
			"    return circuit",
			"}",
		},
	})
	step.Register(step.Listing{
		Name:  AlgHamiltonian,
		Title: "Hamiltonian backtracking",
		Lines: []string{
			"func hamiltonian(node int) bool {",
			"    path = append(path, node)",
			"    visited[node] = true",
			"    if len(path) == len(nodes) && (!circuit || hasEdge(node, path[0])) {",
			"        return true",
			"    }",
			"    for _, next := range neighbors(node) {",
			"        if !visited[next] {",
			"            if hamiltonian(next) {",
			"                return true",
			"            }",
			"        }",
			"    }",
			"    visited[node] = false",
			"    path = path[:len(path)-1]",
			"    return false",
			"}",
		},
	})
}
