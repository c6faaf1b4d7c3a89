// Package trail finds Eulerian and Hamiltonian trails in a graph, narrating
// every step through a [step.Sink].
//
// # Eulerian Trails
//
// [Engine.Eulerian] first checks the degree conditions for the requested
// [Kind]:
//
//   - directed circuit: every node has in-degree equal to out-degree
//   - directed path: exactly one node has out-in = 1 (the start), exactly one
//     has in-out = 1, all others are balanced
//   - undirected circuit: every node has even degree
//   - undirected path: zero or two nodes have odd degree
//
// All edges must also lie in one weakly connected component. If the graph
// does not qualify, the run ends with a NO_EULERIAN_TRAIL error and no
// partial result. Otherwise Hierholzer's algorithm walks a consumable copy
// of the adjacency lists with an explicit stack.
//
// # Hamiltonian Trails
//
// [Engine.Hamiltonian] runs an exhaustive backtracking search. Start nodes
// are tried in ascending ID order and neighbours in edge declaration order;
// the first trail found wins. The search is exponential in the worst case
// and meant for small graphs.
//
// # Highlight State
//
// While a run is in progress the engine maintains a [State]: the nodes and
// edges on the active stack or recursion path, and the nodes and edges of
// the committed result. The state is a presentation derivative only and is
// reset at the start of every run.
package trail
