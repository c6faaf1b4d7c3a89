// Package graph provides the graph model used by the trail engines.
//
// # Core Types
//
//   - [Graph]: integer-labelled nodes, an ordered edge list and a direction flag
//   - [Node], [Edge]: the structural types
//   - [Degree]: in/out degree of a node
//
// Adjacency is derived from the edge list on demand ([Graph.Neighbors]) and
// never stored, so the declaration order of edges is the order in which
// engines explore them.
//
// # Edge Equality
//
// In an undirected graph (a,b) and (b,a) are the same edge:
//
//	g.SameEdge(graph.Edge{From: 0, To: 1}, graph.Edge{From: 1, To: 0}) // true if !g.Directed
//
// # Sources
//
// Graphs come from three places:
//
//   - [Presets]: eight small demonstration graphs, one per combination of
//     Eulerian/Hamiltonian, path/circuit and directed/undirected
//   - [Random]: a seeded generator for 5 to 10 nodes and 7 to 15 edges
//   - files: [ReadGraphFile] accepts JSON and TOML
//
// # Serialization
//
// Graphs use a node-link format:
//
//	{
//	  "name": "triangle",
//	  "directed": false,
//	  "nodes": [{"id": 0}, {"id": 1}, {"id": 2}],
//	  "edges": [{"from": 0, "to": 1}, {"from": 1, "to": 2}, {"from": 2, "to": 0}]
//	}
//
// The same structure is accepted as TOML:
//
//	name = "triangle"
//	directed = false
//	nodes = [{ id = 0 }, { id = 1 }, { id = 2 }]
//	edges = [{ from = 0, to = 1 }, { from = 1, to = 2 }, { from = 2, to = 0 }]
//
// Every decoded graph is checked with [Graph.Validate].
package graph
