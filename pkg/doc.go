// Package pkg provides the core libraries of algoviz, an animated visualizer
// for a binary search tree and for Eulerian and Hamiltonian trails.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Engines - [bst] and [trail] run the algorithms and report every step
//  2. Instrumentation - [step] defines the emit, highlight, redraw and pause
//     contract the engines report through
//  3. Presentation - [layout], [render/text] and [render/dot] turn scenes into
//     terminal frames or Graphviz diagrams
//  4. Hosting - [playback] guards runs, [api] serves recorded runs over HTTP,
//     [config] and [cache] hold settings and rendered artifacts
//
// # Architecture
//
// A run flows through the packages like this:
//
//	host (CLI, TUI, HTTP)
//	         ↓
//	    [playback] Runner (one run at a time, uuid, outcome)
//	         ↓
//	    [bst] / [trail] engine
//	         ↓
//	    [step] Sink: emit → highlight → redraw → pause
//	         ↓
//	    [render/text] frame, [step] Recorder, or [render/dot] snapshot
//
// # Quick Start
//
// Build a tree and search it, printing the narration:
//
//	sink := &step.Sink{Emitter: &step.Writer{W: os.Stdout}, Pacer: step.Instant{}, Quiet: true}
//	tree := bst.New(sink)
//	for _, v := range []int{5, 3, 8} {
//	    tree.Insert(v)
//	}
//	_, err := tree.Find(3)
//
// Find an Eulerian circuit in a predefined graph:
//
//	g, _ := graph.Preset("euler-circuit-undirected")
//	res, err := trail.New(g, nil).Run(trail.Eulerian, trail.Circuit)
//	fmt.Println(res) // 0 -> 1 -> ...
//
// # Errors
//
// Every package reports failures through [errors]. Outcomes an animation
// is expected to reach, such as NOT_FOUND or NO_EULERIAN_TRAIL, carry their
// own codes so hosts can show them without treating them as failures.
//
// [bst]: github.com/matzehuels/algoviz/pkg/bst
// [trail]: github.com/matzehuels/algoviz/pkg/trail
// [step]: github.com/matzehuels/algoviz/pkg/step
// [layout]: github.com/matzehuels/algoviz/pkg/layout
// [render/text]: github.com/matzehuels/algoviz/pkg/render/text
// [render/dot]: github.com/matzehuels/algoviz/pkg/render/dot
// [playback]: github.com/matzehuels/algoviz/pkg/playback
// [api]: github.com/matzehuels/algoviz/pkg/api
// [config]: github.com/matzehuels/algoviz/pkg/config
// [cache]: github.com/matzehuels/algoviz/pkg/cache
// [errors]: github.com/matzehuels/algoviz/pkg/errors
package pkg
