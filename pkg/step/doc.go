// Package step defines the instrumentation contract shared by every
// animated algorithm in algoviz.
//
// An engine narrates its progress through four narrow capabilities:
//
//   - [Emitter] receives a human-readable line for the step log
//   - [Tracer] selects a line in a static pseudo-code [Listing]
//   - [Renderer] redraws the current [Scene] (structure plus highlight state)
//   - [Pacer] suspends the engine for the step's duration
//
// Engines never call these directly. They hold a single [Sink], which
// performs the four side effects of a step in a fixed order (emit, highlight,
// redraw, delay) so that everything a step shows is visible before the pacer
// yields. A nil component is skipped, which makes [Discard] a headless sink
// for tests and instant replays.
//
// # Pacing
//
// Delays are expressed in units of [Sink.Unit] (200ms by default). A quiet
// sink asks the pacer for zero-length delays; [Instant] and [Clock] both
// treat a zero delay as "yield to the scheduler and continue". [Clock]
// scales every delay by a speed factor that may change while a run is in
// progress.
//
// There is no cancellation: once started, a run proceeds to completion or to
// a reported terminal outcome.
package step
