package step

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultUnit is the duration of one pacing unit.
const DefaultUnit = 200 * time.Millisecond

// BranchUnits is the pause after a branch decision, long enough to read the
// narrated comparison.
const BranchUnits = 5

// NoLine leaves the code tracer untouched for a step.
const NoLine = -1

// Emitter appends a human-readable line to the running transcript.
type Emitter interface {
	Emit(text string)
}

// Tracer highlights line (zero-based) of the listing registered as algorithm.
type Tracer interface {
	Highlight(algorithm string, line int)
}

// Pacer suspends the calling engine for at least d. A zero d must return as
// soon as the scheduler allows.
type Pacer interface {
	Delay(d time.Duration)
}

// Scene is a renderable view of a structure and its highlight state.
// Scenes reference live engine state and are only valid for the duration of
// the Redraw call that receives them.
type Scene interface {
	// Kind names the structure, e.g. "tree" or "graph".
	Kind() string
}

// Renderer redraws the whole scene. Implementations must be idempotent and
// must not retain the scene after returning.
type Renderer interface {
	Redraw(scene Scene)
}

// EmitterFunc adapts a function to [Emitter].
type EmitterFunc func(text string)

// Emit calls f(text).
func (f EmitterFunc) Emit(text string) { f(text) }

// TracerFunc adapts a function to [Tracer].
type TracerFunc func(algorithm string, line int)

// Highlight calls f(algorithm, line).
func (f TracerFunc) Highlight(algorithm string, line int) { f(algorithm, line) }

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(scene Scene)

// Redraw calls f(scene).
func (f RendererFunc) Redraw(scene Scene) { f(scene) }

// Step is one decision point of an instrumented algorithm.
type Step struct {
	Algorithm string  // listing name passed to the tracer
	Line      int     // listing line, or NoLine
	Text      string  // narration; empty emits nothing
	Scene     Scene   // scene to redraw; nil skips the redraw
	Units     float64 // pause length in units of Sink.Unit
}

// Sink bundles the four capabilities an engine reports through.
type Sink struct {
	Emitter  Emitter
	Tracer   Tracer
	Pacer    Pacer
	Renderer Renderer

	// Unit is the length of one pacing unit. Zero means DefaultUnit.
	Unit time.Duration

	// Quiet requests zero-length delays (fast replay).
	Quiet bool
}

// Discard returns a sink that drops narration and never sleeps.
func Discard() *Sink {
	return &Sink{Pacer: Instant{}, Quiet: true}
}

// Step performs the side effects of st in order: emit, highlight, redraw,
// then pause.
func (s *Sink) Step(st Step) {
	if st.Text != "" {
		s.Emit("%s", st.Text)
	}
	if st.Line != NoLine {
		s.Highlight(st.Algorithm, st.Line)
	}
	if st.Scene != nil {
		s.Redraw(st.Scene)
	}
	s.Pause(st.Units)
}

// Emit formats and emits a narration line.
func (s *Sink) Emit(format string, args ...any) {
	if s == nil || s.Emitter == nil {
		return
	}
	s.Emitter.Emit(fmt.Sprintf(format, args...))
}

// Highlight forwards to the tracer.
func (s *Sink) Highlight(algorithm string, line int) {
	if s == nil || s.Tracer == nil {
		return
	}
	s.Tracer.Highlight(algorithm, line)
}

// Redraw forwards to the renderer.
func (s *Sink) Redraw(scene Scene) {
	if s == nil || s.Renderer == nil {
		return
	}
	s.Renderer.Redraw(scene)
}

// Pause asks the pacer for units × Unit, or zero when the sink is quiet.
func (s *Sink) Pause(units float64) {
	if s == nil || s.Pacer == nil {
		return
	}
	s.Pacer.Delay(s.Duration(units))
}

// Duration converts units to the delay the sink would request.
func (s *Sink) Duration(units float64) time.Duration {
	if s == nil || s.Quiet || units <= 0 {
		return 0
	}
	unit := s.Unit
	if unit <= 0 {
		unit = DefaultUnit
	}
	return time.Duration(units * float64(unit))
}

// Writer is an [Emitter] that writes each narration line to W.
type Writer struct {
	W io.Writer

	mu sync.Mutex
}

// Emit writes text followed by a newline.
func (w *Writer) Emit(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.W, text)
}

// Multi fans a single emitted line out to several emitters.
type Multi []Emitter

// Emit forwards text to every non-nil emitter.
func (m Multi) Emit(text string) {
	for _, e := range m {
		if e != nil {
			e.Emit(text)
		}
	}
}
