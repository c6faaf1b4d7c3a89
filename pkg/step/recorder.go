package step

import (
	"runtime"
	"sync"
	"time"
)

// EventKind identifies which capability a recorded event went through.
type EventKind int

const (
	EventEmit EventKind = iota
	EventHighlight
	EventRedraw
	EventDelay
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEmit:
		return "emit"
	case EventHighlight:
		return "highlight"
	case EventRedraw:
		return "redraw"
	case EventDelay:
		return "delay"
	}
	return "unknown"
}

// Event is one call recorded by a [Recorder].
type Event struct {
	Kind      EventKind
	Text      string        // EventEmit
	Algorithm string        // EventHighlight
	Line      int           // EventHighlight
	SceneKind string        // EventRedraw
	Delay     time.Duration // EventDelay
}

// Recorder implements all four capabilities and keeps every call in order.
// Delays are recorded but not slept. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Sink returns a sink that reports everything to r.
func (r *Recorder) Sink(unit time.Duration) *Sink {
	return &Sink{Emitter: r, Tracer: r, Pacer: r, Renderer: r, Unit: unit}
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Emit records a narration line.
func (r *Recorder) Emit(text string) { r.add(Event{Kind: EventEmit, Text: text}) }

// Highlight records a tracer call.
func (r *Recorder) Highlight(algorithm string, line int) {
	r.add(Event{Kind: EventHighlight, Algorithm: algorithm, Line: line})
}

// Redraw records the kind of the scene that was drawn.
func (r *Recorder) Redraw(scene Scene) {
	r.add(Event{Kind: EventRedraw, SceneKind: scene.Kind()})
}

// Delay records d and yields.
func (r *Recorder) Delay(d time.Duration) {
	r.add(Event{Kind: EventDelay, Delay: d})
	runtime.Gosched()
}

// Events returns a copy of all recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Transcript returns the emitted narration lines in order.
func (r *Recorder) Transcript() []string {
	var out []string
	for _, e := range r.Events() {
		if e.Kind == EventEmit {
			out = append(out, e.Text)
		}
	}
	return out
}

// Lines returns the traced line numbers for algorithm in order.
func (r *Recorder) Lines(algorithm string) []int {
	var out []int
	for _, e := range r.Events() {
		if e.Kind == EventHighlight && e.Algorithm == algorithm {
			out = append(out, e.Line)
		}
	}
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Elapsed returns the sum of all requested delays.
func (r *Recorder) Elapsed() time.Duration {
	var total time.Duration
	for _, e := range r.Events() {
		if e.Kind == EventDelay {
			total += e.Delay
		}
	}
	return total
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
