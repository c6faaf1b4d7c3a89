package trail

import (
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/step"
)

// drawUnits is the pause after a visible change to the highlight state.
const drawUnits = 2.5

// Engine runs trail searches on one graph.
//
// An Engine is not safe for concurrent use and holds no locks; hosts must
// not start a run while another is in progress.
type Engine struct {
	g     graph.Graph
	state State
	sink  *step.Sink
}

// New returns an engine for g that reports through sink. A nil sink is
// replaced by [step.Discard].
func New(g graph.Graph, sink *step.Sink) *Engine {
	e := &Engine{g: g}
	e.SetSink(sink)
	return e
}

// SetSink replaces the sink used by subsequent runs.
func (e *Engine) SetSink(sink *step.Sink) {
	if sink == nil {
		sink = step.Discard()
	}
	e.sink = sink
}

// SetGraph replaces the graph and clears the highlight state.
func (e *Engine) SetGraph(g graph.Graph) {
	e.g = g
	e.state.Reset()
}

// Graph returns the graph the engine runs on.
func (e *Engine) Graph() graph.Graph { return e.g }

// State returns the live highlight state.
func (e *Engine) State() *State { return &e.state }

// Scene returns a renderable view of the graph and its highlight state.
func (e *Engine) Scene() Scene { return Scene{Graph: &e.g, State: &e.state} }

// ResetColors clears the highlight state and redraws.
func (e *Engine) ResetColors() {
	e.state.Reset()
	e.redraw(0)
}

// Run dispatches to [Engine.Eulerian] or [Engine.Hamiltonian].
func (e *Engine) Run(mode Mode, kind Kind) (Result, error) {
	switch mode {
	case Eulerian:
		return e.Eulerian(kind)
	case Hamiltonian:
		return e.Hamiltonian(kind)
	}
	return Result{}, errors.New(errors.ErrCodeInvalidMode, "unknown mode %d", mode)
}

// begin validates the graph and clears the highlight state.
func (e *Engine) begin() error {
	e.state.Reset()
	if len(e.g.Nodes) == 0 {
		e.say("// the graph has no nodes")
		return errors.New(errors.ErrCodeInvalidInput, "graph has no nodes")
	}
	if err := e.g.Validate(); err != nil {
		e.say("// " + errors.UserMessage(err))
		return err
	}
	e.redraw(0)
	return nil
}

func (e *Engine) step(alg string, line int, text string, units float64) {
	e.sink.Step(step.Step{Algorithm: alg, Line: line, Text: text, Scene: e.Scene(), Units: units})
}

func (e *Engine) redraw(units float64) {
	e.sink.Step(step.Step{Line: step.NoLine, Scene: e.Scene(), Units: units})
}

func (e *Engine) say(text string) {
	e.sink.Step(step.Step{Line: step.NoLine, Text: text})
}
