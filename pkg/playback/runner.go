// Package playback is the boundary between hosts and the animated engines.
//
// A [Runner] owns one tree and one graph engine that share a step.Sink. It
// allows a single run at a time: a second request while a run is active is
// refused with BUSY. Highlight state is cleared before and after every run,
// each run gets a uuid, is logged and reported to the observability hooks.
//
// Runs that end in a reported outcome (NOT_FOUND, EMPTY_STRUCTURE, no trail)
// are recorded on the [Run] and are not returned as errors: the animation
// did its job. Only failures of the request itself come back as errors.
package playback

import (
	"context"
	"io"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// historySize is the number of finished runs kept by a Runner.
const historySize = 64

// Run describes one finished animation.
type Run struct {
	ID        string        `json:"id"`
	Algorithm string        `json:"algorithm"`
	Started   time.Time     `json:"started"`
	Duration  time.Duration `json:"duration"`

	// Outcome is the code of a reported outcome, empty on success.
	Outcome errors.Code `json:"outcome,omitempty"`
	Message string      `json:"message,omitempty"`

	Err error `json:"-"`
}

// OK reports whether the run ended without an outcome error.
func (r Run) OK() bool { return r.Err == nil }

// Target selects the engine a run or reset applies to.
type Target int

const (
	TargetTree Target = iota
	TargetGraph
)

func (t Target) String() string {
	if t == TargetGraph {
		return "graph"
	}
	return "tree"
}

// Runner serializes runs over a shared tree and graph engine.
type Runner struct {
	Tree   *bst.Tree
	Trail  *trail.Engine
	Logger *log.Logger

	// OnClear is called by Reset so the host can clear its transcript.
	OnClear func()

	busy    atomic.Bool
	mu      sync.Mutex
	sink    *step.Sink
	history []Run
}

// NewRunner creates a runner with an empty tree and graph reporting to sink.
// A nil logger discards log output.
func NewRunner(sink *step.Sink, logger *log.Logger) *Runner {
	if sink == nil {
		sink = step.Discard()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Tree:   bst.New(sink),
		Trail:  trail.New(graph.Graph{}, sink),
		Logger: logger,
		sink:   sink,
	}
}

// Sink returns the sink shared by both engines.
func (r *Runner) Sink() *step.Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sink
}

// SetSink replaces the sink of both engines. It fails while a run is active.
func (r *Runner) SetSink(sink *step.Sink) error {
	return r.idle("set sink", func() {
		if sink == nil {
			sink = step.Discard()
		}
		r.mu.Lock()
		r.sink = sink
		r.mu.Unlock()
		r.Tree.SetSink(sink)
		r.Trail.SetSink(sink)
	})
}

// Busy reports whether a run is in progress.
func (r *Runner) Busy() bool { return r.busy.Load() }

// Do runs fn as the algorithm named algorithm on the target engine.
// Reported outcomes are stored on the returned Run; other errors from fn are
// returned as well.
func (r *Runner) Do(ctx context.Context, target Target, algorithm string, fn func() error) (Run, error) {
	if !r.busy.CompareAndSwap(false, true) {
		observability.Run().OnRunRejected(ctx, algorithm)
		r.Logger.Warn("run rejected", "algorithm", algorithm, "reason", "busy")
		return Run{}, errors.New(errors.ErrCodeBusy, "another animation is running")
	}
	defer r.busy.Store(false)

	run := Run{ID: uuid.NewString(), Algorithm: algorithm, Started: time.Now()}
	logger := r.Logger.With("run", run.ID[:8], "algorithm", algorithm)
	logger.Debug("run started")
	observability.Run().OnRunStart(ctx, run.ID, algorithm)

	r.resetColors(target)
	err := fn()
	r.resetColors(target)

	run.Duration = time.Since(run.Started)
	run.Err = err
	if err != nil {
		run.Outcome = errors.GetCode(err)
		run.Message = errors.UserMessage(err)
	}
	observability.Run().OnRunComplete(ctx, run.ID, algorithm, run.Duration, err)
	r.record(run)

	switch {
	case err == nil:
		logger.Info("run complete", "duration", run.Duration)
	case errors.IsOutcome(err):
		logger.Info("run complete", "duration", run.Duration, "outcome", run.Outcome)
	default:
		logger.Error("run failed", "duration", run.Duration, "err", err)
		return run, err
	}
	return run, nil
}

// =============================================================================
// Tree operations
// =============================================================================

// Insert animates inserting v.
func (r *Runner) Insert(ctx context.Context, v int) (Run, error) {
	return r.Do(ctx, TargetTree, bst.AlgInsert, func() error {
		r.Tree.Insert(v)
		return nil
	})
}

// Delete animates deleting v.
func (r *Runner) Delete(ctx context.Context, v int) (Run, error) {
	return r.Do(ctx, TargetTree, bst.AlgDelete, func() error { return r.Tree.Delete(v) })
}

// Find animates searching for v.
func (r *Runner) Find(ctx context.Context, v int) (Run, error) {
	return r.Do(ctx, TargetTree, bst.AlgFind, func() error {
		_, err := r.Tree.Find(v)
		return err
	})
}

// InsertBalanced replaces the tree with a balanced tree of values.
func (r *Runner) InsertBalanced(ctx context.Context, values []int) (Run, error) {
	values = slices.Clone(values)
	return r.Do(ctx, TargetTree, bst.AlgBalanced, func() error {
		r.Tree.InsertBalanced(values)
		return nil
	})
}

// RandomTree replaces the tree with a balanced tree of n random values.
func (r *Runner) RandomTree(ctx context.Context, n int, rng *rand.Rand) (Run, error) {
	if n < 0 || n > bst.MaxRandomValues {
		return Run{}, errors.New(errors.ErrCodeInvalidInput, "node count must be within [0, %d], got %d", bst.MaxRandomValues, n)
	}
	return r.Do(ctx, TargetTree, bst.AlgBalanced, func() error {
		r.Tree.InsertBalanced(bst.RandomValues(n, rng))
		r.Sink().Emit("// balanced random tree generation complete")
		return nil
	})
}

// =============================================================================
// Graph operations
// =============================================================================

// LoadGraph validates g and makes it the graph of the next trail run.
func (r *Runner) LoadGraph(g graph.Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return r.idle("load graph", func() {
		r.Trail.SetGraph(g)
		r.Sink().Redraw(r.Trail.Scene())
	})
}

// Search animates a trail search on the loaded graph.
func (r *Runner) Search(ctx context.Context, mode trail.Mode, kind trail.Kind) (trail.Result, Run, error) {
	var res trail.Result
	run, err := r.Do(ctx, TargetGraph, mode.String(), func() error {
		var err error
		res, err = r.Trail.Run(mode, kind)
		return err
	})
	return res, run, err
}

// =============================================================================
// Housekeeping
// =============================================================================

// Reset clears the highlight state of the target engine and asks the host
// to clear its transcript. The tree and graph themselves are kept.
func (r *Runner) Reset(target Target) error {
	return r.idle("reset", func() {
		r.resetColors(target)
		if r.OnClear != nil {
			r.OnClear()
		}
		r.Sink().Redraw(r.Scene(target))
	})
}

// Scene returns the current scene of the target engine.
func (r *Runner) Scene(target Target) step.Scene {
	if target == TargetGraph {
		return r.Trail.Scene()
	}
	return r.Tree.Scene()
}

// History returns finished runs, oldest first.
func (r *Runner) History() []Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.history)
}

// Last returns the most recent run.
func (r *Runner) Last() (Run, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return Run{}, false
	}
	return r.history[len(r.history)-1], true
}

func (r *Runner) record(run Run) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, run)
	if len(r.history) > historySize {
		r.history = slices.Delete(r.history, 0, len(r.history)-historySize)
	}
}

// resetColors clears the highlight state of target without redrawing.
func (r *Runner) resetColors(target Target) {
	if target == TargetGraph {
		r.Trail.State().Reset()
		return
	}
	r.Tree.ResetColors()
}

// idle runs fn while holding the busy flag, failing with BUSY if a run is
// already active.
func (r *Runner) idle(what string, fn func()) error {
	if !r.busy.CompareAndSwap(false, true) {
		r.Logger.Warn("request rejected", "op", what, "reason", "busy")
		return errors.New(errors.ErrCodeBusy, "cannot %s while an animation is running", what)
	}
	defer r.busy.Store(false)
	fn()
	return nil
}
