package api

import (
	"net/http"
	"strings"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/render/dot"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// TraceLine is one tracer call.
type TraceLine struct {
	Algorithm string `json:"algorithm"`
	Line      int    `json:"line"`
}

// Report is a finished run together with everything it showed.
type Report struct {
	playback.Run
	Transcript  []string    `json:"transcript"`
	Trace       []TraceLine `json:"trace"`
	Frames      int         `json:"frames"`
	AnimationMS int64       `json:"animation_ms"`
}

func report(run playback.Run, rec *step.Recorder) Report {
	rep := Report{
		Run:         run,
		Transcript:  rec.Transcript(),
		Trace:       []TraceLine{},
		Frames:      rec.Count(step.EventRedraw),
		AnimationMS: rec.Elapsed().Milliseconds(),
	}
	if rep.Transcript == nil {
		rep.Transcript = []string{}
	}
	for _, e := range rec.Events() {
		if e.Kind == step.EventHighlight {
			rep.Trace = append(rep.Trace, TraceLine{Algorithm: e.Algorithm, Line: e.Line})
		}
	}
	return rep
}

func codeOf(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}

// =============================================================================
// Presets
// =============================================================================

// PresetInfo describes a predefined graph.
type PresetInfo struct {
	Key   string      `json:"key"`
	Graph graph.Graph `json:"graph"`
}

// GET /presets
func (s *Server) presets(w http.ResponseWriter, r *http.Request) {
	keys := graph.PresetKeys()
	graphs := graph.Presets()
	out := make([]PresetInfo, len(keys))
	for i := range keys {
		out[i] = PresetInfo{Key: keys[i], Graph: graphs[i]}
	}
	s.writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// Tree runs
// =============================================================================

// TreeOp is one tree operation.
type TreeOp struct {
	Op     string `json:"op"`
	Value  int    `json:"value,omitempty"`
	Values []int  `json:"values,omitempty"`
}

// TreeRequest replays ops on a tree that starts balanced over Values.
type TreeRequest struct {
	Values []int    `json:"values,omitempty"`
	Ops    []TreeOp `json:"ops"`
}

// TreeResponse reports every op and the final tree.
type TreeResponse struct {
	Runs   []Report `json:"runs"`
	Tree   []int    `json:"tree"`
	Height int      `json:"height"`
}

// POST /tree/runs
func (s *Server) treeRuns(w http.ResponseWriter, r *http.Request) {
	var req TreeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateCount("ops", len(req.Ops), maxOps); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Values) > maxValues {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "at most %d initial values", maxValues))
		return
	}

	runner := playback.NewRunner(nil, s.Logger)
	runner.Tree.InsertBalanced(req.Values)

	rec := &step.Recorder{}
	if err := runner.SetSink(rec.Sink(s.Unit)); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := TreeResponse{Runs: make([]Report, 0, len(req.Ops))}
	for i, op := range req.Ops {
		rec.Reset()
		run, err := s.treeOp(r, runner, op)
		if err != nil {
			s.writeError(w, r, errors.New(codeOf(err), "op %d: %s", i, errors.UserMessage(err)))
			return
		}
		resp.Runs = append(resp.Runs, report(run, rec))
	}
	resp.Tree = runner.Tree.InOrder()
	if resp.Tree == nil {
		resp.Tree = []int{}
	}
	resp.Height = runner.Tree.Height()
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) treeOp(r *http.Request, runner *playback.Runner, op TreeOp) (playback.Run, error) {
	ctx := r.Context()
	switch strings.ToLower(op.Op) {
	case bst.AlgInsert:
		return runner.Insert(ctx, op.Value)
	case bst.AlgDelete:
		return runner.Delete(ctx, op.Value)
	case bst.AlgFind:
		return runner.Find(ctx, op.Value)
	case bst.AlgBalanced:
		if len(op.Values) > maxValues {
			return playback.Run{}, errors.New(errors.ErrCodeInvalidInput, "at most %d values", maxValues)
		}
		return runner.InsertBalanced(ctx, op.Values)
	}
	return playback.Run{}, errors.New(errors.ErrCodeInvalidInput, "unknown tree operation %q", op.Op)
}

// =============================================================================
// Graph runs
// =============================================================================

// RandomSpec asks for a generated graph.
type RandomSpec struct {
	Seed     uint64 `json:"seed"`
	Directed bool   `json:"directed"`
}

// GraphRequest selects a graph (exactly one of Preset, Graph, Random) and
// the search to run on it.
type GraphRequest struct {
	Preset string       `json:"preset,omitempty"`
	Graph  *graph.Graph `json:"graph,omitempty"`
	Random *RandomSpec  `json:"random,omitempty"`

	Mode string `json:"mode"`
	Kind string `json:"kind"`

	// DOT asks for Graphviz source of the graph with the result marked.
	DOT bool `json:"dot,omitempty"`
}

// GraphResponse reports the run and the trail found, if any.
type GraphResponse struct {
	Graph  graph.Graph   `json:"graph"`
	Result *trail.Result `json:"result,omitempty"`
	Report Report        `json:"report"`
	DOT    string        `json:"dot,omitempty"`
}

func (req GraphRequest) graph() (graph.Graph, error) {
	n := 0
	for _, set := range []bool{req.Preset != "", req.Graph != nil, req.Random != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return graph.Graph{}, errors.New(errors.ErrCodeInvalidInput, "specify exactly one of preset, graph or random")
	}
	switch {
	case req.Preset != "":
		return graph.Preset(req.Preset)
	case req.Random != nil:
		opts := graph.DefaultRandomOptions()
		opts.Directed = req.Random.Directed
		return graph.Random(opts, graph.NewRand(req.Random.Seed))
	}
	g := *req.Graph
	if err := errors.ValidateCount("nodes", len(g.Nodes), maxNodes); err != nil {
		return graph.Graph{}, err
	}
	if len(g.Edges) > maxEdges {
		return graph.Graph{}, errors.New(errors.ErrCodeInvalidInput, "at most %d edges", maxEdges)
	}
	return g, g.Validate()
}

// POST /graph/runs
func (s *Server) graphRuns(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	mode, err := trail.ParseMode(req.Mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := trail.ParseKind(req.Kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := req.graph()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := &step.Recorder{}
	runner := playback.NewRunner(rec.Sink(s.Unit), s.Logger)
	if err := runner.LoadGraph(g); err != nil {
		s.writeError(w, r, err)
		return
	}
	rec.Reset()

	res, run, err := runner.Search(r.Context(), mode, kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := GraphResponse{Graph: g, Report: report(run, rec)}
	if run.OK() {
		resp.Result = &res
	}
	if req.DOT {
		st := &trail.State{}
		if run.OK() {
			st.FinalNodes, st.FinalEdges = res.Nodes, res.Edges
		}
		src, err := dot.ToDOT(trail.Scene{Graph: &g, State: st}, dot.Options{Title: g.Name})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.DOT = src
	}
	s.writeJSON(w, http.StatusOK, resp)
}
