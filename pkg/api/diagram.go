package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/render/dot"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// Diagram cache bounds.
const (
	maxDiagrams = 64
	diagramTTL  = time.Hour
)

var diagramTypes = map[dot.Format]string{
	dot.FormatSVG: "image/svg+xml",
	dot.FormatDOT: "text/vnd.graphviz; charset=utf-8",
}

// GET /presets/{key}/diagram?format=svg|dot&mode=eulerian&kind=circuit
//
// With mode set, the trail found is marked; a graph without one is drawn
// unmarked.
func (s *Server) presetDiagram(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	g, err := graph.Preset(key)
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no preset %q", key))
		return
	}

	q := r.URL.Query()
	format := dot.FormatSVG
	if f := q.Get("format"); f != "" {
		if format, err = dot.ParseFormat(f); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	contentType, ok := diagramTypes[format]
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat, "the API serves svg and dot, not %s", format))
		return
	}

	st := &trail.State{}
	if q.Get("mode") != "" {
		if st, err = solve(r.Context(), g, q.Get("mode"), q.Get("kind")); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	scene := trail.Scene{Graph: &g, State: st}
	opts := dot.Options{Title: g.Name}

	src, err := dot.ToDOT(scene, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ck := s.keyer.ArtifactKey(cache.Hash([]byte(src)), cache.ArtifactKeyOpts{Format: string(format), Title: opts.Title})
	data, hit, err := cache.GetOrBuild(r.Context(), s.diagrams, ck, "diagram", diagramTTL, func() ([]byte, error) {
		return dot.Render(r.Context(), scene, format, opts)
	})
	if err != nil {
		if data == nil {
			s.writeError(w, r, err)
			return
		}
		s.Logger.Warn("diagram cache write failed", "err", err)
	}

	w.Header().Set("Content-Type", contentType)
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.Logger.Warn("write diagram", "err", err)
	}
}

// solve runs a silent search and returns the state with the trail marked.
func solve(ctx context.Context, g graph.Graph, mode, kind string) (*trail.State, error) {
	m, err := trail.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = trail.Path.String()
	}
	k, err := trail.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	runner := playback.NewRunner(nil, nil)
	if err := runner.LoadGraph(g); err != nil {
		return nil, err
	}
	res, run, err := runner.Search(ctx, m, k)
	if err != nil {
		return nil, err
	}
	st := &trail.State{}
	if run.OK() {
		st.FinalNodes, st.FinalEdges = res.Nodes, res.Edges
	}
	return st, nil
}
