package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/observability"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("%s %s: content type %q", method, path, ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	if code := do(t, srv, "GET", "/healthz", "", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["status"] != "ok" || body["version"] == "" {
		t.Errorf("body = %v", body)
	}
}

func TestPresets(t *testing.T) {
	srv := newTestServer(t)
	var presets []PresetInfo
	if code := do(t, srv, "GET", "/presets", "", &presets); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(presets) != 8 {
		t.Fatalf("got %d presets", len(presets))
	}
	if presets[0].Key != "euler-circuit-undirected" || len(presets[0].Graph.Edges) == 0 {
		t.Errorf("first preset = %+v", presets[0])
	}
}

func TestListings(t *testing.T) {
	srv := newTestServer(t)
	var names []string
	do(t, srv, "GET", "/listings", "", &names)
	for _, want := range []string{"insert", "delete", "find", "balanced", "hamiltonian"} {
		found := false
		for _, n := range names {
			found = found || n == want
		}
		if !found {
			t.Errorf("listing %q missing from %v", want, names)
		}
	}

	var l struct {
		Name  string   `json:"name"`
		Lines []string `json:"lines"`
	}
	if code := do(t, srv, "GET", "/listings/insert", "", &l); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if l.Name != "insert" || len(l.Lines) == 0 {
		t.Errorf("listing = %+v", l)
	}

	var e errorBody
	if code := do(t, srv, "GET", "/listings/bogus", "", &e); code != http.StatusNotFound || e.Code != errors.ErrCodeNotFound {
		t.Errorf("bogus listing: %d %+v", code, e)
	}
}

func TestTreeRuns(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"values": [1, 3, 4, 5, 8],
		"ops": [
			{"op": "delete", "value": 3},
			{"op": "find", "value": 3},
			{"op": "insert", "value": 6}
		]
	}`
	var resp TreeResponse
	if code := do(t, srv, "POST", "/tree/runs", body, &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(resp.Runs) != 3 {
		t.Fatalf("got %d runs", len(resp.Runs))
	}

	del, find, ins := resp.Runs[0], resp.Runs[1], resp.Runs[2]
	if del.Outcome != "" || del.Algorithm != "delete" || del.Frames == 0 || del.AnimationMS == 0 {
		t.Errorf("delete = %+v", del)
	}
	if find.Outcome != errors.ErrCodeNotFound {
		t.Errorf("find outcome = %q, want NOT_FOUND", find.Outcome)
	}
	if len(find.Transcript) == 0 || len(find.Trace) == 0 {
		t.Errorf("find report is empty: %+v", find)
	}
	for _, tl := range find.Trace {
		if tl.Algorithm != "find" {
			t.Errorf("find traced %q", tl.Algorithm)
		}
	}
	if ins.ID == "" || ins.ID == del.ID {
		t.Errorf("run ids = %q, %q", del.ID, ins.ID)
	}

	want := []int{1, 4, 5, 6, 8}
	if len(resp.Tree) != len(want) {
		t.Fatalf("tree = %v, want %v", resp.Tree, want)
	}
	for i := range want {
		if resp.Tree[i] != want[i] {
			t.Fatalf("tree = %v, want %v", resp.Tree, want)
		}
	}
}

func TestTreeRunsErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"bad json", `{"ops": [`, errors.ErrCodeInvalidFormat},
		{"unknown field", `{"ops": [{"op": "find"}], "colour": 1}`, errors.ErrCodeInvalidFormat},
		{"no ops", `{"ops": []}`, errors.ErrCodeInvalidInput},
		{"unknown op", `{"ops": [{"op": "rotate"}]}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e errorBody
			status := do(t, srv, "POST", "/tree/runs", tt.body, &e)
			if status != http.StatusBadRequest || e.Code != tt.code {
				t.Errorf("got %d %+v, want 400 %s", status, e, tt.code)
			}
		})
	}
}

func TestGraphRuns(t *testing.T) {
	srv := newTestServer(t)

	var resp GraphResponse
	body := `{"preset": "hamilton-circuit-directed", "mode": "hamiltonian", "kind": "circuit", "dot": true}`
	if code := do(t, srv, "POST", "/graph/runs", body, &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Result == nil || resp.Result.String() != "0 -> 1 -> 2 -> 3 -> 0" {
		t.Errorf("result = %+v", resp.Result)
	}
	if !strings.HasPrefix(resp.DOT, "digraph G {") || !strings.Contains(resp.DOT, "#2e8b57") {
		t.Errorf("dot = %s", resp.DOT)
	}
	if resp.Report.Algorithm != "hamiltonian" || len(resp.Report.Transcript) == 0 {
		t.Errorf("report = %+v", resp.Report)
	}

	// A reported outcome is a successful request without a result.
	resp = GraphResponse{}
	body = `{"graph": {"directed": false, "nodes": [{"id": 0}, {"id": 1}, {"id": 2}, {"id": 3}], "edges": [{"from": 0, "to": 1}, {"from": 0, "to": 2}, {"from": 0, "to": 3}]}, "mode": "euler", "kind": "path"}`
	if code := do(t, srv, "POST", "/graph/runs", body, &resp); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if resp.Result != nil || resp.Report.Outcome != errors.ErrCodeNoEulerianTrail {
		t.Errorf("star graph: result %+v, outcome %q", resp.Result, resp.Report.Outcome)
	}

	// Random graphs are reproducible from the seed.
	var a, b GraphResponse
	body = `{"random": {"seed": 7, "directed": true}, "mode": "eulerian", "kind": "circuit"}`
	do(t, srv, "POST", "/graph/runs", body, &a)
	do(t, srv, "POST", "/graph/runs", body, &b)
	ja, _ := json.Marshal(a.Graph)
	jb, _ := json.Marshal(b.Graph)
	if !bytes.Equal(ja, jb) || len(a.Graph.Nodes) < 5 {
		t.Errorf("random graphs differ or too small:\n%s\n%s", ja, jb)
	}
}

func TestGraphRunsErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"bad mode", `{"preset": "0", "mode": "dijkstra", "kind": "path"}`, errors.ErrCodeInvalidMode},
		{"bad kind", `{"preset": "0", "mode": "euler", "kind": "loop"}`, errors.ErrCodeInvalidMode},
		{"no graph", `{"mode": "euler", "kind": "path"}`, errors.ErrCodeInvalidInput},
		{"two graphs", `{"preset": "0", "random": {"seed": 1}, "mode": "euler", "kind": "path"}`, errors.ErrCodeInvalidInput},
		{"unknown preset", `{"preset": "nope", "mode": "euler", "kind": "path"}`, errors.ErrCodeInvalidInput},
		{"self loop", `{"graph": {"nodes": [{"id": 0}], "edges": [{"from": 0, "to": 0}]}, "mode": "euler", "kind": "path"}`, errors.ErrCodeInvalidGraph},
		{"too big", `{"graph": {"nodes": [` + strings.Repeat(`{"id": 1},`, maxNodes) + `{"id": 2}]}, "mode": "euler", "kind": "path"}`, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e errorBody
			status := do(t, srv, "POST", "/graph/runs", tt.body, &e)
			if status != http.StatusBadRequest || e.Code != tt.code {
				t.Errorf("got %d %+v, want 400 %s", status, e, tt.code)
			}
		})
	}
}

type countingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu        sync.Mutex
	requests  int
	responses map[int]int
}

func (h *countingHTTPHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *countingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses[status]++
}

func TestHTTPHooks(t *testing.T) {
	hooks := &countingHTTPHooks{responses: map[int]int{}}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	srv := newTestServer(t)
	do(t, srv, "GET", "/healthz", "", nil)
	do(t, srv, "GET", "/listings/bogus", "", nil)

	// OnResponse runs after the body is flushed, so the client can get
	// ahead of it.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hooks.mu.Lock()
		done := hooks.responses[200] == 1 && hooks.responses[404] == 1
		requests, responses := hooks.requests, hooks.responses
		hooks.mu.Unlock()
		if done {
			if requests != 2 {
				t.Errorf("hooks saw %d requests", requests)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("hooks saw %d requests, responses %v", requests, responses)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[errors.Code]int{
		errors.ErrCodeInvalidInput: http.StatusBadRequest,
		errors.ErrCodeBusy:         http.StatusConflict,
		errors.ErrCodeNotFound:     http.StatusNotFound,
		errors.ErrCodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := statusFor(code); got != want {
			t.Errorf("statusFor(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestPresetDiagram(t *testing.T) {
	srv := newTestServer(t)

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return resp, string(body)
	}

	path := "/presets/hamilton-circuit-directed/diagram?format=dot&mode=hamiltonian&kind=circuit"
	first, body := get(path)
	if first.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", first.StatusCode, body)
	}
	if ct := first.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("content type %q", ct)
	}
	if !strings.HasPrefix(body, "digraph G {") || !strings.Contains(body, "#2e8b57") {
		t.Errorf("trail not marked:\n%s", body)
	}
	if first.Header.Get("X-Cache") != "miss" {
		t.Errorf("first X-Cache = %q", first.Header.Get("X-Cache"))
	}

	second, again := get(path)
	if second.Header.Get("X-Cache") != "hit" || again != body {
		t.Errorf("second request: X-Cache = %q, same body %v", second.Header.Get("X-Cache"), again == body)
	}

	plain, plainBody := get("/presets/0/diagram?format=dot")
	if plain.StatusCode != http.StatusOK || strings.Contains(plainBody, "#2e8b57") {
		t.Errorf("unsolved diagram: %d\n%s", plain.StatusCode, plainBody)
	}

	svg, svgBody := get("/presets/euler-path-undirected/diagram")
	if svg.StatusCode != http.StatusOK || svg.Header.Get("Content-Type") != "image/svg+xml" || !strings.Contains(svgBody, "<svg") {
		t.Errorf("svg diagram: %d %q", svg.StatusCode, svg.Header.Get("Content-Type"))
	}
}

func TestPresetDiagramErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/presets/nope/diagram", http.StatusNotFound, errors.ErrCodeNotFound},
		{"/presets/0/diagram?format=gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/presets/0/diagram?format=png", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"/presets/0/diagram?mode=dfs", http.StatusBadRequest, errors.ErrCodeInvalidMode},
		{"/presets/0/diagram?mode=eulerian&kind=loop", http.StatusBadRequest, errors.ErrCodeInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var body struct {
				Code errors.Code `json:"code"`
			}
			if status := do(t, srv, "GET", tt.path, "", &body); status != tt.status || body.Code != tt.code {
				t.Errorf("got %d %s, want %d %s", status, body.Code, tt.status, tt.code)
			}
		})
	}
}
