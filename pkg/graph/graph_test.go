package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/algoviz/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Graph
		wantErr string
	}{
		{"Empty", Graph{}, ""},
		{"Triangle", New(3, false, Edge{0, 1}, Edge{1, 2}, Edge{2, 0}), ""},
		{"DuplicateNode", Graph{Nodes: []Node{{1}, {1}}}, "duplicate node 1"},
		{"UnknownEndpoint", New(2, true, Edge{0, 5}), "unknown node"},
		{"SelfLoop", New(2, false, Edge{1, 1}), "self-loop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want %q", err, tt.wantErr)
			}
			if !errors.Is(err, errors.ErrCodeInvalidGraph) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidGraph)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	edges := []Edge{{0, 1}, {2, 0}, {0, 3}, {1, 2}}
	tests := []struct {
		name     string
		directed bool
		id       int
		want     []int
	}{
		{"UndirectedDeclarationOrder", false, 0, []int{1, 2, 3}},
		{"DirectedOutgoingOnly", true, 0, []int{1, 3}},
		{"DirectedSink", true, 3, nil},
		{"UndirectedLeaf", false, 3, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(4, tt.directed, edges...)
			if got := g.Neighbors(tt.id); !slices.Equal(got, tt.want) {
				t.Errorf("Neighbors(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestSameEdgeAndHasEdge(t *testing.T) {
	und := New(3, false, Edge{0, 1})
	dir := New(3, true, Edge{0, 1})

	if !und.SameEdge(Edge{0, 1}, Edge{1, 0}) {
		t.Error("undirected edges should compare symmetrically")
	}
	if dir.SameEdge(Edge{0, 1}, Edge{1, 0}) {
		t.Error("directed edges should respect direction")
	}
	if !und.HasEdge(1, 0) || !dir.HasEdge(0, 1) || dir.HasEdge(1, 0) {
		t.Error("HasEdge does not respect directedness")
	}
	if und.HasEdge(0, 2) {
		t.Error("HasEdge(0, 2) on a graph without that edge")
	}
}

func TestDegrees(t *testing.T) {
	edges := []Edge{{0, 1}, {1, 2}, {2, 0}, {0, 3}}

	und := New(4, false, edges...).Degrees()
	if und[0] != (Degree{3, 3}) || und[3] != (Degree{1, 1}) {
		t.Errorf("undirected degrees = %v", und)
	}

	dir := New(4, true, edges...).Degrees()
	if dir[0] != (Degree{In: 1, Out: 2}) || dir[0].Balance() != 1 {
		t.Errorf("node 0 degree = %+v", dir[0])
	}
	if dir[3] != (Degree{In: 1}) || dir[3].Balance() != -1 {
		t.Errorf("node 3 degree = %+v", dir[3])
	}

	isolated := New(2, true).Degrees()
	if _, ok := isolated[1]; !ok {
		t.Error("isolated nodes should have an entry")
	}
}

func TestEdgesConnected(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		want bool
	}{
		{"NoEdges", New(3, false), true},
		{"IsolatedNodeIgnored", New(4, false, Edge{0, 1}, Edge{1, 2}), true},
		{"TwoComponents", New(4, false, Edge{0, 1}, Edge{2, 3}), false},
		{"DirectedWeak", New(3, true, Edge{0, 1}, Edge{2, 1}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.EdgesConnected(); got != tt.want {
				t.Errorf("EdgesConnected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIDsSorted(t *testing.T) {
	g := Graph{Nodes: []Node{{3}, {1}, {2}}}
	if got := g.IDs(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("IDs() = %v", got)
	}
	if !g.HasNode(2) || g.HasNode(0) {
		t.Error("HasNode mismatch")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := New(2, false, Edge{0, 1})
	c := g.Clone()
	c.Edges[0].To = 0
	c.Nodes[0].ID = 9
	if g.Edges[0].To != 1 || g.Nodes[0].ID != 0 {
		t.Error("Clone shares slices with the original")
	}
}

func TestPresets(t *testing.T) {
	gs := Presets()
	keys := PresetKeys()
	if len(gs) != 8 || len(keys) != 8 {
		t.Fatalf("got %d presets and %d keys, want 8", len(gs), len(keys))
	}
	for i, g := range gs {
		if err := g.Validate(); err != nil {
			t.Errorf("%s: %v", keys[i], err)
		}
		if g.Name == "" {
			t.Errorf("%s: missing name", keys[i])
		}
		if strings.HasSuffix(keys[i], "-directed") != g.Directed {
			t.Errorf("%s: Directed = %v", keys[i], g.Directed)
		}
	}

	byKey, err := Preset("hamilton-path-directed")
	if err != nil {
		t.Fatal(err)
	}
	byIndex, err := Preset("7")
	if err != nil {
		t.Fatal(err)
	}
	if byKey.Name != byIndex.Name {
		t.Errorf("key and index lookups differ: %q vs %q", byKey.Name, byIndex.Name)
	}

	byKey.Edges[0].From = 2
	again, _ := Preset("hamilton-path-directed")
	if again.Edges[0].From != 0 {
		t.Error("Preset returned shared state")
	}

	for _, bad := range []string{"nope", "8", "-1"} {
		if _, err := Preset(bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Preset(%q) = %v, want INVALID_INPUT", bad, err)
		}
	}
}

func TestRandom(t *testing.T) {
	opts := DefaultRandomOptions()
	for _, directed := range []bool{false, true} {
		opts.Directed = directed
		rng := NewRand(DefaultSeed)
		for range 50 {
			g, err := Random(opts, rng)
			if err != nil {
				t.Fatal(err)
			}
			if err := g.Validate(); err != nil {
				t.Fatalf("invalid random graph: %v", err)
			}
			if n := len(g.Nodes); n < opts.MinNodes || n > opts.MaxNodes {
				t.Errorf("node count %d outside bounds", n)
			}
			if m := len(g.Edges); m < opts.MinEdges || m > opts.MaxEdges {
				t.Errorf("edge count %d outside bounds", m)
			}
			for i, a := range g.Edges {
				for _, b := range g.Edges[i+1:] {
					if g.SameEdge(a, b) {
						t.Errorf("repeated edge %v", a)
					}
				}
			}
			if g.Directed != directed {
				t.Errorf("Directed = %v, want %v", g.Directed, directed)
			}
		}
	}
}

func TestRandomCapsEdges(t *testing.T) {
	g, err := Random(RandomOptions{MinNodes: 3, MaxNodes: 3, MinEdges: 10, MaxEdges: 10}, NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Edges) != 3 {
		t.Errorf("got %d edges, want 3 (all pairs of 3 nodes)", len(g.Edges))
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, _ := Random(DefaultRandomOptions(), NewRand(9))
	b, _ := Random(DefaultRandomOptions(), NewRand(9))
	if !slices.Equal(a.Edges, b.Edges) {
		t.Error("same seed produced different graphs")
	}
}

func TestRandomOptionsValidate(t *testing.T) {
	bad := []RandomOptions{
		{MinNodes: 0, MaxNodes: 3},
		{MinNodes: 4, MaxNodes: 3},
		{MinNodes: 1, MaxNodes: 3, MinEdges: 5, MaxEdges: 2},
	}
	for _, o := range bad {
		if _, err := Random(o, NewRand(1)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Random(%+v) = %v, want INVALID_INPUT", o, err)
		}
	}
}

func TestReadWriteGraph(t *testing.T) {
	g, _ := Preset("euler-path-directed")
	for _, format := range []Format{FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteGraph(g, &buf, format); err != nil {
				t.Fatal(err)
			}
			got, err := ReadGraph(&buf, format)
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != g.Name || got.Directed != g.Directed ||
				!slices.Equal(got.Nodes, g.Nodes) || !slices.Equal(got.Edges, g.Edges) {
				t.Errorf("round trip = %+v, want %+v", got, g)
			}
		})
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"MalformedJSON", `{"nodes": [`, FormatJSON, errors.ErrCodeInvalidFormat},
		{"MalformedTOML", `nodes = [`, FormatTOML, errors.ErrCodeInvalidFormat},
		{"UnknownFormat", `{}`, Format("yaml"), errors.ErrCodeInvalidFormat},
		{"SelfLoop", `{"nodes":[{"id":0}],"edges":[{"from":0,"to":0}]}`, FormatJSON, errors.ErrCodeInvalidGraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadGraph() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadGraphFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "square.toml")
	src := "directed = true\nnodes = [{ id = 0 }, { id = 1 }]\nedges = [{ from = 0, to = 1 }]\n"
	if err := os.WriteFile(tomlPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := ReadGraphFile(tomlPath)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "square" || !g.Directed || len(g.Edges) != 1 {
		t.Errorf("ReadGraphFile = %+v", g)
	}

	jsonPath := filepath.Join(dir, "out.json")
	if err := WriteGraphFile(g, jsonPath); err != nil {
		t.Fatal(err)
	}
	back, err := ReadGraphFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if back.Name != "square" {
		t.Errorf("name = %q, want square", back.Name)
	}

	if _, err := ReadGraphFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"g.toml": FormatTOML,
		"g.TOML": FormatTOML,
		"g.json": FormatJSON,
		"g":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
