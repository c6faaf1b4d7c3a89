package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
)

func TestGraphCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"hamiltonian circuit",
			[]string{"--preset", "hamilton-circuit-directed", "--mode", "hamiltonian", "--kind", "circuit"},
			"0 -> 1 -> 2 -> 3 -> 0",
		},
		{
			"eulerian path",
			[]string{"--preset", "euler-path-directed", "-m", "euler", "-k", "path"},
			"0 -> 1 -> 2 -> 3",
		},
		{
			"preset by index",
			[]string{"--preset", "7", "--mode", "hamiltonian"},
			"0 -> 1 -> 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"graph", "--fast"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestGraphCommandNoTrail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "star.json")
	star := graph.New(4, false, graph.Edge{From: 0, To: 1}, graph.Edge{From: 0, To: 2}, graph.Edge{From: 0, To: 3})
	if err := graph.WriteGraphFile(star, path); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "graph", "--fast", "--file", path, "--mode", "eulerian")
	if err != nil {
		t.Fatalf("a missing trail is an outcome, not a failure: %v", err)
	}
	if !strings.Contains(out, string(errors.ErrCodeNoEulerianTrail)) {
		t.Errorf("outcome not reported:\n%s", out)
	}
	if !strings.Contains(out, "star") {
		t.Errorf("graph name not taken from the file name:\n%s", out)
	}
}

func TestGraphCommandRandomAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.toml")
	if _, err := execute(t, "graph", "--fast", "--random", "--seed", "3", "--save", path); err != nil {
		t.Fatal(err)
	}
	saved, err := graph.ReadGraphFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := graph.Random(graph.DefaultRandomOptions(), graph.NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Nodes) != len(want.Nodes) || len(saved.Edges) != len(want.Edges) {
		t.Errorf("saved %d nodes/%d edges, want %d/%d", len(saved.Nodes), len(saved.Edges), len(want.Nodes), len(want.Edges))
	}
}

func TestGraphCommandErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"nodes":[{"id":0}],"edges":[{"from":0,"to":5}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad mode", []string{"--mode", "dijkstra"}, errors.ErrCodeInvalidMode},
		{"bad kind", []string{"--kind", "loop"}, errors.ErrCodeInvalidMode},
		{"unknown preset", []string{"--preset", "nope"}, errors.ErrCodeInvalidInput},
		{"two sources", []string{"--preset", "0", "--random"}, errors.ErrCodeInvalidInput},
		{"invalid file", []string{"--file", bad}, errors.ErrCodeInvalidGraph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"graph", "--fast"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}
