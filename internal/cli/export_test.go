package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/algoviz/pkg/errors"
)

func TestExportTreeDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tree.dot")
	out, err := execute(t, "export", "tree", "--values", "5,3,8", "delete=3", "-f", "dot", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)
	if !strings.HasPrefix(src, "digraph G {") || !strings.Contains(src, "n5 -> n8") {
		t.Errorf("unexpected DOT:\n%s", src)
	}
	if strings.Contains(src, "n3 ") {
		t.Errorf("deleted node exported:\n%s", src)
	}
	if !strings.Contains(out, iconFresh) {
		t.Errorf("first export should be fresh:\n%s", out)
	}
}

func TestExportCachesArtifacts(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	args := func(name string) []string {
		return []string{"export", "graph", "--preset", "euler-circuit-directed", "-f", "dot", "-o", filepath.Join(dir, name)}
	}
	first, err := executeInEnv(t, args("a.dot")...)
	if err != nil {
		t.Fatal(err)
	}
	second, err := executeInEnv(t, args("b.dot")...)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first, iconFresh) || !strings.Contains(second, iconCached) {
		t.Errorf("expected fresh then cached:\n%s\n%s", first, second)
	}

	a, _ := os.ReadFile(filepath.Join(dir, "a.dot"))
	b, _ := os.ReadFile(filepath.Join(dir, "b.dot"))
	if string(a) != string(b) {
		t.Error("cached artifact differs from the fresh one")
	}
}

func TestExportGraphSolved(t *testing.T) {
	out, err := execute(t, "export", "graph", "--preset", "hamilton-circuit-directed",
		"--solve", "hamiltonian", "--kind", "circuit", "-f", "dot", "-o", "-", "--no-cache")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `label="Hamiltonian circuit exists (directed)"`) {
		t.Errorf("title not taken from the graph name:\n%s", out)
	}
	if strings.Count(out, "#2e8b57") < 8 {
		t.Errorf("trail not marked:\n%s", out)
	}
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"empty tree", []string{"export", "tree", "-f", "dot"}, errors.ErrCodeEmptyStructure},
		{"bad format", []string{"export", "tree", "--values", "1", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad solve mode", []string{"export", "graph", "--solve", "bfs"}, errors.ErrCodeInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}
