package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "none", "dev"},
		{"v1.2.0", "3f2a9c1d8e", "v1.2.0+3f2a9c1"},
		{"v1.2.0", "abc", "v1.2.0"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q", String())
	}
}

func TestFillFrom(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}

	Version, Commit, Date = "dev", "none", "unknown"
	fillFrom(info)
	if Version != "v0.3.0" || Commit != "0123456789abcdef" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("fillFrom = %s %s %s", Version, Commit, Date)
	}

	// ldflags win over the embedded stamp.
	Version, Commit, Date = "v9.9.9", "feedbeef", "today"
	fillFrom(info)
	if Version != "v9.9.9" || Commit != "feedbeef" || Date != "today" {
		t.Errorf("fillFrom overrode ldflags: %s %s %s", Version, Commit, Date)
	}

	Version = "dev"
	fillFrom(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("devel build reported version %q", Version)
	}
}
