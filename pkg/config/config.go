// Package config loads user settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/algoviz/config.toml (falling back to
// ~/.config/algoviz/config.toml). Every key is optional; missing keys keep
// the values from [Default]. Command-line flags override file values.
//
//	[playback]
//	unit = "200ms"
//	speed = 1.0
//
//	[random]
//	seed = 42
//	tree_size = 15
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/layout"
	"github.com/matzehuels/algoviz/pkg/render/text"
	"github.com/matzehuels/algoviz/pkg/step"
)

const appName = "algoviz"

// Config is the full set of user settings.
type Config struct {
	Playback Playback `toml:"playback"`
	Layout   Layout   `toml:"layout"`
	Random   Random   `toml:"random"`
	Theme    Theme    `toml:"theme"`
	Server   Server   `toml:"server"`
}

// Playback controls animation speed.
type Playback struct {
	// Unit is the length of one pacing unit at speed 1.
	Unit Duration `toml:"unit"`

	// Speed scales every delay, within [step.MinSpeed, step.MaxSpeed].
	Speed float64 `toml:"speed"`
}

// Layout sizes the terminal canvas and the exported diagrams.
type Layout struct {
	Cols int `toml:"cols"`
	Rows int `toml:"rows"`

	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	SpacingPerNode float64 `toml:"spacing_per_node"`
	LevelDistance  float64 `toml:"level_distance"`
	TopMargin      float64 `toml:"top_margin"`
	CircleMargin   float64 `toml:"circle_margin"`
}

// Random bounds the random tree and graph generators.
type Random struct {
	Seed     uint64 `toml:"seed"`
	TreeSize int    `toml:"tree_size"`
	MinNodes int    `toml:"min_nodes"`
	MaxNodes int    `toml:"max_nodes"`
	MinEdges int    `toml:"min_edges"`
	MaxEdges int    `toml:"max_edges"`
}

// Theme overrides terminal colours. Empty colours keep the defaults.
type Theme struct {
	Plain    bool   `toml:"plain"`
	Active   string `toml:"active"`
	Found    string `toml:"found"`
	Deleting string `toml:"deleting"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	l := layout.Default()
	r := graph.DefaultRandomOptions()
	return Config{
		Playback: Playback{Unit: Duration(step.DefaultUnit), Speed: 1},
		Layout: Layout{
			Cols:           96,
			Rows:           22,
			Width:          l.Width,
			Height:         l.Height,
			SpacingPerNode: l.SpacingPerNode,
			LevelDistance:  l.LevelDistance,
			TopMargin:      l.TopMargin,
			CircleMargin:   l.CircleMargin,
		},
		Random: Random{
			Seed:     graph.DefaultSeed,
			TreeSize: 15,
			MinNodes: r.MinNodes,
			MaxNodes: r.MaxNodes,
			MinEdges: r.MinEdges,
			MaxEdges: r.MaxEdges,
		},
		Server: Server{Addr: ":8080"},
	}
}

// =============================================================================
// Loading
// =============================================================================

// Dir returns the configuration directory using the XDG standard.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path on top of [Default]. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidFormat, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Playback.Unit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "playback.unit must not be negative")
	}
	if c.Playback.Speed < step.MinSpeed || c.Playback.Speed > step.MaxSpeed {
		return errors.New(errors.ErrCodeInvalidInput, "playback.speed must be within [%g, %g]", step.MinSpeed, step.MaxSpeed)
	}
	if c.Layout.Cols < 20 || c.Layout.Rows < 5 {
		return errors.New(errors.ErrCodeInvalidInput, "layout needs at least 20 cols and 5 rows")
	}
	if c.Random.TreeSize < 0 || c.Random.TreeSize > bst.MaxRandomValues {
		return errors.New(errors.ErrCodeInvalidInput, "random.tree_size must be within [0, %d]", bst.MaxRandomValues)
	}
	return c.Random.Options(false).Validate()
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// =============================================================================
// Conversions
// =============================================================================

// Clock returns a pacer running at the configured speed.
func (p Playback) Clock() *step.Clock {
	return step.NewClock(p.Speed)
}

// Config returns the diagram layout.
func (l Layout) Config() layout.Config {
	return layout.Config{
		Width:          l.Width,
		Height:         l.Height,
		SpacingPerNode: l.SpacingPerNode,
		LevelDistance:  l.LevelDistance,
		TopMargin:      l.TopMargin,
		CircleMargin:   l.CircleMargin,
	}
}

// Options returns the random graph bounds.
func (r Random) Options(directed bool) graph.RandomOptions {
	return graph.RandomOptions{
		MinNodes: r.MinNodes,
		MaxNodes: r.MaxNodes,
		MinEdges: r.MinEdges,
		MaxEdges: r.MaxEdges,
		Directed: directed,
	}
}

// Text returns the terminal theme.
func (t Theme) Text() text.Theme {
	if t.Plain {
		return text.PlainTheme()
	}
	th := text.DefaultTheme()
	if t.Active != "" {
		th.Active = th.Active.Foreground(lipgloss.Color(t.Active))
	}
	if t.Found != "" {
		th.Found = th.Found.Foreground(lipgloss.Color(t.Found))
	}
	if t.Deleting != "" {
		th.Deleting = th.Deleting.Foreground(lipgloss.Color(t.Deleting))
		th.Faded = th.Faded.Foreground(lipgloss.Color(t.Deleting))
	}
	return th
}

// Duration is a time.Duration written as a string such as "150ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
