package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/render/text"
	"github.com/matzehuels/algoviz/pkg/step"
)

// playFlags are shared by the commands that animate a run.
type playFlags struct {
	tui        bool
	fast       bool
	frames     bool
	speed      float64
	transcript string
}

func (f *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.tui, "tui", false, "open the interactive player")
	cmd.Flags().BoolVar(&f.fast, "fast", false, "replay without delays")
	cmd.Flags().BoolVar(&f.frames, "frames", false, "print every frame, not only the last one")
	cmd.Flags().Float64Var(&f.speed, "speed", 0, "playback speed multiplier (default from config)")
	cmd.Flags().StringVar(&f.transcript, "transcript", "", "also write the narration to this file")
}

// narration returns screen, or screen plus the --transcript file. The
// returned close function must be called once the runs are over.
func (f playFlags) narration(screen step.Emitter) (step.Emitter, func() error, error) {
	if f.transcript == "" {
		return screen, func() error { return nil }, nil
	}
	if dir := filepath.Dir(f.transcript); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.Create(f.transcript)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open transcript")
	}
	return step.Multi{screen, &step.Writer{W: file}}, file.Close, nil
}

// clock returns the pacer for a run, honouring --speed over the config.
func (c *CLI) clock(f playFlags) (*step.Clock, error) {
	clock := c.Config.Playback.Clock()
	if f.speed != 0 {
		if f.speed < step.MinSpeed || f.speed > step.MaxSpeed {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--speed must be within [%g, %g]", step.MinSpeed, step.MaxSpeed)
		}
		clock.SetSpeed(f.speed)
	}
	return clock, nil
}

// textRenderer returns a canvas sized and themed from the config.
func (c *CLI) textRenderer(out func(string)) *text.Renderer {
	r := text.New(c.Config.Layout.Cols, c.Config.Layout.Rows, out)
	r.Theme = c.Config.Theme.Text()
	return r
}

// plainRunner wires a runner for non-interactive output: narration goes to
// w, frames too when --frames is set. Call done when finished.
func (c *CLI) plainRunner(w io.Writer, f playFlags) (runner *playback.Runner, renderer *text.Renderer, done func() error, err error) {
	clock, err := c.clock(f)
	if err != nil {
		return nil, nil, nil, err
	}
	emitter, done, err := f.narration(step.EmitterFunc(func(line string) {
		fmt.Fprintln(w, StyleDim.Render(iconInfo)+" "+line)
	}))
	if err != nil {
		return nil, nil, nil, err
	}
	var out func(string)
	if f.frames {
		out = func(frame string) { fmt.Fprintf(w, "%s\n\n", frame) }
	}
	renderer = c.textRenderer(out)
	sink := &step.Sink{
		Emitter:  emitter,
		Renderer: renderer,
		Pacer:    clock,
		Unit:     c.Config.Playback.Unit.Std(),
		Quiet:    f.fast,
	}
	return playback.NewRunner(sink, c.Logger), renderer, done, nil
}
