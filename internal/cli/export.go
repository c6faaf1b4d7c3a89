package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/render/dot"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// exportFlags are shared by the export subcommands.
type exportFlags struct {
	format  string
	output  string
	title   string
	noCache bool
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "svg", "output format: svg, dot, pdf or png")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file, '-' for stdout (default <name>.<format>)")
	cmd.Flags().StringVar(&f.title, "title", "", "diagram title")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "render without the artifact cache")
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a tree or graph snapshot as a Graphviz diagram",
		Long: `Export the final state of a tree or graph as DOT, SVG, PDF or PNG.

SVG is rendered in-process with Graphviz. PDF and PNG additionally need
rsvg-convert (librsvg). Rendered diagrams are cached; see 'algoviz cache'.`,
	}

	cmd.AddCommand(c.exportTreeCommand())
	cmd.AddCommand(c.exportGraphCommand())
	return cmd
}

// exportTreeCommand creates the "export tree" subcommand.
func (c *CLI) exportTreeCommand() *cobra.Command {
	var (
		flags  exportFlags
		values string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:     "tree [op=value...]",
		Short:   "Export a binary search tree",
		Example: `  algoviz export tree --values 5,3,8,1,4 -o tree.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseTreeOps(args)
			if err != nil {
				return err
			}
			initial, err := errors.ParseValues(values)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = c.Config.Random.Seed
			}

			runner := playback.NewRunner(step.Discard(), c.Logger)
			preload(runner, initial)
			s := &treeSession{runner: runner, seed: seed, treeSize: c.Config.Random.TreeSize}
			for _, op := range ops {
				if _, err := s.apply(cmd.Context(), op); err != nil {
					return err
				}
			}
			if runner.Tree.Len() == 0 {
				return errors.New(errors.ErrCodeEmptyStructure, "tree is empty: give --values or operations")
			}
			return c.export(cmd.Context(), runner.Scene(playback.TargetTree), "tree", flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&values, "values", "", "comma-separated values to insert first")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for random trees (default from config)")
	return cmd
}

// exportGraphCommand creates the "export graph" subcommand.
func (c *CLI) exportGraphCommand() *cobra.Command {
	var (
		flags exportFlags
		src   graphSource
		solve string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export a graph, optionally with a trail marked",
		Example: `  algoviz export graph --preset euler-circuit-directed --solve eulerian --kind circuit
  algoviz export graph --random --seed 3 -f png -o random.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, src)
			if err != nil {
				return err
			}
			st := &trail.State{}
			if solve != "" {
				if st, err = c.solve(cmd.Context(), g, solve, kind); err != nil {
					return err
				}
			}
			name := src.preset
			if name == "" {
				name = "graph"
			}
			if flags.title == "" {
				flags.title = g.Name
			}
			return c.export(cmd.Context(), trail.Scene{Graph: &g, State: st}, name, flags)
		},
	}

	flags.register(cmd)
	src.register(cmd)
	cmd.Flags().StringVar(&solve, "solve", "", "mark an eulerian or hamiltonian trail")
	cmd.Flags().StringVarP(&kind, "kind", "k", "path", "path or circuit, with --solve")
	return cmd
}

// solve runs a trail search silently and returns the state with the trail
// marked. A missing trail is reported and leaves the graph unmarked.
func (c *CLI) solve(ctx context.Context, g graph.Graph, mode, kind string) (*trail.State, error) {
	m, err := trail.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	k, err := trail.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	runner := playback.NewRunner(step.Discard(), c.Logger)
	if err := runner.LoadGraph(g); err != nil {
		return nil, err
	}
	res, run, err := runner.Search(ctx, m, k)
	if err != nil {
		return nil, err
	}
	printRun(run)
	st := &trail.State{}
	if run.OK() {
		st.FinalNodes, st.FinalEdges = res.Nodes, res.Edges
	}
	return st, nil
}

// export renders scene through the artifact cache and writes it out.
func (c *CLI) export(ctx context.Context, scene step.Scene, name string, flags exportFlags) error {
	format, err := dot.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	opts := dot.Options{Layout: c.Config.Layout.Config(), Title: flags.title}
	src, err := dot.ToDOT(scene, opts)
	if err != nil {
		return err
	}

	store, keyer, err := newCache(flags.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := keyer.ArtifactKey(cache.Hash([]byte(src)), cache.ArtifactKeyOpts{Format: string(format), Title: flags.title})
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	spin := newSpinnerWithContext(ctx, "Rendering "+string(format)+"...")
	spin.Start()
	data, hit, err := cache.GetOrBuild(ctx, store, key, "artifact", artifactTTL, func() ([]byte, error) {
		return dot.Render(ctx, scene, format, opts)
	})
	spin.Stop()
	if err != nil && data == nil {
		return err
	}
	if err != nil {
		logger.Warn("cache write failed", "error", err)
	}
	prog.done("Rendered " + string(format))

	path := flags.output
	if path == "" {
		path = name + "." + string(format)
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}
	if path != "-" {
		printArtifact(path, len(data), hit)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
