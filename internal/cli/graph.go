package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// graphSource selects the graph of a graph or export command. At most one
// of preset, file and random may be set; none means the first preset.
type graphSource struct {
	preset   string
	file     string
	random   bool
	directed bool
	seed     uint64
}

func (s *graphSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.preset, "preset", "p", "", "predefined graph, by key or index (see 'algoviz presets')")
	cmd.Flags().StringVar(&s.file, "file", "", "read the graph from a JSON or TOML file")
	cmd.Flags().BoolVar(&s.random, "random", false, "generate a random graph")
	cmd.Flags().BoolVar(&s.directed, "directed", false, "generate a directed random graph")
	cmd.Flags().Uint64Var(&s.seed, "seed", 0, "seed for random graphs (default from config)")
}

// loadGraph resolves the source to a validated graph.
func (c *CLI) loadGraph(cmd *cobra.Command, s graphSource) (graph.Graph, error) {
	set := 0
	for _, b := range []bool{s.preset != "", s.file != "", s.random} {
		if b {
			set++
		}
	}
	if set > 1 {
		return graph.Graph{}, errors.New(errors.ErrCodeInvalidInput, "use only one of --preset, --file and --random")
	}
	if !cmd.Flags().Changed("seed") {
		s.seed = c.Config.Random.Seed
	}

	var (
		g   graph.Graph
		err error
	)
	switch {
	case s.file != "":
		g, err = graph.ReadGraphFile(s.file)
	case s.random:
		g, err = graph.Random(c.Config.Random.Options(s.directed), graph.NewRand(s.seed))
	case s.preset != "":
		g, err = graph.Preset(s.preset)
	default:
		g, err = graph.Preset(graph.PresetKeys()[0])
	}
	if err != nil {
		return graph.Graph{}, err
	}
	if err := g.Validate(); err != nil {
		return graph.Graph{}, err
	}
	c.Logger.Debug("graph loaded", "name", g.Name, "nodes", len(g.Nodes), "edges", len(g.Edges), "directed", g.Directed)
	return g, nil
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		play   playFlags
		src    graphSource
		mode   string
		kind   string
		saveTo string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search a graph for an Eulerian or Hamiltonian path or circuit",
		Long: `Search a graph for an Eulerian trail (Hierholzer's algorithm) or a
Hamiltonian trail (backtracking), animating every step.

The graph comes from a preset, a JSON or TOML file, or the random generator.
A missing trail is reported as an outcome, not as a failure.`,
		Example: `  algoviz graph --preset euler-circuit-undirected --mode eulerian --kind circuit
  algoviz graph --random --directed --seed 7 --mode hamiltonian --fast
  algoviz graph --file graph.toml --tui`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := trail.ParseMode(mode)
			if err != nil {
				return err
			}
			k, err := trail.ParseKind(kind)
			if err != nil {
				return err
			}
			g, err := c.loadGraph(cmd, src)
			if err != nil {
				return err
			}
			if saveTo != "" {
				if err := graph.WriteGraphFile(g, saveTo); err != nil {
					return err
				}
				printSuccess("Saved graph")
				printFile(saveTo)
			}
			if play.tui {
				return c.runPlayer(cmd.Context(), playerOptions{
					target:   playback.TargetGraph,
					play:     play,
					graph:    g,
					mode:     m,
					kind:     k,
					seed:     src.seed,
					directed: src.directed,
				})
			}
			return c.runGraph(cmd.Context(), play, g, m, k)
		},
	}

	play.register(cmd)
	src.register(cmd)
	cmd.Flags().StringVarP(&mode, "mode", "m", "eulerian", "eulerian or hamiltonian")
	cmd.Flags().StringVarP(&kind, "kind", "k", "path", "path or circuit")
	cmd.Flags().StringVar(&saveTo, "save", "", "write the graph to a JSON or TOML file before running")

	return cmd
}

// runGraph searches g without the player and prints the result.
func (c *CLI) runGraph(ctx context.Context, play playFlags, g graph.Graph, mode trail.Mode, kind trail.Kind) error {
	runner, renderer, done, err := c.plainRunner(stdout, play)
	if err != nil {
		return err
	}
	defer done()
	if err := runner.LoadGraph(g); err != nil {
		return err
	}

	name := g.Name
	if name == "" {
		name = "graph"
	}
	printInfo("%s %s on %s", mode, kind, StyleHighlight.Render(name))

	res, run, err := runner.Search(ctx, mode, kind)
	if err != nil {
		return err
	}
	printRun(run)

	st := &trail.State{}
	if run.OK() {
		st.FinalNodes, st.FinalEdges = res.Nodes, res.Edges
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderer.Render(trail.Scene{Graph: &g, State: st}))
	fmt.Fprintln(stdout)
	if run.OK() {
		printKeyValue(kind.String(), res.String())
		printKeyValue("edges", fmt.Sprint(len(res.Edges)))
	}
	return nil
}
