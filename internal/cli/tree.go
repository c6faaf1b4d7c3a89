package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/bst"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/step"
)

// treeOp is one tree operation given on the command line, such as
// "insert=5" or "balanced=1,2,3".
type treeOp struct {
	name   string
	values []int
}

func (op treeOp) String() string {
	if len(op.values) == 0 {
		return op.name
	}
	parts := make([]string, len(op.values))
	for i, v := range op.values {
		parts[i] = fmt.Sprint(v)
	}
	return op.name + "=" + strings.Join(parts, ",")
}

var treeOpAliases = map[string]string{
	"insert": "insert", "i": "insert", "add": "insert",
	"delete": "delete", "d": "delete", "del": "delete", "remove": "delete",
	"find": "find", "f": "find", "search": "find",
	"balanced": "balanced", "b": "balanced",
	"random": "random", "r": "random",
	"reset": "reset",
}

// parseTreeOp parses "name=values". insert, delete and find take exactly
// one value, balanced takes a list, random an optional node count and
// reset nothing.
func parseTreeOp(s string) (treeOp, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "=")
	canon, ok := treeOpAliases[strings.ToLower(name)]
	if !ok {
		return treeOp{}, errors.New(errors.ErrCodeInvalidInput, "unknown tree operation %q", name)
	}
	op := treeOp{name: canon}
	switch canon {
	case "insert", "delete", "find":
		v, err := errors.ParseValue(arg)
		if err != nil {
			return treeOp{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", canon)
		}
		op.values = []int{v}
	case "balanced":
		values, err := errors.ParseValues(arg)
		if err != nil {
			return treeOp{}, err
		}
		op.values = values
	case "random":
		if hasArg {
			n, err := errors.ParseValue(arg)
			if err != nil {
				return treeOp{}, err
			}
			if err := errors.ValidateCount("random node count", n, bst.MaxRandomValues); err != nil {
				return treeOp{}, err
			}
			op.values = []int{n}
		}
	case "reset":
		if hasArg {
			return treeOp{}, errors.New(errors.ErrCodeInvalidInput, "reset takes no value")
		}
	}
	return op, nil
}

func parseTreeOps(args []string) ([]treeOp, error) {
	ops := make([]treeOp, 0, len(args))
	for _, a := range args {
		op, err := parseTreeOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// treeSession applies tree operations to a runner.
type treeSession struct {
	runner   *playback.Runner
	seed     uint64
	treeSize int
}

// apply runs op. Reset returns a zero Run.
func (s *treeSession) apply(ctx context.Context, op treeOp) (playback.Run, error) {
	switch op.name {
	case "insert":
		return s.runner.Insert(ctx, op.values[0])
	case "delete":
		return s.runner.Delete(ctx, op.values[0])
	case "find":
		return s.runner.Find(ctx, op.values[0])
	case "balanced":
		return s.runner.InsertBalanced(ctx, op.values)
	case "random":
		n := s.treeSize
		if len(op.values) > 0 {
			n = op.values[0]
		}
		run, err := s.runner.RandomTree(ctx, n, graph.NewRand(s.seed))
		s.seed++
		return run, err
	case "reset":
		return playback.Run{}, s.runner.Reset(playback.TargetTree)
	}
	return playback.Run{}, errors.New(errors.ErrCodeInvalidInput, "unknown tree operation %q", op.name)
}

// preload inserts values without animation.
func preload(runner *playback.Runner, values []int) {
	runner.Tree.SetSink(step.Discard())
	for _, v := range values {
		runner.Tree.Insert(v)
	}
	runner.Tree.SetSink(runner.Sink())
}

// treeCommand creates the tree command.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		play   playFlags
		values string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "tree [op=value...]",
		Short: "Animate binary search tree operations",
		Long: `Animate binary search tree operations in order.

Operations:
  insert=V         insert V (duplicates are ignored)
  delete=V         delete V, fading the node out
  find=V           search for V
  balanced=A,B,... replace the tree with a balanced tree of the values
  random[=N]       replace the tree with a balanced tree of N random values
  reset            clear highlights and the transcript

With --tui the operations are queued in the interactive player.`,
		Example: `  algoviz tree --values 5,3,8 insert=4 delete=3 find=8
  algoviz tree random=15 --fast
  algoviz tree --tui balanced=1,2,3,4,5,6,7`,
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
			if play.tui {
				return c.runPlayer(cmd.Context(), playerOptions{
					target:   playback.TargetTree,
					play:     play,
					initial:  initial,
					queue:    ops,
					seed:     seed,
					treeSize: c.Config.Random.TreeSize,
				})
			}
			if len(ops) == 0 && len(initial) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to do: give --values or at least one operation")
			}
			return c.runTree(cmd.Context(), play, initial, ops, seed)
		},
	}

	play.register(cmd)
	cmd.Flags().StringVar(&values, "values", "", "comma-separated values inserted before the operations, without animation")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for random trees (default from config)")

	return cmd
}

// runTree applies ops without the player and prints the final tree.
func (c *CLI) runTree(ctx context.Context, play playFlags, initial []int, ops []treeOp, seed uint64) error {
	runner, renderer, done, err := c.plainRunner(stdout, play)
	if err != nil {
		return err
	}
	defer done()
	preload(runner, initial)

	s := &treeSession{runner: runner, seed: seed, treeSize: c.Config.Random.TreeSize}
	for _, op := range ops {
		c.Logger.Debug("tree operation", "op", op.String())
		run, err := s.apply(ctx, op)
		if err != nil {
			return err
		}
		if op.name != "reset" {
			printRun(run)
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, renderer.Render(runner.Scene(playback.TargetTree)))
	fmt.Fprintln(stdout)
	printKeyValue("nodes", fmt.Sprint(runner.Tree.Len()))
	printKeyValue("height", fmt.Sprint(runner.Tree.Height()))
	printKeyValue("in-order", fmt.Sprint(runner.Tree.InOrder()))
	return nil
}
