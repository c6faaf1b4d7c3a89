package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/graph"
)

// presetsCommand lists the predefined graphs.
func (c *CLI) presetsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the predefined graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := graph.PresetKeys()
			graphs := graph.Presets()

			if asJSON {
				out := make(map[string]graph.Graph, len(keys))
				for i, k := range keys {
					out[k] = graphs[i]
				}
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprintln(stdout, presetTable(keys, graphs))
			printNextStep("Run one", "algoviz graph --preset "+keys[0]+" --kind circuit")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the graphs as JSON")
	return cmd
}

func presetTable(keys []string, graphs []graph.Graph) string {
	rows := make([][]string, len(keys))
	for i, g := range graphs {
		kind := "undirected"
		if g.Directed {
			kind = "directed"
		}
		rows[i] = []string{
			strconv.Itoa(i),
			keys[i],
			kind,
			strconv.Itoa(len(g.Nodes)),
			strconv.Itoa(len(g.Edges)),
			g.Name,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Key", "Kind", "Nodes", "Edges", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 5:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
