package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/api"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded runs over HTTP",
		Long: `Serve the HTTP API. Each request runs the engines headlessly and returns
the narration, the traced listing lines and the animation time. Preset
diagrams are rendered as SVG or DOT and kept in memory.

  GET  /healthz  GET /presets  GET /presets/{key}/diagram
  GET  /listings  GET /listings/{name}
  POST /tree/runs  POST /graph/runs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			logger := loggerFromContext(cmd.Context())
			srv := api.New(logger)
			srv.Unit = c.Config.Playback.Unit.Std()

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			printNextStep("Try", "curl localhost"+addr+"/presets")
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
