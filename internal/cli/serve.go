package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/internal/server"
	"github.com/matzehuels/planforge/pkg/config"
)

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the floor plan API over HTTP",
		Long: `Serve starts an HTTP server exposing POST /api/floorplans.

Without an API key the server still runs, but only accepts requests that
carry a pre-made layout payload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			withGenerator := cfg.APIKey != ""
			if !withGenerator {
				c.Logger.Warn("no API key configured, serving payload-only requests",
					"env", config.EnvAPIKey)
			}

			runner, err := c.newRunner(ctx, cfg, "", false, withGenerator)
			if err != nil {
				return err
			}
			defer runner.Close()

			return server.New(runner, c.Logger, cfg.ListenAddr).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
