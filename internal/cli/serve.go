package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/api"
	"github.com/matzehuels/hillclimb/pkg/buildinfo"
)

// serveCommand creates the serve command, which exposes the solver over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Serve the solver over HTTP until interrupted.

  POST /v1/solve?challenge=1|2[&path=true]   grid in the request body
  GET  /healthz`,
		Example: `  hillclimb serve --addr :9000
  curl --data-binary @data/12.txt 'localhost:9000/v1/solve?challenge=2'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	return cmd
}

// runServe blocks until ctx is cancelled. An interrupt is a clean exit.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	srv := api.NewServer(c.newRunner(), c.Logger, api.Config{
		Workers: c.Config.Workers,
		Timeout: c.Config.Timeout.Duration,
		Graph:   c.Config.Graph,
	})
	info := buildinfo.Get()
	c.Logger.Debug("build", "version", info.Version, "commit", info.Commit, "date", info.Date)
	err := srv.ListenAndServe(ctx, addr)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
