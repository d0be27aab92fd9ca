package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/factorygraph/internal/server"
	"github.com/matzehuels/factorygraph/pkg/cache"
)

// serveCommand serves the loaded graph over HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recipe graph as a JSON API",
		Long: `Serve the recipe graph as a read-only JSON API.

The data files are loaded once at startup. The server shuts down gracefully
on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			srv := server.New(g, server.Options{
				Logger:    loggerFromContext(cmd.Context()),
				Depth:     cfg.Debug.Depth,
				MaxDepth:  cfg.Server.MaxDepth,
				MaxListed: cfg.Debug.MaxListed,
				Cache:     cache.NewMemoryCache(cfg.Server.CacheEntries),
			})
			err = srv.ListenAndServe(cmd.Context(), cfg.Server.Addr)
			if errors.Is(err, context.Canceled) {
				loggerFromContext(cmd.Context()).Info("server stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int("cache-entries", cache.DefaultMaxEntries, "rendered SVG diagrams kept in memory")
	cmd.Flags().Int("depth", 1, "default depth of tree and graph endpoints")
	cmd.Flags().Int("max-depth", server.DefaultMaxDepth, "largest depth a request may ask for")
	cmd.Flags().Int("max-listed", 5, "ingredients and products expanded by recipe trees (-1 for all, 0 for none)")
	return cmd
}
