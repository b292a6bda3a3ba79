package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tvdb/internal/server"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command running the read-only HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the language catalog over HTTP",
		Long: `Serve the language catalog over a read-only HTTP API.

Routes:
  GET /languages        all languages
  GET /languages/{id}   a single language
  GET /healthz          liveness probe

The catalog is shared by all requests, so each language is fetched from
TheTVDB at most once per server process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			catalog, closeCache, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			srv := server.New(addr, catalog, c.Logger)
			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("serve: %w", err)
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return ctx.Err()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
