package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sankarpadhy/go-release-highlights/go122"
)

// serveCmd exposes the 1.22 ServeMux pattern demo as a real listener, so the
// compose port mapping has something to reach. It is still a demo: fixed
// in-memory data, no state.
func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ServeMux pattern demo endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.ListenAddr
			}
			timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
			srv := &http.Server{
				Addr:         addr,
				Handler:      go122.NewItemsMux(),
				ReadTimeout:  timeout,
				WriteTimeout: timeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				lggr.Infow("serving demo endpoints", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				lggr.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from LISTEN_ADDR)")
	return cmd
}
