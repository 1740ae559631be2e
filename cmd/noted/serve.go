// ABOUTME: Serve command exposing the note collection over a local HTTP API.
// ABOUTME: Graceful shutdown on context cancellation.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/harper/noted/internal/api"
	"github.com/harper/noted/internal/logging"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  `Run a local HTTP server exposing notes, categories and preferences as a JSON API under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		log := logging.New(os.Stderr)
		srv := api.NewServer(notes, categories, db, log)

		httpSrv := &http.Server{
			Addr:    addr,
			Handler: srv.Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpSrv.ListenAndServe()
		}()
		log.Info(cmd.Context(), "listening", "addr", addr)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-cmd.Context().Done():
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpSrv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:7777", "listen address")
	rootCmd.AddCommand(serveCmd)
}
