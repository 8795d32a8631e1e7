package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/server"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP/WebSocket API",
	Long: `Start an HTTP server exposing game sessions as JSON.

Endpoints:
  POST   /api/games             Create a session ({"seed": 42} optional)
  GET    /api/games             List sessions
  GET    /api/games/{id}        Session state
  POST   /api/games/{id}/move   Slide ({"direction": "left"})
  POST   /api/games/{id}/reset  Start over
  DELETE /api/games/{id}        End the session
  GET    /api/games/{id}/ws     WebSocket state updates
  GET    /healthz               Liveness

Examples:
  t2048 web
  t2048 web --addr :9090
  curl -X POST localhost:8048/api/games`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default from config)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg := server.ConfigFrom(appConfig)
	if flagHTTPAddr != "" {
		cfg.Addr = flagHTTPAddr
	}

	var saver server.ResultSaver
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, results will not be saved", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, saver, logger.WithPrefix("http")).Run(ctx)
}
