package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/agent"
	"github.com/vovakirdan/tui-2048/internal/server"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve MCP tools over stdio",
	Long: `Run an MCP server on stdin/stdout so agents can play.

Tools: new_game, game_state, move, reset_game.
Logs go to stderr; stdout carries the protocol.

Example client config:
  {"command": "t2048", "args": ["mcp"]}`,
	RunE: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	var saver server.ResultSaver
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, results will not be saved", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	manager := server.NewManager(server.ConfigFrom(appConfig).Manager)
	a := agent.New(manager, saver, version, logger.WithPrefix("mcp"))

	logger.Info("serving MCP over stdio")
	return a.ServeStdio()
}
