// Package agent exposes 2048 sessions as MCP tools so language-model agents
// can play over stdio.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/server"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const instructions = `2048 - MCP Interface

Slide the tiles on a 4x4 board. Equal neighbours merge into their sum once per
move. After every move that changes the board a new 2 (sometimes a 4) appears.
The game ends when the board is full and no neighbours are equal.

AVAILABLE TOOLS:
- new_game: Start a session (optional seed for a reproducible game)
- game_state: Show the board, score and largest tile
- move: Slide up/down/left/right
- reset_game: Start over in the same session

The score is the sum of all tiles on the board.`

// Agent serves MCP tools backed by a session manager.
type Agent struct {
	manager   *server.Manager
	store     server.ResultSaver
	logger    *log.Logger
	mcpServer *mcpserver.MCPServer
}

// New creates an agent. store may be nil.
func New(manager *server.Manager, store server.ResultSaver, version string, logger *log.Logger) *Agent {
	if logger == nil {
		logger = log.Default().WithPrefix("t2048-mcp")
	}
	a := &Agent{
		manager: manager,
		store:   store,
		logger:  logger,
	}
	a.mcpServer = mcpserver.NewMCPServer(
		"2048",
		version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithInstructions(instructions),
	)
	a.registerTools()
	return a
}

// MCPServer returns the underlying MCP server.
func (a *Agent) MCPServer() *mcpserver.MCPServer {
	return a.mcpServer
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (a *Agent) ServeStdio() error {
	return mcpserver.ServeStdio(a.mcpServer)
}

func (a *Agent) registerTools() {
	sessionID := map[string]any{
		"type":        "string",
		"description": "Session ID returned by new_game",
	}

	a.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new 2048 game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"seed": map[string]any{
					"type":        "integer",
					"description": "RNG seed for a reproducible game (optional)",
				},
			},
		},
	}, a.handleNewGame)

	a.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the board, score and status of a session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"session_id": sessionID},
			Required:   []string{"session_id"},
		},
	}, a.handleGameState)

	a.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide all tiles in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"session_id": sessionID,
				"direction": map[string]any{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, a.handleMove)

	a.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset a session to a fresh board",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"session_id": sessionID},
			Required:   []string{"session_id"},
		},
	}, a.handleReset)
}

func (a *Agent) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed := int64(request.GetInt("seed", 0))

	sess, err := a.manager.Create(seed)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a.logger.Debug("session created", "session", sess.ID, "seed", sess.Seed)

	return mcp.NewToolResultText(formatState(sess.ID, sess.State())), nil
}

func (a *Agent) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := a.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatState(sess.ID, sess.State())), nil
}

func (a *Agent) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := a.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dir, err := t2048.ParseDirection(request.GetString("direction", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, state, err := sess.Move(dir)
	if errors.Is(err, server.ErrCooldown) {
		return mcp.NewToolResultError(fmt.Sprintf("too fast: wait %s before the next move", sess.RetryAfter())), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if state.GameOver {
		a.finish(sess, state)
	}

	return mcp.NewToolResultText(formatMove(sess.ID, res, state)), nil
}

func (a *Agent) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := a.session(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatState(sess.ID, sess.Reset())), nil
}

func (a *Agent) session(request mcp.CallToolRequest) (*server.Session, error) {
	id, err := request.RequireString("session_id")
	if err != nil {
		return nil, err
	}
	sess, err := a.manager.Get(id)
	if err != nil {
		return nil, fmt.Errorf("agent: %s: %w", id, err)
	}
	return sess, nil
}

func (a *Agent) finish(sess *server.Session, state t2048.State) {
	if !sess.MarkRecorded() {
		return
	}
	a.logger.Info("game over", "session", sess.ID, "score", state.Score, "max_tile", state.MaxTile, "moves", state.Moves)

	if a.store == nil {
		return
	}
	_, err := a.store.SaveResult(storage.Result{
		GameID:  t2048.GameID,
		Player:  "mcp:" + sess.ID,
		Score:   state.Score,
		MaxTile: state.MaxTile,
		Moves:   state.Moves,
	})
	if err != nil {
		a.logger.Warn("could not save result", "session", sess.ID, "error", err)
	}
}

func formatState(id string, state t2048.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Session: %s\n", id)
	fmt.Fprintf(&sb, "Score: %d | Max tile: %d | Moves: %d\n\n", state.Score, state.MaxTile, state.Moves)
	sb.WriteString(t2048.RenderText(t2048.NewGrid(state.Board)))
	sb.WriteByte('\n')
	if state.GameOver {
		sb.WriteString("\nGAME OVER - no moves left. Use reset_game to play again.\n")
	}
	return sb.String()
}

func formatMove(id string, res t2048.MoveResult, state t2048.State) string {
	var sb strings.Builder
	if res.Moved {
		fmt.Fprintf(&sb, "Moved %s.", res.Direction)
		if res.Spawned != nil {
			fmt.Fprintf(&sb, " New %d at row %d, col %d.", res.Spawned.Value, res.Spawned.Cell.Row, res.Spawned.Cell.Col)
		}
	} else {
		fmt.Fprintf(&sb, "Nothing moved %s.", res.Direction)
	}
	sb.WriteString("\n")
	sb.WriteString(formatState(id, state))
	return sb.String()
}
