// t2048 is a sliding-tile merge puzzle for the terminal, SSH, the browser and
// MCP agents.
//
// Usage:
//
//	t2048 play             - Play in this terminal
//	t2048 serve            - Start SSH server for remote play
//	t2048 web              - Start the HTTP/WebSocket API
//	t2048 mcp              - Serve MCP tools over stdio
//	t2048 sim              - Play many games with a bot and report
//	t2048 scores           - Show high scores
//	t2048 list             - List available games
//
// Global flags:
//
//	--config <path>   - Config YAML (default: search ~/.arcade/configs, ./configs)
//	--fps <rate>      - Set tick rate (default: from config)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: from config)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// version is set at build time with -ldflags.
var version = "dev"

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagDifficulty string

	// Set by loadConfig before any command runs.
	appConfig config.T2048Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the sliding-tile merge puzzle on a 4x4 board.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Start the HTTP/WebSocket API
  mcp      - Serve MCP tools over stdio
  sim      - Simulate games with a bot policy
  scores   - View high scores
  list     - Show all available games

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 serve --ssh :2222
  t2048 web --addr :8080
  t2048 sim --games 1000 --policy greedy
  t2048 scores`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file, applies global flag overrides and sets
// up the logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "t2048",
	})

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyDifficulty(&cfg, config.Difficulty(flagDifficulty)); err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.TUI.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg

	t2048.SetConfig(cfg)

	logger.Debug("config loaded", "path", flagConfig, "db", cfg.Storage.DBPath, "tick_rate", cfg.TUI.TickRate)
	return nil
}
