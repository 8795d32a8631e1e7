package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start the game menu, or a game directly when its id is given.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart
  B/Esc            - Back to menu (paused or game over)
  Q/Ctrl+C         - Quit

Difficulty options (spawn rate of 4s):
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  t2048 play
  t2048 play 2048 --seed 42
  t2048 play --difficulty hard
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg := runtimeConfig()

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	renderer := tui.NewRenderer(appConfig.TUI)
	player := localPlayer()

	// A game id skips the menu.
	if len(args) == 1 {
		game, err := registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 't2048 list' to see available games)", err)
		}
		_, err = tui.Run(game, store, renderer, cfg, player)
		return err
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		back, err := tui.Run(game, store, renderer, cfg, player)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// runtimeConfig builds the per-game runtime settings from the config and the
// current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.TUI.TickRate
	cfg.MoveCooldown = appConfig.Game.Cooldown()
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
