package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores and overall statistics.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --player alice
  t2048 scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's games")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 't2048 list' to see available games)", gameID)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", gameID)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", gameID)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	playerW := runewidth.StringWidth("Player")
	for _, e := range scores {
		playerW = max(playerW, runewidth.StringWidth(e.Player))
	}

	fmt.Fprintf(out, "  %-4s  %s  %8s  %6s  %6s  %s\n", "Rank", runewidth.FillRight("Player", playerW), "Score", "Tile", "Moves", "Date")
	fmt.Fprintf(out, "  %-4s  %s  %8s  %6s  %6s  %s\n", "----", runewidth.FillRight("------", playerW), "-----", "----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %s  %8d  %6d  %6d  %s\n",
			i+1, runewidth.FillRight(e.Player, playerW), e.Score, e.MaxTile, e.Moves,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "error", err)
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Best tile: %d  Reached 2048: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile, stats.Reached)
	return nil
}
