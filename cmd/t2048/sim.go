package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/sim"
)

var (
	flagSimGames    int
	flagSimWorkers  int
	flagSimPolicy   string
	flagSimMaxMoves int
	flagSimOut      string
	flagSimQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate games with a bot policy",
	Long: `Play many games without a screen and print score statistics.

Policies:
  random - any direction that moves the board
  greedy - the move that leaves the most empty cells

Each worker uses seed+worker, so a fixed --seed gives the same report.
An --out path ending in .zst is written zstd-compressed.

Examples:
  t2048 sim
  t2048 sim --games 10000 --workers 8 --policy greedy
  t2048 sim --seed 1 --out reports/greedy.json.zst`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 0, "Number of games (0 = from config)")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Parallel workers (0 = from config)")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", "", "Policy: "+strings.Join(sim.PolicyNames, ", "))
	simCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = no limit)")
	simCmd.Flags().StringVar(&flagSimOut, "out", "", "Write the full report as JSON to this path")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, _ []string) error {
	opts := sim.Options{
		Games:           appConfig.Sim.Games,
		Workers:         appConfig.Sim.Workers,
		Seed:            flagSeed,
		Policy:          appConfig.Sim.Policy,
		FourProbability: appConfig.Game.FourProbability,
		InitialTiles:    appConfig.Game.InitialTiles,
		MaxMoves:        flagSimMaxMoves,
		KeepResults:     flagSimOut != "",
		Logger:          logger.WithPrefix("sim"),
	}
	if flagSimGames > 0 {
		opts.Games = flagSimGames
	}
	if flagSimWorkers > 0 {
		opts.Workers = flagSimWorkers
	}
	if flagSimPolicy != "" {
		opts.Policy = flagSimPolicy
	}
	if !flagSimQuiet {
		opts.Progress = cmd.ErrOrStderr()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := sim.Run(ctx, opts)
	if err != nil {
		return err
	}
	if err := report.Fprint(cmd.OutOrStdout()); err != nil {
		return err
	}

	if flagSimOut != "" {
		if err := report.Export(flagSimOut); err != nil {
			return err
		}
		logger.Info("report written", "path", flagSimOut)
	}
	return nil
}
