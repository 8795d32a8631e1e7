// Package sim plays many 2048 games with a fixed policy and summarises the
// outcome.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Options configures a simulation run.
type Options struct {
	Games   int
	Workers int
	Seed    int64
	Policy  string

	FourProbability float64
	InitialTiles    int

	// MaxMoves stops a single game early. 0 means no limit.
	MaxMoves int

	// Progress receives the progress bar. Nil hides it.
	Progress io.Writer

	// KeepResults stores every game in the report.
	KeepResults bool

	Logger *log.Logger
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Worker  int  `json:"worker"`
	Score   int  `json:"score"`
	MaxTile int  `json:"max_tile"`
	Moves   int  `json:"moves"`
	Over    bool `json:"over"`
}

// Run plays opts.Games games across opts.Workers goroutines. Worker w uses a
// source seeded with Seed+w and plays games w, w+Workers, ... so the results
// depend only on the options, not on scheduling.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Games < 1 {
		return nil, errors.New("sim: games must be positive")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Workers > opts.Games {
		opts.Workers = opts.Games
	}
	if opts.InitialTiles <= 0 {
		opts.InitialTiles = 2
	}
	policy, err := NewPolicy(opts.Policy)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]GameResult, opts.Games)

	bar := pb.New(opts.Games)
	if opts.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(opts.Progress)
	}
	bar.Start()

	wg := new(sync.WaitGroup)
	wg.Add(opts.Workers)
	for w := 0; w < opts.Workers; w++ {
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(opts.Seed + int64(w)))
			for i := w; i < opts.Games; i += opts.Workers {
				if ctx.Err() != nil {
					return
				}
				results[i] = playGame(rng, policy, opts)
				results[i].Worker = w
				bar.Increment()
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	report := newReport(policy.Name(), opts, results, elapsed)
	logger.Info("simulation finished",
		"policy", report.Policy,
		"games", report.Games,
		"mean_score", report.MeanScore,
		"elapsed", elapsed.Round(time.Millisecond))
	return report, nil
}

func playGame(rng *rand.Rand, policy Policy, opts Options) GameResult {
	e := t2048.NewEngine(t2048.Options{
		Rand:            rng,
		FourProbability: opts.FourProbability,
		InitialTiles:    opts.InitialTiles,
	})
	for !e.GameOver() {
		if opts.MaxMoves > 0 && e.Moves() >= opts.MaxMoves {
			break
		}
		dir, ok := policy.Choose(e.Grid(), rng)
		if !ok {
			break
		}
		e.Move(dir)
	}
	st := e.State()
	return GameResult{
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
		Over:    st.GameOver,
	}
}
