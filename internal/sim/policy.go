package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Policy picks the next move for a board. ok is false when no direction
// changes the grid.
type Policy interface {
	Name() string
	Choose(g *t2048.Grid, rng *rand.Rand) (dir t2048.Direction, ok bool)
}

// PolicyNames lists the built-in policies.
var PolicyNames = []string{"random", "greedy"}

// NewPolicy returns a built-in policy by name.
func NewPolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "random":
		return RandomPolicy{}, nil
	case "greedy":
		return GreedyPolicy{}, nil
	}
	return nil, fmt.Errorf("sim: unknown policy %q (want one of %s)", name, strings.Join(PolicyNames, ", "))
}

// RandomPolicy plays a uniformly random direction among those that move.
type RandomPolicy struct{}

func (RandomPolicy) Name() string { return "random" }

func (RandomPolicy) Choose(g *t2048.Grid, rng *rand.Rand) (t2048.Direction, bool) {
	var legal []t2048.Direction
	for _, d := range t2048.Directions {
		if t2048.CanMove(g, d) {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return 0, false
	}
	return legal[rng.Intn(len(legal))], true
}

// GreedyPolicy plays the move that leaves the most empty cells. Ties go to
// the earliest direction in t2048.Directions.
type GreedyPolicy struct{}

func (GreedyPolicy) Name() string { return "greedy" }

func (GreedyPolicy) Choose(g *t2048.Grid, _ *rand.Rand) (t2048.Direction, bool) {
	best, bestEmpty := t2048.Direction(0), -1
	for _, d := range t2048.Directions {
		next := g.Clone()
		if !t2048.Move(next, d) {
			continue
		}
		if empty := len(next.EmptyCells()); empty > bestEmpty {
			best, bestEmpty = d, empty
		}
	}
	return best, bestEmpty >= 0
}
