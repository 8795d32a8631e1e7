package t2048

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.10

// RandomSource is the subset of *rand.Rand the game needs.
// Tests substitute seeded or scripted sources.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on a grid.
type Spawner struct {
	rng             RandomSource
	FourProbability float64
}

// NewSpawner creates a spawner using rng for both position and value.
func NewSpawner(rng RandomSource, fourProbability float64) *Spawner {
	return &Spawner{rng: rng, FourProbability: fourProbability}
}

// Spawn puts a 2 (or a 4 with FourProbability) in a random empty cell.
// On a full grid it does nothing and returns false.
func (s *Spawner) Spawn(g *Grid) (Cell, int, bool) {
	cell, ok := g.RandomEmptyCell(s.rng)
	if !ok {
		return Cell{}, 0, false
	}

	value := 2
	if s.rng.Float64() < s.FourProbability {
		value = 4
	}
	g.Set(cell.Row, cell.Col, value)
	return cell, value, true
}
