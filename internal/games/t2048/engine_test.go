package t2048

import (
	"math/rand"
	"testing"
)

func TestNewEngineSeedsTwoTiles(t *testing.T) {
	e := NewEngine(Options{Seed: 1, FourProbability: DefaultFourProbability})

	if got := e.Grid().TileCount(); got != 2 {
		t.Errorf("fresh engine has %d tiles, want 2", got)
	}
	if e.Moves() != 0 || e.GameOver() {
		t.Error("fresh engine should have no moves and not be over")
	}
	if e.Score() != e.Grid().Sum() {
		t.Error("score must equal the tile sum")
	}
}

func TestEngineSameSeedSameGame(t *testing.T) {
	a := NewEngine(Options{Seed: 12345, FourProbability: DefaultFourProbability})
	b := NewEngine(Options{Seed: 12345, FourProbability: DefaultFourProbability})

	for i := range 50 {
		dir := Directions[i%len(Directions)]
		ra, rb := a.Move(dir), b.Move(dir)
		if ra.Moved != rb.Moved || ra.Score != rb.Score {
			t.Fatalf("move %d diverged: %+v vs %+v", i, ra, rb)
		}
	}
	if a.State() != b.State() {
		t.Errorf("same seed produced different states:\n%+v\n%+v", a.State(), b.State())
	}
}

func TestEngineAcceptedMoveSpawnsOneTile(t *testing.T) {
	grid := NewGrid([Size][Size]int{{2, 2, 0, 0}})
	e := NewEngineFromGrid(grid, Options{Rand: rand.New(rand.NewSource(9))})

	res := e.Move(DirLeft)
	if !res.Moved {
		t.Fatal("Move(left) should be accepted")
	}
	if res.Spawned == nil {
		t.Fatal("accepted move should spawn a tile")
	}

	g := e.Grid()
	// One merged tile plus the spawn.
	if got := g.TileCount(); got != 2 {
		t.Errorf("tile count after move = %d, want 2", got)
	}
	if g.At(res.Spawned.Cell.Row, res.Spawned.Cell.Col) != res.Spawned.Value {
		t.Error("spawn info does not match the grid")
	}
	if res.Score != 4+res.Spawned.Value {
		t.Errorf("score = %d, want %d", res.Score, 4+res.Spawned.Value)
	}
	if e.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", e.Moves())
	}
}

func TestEngineNoopMoveDoesNotSpawn(t *testing.T) {
	grid := NewGrid([Size][Size]int{{4, 2, 0, 0}})
	e := NewEngineFromGrid(grid, Options{Seed: 1})

	res := e.Move(DirLeft)
	if res.Moved || res.Spawned != nil {
		t.Errorf("no-op move result = %+v", res)
	}
	if !e.Grid().Equal(grid) {
		t.Error("no-op move changed the grid")
	}
	if e.Moves() != 0 {
		t.Error("no-op move counted")
	}
}

func TestEngineDetectsGameOver(t *testing.T) {
	// Moving left merges the 2s, the spawn refills the last cell and the
	// result has no empty cell and no equal neighbours.
	grid := NewGrid([Size][Size]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{8, 1024, 2048, 512},
		{4096, 16, 8192, 64},
	})
	e := NewEngineFromGrid(grid, Options{Rand: &scriptedRand{floats: []float64{0.5}}, FourProbability: 0.1})

	res := e.Move(DirLeft)
	if !res.Moved {
		t.Fatal("Move(left) should merge the 2s")
	}
	if got := e.Grid().Line(AxisRow, 0); got != (Line{4, 8, 16, 2}) {
		t.Fatalf("row0 = %v, want [4 8 16 2]", got)
	}
	if !res.GameOver || !e.GameOver() {
		t.Error("terminal grid should end the game")
	}

	after := e.Move(DirRight)
	if after.Moved {
		t.Error("moves after game over must be no-ops")
	}
}

func TestEngineReset(t *testing.T) {
	e := NewEngine(Options{Seed: 5})
	for _, d := range Directions {
		e.Move(d)
	}

	e.Reset()
	if e.Moves() != 0 || e.GameOver() {
		t.Error("Reset should clear counters")
	}
	if got := e.Grid().TileCount(); got != 2 {
		t.Errorf("Reset should reseed two tiles, got %d", got)
	}
}

func TestEngineTileCountAfterMoves(t *testing.T) {
	e := NewEngine(Options{Seed: 77, FourProbability: DefaultFourProbability})
	rng := rand.New(rand.NewSource(77))

	for range 500 {
		if e.GameOver() {
			break
		}
		before := e.Grid()
		res := e.Move(Directions[rng.Intn(len(Directions))])
		after := e.Grid()
		if !res.Moved {
			if !after.Equal(before) {
				t.Fatal("rejected move changed the grid")
			}
			continue
		}

		merges := mergeCount(before, res.Direction)
		if got, want := after.TileCount(), before.TileCount()-merges+1; got != want {
			t.Fatalf("tile count %d, want %d (before %d, merges %d)", got, want, before.TileCount(), merges)
		}
	}
}

// mergeCount counts tiles lost to merges when g moves in dir.
func mergeCount(g *Grid, dir Direction) int {
	c := g.Clone()
	Move(c, dir)
	return g.TileCount() - c.TileCount()
}
