package t2048

import "math/rand"

// Options configures an Engine.
type Options struct {
	// Rand drives tile placement. When nil a source seeded with Seed is used.
	Rand RandomSource
	Seed int64

	// FourProbability is the chance a spawned tile is a 4.
	FourProbability float64

	// InitialTiles is the number of tiles placed on a fresh grid.
	InitialTiles int
}

// DefaultOptions returns the classic rules: two starting tiles, 10% fours.
func DefaultOptions() Options {
	return Options{
		FourProbability: DefaultFourProbability,
		InitialTiles:    2,
	}
}

// Spawn describes the tile added after an accepted move.
type Spawn struct {
	Cell  Cell `json:"cell"`
	Value int  `json:"value"`
}

// MoveResult reports the outcome of Engine.Move.
type MoveResult struct {
	Direction Direction `json:"direction"`
	Moved     bool      `json:"moved"`
	Spawned   *Spawn    `json:"spawned,omitempty"`
	Score     int       `json:"score"`
	GameOver  bool      `json:"game_over"`
}

// State is a read-only view of an engine.
type State struct {
	Board    [Size][Size]int `json:"board"`
	Score    int             `json:"score"`
	MaxTile  int             `json:"max_tile"`
	Moves    int             `json:"moves"`
	GameOver bool            `json:"game_over"`
}

// Engine owns one grid and applies moves to it: slide and merge, spawn a tile
// when something moved, then check for the terminal state.
type Engine struct {
	opts    Options
	grid    Grid
	spawner *Spawner
	moves   int
	over    bool
}

// NewEngine creates an engine and seeds the starting tiles.
func NewEngine(opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Seed))
	}
	if opts.InitialTiles <= 0 {
		opts.InitialTiles = 2
	}

	e := &Engine{
		opts:    opts,
		spawner: NewSpawner(opts.Rand, opts.FourProbability),
	}
	e.Reset()
	return e
}

// NewEngineFromGrid creates an engine that continues from an existing grid.
func NewEngineFromGrid(g *Grid, opts Options) *Engine {
	e := NewEngine(opts)
	e.grid = *g.Clone()
	e.over = IsTerminal(&e.grid)
	return e
}

// Reset discards the grid, reseeds the starting tiles and zeroes counters.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.moves = 0
	e.over = false
	for range e.opts.InitialTiles {
		e.spawner.Spawn(&e.grid)
	}
}

// Move applies dir. When no line changes the call is a no-op and no tile
// spawns. After a game is over every move is a no-op.
func (e *Engine) Move(dir Direction) MoveResult {
	res := MoveResult{Direction: dir, Score: e.Score(), GameOver: e.over}
	if e.over || !Move(&e.grid, dir) {
		return res
	}

	e.moves++
	res.Moved = true
	if cell, value, ok := e.spawner.Spawn(&e.grid); ok {
		res.Spawned = &Spawn{Cell: cell, Value: value}
	}
	e.over = IsTerminal(&e.grid)

	res.Score = e.Score()
	res.GameOver = e.over
	return res
}

// Score is the sum of all tile values on the grid.
func (e *Engine) Score() int {
	return e.grid.Sum()
}

// Moves returns the number of accepted moves since the last reset.
func (e *Engine) Moves() int {
	return e.moves
}

// GameOver reports whether the last accepted move left a terminal grid.
func (e *Engine) GameOver() bool {
	return e.over
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return State{
		Board:    e.grid.Rows(),
		Score:    e.Score(),
		MaxTile:  e.grid.MaxTile(),
		Moves:    e.moves,
		GameOver: e.over,
	}
}
