// Package t2048 implements the 2048 sliding-tile puzzle: the grid, the
// one-pass merge engine, move orchestration, terminal detection and a
// tick-driven game for the terminal front end.
package t2048

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "2048"

// Game adapts an Engine to the tick-driven registry.Game interface.
type Game struct {
	engine   *Engine
	cfg      config.T2048Config
	cooldown *TickCooldown
	tick     uint64

	screenW int
	screenH int

	paused   bool
	tooSmall bool
	lastMove *MoveResult
}

var (
	configMu   sync.RWMutex
	gameConfig = config.DefaultT2048Config()
)

// SetConfig sets the config used by games created after the call. The CLI
// hands over its loaded and validated config here once at startup.
func SetConfig(cfg config.T2048Config) {
	configMu.Lock()
	defer configMu.Unlock()
	gameConfig = cfg
}

func currentConfig() config.T2048Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return gameConfig
}

// New creates a 2048 game with the config set by SetConfig. Call Reset
// before stepping it.
func New() *Game {
	return NewWithConfig(currentConfig())
}

// NewWithConfig creates a 2048 game with an explicit config.
func NewWithConfig(cfg config.T2048Config) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game: empty grid, the configured starting tiles, score
// zero.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.engine = NewEngine(Options{
		Rand:            rand.New(rand.NewSource(rt.Seed)),
		FourProbability: g.cfg.Game.FourProbability,
		InitialTiles:    g.cfg.Game.InitialTiles,
	})
	g.cooldown = NewTickCooldown(rt.CooldownTicks())
	g.tick = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.paused = false
	g.lastMove = nil

	g.checkScreenSize()
}

// checkScreenSize flags screens smaller than the board plus HUD.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick. At most one move is applied per tick,
// and none while the cooldown from the previous accepted move is running.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.cooldown.Tick()

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFromInput(in)
	if !ok || g.cooldown.Busy() {
		return core.StepResult{State: g.State()}
	}

	g.cooldown.Trigger()
	res := g.engine.Move(dir)
	g.lastMove = &res

	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// directionFromInput picks the move for this frame. When several direction
// keys arrive in one tick the first in up, down, left, right order wins.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// MaxTile returns the largest tile on the board.
func (g *Game) MaxTile() int {
	return g.engine.State().MaxTile
}

// Moves returns the number of accepted moves this game.
func (g *Game) Moves() int {
	return g.engine.Moves()
}

// Resize adapts to a new screen size without discarding the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}
