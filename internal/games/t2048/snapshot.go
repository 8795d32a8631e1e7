package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Moves    int
	Board    [Size][Size]int
	MaxTile  int
	Cooldown bool // Whether move input is currently suppressed
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	es := g.engine.State()
	return Snapshot{
		Tick:     g.tick,
		Score:    es.Score,
		Moves:    es.Moves,
		Board:    es.Board,
		MaxTile:  es.MaxTile,
		Cooldown: g.cooldown.Busy(),
		State:    state,
	}
}
