package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	steps   int
	endAt   int
	resets  int
	lastIn  core.InputFrame
	resized [2]int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) MaxTile() int { return 256 }
func (g *scriptedGame) Moves() int { return g.steps }
func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *scriptedGame) State() core.GameState { return core.GameState{Score: 100, GameOver: g.steps >= g.endAt} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = in.Clone()
	g.steps++
	return core.StepResult{State: g.State()}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func TestModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAt: 2}
	var m tea.Model = NewModel(game, store, nil, testConfig(), "alice")
	m.Init()

	for range 5 {
		m, _ = m.Update(TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved result, got %d", len(scores))
	}
	got := scores[0]
	if got.Player != "alice" || got.Score != 100 || got.MaxTile != 256 || got.Moves != 2 {
		t.Errorf("saved result = %+v", got)
	}
}

func TestModelForwardsKeysToStep(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")
	m.Init()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(TickMsg{})

	if !game.lastIn.Has(core.ActionLeft) {
		t.Error("left key should reach the game on the next tick")
	}

	m.Update(TickMsg{})
	if game.lastIn.Has(core.ActionLeft) {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelBackOnlyAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAt: 1}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")
	m.Init()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(Model).BackToMenu() {
		t.Fatal("back during play should be ignored")
	}

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.(Model).BackToMenu() {
		t.Error("back after game over should return to menu")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAt: 1}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")
	m.Init()

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m.Update(TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
}

func TestModelRestartMidGame(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")
	m.Init()

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(TickMsg{})
	if game.steps != 2 {
		t.Fatalf("steps = %d, want 2", game.steps)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = m.Update(TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.steps != 0 {
		t.Errorf("restart tick should not step the game, steps = %d", game.steps)
	}
	if m.(Model).gameState.GameOver {
		t.Error("restarted game should not be over")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, testConfig(), "")
	m.Init()

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resized != [2]int{100, 40} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Error("resize should not reset the game")
	}
	if cfg := m.(Model).Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestRendererUsesPalette(t *testing.T) {
	cfg := config.DefaultT2048Config().TUI
	r := NewRenderer(cfg)

	if _, none := r.Style(core.ColorTile2048).GetBackground().(lipgloss.NoColor); none {
		t.Fatal("2048 tile should have a background")
	}

	s := core.NewScreen(8, 1)
	s.DrawTextColored(0, 0, "2048", core.ColorTile2048)
	if out := r.Render(s); !strings.Contains(out, "2048") {
		t.Errorf("rendered output %q missing tile text", out)
	}
}
