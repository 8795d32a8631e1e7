package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "Hello")

	if got := s.Row(0); got != "  Hel" {
		t.Errorf("Row(0) = %q, expected %q", got, "  Hel")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorGreen)

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorGreen {
		t.Error("centered text should carry its colour")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorDefault)

	want := []string{"┌──┐", "│  │", "└──┘"}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.Resize(2, 3)

	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "ab" {
		t.Errorf("Row(0) = %q, expected ab", got)
	}
	if got := s.Row(2); got != "  " {
		t.Errorf("new row should be blank, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with a single newline")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  Color
	}{
		{0, ColorTileEmpty},
		{2, ColorTile2},
		{4, ColorTile4},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{3, ColorDefault},
	}
	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}

	for v := 2; v <= 2048; v *= 2 {
		if got := TileValueForColor(TileColor(v)); got != v {
			t.Errorf("TileValueForColor(TileColor(%d)) = %d", v, got)
		}
	}
}

func TestCooldownTicks(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.CooldownTicks(); got != 12 {
		t.Errorf("CooldownTicks() at 60fps/200ms = %d, want 12", got)
	}

	cfg.TickRate = 7 // 142.857ms per tick, 200ms needs 2 ticks
	if got := cfg.CooldownTicks(); got != 2 {
		t.Errorf("CooldownTicks() at 7fps/200ms = %d, want 2", got)
	}

	cfg.MoveCooldown = 0
	if got := cfg.CooldownTicks(); got != 0 {
		t.Errorf("CooldownTicks() without cooldown = %d, want 0", got)
	}
}

func TestRectCenteredSmall(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Centered(4, 2)
	if r != (Rect{X: 3, Y: 4, W: 4, H: 2}) {
		t.Errorf("Centered = %+v", r)
	}
	if !r.Contains(3, 4) || r.Contains(7, 4) {
		t.Error("Contains disagrees with bounds")
	}
}
