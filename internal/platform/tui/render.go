package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Tile text colours: dark on the two lightest tiles, light on the rest.
const (
	tileTextDark  = "#776e65"
	tileTextLight = "#f9f6f2"
)

// baseStyles maps the non-tile colours to lipgloss styles.
var baseStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// Renderer converts a Screen buffer to styled terminal output.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds tile styles from the configured palette.
func NewRenderer(cfg config.TUIConfig) *Renderer {
	styles := make(map[core.Color]lipgloss.Style, len(baseStyles)+len(cfg.Palette)+2)
	for c, s := range baseStyles {
		styles[c] = s
	}

	for c := core.ColorTile2; c <= core.ColorTile2048; c++ {
		value := core.TileValueForColor(c)
		if hex, ok := cfg.Palette[value]; ok {
			styles[c] = tileStyle(hex, value)
		}
	}
	if cfg.EmptyColor != "" {
		styles[core.ColorTileEmpty] = lipgloss.NewStyle().Background(lipgloss.Color(cfg.EmptyColor))
	}
	if cfg.SuperColor != "" {
		styles[core.ColorTileSuper] = tileStyle(cfg.SuperColor, 4096)
	}

	return &Renderer{styles: styles}
}

func tileStyle(hex string, value int) lipgloss.Style {
	fg := tileTextLight
	if value <= 4 {
		fg = tileTextDark
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Bold(true)
}

// Style returns the style used for c.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultRenderer = NewRenderer(config.DefaultT2048Config().TUI)
