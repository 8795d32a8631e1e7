package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all moves in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrUnknownDirection is returned by ParseDirection for unrecognised input.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "up", "down", "left", "right" and their first
// letters, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// axis returns the line axis a move operates on and whether lines must be
// reversed so the direction of travel points at index 0.
func (d Direction) axis() (Axis, bool) {
	switch d {
	case DirLeft:
		return AxisRow, false
	case DirRight:
		return AxisRow, true
	case DirUp:
		return AxisCol, false
	case DirDown:
		return AxisCol, true
	default:
		panic(fmt.Sprintf("t2048: invalid direction %d", int(d)))
	}
}

// Move slides and merges every line of g in the given direction, mutating g.
// It reports whether any line changed.
func Move(g *Grid, dir Direction) bool {
	axis, reversed := dir.axis()
	moved := false

	for i := range Size {
		line := g.Line(axis, i)
		if reversed {
			line = reverse(line)
		}

		merged, changed := MergeLine(line)
		if !changed {
			continue
		}
		moved = true

		if reversed {
			merged = reverse(merged)
		}
		g.SetLine(axis, i, merged)
	}

	return moved
}

// CanMove reports whether moving in dir would change g, without mutating it.
func CanMove(g *Grid, dir Direction) bool {
	return Move(g.Clone(), dir)
}
