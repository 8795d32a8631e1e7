package t2048

import "fmt"

// Size is the board dimension. The game is always played on Size×Size cells.
const Size = 4

// Axis selects whether a line is a row or a column.
type Axis int

const (
	AxisRow Axis = iota
	AxisCol
)

// Line is one row or column. Zero means an empty cell.
type Line [Size]int

// Cell addresses a single grid position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is the 4x4 arrangement of tile values. The zero value is an empty grid.
type Grid struct {
	cells [Size][Size]int
}

// NewGrid returns a grid populated from rows, mostly for tests and replays.
func NewGrid(rows [Size][Size]int) *Grid {
	return &Grid{cells: rows}
}

// At returns the value at (row, col); 0 means empty.
func (g *Grid) At(row, col int) int {
	return g.cells[row][col]
}

// Set stores a value at (row, col).
func (g *Grid) Set(row, col, value int) {
	g.cells[row][col] = value
}

// Line returns the row or column at index, ordered from low to high index.
// An invalid axis or index is a programming error and panics.
func (g *Grid) Line(axis Axis, index int) Line {
	var line Line
	switch axis {
	case AxisRow:
		line = g.cells[index]
	case AxisCol:
		for i := range Size {
			line[i] = g.cells[i][index]
		}
	default:
		panic(fmt.Sprintf("t2048: invalid axis %d", axis))
	}
	return line
}

// SetLine replaces the row or column at index in place.
func (g *Grid) SetLine(axis Axis, index int, line Line) {
	switch axis {
	case AxisRow:
		g.cells[index] = line
	case AxisCol:
		for i := range Size {
			g.cells[i][index] = line[i]
		}
	default:
		panic(fmt.Sprintf("t2048: invalid axis %d", axis))
	}
}

// EmptyCells lists the empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g.cells[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// RandomEmptyCell picks one empty cell uniformly at random.
// It returns false when the grid is full.
func (g *Grid) RandomEmptyCell(rng RandomSource) (Cell, bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}
	return empty[rng.Intn(len(empty))], true
}

// IsFull reports whether no cell is empty.
func (g *Grid) IsFull() bool {
	for r := range Size {
		for c := range Size {
			if g.cells[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values, which is the displayed score.
func (g *Grid) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += g.cells[r][c]
		}
	}
	return total
}

// MaxTile returns the largest tile value, or 0 for an empty grid.
func (g *Grid) MaxTile() int {
	best := 0
	for r := range Size {
		for c := range Size {
			best = max(best, g.cells[r][c])
		}
	}
	return best
}

// TileCount returns the number of non-empty cells.
func (g *Grid) TileCount() int {
	return Size*Size - len(g.EmptyCells())
}

// Rows returns a copy of the cells for read-only consumers.
func (g *Grid) Rows() [Size][Size]int {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Equal reports whether both grids hold the same values.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = [Size][Size]int{}
}
