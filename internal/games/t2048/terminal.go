package t2048

// IsTerminal reports whether the game is over: no empty cell and no cell
// equal to its right or lower neighbour.
func IsTerminal(g *Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g.cells[r][c]
			if v == 0 {
				return false
			}
			if c < Size-1 && g.cells[r][c+1] == v {
				return false
			}
			if r < Size-1 && g.cells[r+1][c] == v {
				return false
			}
		}
	}
	return true
}
