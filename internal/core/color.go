package core

// Color is a symbolic foreground colour for a screen cell.
// The platform layer decides how each colour is displayed.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightWhite

	// ColorTileEmpty is the background of an empty board cell.
	ColorTileEmpty

	// Tile colours, one per tile value up to 2048.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	// ColorTileSuper is used for every tile above 2048.
	ColorTileSuper
)

// TileColor returns the colour for a tile value. Zero (empty) maps to
// ColorTileEmpty; values that are not powers of two fall back to ColorDefault.
func TileColor(value int) Color {
	if value == 0 {
		return ColorTileEmpty
	}
	c := ColorTile2
	for v := 2; v <= 2048; v *= 2 {
		if v == value {
			return c
		}
		c++
	}
	if value > 2048 && value&(value-1) == 0 {
		return ColorTileSuper
	}
	return ColorDefault
}

// TileValueForColor is the inverse of TileColor for tile colours.
// It returns 0 for non-tile colours and for ColorTileSuper.
func TileValueForColor(c Color) int {
	if c < ColorTile2 || c > ColorTile2048 {
		return 0
	}
	return 2 << (c - ColorTile2)
}
