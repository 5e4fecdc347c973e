// Package field provides the minesweeper grid: mine placement, neighbour
// counts, flood-fill reveal and the win check.
package field

// Cell represents a single square of the grid.
type Cell struct {
	Mine     bool // A mine occupies this cell
	Marked   bool // The player flagged this cell as a suspected mine
	Explored bool // The player revealed this cell
	Adjacent int  // Mines in the 8-neighbourhood; not meaningful for mines
}

// Position identifies a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

// neighbourOffsets lists the 8-neighbourhood clockwise from the upper-left.
var neighbourOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1},
	{1, 1}, {1, 0}, {1, -1},
	{0, -1},
}
