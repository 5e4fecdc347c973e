package field

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

const (
	// DefaultSize is the side length of the classic board.
	DefaultSize = 9
)

// Grid is a square minefield. It is owned by a single game and is not safe
// for concurrent use.
type Grid struct {
	size   int
	cells  [][]Cell
	mines  int
	placed bool
}

// New creates an empty size×size grid.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	return &Grid{
		size:  size,
		cells: cells,
	}, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the coordinates address a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Cell returns a copy of the cell at the given position.
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, g.outOfBounds(row, col)
	}
	return g.cells[row][col], nil
}

// MineCount returns the number of mines placed on the grid.
func (g *Grid) MineCount() int {
	return g.mines
}

// MarkedCount returns the number of cells currently flagged.
func (g *Grid) MarkedCount() int {
	return g.count(func(c Cell) bool { return c.Marked })
}

// ExploredCount returns the number of revealed cells.
func (g *Grid) ExploredCount() int {
	return g.count(func(c Cell) bool { return c.Explored })
}

func (g *Grid) count(pred func(Cell) bool) int {
	n := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if pred(g.cells[row][col]) {
				n++
			}
		}
	}
	return n
}

// Neighbours yields the in-bounds neighbours of a cell, clockwise from the
// upper-left.
func (g *Grid) Neighbours(row, col int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, off := range neighbourOffsets {
			r, c := row+off.Row, col+off.Col
			if !g.InBounds(r, c) {
				continue
			}
			if !yield(Position{Row: r, Col: c}) {
				return
			}
		}
	}
}

// PlaceMines scatters count mines uniformly at random. A random cell is
// drawn and redrawn while it already holds a mine. A nil rng uses the
// package-level source.
func (g *Grid) PlaceMines(count int, rng *rand.Rand) error {
	if g.placed {
		return ErrMinesPlaced
	}
	if count < 0 || count > g.size*g.size {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidMineCount, count, g.size*g.size)
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	for placed := 0; placed < count; {
		row, col := intN(g.size), intN(g.size)
		if g.cells[row][col].Mine {
			continue
		}
		g.cells[row][col].Mine = true
		placed++
	}

	g.mines = count
	g.placed = true
	return nil
}

// PlaceMinesAt puts mines on exactly the given cells.
func (g *Grid) PlaceMinesAt(positions []Position) error {
	if g.placed {
		return ErrMinesPlaced
	}

	seen := make(map[Position]bool, len(positions))
	for _, p := range positions {
		if !g.InBounds(p.Row, p.Col) {
			return g.outOfBounds(p.Row, p.Col)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate mine at (%d, %d)", ErrInvalidMineCount, p.Row, p.Col)
		}
		seen[p] = true
	}

	for p := range seen {
		g.cells[p.Row][p.Col].Mine = true
	}

	g.mines = len(seen)
	g.placed = true
	return nil
}

// ComputeAdjacentCounts stores, for every non-mine cell, the number of mines
// around it. Call it once, after the mines are placed and before any reveal.
func (g *Grid) ComputeAdjacentCounts() {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Mine {
				continue
			}
			n := 0
			for p := range g.Neighbours(row, col) {
				if g.cells[p.Row][p.Col].Mine {
					n++
				}
			}
			g.cells[row][col].Adjacent = n
		}
	}
}

// ToggleMark flips the flag on an unexplored cell. Explored cells are left
// untouched.
func (g *Grid) ToggleMark(row, col int) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}

	c := &g.cells[row][col]
	if c.Explored {
		return nil
	}
	c.Marked = !c.Marked
	return nil
}

// CheckWin returns true when the marked cells are exactly the mined cells.
func (g *Grid) CheckWin() bool {
	for row := range g.cells {
		for col := range g.cells[row] {
			c := g.cells[row][col]
			if c.Mine != c.Marked {
				return false
			}
		}
	}
	return true
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, row, col, g.size, g.size)
}
