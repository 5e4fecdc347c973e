package field

// Symbol is the render token for one cell as seen by the player.
type Symbol uint8

const (
	// Hidden is an unexplored, unmarked cell.
	Hidden Symbol = iota
	// Flag is an unexplored cell the player marked.
	Flag
	// Cleared is an explored cell with no adjacent mines.
	Cleared
	// Exploded is an explored mine.
	Exploded
	// Count1 through Count8 are explored cells with that many adjacent mines.
	Count1
	Count2
	Count3
	Count4
	Count5
	Count6
	Count7
	Count8
)

// CountSymbol returns the symbol for an explored cell with n adjacent mines.
func CountSymbol(n int) Symbol {
	if n <= 0 {
		return Cleared
	}
	return Count1 + Symbol(min(n, 8)-1)
}

// Count returns the adjacent mine count for a count symbol, or 0.
func (s Symbol) Count() int {
	if s < Count1 || s > Count8 {
		return 0
	}
	return int(s-Count1) + 1
}

// Rune returns the symbol's display character.
func (s Symbol) Rune() rune {
	switch s {
	case Hidden:
		return '.'
	case Flag:
		return '*'
	case Cleared:
		return '/'
	case Exploded:
		return 'X'
	}
	if n := s.Count(); n > 0 {
		return rune('0' + n)
	}
	return '?'
}

// String returns the symbol's display character as a string.
func (s Symbol) String() string {
	return string(s.Rune())
}

// SymbolOf derives the render symbol of a cell.
func SymbolOf(c Cell) Symbol {
	switch {
	case c.Explored && c.Mine:
		return Exploded
	case c.Explored && c.Adjacent > 0:
		return CountSymbol(c.Adjacent)
	case c.Explored:
		return Cleared
	case c.Marked:
		return Flag
	default:
		return Hidden
	}
}

// Symbol returns the render symbol of the cell at the given position.
func (g *Grid) Symbol(row, col int) (Symbol, error) {
	c, err := g.Cell(row, col)
	if err != nil {
		return Hidden, err
	}
	return SymbolOf(c), nil
}

// Snapshot returns the render symbols of the whole grid, row by row.
func (g *Grid) Snapshot() [][]Symbol {
	snap := make([][]Symbol, g.size)
	for row := range g.cells {
		snap[row] = make([]Symbol, g.size)
		for col, c := range g.cells[row] {
			snap[row][col] = SymbolOf(c)
		}
	}
	return snap
}
