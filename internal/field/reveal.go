package field

// RevealOutcome reports what a reveal did.
type RevealOutcome int

const (
	// Explored means the cell was safe and has been revealed, possibly with
	// its zero-count region.
	Explored RevealOutcome = iota
	// AlreadyExplored means the cell was revealed earlier; nothing changed.
	AlreadyExplored
	// HitMine means the cell held a mine. Only that cell was revealed.
	HitMine
)

// String returns a human-readable outcome name.
func (o RevealOutcome) String() string {
	switch o {
	case Explored:
		return "explored"
	case AlreadyExplored:
		return "already_explored"
	case HitMine:
		return "hit_mine"
	default:
		return "unknown"
	}
}

// Reveal explores the cell at the given position.
func (g *Grid) Reveal(row, col int) (RevealOutcome, error) {
	outcome, _, err := g.RevealTrace(row, col)
	return outcome, err
}

// RevealTrace is Reveal that also returns the newly explored cells in the
// order they were visited.
//
// A safe cell with no adjacent mines opens its whole region: the cells are
// visited depth-first from an explicit stack, neighbours clockwise from the
// upper-left. Cells with a nonzero count are revealed but stop the spread.
// Flags inside the region are cleared as the cells are explored.
func (g *Grid) RevealTrace(row, col int) (RevealOutcome, []Position, error) {
	if !g.InBounds(row, col) {
		return 0, nil, g.outOfBounds(row, col)
	}

	c := &g.cells[row][col]
	switch {
	case c.Explored:
		return AlreadyExplored, nil, nil
	case c.Mine:
		c.Explored = true
		return HitMine, []Position{{Row: row, Col: col}}, nil
	}

	return Explored, g.flood(Position{Row: row, Col: col}), nil
}

// flood explores start and every cell reachable from it through zero-count
// cells. The Explored flag is the visited marker. Mines are never
// explored by a flood, even if the counts were not computed.
func (g *Grid) flood(start Position) []Position {
	var (
		visited []Position
		stack   = []Position{start}
		next    = make([]Position, 0, len(neighbourOffsets))
	)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &g.cells[p.Row][p.Col]
		if c.Explored || c.Mine {
			continue
		}
		c.Explored = true
		c.Marked = false
		visited = append(visited, p)

		if c.Adjacent > 0 {
			continue
		}

		next = next[:0]
		for n := range g.Neighbours(p.Row, p.Col) {
			if !g.cells[n.Row][n.Col].Explored {
				next = append(next, n)
			}
		}
		// Push in reverse so the upper-left neighbour is popped first.
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	return visited
}
