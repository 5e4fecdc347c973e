package ui

import (
	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/theme"
)

const (
	statusRow = 0 // Line with mine/flag counters
	boardTop  = 2 // Line of the column header
)

// Outcome tells the renderer how to colour the message line.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// View is everything needed to draw one frame.
type View struct {
	Board   [][]field.Symbol
	Cursor  field.Position
	Status  string
	Message string
	Help    string
	Outcome Outcome
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *theme.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, th *theme.Theme) *Renderer {
	if th == nil {
		th = theme.Default()
	}
	return &Renderer{screen: screen, theme: th}
}

// Render draws a frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.screen.SetString(0, statusRow, v.Status, r.theme.TextStyle())

	lines := BoardLines(v.Board, r.theme.Glyph)
	border := r.theme.BorderStyle()
	for i, line := range lines {
		r.screen.SetString(0, boardTop+i, line, border)
	}

	// Cells are drawn over the frame with per-symbol styles.
	for row := range v.Board {
		for col, sym := range v.Board[row] {
			x, y := r.cellOrigin(len(v.Board), row, col)
			style := r.theme.Style(sym)
			if v.Outcome == OutcomeNone && v.Cursor == (field.Position{Row: row, Col: col}) {
				style = r.theme.CursorStyle(sym)
			}
			r.screen.SetContent(x, y, r.theme.Glyph(sym), style)
		}
	}

	msgRow := boardTop + len(lines) + 1
	msgStyle := r.theme.TextStyle()
	switch v.Outcome {
	case OutcomeWon:
		msgStyle = r.theme.OutcomeStyle(true)
	case OutcomeLost:
		msgStyle = r.theme.OutcomeStyle(false)
	}
	r.screen.SetString(0, msgRow, v.Message, msgStyle)
	r.screen.SetString(0, msgRow+1, v.Help, r.theme.BorderStyle())

	r.screen.Show()
}

// CellAt maps a screen position to a board cell of a size×size board.
func (r *Renderer) CellAt(x, y, size int) (field.Position, bool) {
	x0, y0 := r.cellOrigin(size, 0, 0)
	row, col := y-y0, x-x0
	if row < 0 || row >= size || col < 0 || col >= size {
		return field.Position{}, false
	}
	return field.Position{Row: row, Col: col}, true
}

// cellOrigin returns the screen position of a board cell.
func (r *Renderer) cellOrigin(size, row, col int) (int, int) {
	// Header and separator lines sit above the first row.
	return labelWidth(size) + 1 + col, boardTop + 2 + row
}
