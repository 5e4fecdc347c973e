// Package game runs minesweeper games: the per-game session and the
// full-screen event loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is an unfinished game that accepts commands.
	StatePlaying State = iota
	// StateWon means the marked cells match the mines exactly.
	StateWon
	// StateLost means the player explored a mine.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over returns true once the game has been won or lost.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
