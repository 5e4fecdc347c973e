package game

import (
	"fmt"
	"strings"
)

// Action is what the player wants to do with a cell.
type Action int

const (
	// ActionMark sets or clears a mine mark.
	ActionMark Action = iota
	// ActionExplore claims the cell is free and reveals it.
	ActionExplore
)

// String returns the command keyword for the action.
func (a Action) String() string {
	switch a {
	case ActionMark:
		return "mine"
	case ActionExplore:
		return "free"
	default:
		return "unknown"
	}
}

// ParseAction converts a command keyword ("mine" or "free") to an Action.
func ParseAction(keyword string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "mine":
		return ActionMark, nil
	case "free":
		return ActionExplore, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, keyword)
	}
}

// Command is one player move on a zero-based cell.
type Command struct {
	Row, Col int
	Action   Action
}

// String returns a compact description for logs.
func (c Command) String() string {
	return fmt.Sprintf("%s (%d,%d)", c.Action, c.Row, c.Col)
}
