// Package console is the line-oriented driver: it prints the board as text
// and reads "x y mine|free" commands.
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/termsweeper/internal/game"
)

// ErrBadCommand is returned for input lines that are not "x y mine|free".
var ErrBadCommand = errors.New("bad command")

// ParseCommand parses "x y keyword" where x is the 1-based column, y the
// 1-based row and keyword is "mine" or "free". The returned command uses
// zero-based coordinates; range checks are left to the session.
func ParseCommand(line string) (game.Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return game.Command{}, fmt.Errorf("%w: want \"x y mine|free\", got %q", ErrBadCommand, line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Command{}, fmt.Errorf("%w: column %q is not a number", ErrBadCommand, fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Command{}, fmt.Errorf("%w: row %q is not a number", ErrBadCommand, fields[1])
	}
	action, err := game.ParseAction(fields[2])
	if err != nil {
		return game.Command{}, fmt.Errorf("%w: %w", ErrBadCommand, err)
	}

	return game.Command{Row: y - 1, Col: x - 1, Action: action}, nil
}
