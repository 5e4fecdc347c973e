package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/telemetry"
)

// Log is the logger used by game sessions.
var Log = logrus.StandardLogger()

var (
	// ErrGameOver is returned for commands sent after a win or loss.
	ErrGameOver = errors.New("game is over")
	// ErrUnknownAction is returned for an action other than mark or explore.
	ErrUnknownAction = errors.New("unknown action")
)

// Result describes the effect of one command.
type Result struct {
	State   State
	Outcome field.RevealOutcome // Set for explore commands
	Ignored bool                // The target cell was already explored
}

// Session is a single game. It owns its grid; drivers only see snapshots.
type Session struct {
	ID      uuid.UUID
	Seed    uint64 // Zero when the board came from Options.Layout
	grid    *field.Grid
	state   State
	moves   int
	started time.Time
}

// NewSession creates the board, places the mines and computes the counts.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	opts = opts.withDefaults()

	_, span := telemetry.Tracer("game").Start(ctx, "session.start")
	defer span.End()

	s, err := newSession(opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("field.size", s.grid.Size()),
		attribute.Int("field.mines", s.grid.MineCount()),
		attribute.String("field.seed", strconv.FormatUint(s.Seed, 10)),
	)
	Log.WithFields(s.fields()).Info("game started")

	return s, nil
}

func newSession(opts Options) (*Session, error) {
	grid, err := field.New(opts.Size)
	if err != nil {
		return nil, fmt.Errorf("initialize field: %w", err)
	}

	var seed uint64
	if len(opts.Layout) > 0 {
		err = grid.PlaceMinesAt(opts.Layout)
	} else {
		var rng *rand.Rand
		rng, seed = opts.source()
		err = grid.PlaceMines(opts.Mines, rng)
	}
	if err != nil {
		return nil, fmt.Errorf("place mines: %w", err)
	}
	grid.ComputeAdjacentCounts()

	s := &Session{
		ID:      uuid.New(),
		Seed:    seed,
		grid:    grid,
		state:   StatePlaying,
		started: time.Now(),
	}
	// A board without mines is already solved.
	if grid.CheckWin() {
		s.state = StateWon
	}
	return s, nil
}

// Apply performs one command. Commands on explored cells are ignored, marks
// are followed by the win check, and exploring a mine loses the game.
func (s *Session) Apply(ctx context.Context, cmd Command) (Result, error) {
	_, span := telemetry.Tracer("game").Start(ctx, "session.apply",
		trace.WithAttributes(
			attribute.String("session.id", s.ID.String()),
			attribute.String("command.action", cmd.Action.String()),
			attribute.Int("command.row", cmd.Row),
			attribute.Int("command.col", cmd.Col),
		),
	)
	defer span.End()

	res, err := s.apply(cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		Log.WithFields(s.fields()).WithError(err).Debug("command rejected")
		return res, err
	}

	span.SetAttributes(
		attribute.Bool("command.ignored", res.Ignored),
		attribute.String("game.state", res.State.String()),
	)
	if cmd.Action == ActionExplore && !res.Ignored {
		span.SetAttributes(attribute.String("reveal.outcome", res.Outcome.String()))
	}

	entry := Log.WithFields(s.fields()).WithField("command", cmd.String())
	switch {
	case res.Ignored:
		entry.Debug("command ignored")
	case res.State.Over():
		entry.WithField("duration", time.Since(s.started).Round(time.Millisecond)).Info("game over")
	default:
		entry.Debug("command applied")
	}

	return res, nil
}

func (s *Session) apply(cmd Command) (Result, error) {
	res := Result{State: s.state}
	if s.state.Over() {
		return res, ErrGameOver
	}

	cell, err := s.grid.Cell(cmd.Row, cmd.Col)
	if err != nil {
		return res, fmt.Errorf("apply %s: %w", cmd, err)
	}
	if cell.Explored {
		res.Ignored = true
		return res, nil
	}

	switch cmd.Action {
	case ActionMark:
		if err := s.grid.ToggleMark(cmd.Row, cmd.Col); err != nil {
			return res, fmt.Errorf("apply %s: %w", cmd, err)
		}
		if s.grid.CheckWin() {
			s.state = StateWon
		}
	case ActionExplore:
		outcome, err := s.grid.Reveal(cmd.Row, cmd.Col)
		if err != nil {
			return res, fmt.Errorf("apply %s: %w", cmd, err)
		}
		res.Outcome = outcome
		if outcome == field.HitMine {
			s.state = StateLost
		}
	default:
		return res, fmt.Errorf("%w: %d", ErrUnknownAction, cmd.Action)
	}

	s.moves++
	res.State = s.state
	return res, nil
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Size returns the side length of the board.
func (s *Session) Size() int {
	return s.grid.Size()
}

// Mines returns the number of mines on the board.
func (s *Session) Mines() int {
	return s.grid.MineCount()
}

// Remaining returns the mine count minus the marks placed. It goes negative
// when the player over-marks.
func (s *Session) Remaining() int {
	return s.grid.MineCount() - s.grid.MarkedCount()
}

// Moves returns the number of commands that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// Snapshot returns the render symbols of the board.
func (s *Session) Snapshot() [][]field.Symbol {
	return s.grid.Snapshot()
}

func (s *Session) fields() logrus.Fields {
	return logrus.Fields{
		"session": s.ID.String(),
		"size":    s.grid.Size(),
		"mines":   s.grid.MineCount(),
		"state":   s.state.String(),
		"moves":   s.moves,
	}
}
