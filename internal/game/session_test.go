package game

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/termsweeper/internal/field"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func centreMine(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(context.Background(), Options{
		Size:   9,
		Layout: []field.Position{{Row: 4, Col: 4}},
	})
	require.NoError(t, err)
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(context.Background(), Options{Mines: DefaultMines})
	require.NoError(t, err)

	assert.Equal(t, field.DefaultSize, s.Size())
	assert.Equal(t, DefaultMines, s.Mines())
	assert.Equal(t, DefaultMines, s.Remaining())
	assert.Equal(t, StatePlaying, s.State())
	assert.NotZero(t, s.Seed)
	assert.NotEqual(t, s.ID.String(), "")

	for _, row := range s.Snapshot() {
		for _, sym := range row {
			assert.Equal(t, field.Hidden, sym)
		}
	}
}

func TestNewSessionErrors(t *testing.T) {
	ctx := context.Background()

	_, err := NewSession(ctx, Options{Size: -3})
	assert.ErrorIs(t, err, field.ErrInvalidSize)

	_, err = NewSession(ctx, Options{Size: 3, Mines: 10})
	assert.ErrorIs(t, err, field.ErrInvalidMineCount)

	_, err = NewSession(ctx, Options{Size: 3, Layout: []field.Position{{Row: 9, Col: 9}}})
	assert.ErrorIs(t, err, field.ErrOutOfBounds)
}

func TestNewSessionSeedReproducible(t *testing.T) {
	ctx := context.Background()
	s1, err := NewSession(ctx, Options{Size: 16, Mines: 40, Seed: 12345})
	require.NoError(t, err)
	s2, err := NewSession(ctx, Options{Size: 16, Mines: 40, Seed: 12345})
	require.NoError(t, err)

	assert.Equal(t, uint64(12345), s1.Seed)
	assert.NotEqual(t, s1.ID, s2.ID)
	for row := range 16 {
		for col := range 16 {
			c1, _ := s1.grid.Cell(row, col)
			c2, _ := s2.grid.Cell(row, col)
			require.Equal(t, c1, c2, "(%d,%d)", row, col)
		}
	}
}

func TestNewSessionWithoutMinesIsWon(t *testing.T) {
	s, err := NewSession(context.Background(), Options{Size: 4, Mines: 0})
	require.NoError(t, err)
	assert.Equal(t, StateWon, s.State())

	_, err = s.Apply(context.Background(), Command{Row: 0, Col: 0, Action: ActionExplore})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSessionWin(t *testing.T) {
	ctx := context.Background()
	s := centreMine(t)

	res, err := s.Apply(ctx, Command{Row: 0, Col: 0, Action: ActionExplore})
	require.NoError(t, err)
	assert.Equal(t, field.Explored, res.Outcome)
	assert.Equal(t, StatePlaying, res.State)

	res, err = s.Apply(ctx, Command{Row: 4, Col: 4, Action: ActionMark})
	require.NoError(t, err)
	assert.Equal(t, StateWon, res.State)
	assert.Equal(t, StateWon, s.State())
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, 2, s.Moves())

	_, err = s.Apply(ctx, Command{Row: 4, Col: 4, Action: ActionMark})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSessionWinRequiresExactMarks(t *testing.T) {
	ctx := context.Background()
	s := centreMine(t)

	res, err := s.Apply(ctx, Command{Row: 0, Col: 0, Action: ActionMark})
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, res.State)

	res, err = s.Apply(ctx, Command{Row: 4, Col: 4, Action: ActionMark})
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, res.State, "extra wrong mark blocks the win")
	assert.Equal(t, -1, s.Remaining())

	res, err = s.Apply(ctx, Command{Row: 0, Col: 0, Action: ActionMark})
	require.NoError(t, err)
	assert.Equal(t, StateWon, res.State)
}

func TestSessionLoss(t *testing.T) {
	ctx := context.Background()
	s := centreMine(t)

	res, err := s.Apply(ctx, Command{Row: 4, Col: 4, Action: ActionExplore})
	require.NoError(t, err)
	assert.Equal(t, field.HitMine, res.Outcome)
	assert.Equal(t, StateLost, res.State)

	snap := s.Snapshot()
	assert.Equal(t, field.Exploded, snap[4][4])
	assert.Equal(t, field.Hidden, snap[0][0])

	_, err = s.Apply(ctx, Command{Row: 0, Col: 0, Action: ActionExplore})
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSessionIgnoresExploredCells(t *testing.T) {
	ctx := context.Background()
	s := centreMine(t)

	_, err := s.Apply(ctx, Command{Row: 3, Col: 3, Action: ActionExplore})
	require.NoError(t, err)

	for _, action := range []Action{ActionMark, ActionExplore} {
		res, err := s.Apply(ctx, Command{Row: 3, Col: 3, Action: action})
		require.NoError(t, err)
		assert.True(t, res.Ignored, "%s on explored cell", action)
		assert.Equal(t, StatePlaying, res.State)
	}
	assert.Equal(t, 1, s.Moves())
	assert.Equal(t, field.Count1, s.Snapshot()[3][3])
}

func TestSessionRejectsBadCommands(t *testing.T) {
	ctx := context.Background()
	s := centreMine(t)

	_, err := s.Apply(ctx, Command{Row: 9, Col: 0, Action: ActionExplore})
	assert.ErrorIs(t, err, field.ErrOutOfBounds)

	_, err = s.Apply(ctx, Command{Row: 0, Col: 0, Action: Action(7)})
	assert.ErrorIs(t, err, ErrUnknownAction)

	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, StatePlaying, s.State())
}

func TestNewSessionTracesFullSeed(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	s, err := NewSession(context.Background(), Options{Size: 4, Mines: 3, Seed: math.MaxUint64})
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), s.Seed)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "session.start", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("field.seed", "18446744073709551615"))
}
