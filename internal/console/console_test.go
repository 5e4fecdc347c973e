package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/game"
)

func TestMain(m *testing.M) {
	for _, l := range []*logrus.Logger{Log, game.Log} {
		l.SetOutput(io.Discard)
		l.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
	m.Run()
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want game.Command
		err  bool
	}{
		{"1 1 free", game.Command{Row: 0, Col: 0, Action: game.ActionExplore}, false},
		{"3 7 mine", game.Command{Row: 6, Col: 2, Action: game.ActionMark}, false},
		{"  2   4  FREE ", game.Command{Row: 3, Col: 1, Action: game.ActionExplore}, false},
		{"0 0 free", game.Command{Row: -1, Col: -1, Action: game.ActionExplore}, false},
		{"", game.Command{}, true},
		{"1 1", game.Command{}, true},
		{"1 1 free now", game.Command{}, true},
		{"a 1 free", game.Command{}, true},
		{"1 b free", game.Command{}, true},
		{"1 1 flag", game.Command{}, true},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		if tt.err {
			if !errors.Is(err, ErrBadCommand) {
				t.Errorf("ParseCommand(%q) error = %v, want ErrBadCommand", tt.line, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCommand(%q) = %v, %v; want %v", tt.line, got, err, tt.want)
		}
	}
}

func TestParseCommandWrapsActionError(t *testing.T) {
	_, err := ParseCommand("1 1 dig")
	assert.ErrorIs(t, err, ErrBadCommand)
	assert.ErrorIs(t, err, game.ErrUnknownAction)
}

var centreMine = game.Options{Size: 9, Layout: []field.Position{{Row: 4, Col: 4}}}

func play(t *testing.T, opts game.Options, askMines bool, input string) (*Console, string) {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, nil, opts, askMines)
	require.NoError(t, c.Run(context.Background()))
	return c, out.String()
}

func TestConsoleWin(t *testing.T) {
	c, out := play(t, centreMine, false, "1 1 free\n5 5 mine\n")

	assert.Equal(t, game.StateWon, c.Session().State())
	assert.Contains(t, out, " |123456789|\n-|---------|\n1|.........|")
	assert.Contains(t, out, "5|///1.1///|")
	assert.Contains(t, out, "5|///1*1///|")
	assert.True(t, strings.HasSuffix(out, msgWon+"\n"), "output ends with %q", msgWon)
	assert.NotContains(t, out, msgLost)
}

func TestConsoleLoss(t *testing.T) {
	c, out := play(t, centreMine, false, "5 5 free\n1 1 free\n")

	assert.Equal(t, game.StateLost, c.Session().State())
	assert.Contains(t, out, msgLost+"\n")
	assert.Contains(t, out, "5|....X....|")
	assert.NotContains(t, out, msgWon)
	assert.Equal(t, 1, c.Session().Moves(), "input after the loss is not read")
}

func TestConsoleRejectsBadInput(t *testing.T) {
	c, out := play(t, centreMine, false, "hello\n10 1 free\n1 0 mine\n")

	assert.Contains(t, out, "bad command")
	assert.Equal(t, 2, strings.Count(out, "Coordinates must be between 1 and 9.\n"))
	assert.Equal(t, game.StatePlaying, c.Session().State())
	assert.Equal(t, 0, c.Session().Moves())
	assert.Equal(t, 4, strings.Count(out, promptCommand))
}

func TestConsoleEndOfInput(t *testing.T) {
	c, out := play(t, centreMine, false, "")

	assert.Equal(t, game.StatePlaying, c.Session().State())
	assert.Equal(t, 1, strings.Count(out, promptCommand))
	assert.NotContains(t, out, msgWon)
	assert.NotContains(t, out, msgLost)
}

func TestConsoleAsksForMines(t *testing.T) {
	c, out := play(t, game.Options{Size: 3, Seed: 1}, true, "abc\n100\n-1\n0\n")

	assert.Equal(t, 4, strings.Count(out, promptMines))
	assert.Equal(t, 3, strings.Count(out, "Please enter a number between 0 and 9.\n"))
	assert.Equal(t, 0, c.Session().Mines())

	// A field without mines is already won.
	assert.Equal(t, game.StateWon, c.Session().State())
	assert.NotContains(t, out, promptCommand)
	assert.True(t, strings.HasSuffix(out, msgWon+"\n"))
}

func TestConsoleAskedMinesArePlaced(t *testing.T) {
	c, out := play(t, game.Options{Seed: 7}, true, " 12 \n")

	assert.Equal(t, 1, strings.Count(out, promptMines))
	assert.Equal(t, 12, c.Session().Mines())
	assert.Equal(t, field.DefaultSize, c.Session().Size())
}

func TestConsoleNoInputBeforeStart(t *testing.T) {
	c, _ := play(t, game.Options{Size: 3}, true, "")
	assert.Nil(t, c.Session())
}

func TestConsoleCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := New(r, &out, nil, centreMine, false)
	err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, game.StatePlaying, c.Session().State())
}

func TestConsoleInvalidOptions(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("1 1 free\n"), &out, nil, game.Options{Size: 2, Mines: 5}, false)
	err := c.Run(context.Background())
	assert.ErrorIs(t, err, field.ErrInvalidMineCount)
}

// endless yields the same line forever.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	const line = "1 1 free\n"
	n := 0
	for n+len(line) <= len(p) {
		n += copy(p[n:], line)
	}
	return n, nil
}

func TestReadLinesStopsWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, endless{})

	assert.Equal(t, "1 1 free", <-lines)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-lines:
			return !ok
		default:
			return false
		}
	}, time.Second, time.Millisecond)
}
