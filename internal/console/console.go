package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/game"
	"github.com/samdwyer/termsweeper/internal/theme"
	"github.com/samdwyer/termsweeper/internal/ui"
)

// Log is the logger used by the console driver.
var Log = logrus.StandardLogger()

const (
	promptMines   = "How many mines do you want on the field? "
	promptCommand = "Set/unset mine marks or claim a cell as free (x y [mine to mark/unmark] or [free to explore]): "

	msgLost = "You stepped on a mine and failed!"
	msgWon  = "Congratulations! You found all the mines!"
)

// Console plays one game over a line-based reader and writer.
type Console struct {
	in       io.Reader
	out      io.Writer
	theme    *theme.Theme
	opts     game.Options
	askMines bool
	session  *game.Session
}

// New creates a console driver. When askMines is true the mine count is read
// from in before the game starts; otherwise opts.Mines is used.
func New(in io.Reader, out io.Writer, th *theme.Theme, opts game.Options, askMines bool) *Console {
	if th == nil {
		th = theme.Default()
	}
	return &Console{
		in:       in,
		out:      out,
		theme:    th,
		opts:     opts,
		askMines: askMines,
	}
}

// Session returns the game being played, or nil before it starts.
func (c *Console) Session() *game.Session {
	return c.session
}

// Run plays a game until it is won or lost, the input ends, or ctx is
// cancelled.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, c.in)

	if err := c.start(ctx, lines); err != nil {
		return ignoreEOF(err)
	}

	for c.session.State() == game.StatePlaying {
		c.printBoard()
		fmt.Fprint(c.out, promptCommand)

		line, err := next(ctx, lines)
		if err != nil {
			return ignoreEOF(err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}

		res, err := c.session.Apply(ctx, cmd)
		if errors.Is(err, field.ErrOutOfBounds) {
			size := c.session.Size()
			fmt.Fprintf(c.out, "Coordinates must be between 1 and %d.\n", size)
			continue
		} else if err != nil {
			return err
		}

		switch res.State {
		case game.StateLost:
			fmt.Fprintln(c.out, msgLost)
			c.printBoard()
		case game.StateWon:
			c.printBoard()
		}
	}

	if c.session.State() == game.StateWon {
		fmt.Fprintln(c.out, msgWon)
	}
	return nil
}

// start creates the session, asking for the mine count first if needed.
func (c *Console) start(ctx context.Context, lines <-chan string) error {
	opts := c.opts
	if !c.askMines {
		s, err := game.NewSession(ctx, opts)
		if err != nil {
			return err
		}
		c.session = s
		return nil
	}

	size := opts.Size
	if size == 0 {
		size = field.DefaultSize
	}

	for {
		fmt.Fprint(c.out, promptMines)
		line, err := next(ctx, lines)
		if err != nil {
			return err
		}

		mines, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(c.out, "Please enter a number between 0 and %d.\n", size*size)
			continue
		}

		opts.Mines = mines
		s, err := game.NewSession(ctx, opts)
		if errors.Is(err, field.ErrInvalidMineCount) {
			fmt.Fprintf(c.out, "Please enter a number between 0 and %d.\n", size*size)
			continue
		} else if err != nil {
			return err
		}
		c.session = s
		return nil
	}
}

func (c *Console) printBoard() {
	for _, line := range ui.BoardLines(c.session.Snapshot(), c.theme.Glyph) {
		fmt.Fprintln(c.out, line)
	}
}

// ignoreEOF treats the end of input as a normal exit.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		Log.Info("input closed before the game ended")
		return nil
	}
	return err
}

// readLines feeds the lines of r into a channel that is closed at EOF or
// once ctx is done. A read already blocked on r is not interrupted.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			Log.WithError(err).Warn("reading input")
		}
	}()
	return lines
}

// next returns the next input line, io.EOF at the end of input, or the
// context error.
func next(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
