package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termsweeper/internal/field"
	"github.com/samdwyer/termsweeper/internal/telemetry"
	"github.com/samdwyer/termsweeper/internal/theme"
	"github.com/samdwyer/termsweeper/internal/ui"
)

const (
	helpLine = "arrows/hjkl move  space/m mark  enter/x explore  r new game  q quit"

	msgWon  = "Congratulations! You found all the mines!"
	msgLost = "You stepped on a mine and failed!"
)

// Game is the full-screen driver: it renders a session and turns keys and
// mouse clicks into commands.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	opts     Options
	session  *Session
	cursor   field.Position
	message  string
	buttons  tcell.ButtonMask
	games    int
	running  bool
}

// New creates a game drawing on screen with the given theme.
func New(screen *ui.Screen, th *theme.Theme, opts Options) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, th),
		opts:     opts,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or the screen is
// closed.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	if err := g.newGame(ctx); err != nil {
		return err
	}

	for g.running {
		g.render()

		// Handle input (blocking)
		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		g.handleEvent(ctx, ev)
	}

	span.SetAttributes(attribute.Int("game.count", g.games))
	return nil
}

// newGame replaces the current session with a fresh board.
func (g *Game) newGame(ctx context.Context) error {
	s, err := NewSession(ctx, g.opts)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	g.session = s
	g.games++
	g.cursor = field.Position{Row: s.Size() / 2, Col: s.Size() / 2}
	g.message = ""
	if s.State() == StateWon {
		g.message = msgWon
	}
	return nil
}

// render draws the current session.
func (g *Game) render() {
	outcome := ui.OutcomeNone
	switch g.session.State() {
	case StateWon:
		outcome = ui.OutcomeWon
	case StateLost:
		outcome = ui.OutcomeLost
	}

	g.renderer.Render(ui.View{
		Board:   g.session.Snapshot(),
		Cursor:  g.cursor,
		Status:  g.status(),
		Message: g.message,
		Help:    helpLine,
		Outcome: outcome,
	})
}

func (g *Game) status() string {
	return fmt.Sprintf("Mines: %d  Marked: %d  Left: %d  [%s]",
		g.session.Mines(),
		g.session.Mines()-g.session.Remaining(),
		g.session.Remaining(),
		g.session.State(),
	)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(-1, 0)
	case tcell.KeyDown:
		g.moveCursor(1, 0)
	case tcell.KeyLeft:
		g.moveCursor(0, -1)
	case tcell.KeyRight:
		g.moveCursor(0, 1)

	case tcell.KeyEnter:
		g.apply(ctx, ActionExplore, g.cursor)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.moveCursor(-1, 0)
		case 'j':
			g.moveCursor(1, 0)
		case 'h':
			g.moveCursor(0, -1)
		case 'l':
			g.moveCursor(0, 1)
		case ' ', 'm', 'f':
			g.apply(ctx, ActionMark, g.cursor)
		case 'x', 'e':
			g.apply(ctx, ActionExplore, g.cursor)
		case 'r', 'R':
			if err := g.newGame(ctx); err != nil {
				Log.WithError(err).Error("could not start a new game")
				g.message = err.Error()
			}
		}
	}
}

// handleMouseEvent explores on left click and marks on right click. Only
// the press is acted on, not drags or the release.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	pressed := buttons &^ g.buttons
	g.buttons = buttons
	if pressed == 0 {
		return
	}

	x, y := ev.Position()
	pos, ok := g.renderer.CellAt(x, y, g.session.Size())
	if !ok {
		return
	}
	g.cursor = pos

	switch {
	case pressed&tcell.Button1 != 0:
		g.apply(ctx, ActionExplore, pos)
	case pressed&tcell.Button2 != 0:
		g.apply(ctx, ActionMark, pos)
	}
}

// moveCursor moves the cursor by the given delta, clamped to the board.
func (g *Game) moveCursor(dRow, dCol int) {
	size := g.session.Size()
	g.cursor.Row = min(max(g.cursor.Row+dRow, 0), size-1)
	g.cursor.Col = min(max(g.cursor.Col+dCol, 0), size-1)
}

// apply sends a command to the session and updates the message line.
func (g *Game) apply(ctx context.Context, action Action, pos field.Position) {
	res, err := g.session.Apply(ctx, Command{Row: pos.Row, Col: pos.Col, Action: action})
	switch {
	case errors.Is(err, ErrGameOver):
		g.message = "The game is over. Press r for a new game or q to quit."
	case err != nil:
		Log.WithError(err).Warn("command failed")
		g.message = err.Error()
	case res.State == StateWon:
		g.message = msgWon
	case res.State == StateLost:
		g.message = msgLost
	case res.Ignored:
		g.message = "That cell is already explored."
	default:
		g.message = ""
	}
}
