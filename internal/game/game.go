// Package game is the desktop shell around a match: it polls the keyboard,
// advances the core once per ebiten tick and draws the table.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Pong/internal/match"
)

const (
	feedCapacity = 8
	statusTicks  = 2 * match.TicksPerSecond // how long a footer message stays up
)

// keyboard is the slice of ebiten input the shell reads.
type keyboard interface {
	IsKeyPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// Game implements ebiten.Game for one match.
type Game struct {
	state *match.State
	log   *zap.SugaredLogger
	theme Theme
	feed  *RallyFeed

	keys     keyboard
	prevKeys map[ebiten.Key]bool
	copyText func(string) error

	showFeed  bool
	status    string
	statusTTL int
}

// New wraps state in a playable window. themeName is one of the config
// themes; unknown names fall back to the table look.
func New(state *match.State, themeName string, log *zap.SugaredLogger) *Game {
	g := &Game{
		state:    state,
		log:      log,
		theme:    ThemeByName(themeName),
		feed:     NewRallyFeed(feedCapacity),
		keys:     ebitenKeyboard{},
		prevKeys: make(map[ebiten.Key]bool),
		copyText: writeClipboard,
	}
	r := state.Rules
	log.Infow("match started",
		"collision", r.Collision.String(),
		"serve", r.Serve.String(),
		"win_score", r.WinScore,
		"left", r.Left.String(),
		"right", r.Right.String())
	return g
}

// State exposes the match for inspection.
func (g *Game) State() *match.State { return g.state }

// Update advances the match one tick. Quit ends the run loop cleanly.
func (g *Game) Update() error {
	in, copyPressed := g.handleInput()

	events, err := match.Tick(g.state, in)
	if errors.Is(err, match.ErrQuit) {
		g.log.Infow("quit", "score", g.state.Score.String(), "tick", g.state.Tick, "phase", g.state.Phase.String())
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	g.observe(events)

	if copyPressed && g.state.Phase == match.PhaseGameOver {
		g.copyResult()
	}
	if g.statusTTL > 0 {
		g.statusTTL--
		if g.statusTTL == 0 {
			g.status = ""
		}
	}
	return nil
}

// Layout pins the logical screen to the playfield; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.state.Rules.Width), int(g.state.Rules.Height)
}

// handleInput reads held paddle keys and edge-triggered actions.
func (g *Game) handleInput() (match.Input, bool) {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = g.keys.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	var in match.Input
	in.Restart = pressed(ebiten.KeySpace)
	in.Quit = pressed(ebiten.KeyEscape)
	copyPressed := pressed(ebiten.KeyC)
	if pressed(ebiten.KeyTab) {
		g.showFeed = !g.showFeed
	}
	g.prevKeys = currentKeys

	held := g.keys.IsKeyPressed
	in.Left = match.PaddleInput{Up: held(ebiten.KeyW), Down: held(ebiten.KeyS)}
	arrows := match.PaddleInput{Up: held(ebiten.KeyArrowUp), Down: held(ebiten.KeyArrowDown)}
	if g.state.Rules.Right == match.ControllerComputer {
		// Single player: the arrows drive the left paddle too.
		in.Left.Up = in.Left.Up || arrows.Up
		in.Left.Down = in.Left.Down || arrows.Down
	} else {
		in.Right = arrows
	}
	return in, copyPressed
}

// observe logs a tick's events and feeds the on-screen rally panel.
func (g *Game) observe(events []match.Event) {
	for _, e := range events {
		g.feed.Add(e.Tick, e.String())
		switch e.Kind {
		case match.EventScore:
			g.log.Infow("point", "scorer", g.state.Label(e.Side), "score", e.Score.String(), "rally", e.Rally, "tick", e.Tick)
		case match.EventGameOver:
			g.log.Infow("game over", "result", g.state.ResultText(), "score", e.Score.String(), "tick", e.Tick)
		case match.EventRestart:
			g.log.Infow("restart", "tick", e.Tick)
		default:
			g.log.Debugw(e.Kind.String(), "side", e.Side.String(), "contact", e.Contact.String(),
				"wall", e.Wall.String(), "speed", e.Speed, "rally", e.Rally, "tick", e.Tick)
		}
	}
}

// resultLine is the text copied from the game-over screen.
func resultLine(s *match.State) string {
	return fmt.Sprintf("%s %s after %d ticks", s.ResultText(), s.Score, s.Tick)
}

func (g *Game) copyResult() {
	line := resultLine(g.state)
	if err := g.copyText(line); err != nil {
		g.log.Warnw("clipboard copy failed", "error", err)
		g.setStatus("Clipboard unavailable")
		return
	}
	g.log.Infow("result copied", "line", line)
	g.setStatus("Result copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = statusTicks
}
