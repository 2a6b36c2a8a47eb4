package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Garsondee/Pong/internal/match"
)

// fakeKeys is a keyboard whose held keys are set by the test.
type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(k ebiten.Key) bool { return f[k] }

func newTestGame(t *testing.T, rules match.Rules) (*Game, fakeKeys, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	state := match.New(rules, rand.New(rand.NewSource(7))) // #nosec G404 -- test determinism
	g := New(state, "table", zap.New(core).Sugar())
	keys := fakeKeys{}
	g.keys = keys
	return g, keys, logs
}

func TestNew_LogsMatchStart(t *testing.T) {
	_, _, logs := newTestGame(t, match.Versus())
	entries := logs.FilterMessage("match started").All()
	if len(entries) != 1 {
		t.Fatalf("expected one start entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["right"]; got != "computer" {
		t.Fatalf("expected right=computer, got %v", got)
	}
}

func TestUpdate_HeldKeysMovePaddles(t *testing.T) {
	g, keys, _ := newTestGame(t, match.Classic())
	keys[ebiten.KeyW] = true
	keys[ebiten.KeyArrowDown] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	s := g.State()
	if s.Left.Y != 242 || s.Right.Y != 258 {
		t.Fatalf("expected paddles at 242/258, got %.1f/%.1f", s.Left.Y, s.Right.Y)
	}
}

func TestUpdate_ArrowsDriveLeftAgainstComputer(t *testing.T) {
	g, keys, _ := newTestGame(t, match.Versus())
	keys[ebiten.KeyArrowUp] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if y := g.State().Left.Y; y != 243 {
		t.Fatalf("expected left paddle at 243, got %.1f", y)
	}
}

func TestUpdate_EscapeTerminates(t *testing.T) {
	g, keys, logs := newTestGame(t, match.Classic())
	keys[ebiten.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	if logs.FilterMessage("quit").Len() != 1 {
		t.Fatal("quit should be logged")
	}
}

func TestUpdate_ActionsAreEdgeTriggered(t *testing.T) {
	g, keys, _ := newTestGame(t, match.Classic())
	g.State().Phase = match.PhaseGameOver
	g.State().Winner = match.SideLeft
	g.State().Score = match.Score{Left: 10, Right: 2}

	keys[ebiten.KeySpace] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.State().Phase != match.PhasePlaying || g.State().Score != (match.Score{}) {
		t.Fatalf("space should restart, got %s %s", g.State().Phase, g.State().Score)
	}

	// Holding space does not restart again after the next game over.
	g.State().Phase = match.PhaseGameOver
	g.State().Winner = match.SideRight
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.State().Phase != match.PhaseGameOver {
		t.Fatal("held space must not restart twice")
	}

	keys[ebiten.KeyTab] = true
	_ = g.Update()
	_ = g.Update()
	if !g.showFeed {
		t.Fatal("tab should toggle the feed once while held")
	}
}

func TestUpdate_LogsScoresAndFeedsPanel(t *testing.T) {
	g, _, logs := newTestGame(t, match.Classic())
	b := &g.State().Ball
	b.X, b.Y, b.VX, b.VY = 790, 50, 7, 0
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	points := logs.FilterMessage("point").All()
	if len(points) != 1 {
		t.Fatalf("expected one point entry, got %d", len(points))
	}
	if points[0].Level != zapcore.InfoLevel || points[0].ContextMap()["scorer"] != "Player 1" {
		t.Fatalf("unexpected point entry %+v", points[0])
	}
	if logs.FilterMessage("serve").Len() != 1 {
		t.Fatal("serve should be logged at debug")
	}
	feed := g.feed.Recent()
	if len(feed) != 2 || !strings.Contains(feed[0].Text, "score") {
		t.Fatalf("unexpected feed %+v", feed)
	}
}

func TestUpdate_CopyResultOnGameOver(t *testing.T) {
	g, keys, logs := newTestGame(t, match.Classic())
	var copied string
	g.copyText = func(s string) error {
		copied = s
		return nil
	}

	keys[ebiten.KeyC] = true
	_ = g.Update()
	if copied != "" {
		t.Fatal("copy must only work on the result screen")
	}
	keys[ebiten.KeyC] = false
	_ = g.Update()

	s := g.State()
	s.Phase, s.Winner, s.Score = match.PhaseGameOver, match.SideRight, match.Score{Left: 4, Right: 10}
	keys[ebiten.KeyC] = true
	_ = g.Update()
	if !strings.HasPrefix(copied, "Player 2 wins 4-10 after") {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if g.status == "" || logs.FilterMessage("result copied").Len() != 1 {
		t.Fatal("copy should set a status and log")
	}
}

func TestUpdate_CopyFailureIsReported(t *testing.T) {
	g, keys, logs := newTestGame(t, match.Classic())
	g.copyText = func(string) error { return errClipboardUnsupported }
	g.State().Phase, g.State().Winner = match.PhaseGameOver, match.SideLeft

	keys[ebiten.KeyC] = true
	if err := g.Update(); err != nil {
		t.Fatalf("clipboard failure must not stop the game: %v", err)
	}
	if g.status != "Clipboard unavailable" {
		t.Fatalf("unexpected status %q", g.status)
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Fatal("expected a warning")
	}
	for i := 0; i < statusTicks; i++ {
		_ = g.Update()
	}
	if g.status != "" {
		t.Fatal("status should clear after a while")
	}
}

func TestLayout_MatchesPlayfield(t *testing.T) {
	g, _, _ := newTestGame(t, match.Classic())
	if w, h := g.Layout(1920, 1080); w != 800 || h != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, h)
	}
}
