package match

import (
	"math/rand"
	"testing"
)

// --- Invariant helpers ---

// randomScript mashes keys: held directions change every few ticks and a
// restart is pressed now and then.
func randomScript(rng *rand.Rand) Script {
	var held Input
	return func(*State) Input {
		if rng.Intn(6) == 0 {
			held.Left = PaddleInput{Up: rng.Intn(2) == 0, Down: rng.Intn(2) == 0}
			held.Right = PaddleInput{Up: rng.Intn(2) == 0, Down: rng.Intn(2) == 0}
		}
		in := held
		in.Restart = rng.Intn(40) == 0
		return in
	}
}

// checkPaddlesInField verifies the clamping invariant for both paddles.
func checkPaddlesInField(t *testing.T, s *State) {
	t.Helper()
	for _, p := range []Paddle{s.Left, s.Right} {
		if p.Y < 0 || p.Y > s.Rules.Height-p.H {
			t.Fatalf("T=%d %s paddle out of field: y=%.2f", s.Tick, p.Side, p.Y)
		}
	}
}

// checkScoreStep verifies that a tick moved the score by at most one point
// for one side, or reset it alongside a restart event.
func checkScoreStep(t *testing.T, s *State, before Score, events []Event) {
	t.Helper()
	if countKind(events, EventRestart) > 0 {
		if s.Score != (Score{}) {
			t.Fatalf("T=%d restart left score at %s", s.Tick, s.Score)
		}
		return
	}
	dl := s.Score.Left - before.Left
	dr := s.Score.Right - before.Right
	if dl < 0 || dr < 0 {
		t.Fatalf("T=%d score went backwards: %s → %s", s.Tick, before, s.Score)
	}
	if dl+dr > 1 {
		t.Fatalf("T=%d more than one point in a tick: %s → %s", s.Tick, before, s.Score)
	}
	if dl+dr != countKind(events, EventScore) {
		t.Fatalf("T=%d score changed without a score event: %v", s.Tick, events)
	}
}

// checkServeAfterScore verifies the ball was recentered at serve speed.
func checkServeAfterScore(t *testing.T, s *State, events []Event) {
	t.Helper()
	if countKind(events, EventScore) == 0 {
		return
	}
	lo, hi := ServeSpeedRange(s.Rules)
	if !approx(s.Ball.CenterX(), s.Rules.Width/2) || !approx(s.Ball.CenterY(), s.Rules.Height/2) {
		t.Fatalf("T=%d ball not recentered after score: %s", s.Tick, s.Ball)
	}
	if sp := s.Ball.Speed(); sp < lo-1e-9 || sp > hi+1e-9 {
		t.Fatalf("T=%d serve speed %.3f outside [%.3f, %.3f]", s.Tick, sp, lo, hi)
	}
}

// checkGameOver verifies the GameOver transition fires once, for the side
// that just reached the threshold, and never for both.
func checkGameOver(t *testing.T, s *State, beforePhase Phase, events []Event) {
	t.Helper()
	n := countKind(events, EventGameOver)
	if n > 1 {
		t.Fatalf("T=%d %d game over events in one tick", s.Tick, n)
	}
	if s.Score.Left >= s.Rules.WinScore && s.Score.Right >= s.Rules.WinScore {
		t.Fatalf("T=%d both sides reached the threshold: %s", s.Tick, s.Score)
	}
	if n == 1 {
		if beforePhase != PhasePlaying || s.Phase != PhaseGameOver {
			t.Fatalf("T=%d game over fired from %s", s.Tick, beforePhase)
		}
		if s.Score.Of(s.Winner) != s.Rules.WinScore {
			t.Fatalf("T=%d winner %s holds %d, want %d", s.Tick, s.Winner, s.Score.Of(s.Winner), s.Rules.WinScore)
		}
		return
	}
	if s.Phase == PhaseGameOver && beforePhase == PhasePlaying {
		t.Fatalf("T=%d entered game over without an event", s.Tick)
	}
}

// checkWallBounce verifies VY points away from the wall touched this tick,
// paddle contacts included, and that the ball ends the tick inside the field.
// A score re-serves the ball from the center, so its direction is free.
func checkWallBounce(t *testing.T, s *State, events []Event) {
	t.Helper()
	if b := s.Ball; b.Top() < 0 || b.Bottom() > s.Rules.Height {
		t.Fatalf("T=%d ball outside the field: %s", s.Tick, b)
	}
	if countKind(events, EventScore) > 0 {
		return
	}
	for _, e := range events {
		if e.Kind != EventWallBounce {
			continue
		}
		if e.Wall == WallTop && s.Ball.VY < 0 {
			t.Fatalf("T=%d ball still moving into the top wall: %s", s.Tick, s.Ball)
		}
		if e.Wall == WallBottom && s.Ball.VY > 0 {
			t.Fatalf("T=%d ball still moving into the bottom wall: %s", s.Tick, s.Ball)
		}
	}
}

// --- Invariant tests ---

func TestInvariants_RandomPlay(t *testing.T) {
	presets := map[string]Rules{"classic": Classic(), "versus": Versus()}
	both := Classic()
	both.Left, both.Right = ControllerComputer, ControllerComputer
	presets["computers"] = both

	for name, rules := range presets {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 8; seed++ {
				rng := rand.New(rand.NewSource(seed * 31))
				sim := NewSim(WithRules(rules), WithSeed(seed), WithScript(randomScript(rng)))
				gameOvers := 0
				for i := 0; i < 6000; i++ {
					s := sim.State
					beforeScore, beforePhase := s.Score, s.Phase
					events := sim.Step(sim.script(s))

					checkPaddlesInField(t, s)
					checkScoreStep(t, s, beforeScore, events)
					checkServeAfterScore(t, s, events)
					checkGameOver(t, s, beforePhase, events)
					checkWallBounce(t, s, events)
					gameOvers += countKind(events, EventGameOver)
				}
				if gameOvers != sim.Log.CountCategory("state", "game_over") {
					t.Fatalf("seed %d: log disagrees on game overs", seed)
				}
			}
		})
	}
}

func TestInvariants_BallNeverInsidePaddleAfterTick(t *testing.T) {
	for _, rules := range []Rules{Classic(), Versus()} {
		rules.Left, rules.Right = ControllerComputer, ControllerComputer
		sim := NewSim(WithRules(rules), WithSeed(99))
		for i := 0; i < 10000; i++ {
			sim.Step(Input{Restart: true})
			b := sim.State.Ball
			if b.Overlaps(sim.State.Left.Rect) || b.Overlaps(sim.State.Right.Rect) {
				t.Fatalf("%s T=%d ball stuck in a paddle: %s", rules.Collision, sim.State.Tick, b)
			}
		}
	}
}
