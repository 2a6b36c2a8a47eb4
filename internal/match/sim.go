package match

import (
	"fmt"
	"math/rand"
)

// Sim is a headless match runner. It drives Tick with scripted input,
// seeds its randomness deterministically and records every event in a
// MatchLog. Tests and cmd/headless-report use it.
type Sim struct {
	State *State
	Log   *MatchLog

	rules  Rules
	rng    Rand
	script Script
	quit   bool
}

// Script produces the input for the next tick.
type Script func(s *State) Input

// Idle is a Script that presses nothing.
func Idle(*State) Input { return Input{} }

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra     simOptionKind = iota // rules, seed, verbose, script; applied first
	simOptPlacement                      // ball, paddles, score; applied to the built state
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithRules replaces the default classic rules.
func WithRules(r Rules) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.rules = r
	}}
}

// WithSeed seeds a math/rand source for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}}
}

// WithRand supplies the random source directly.
func WithRand(rng Rand) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.rng = rng
	}}
}

// WithVerbose enables per-tick ball position entries.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.Log = NewMatchLog(v)
	}}
}

// WithScript sets the input source. The default presses nothing.
func WithScript(sc Script) SimOption {
	return SimOption{simOptInfra, func(sim *Sim) {
		sim.script = sc
	}}
}

// WithBall places the ball's top-left corner at (x,y) with velocity (vx,vy).
func WithBall(x, y, vx, vy float64) SimOption {
	return SimOption{simOptPlacement, func(sim *Sim) {
		b := &sim.State.Ball
		b.X, b.Y, b.VX, b.VY = x, y, vx, vy
	}}
}

// WithPaddleY moves the paddle on side so its top edge is at y.
func WithPaddleY(side Side, y float64) SimOption {
	return SimOption{simOptPlacement, func(sim *Sim) {
		sim.State.Paddle(side).Y = y
	}}
}

// WithScore sets the starting score.
func WithScore(left, right int) SimOption {
	return SimOption{simOptPlacement, func(sim *Sim) {
		sim.State.Score = Score{Left: left, Right: right}
	}}
}

// WithGameOver starts the sim on the result screen with winner already
// decided.
func WithGameOver(winner Side) SimOption {
	return SimOption{simOptPlacement, func(sim *Sim) {
		sim.State.Phase = PhaseGameOver
		sim.State.Winner = winner
	}}
}

// NewSim constructs a Sim from the given options in two ordered passes:
//  1. Infrastructure (rules, seed, verbose, script)
//  2. Build the State, then apply placement (ball, paddles, score, phase)
func NewSim(opts ...SimOption) *Sim {
	sim := &Sim{
		rules:  Classic(),
		Log:    NewMatchLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- gameplay only
		script: Idle,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(sim)
		}
	}
	sim.State = New(sim.rules, sim.rng)
	for _, o := range opts {
		if o.kind == simOptPlacement {
			o.fn(sim)
		}
	}
	return sim
}

// Quit reports whether a scripted quit has stopped the sim.
func (sim *Sim) Quit() bool {
	return sim.quit
}

// Step runs one tick with explicit input and logs its events. Once a quit
// has been seen further steps do nothing.
func (sim *Sim) Step(in Input) []Event {
	if sim.quit {
		return nil
	}
	events, err := Tick(sim.State, in)
	if err != nil {
		sim.quit = true
		sim.Log.Add(sim.State.Tick, "--", "state", "quit", err.Error(), 0)
		return nil
	}
	sim.Log.Record(events)
	if sim.State.Phase == PhasePlaying {
		b := sim.State.Ball
		sim.Log.AddVerbose(sim.State.Tick, "--", "ball", "position",
			fmt.Sprintf("(%.2f,%.2f)", b.X, b.Y), b.Speed())
	}
	return events
}

// RunTicks advances the sim n ticks using the script.
func (sim *Sim) RunTicks(n int) {
	for i := 0; i < n && !sim.quit; i++ {
		sim.Step(sim.script(sim.State))
	}
}

// RunUntil advances the sim up to maxTicks, stopping early once predicate
// holds. It returns the number of ticks run when the predicate was
// satisfied, or -1.
func (sim *Sim) RunUntil(predicate func(*State) bool, maxTicks int) int {
	for i := 1; i <= maxTicks && !sim.quit; i++ {
		sim.Step(sim.script(sim.State))
		if predicate(sim.State) {
			return i
		}
	}
	return -1
}
