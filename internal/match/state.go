package match

import "errors"

// ErrQuit is returned by Tick when the quit action was pressed. The state is
// left exactly as it was.
var ErrQuit = errors.New("match: quit requested")

// Phase is the match state machine's current state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// PaddleInput is the held direction keys for one paddle.
type PaddleInput struct {
	Up   bool
	Down bool
}

// Input is one tick's snapshot of the controls. Left/Right are held keys;
// Restart and Quit are newly pressed actions.
type Input struct {
	Left    PaddleInput
	Right   PaddleInput
	Restart bool
	Quit    bool
}

// State is everything a match is made of. It is owned by a single caller and
// only changed through Tick and Reset.
type State struct {
	Rules  Rules
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Score  Score
	Phase  Phase
	Winner Side
	Tick   int // playing ticks since the process started
	Rally  int // paddle contacts since the last serve

	rng Rand
}

// New builds a match in PhasePlaying with the ball already served. The rules
// are assumed valid; see Rules.Validate.
func New(r Rules, rng Rand) *State {
	s := &State{Rules: r, rng: rng}
	s.Reset()
	return s
}

// Reset zeroes the score, recenters both paddles and serves a fresh ball.
func (s *State) Reset() {
	r := s.Rules
	s.Left = Paddle{Rect: Rect{X: r.PaddleInset, W: r.PaddleWidth, H: r.PaddleHeight}, Side: SideLeft}
	s.Right = Paddle{Rect: Rect{X: r.Width - r.PaddleInset - r.PaddleWidth, W: r.PaddleWidth, H: r.PaddleHeight}, Side: SideRight}
	s.Left.Y = r.Height/2 - r.PaddleHeight/2
	s.Right.Y = s.Left.Y
	s.Score = Score{}
	s.Phase = PhasePlaying
	s.Winner = SideNone
	s.Rally = 0
	serve(&s.Ball, r, s.rng, 0, 0, true)
}

// Paddle returns the paddle defending side.
func (s *State) Paddle(side Side) *Paddle {
	if side == SideRight {
		return &s.Right
	}
	return &s.Left
}

// Label is the name shown for side.
func (s *State) Label(side Side) string {
	switch {
	case side == SideLeft:
		return "Player 1"
	case side == SideRight && s.Rules.Right == ControllerComputer:
		return "Computer"
	case side == SideRight:
		return "Player 2"
	default:
		return ""
	}
}

// ResultText describes the finished match, or is empty while playing.
func (s *State) ResultText() string {
	if s.Phase != PhaseGameOver {
		return ""
	}
	return s.Label(s.Winner) + " wins"
}

// Tick advances the match by one fixed step and returns what happened.
//
// Quit is honoured in every phase and returns ErrQuit before anything else is
// touched. In PhaseGameOver only Restart is processed. In PhasePlaying the
// order is paddles, ball and walls, paddle collisions, scoring, win check.
func Tick(s *State, in Input) ([]Event, error) {
	if in.Quit {
		return nil, ErrQuit
	}
	if s.Phase == PhaseGameOver {
		if !in.Restart {
			return nil, nil
		}
		s.Reset()
		return []Event{
			{Tick: s.Tick, Kind: EventRestart, Score: s.Score},
			s.event(EventServe, SideNone),
		}, nil
	}

	s.Tick++
	var events []Event
	r := s.Rules

	for _, side := range [...]Side{SideLeft, SideRight} {
		p := s.Paddle(side)
		if r.ControllerFor(side) == ControllerComputer {
			trackBall(p, s.Ball, r)
			continue
		}
		if side == SideLeft {
			steer(p, in.Left, r)
		} else {
			steer(p, in.Right, r)
		}
	}

	wall := integrate(&s.Ball, r)
	if wall != WallNone {
		e := s.event(EventWallBounce, SideNone)
		e.Wall = wall
		events = append(events, e)
	}

	for _, p := range [...]Paddle{s.Left, s.Right} {
		c := collide(&s.Ball, p, r, wall)
		if c == ContactNone {
			continue
		}
		s.Rally++
		kind := EventPaddleHit
		if c != ContactFace {
			kind = EventEdgeHit
		}
		e := s.event(kind, p.Side)
		e.Contact = c
		events = append(events, e)
	}

	if scorer := s.exitSide(); scorer != SideNone {
		events = append(events, s.score(scorer)...)
	}
	return events, nil
}

// exitSide reports which side earns a point because the ball reached the
// opposite boundary.
func (s *State) exitSide() Side {
	switch {
	case s.Ball.Left() <= 0:
		return SideRight
	case s.Ball.Right() >= s.Rules.Width:
		return SideLeft
	default:
		return SideNone
	}
}

func (s *State) score(scorer Side) []Event {
	if scorer == SideLeft {
		s.Score.Left++
	} else {
		s.Score.Right++
	}
	events := []Event{s.event(EventScore, scorer)}

	s.Rally = 0
	serve(&s.Ball, s.Rules, s.rng, s.Ball.VX, s.Ball.VY, false)
	events = append(events, s.event(EventServe, SideNone))

	if s.Score.Of(scorer) >= s.Rules.WinScore {
		s.Phase = PhaseGameOver
		s.Winner = scorer
		events = append(events, s.event(EventGameOver, scorer))
	}
	return events
}

func (s *State) event(kind EventKind, side Side) Event {
	return Event{
		Tick:  s.Tick,
		Kind:  kind,
		Side:  side,
		Score: s.Score,
		Speed: s.Ball.Speed(),
		Rally: s.Rally,
	}
}
