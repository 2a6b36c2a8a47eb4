package match

import "fmt"

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventServe EventKind = iota
	EventWallBounce
	EventPaddleHit
	EventEdgeHit
	EventScore
	EventGameOver
	EventRestart
)

var eventKindNames = [...]string{
	EventServe:      "serve",
	EventWallBounce: "wall_bounce",
	EventPaddleHit:  "paddle_hit",
	EventEdgeHit:    "edge_hit",
	EventScore:      "score",
	EventGameOver:   "game_over",
	EventRestart:    "restart",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one observable outcome of a tick. Side is the paddle hit, the
// scorer or the winner depending on Kind; Wall and Contact are set for wall
// bounces and paddle contacts.
type Event struct {
	Tick    int
	Kind    EventKind
	Side    Side
	Wall    Wall
	Contact Contact
	Score   Score
	Speed   float64 // ball speed after the event
	Rally   int     // paddle contacts since the last serve
}

func (e Event) String() string {
	switch e.Kind {
	case EventWallBounce:
		return fmt.Sprintf("[T=%04d] %s %s speed=%.2f", e.Tick, e.Kind, e.Wall, e.Speed)
	case EventPaddleHit, EventEdgeHit:
		return fmt.Sprintf("[T=%04d] %s %s %s rally=%d speed=%.2f", e.Tick, e.Kind, e.Side, e.Contact, e.Rally, e.Speed)
	case EventScore:
		return fmt.Sprintf("[T=%04d] %s %s %s rally=%d", e.Tick, e.Kind, e.Side, e.Score, e.Rally)
	case EventGameOver:
		return fmt.Sprintf("[T=%04d] %s winner=%s %s", e.Tick, e.Kind, e.Side, e.Score)
	default:
		return fmt.Sprintf("[T=%04d] %s speed=%.2f", e.Tick, e.Kind, e.Speed)
	}
}
