package match

import (
	"fmt"
	"math"
)

// Side identifies one half of the table.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Paddle is a vertical bat pinned to one side of the playfield.
type Paddle struct {
	Rect
	Side Side
}

// Move shifts the paddle dir*speed pixels vertically and clamps it to
// [0, fieldH-H]. dir is -1 (up), 0 or +1 (down).
func (p *Paddle) Move(dir int, speed, fieldH float64) {
	p.Y = clamp(p.Y+float64(dir)*speed, 0, fieldH-p.H)
}

// Face returns the x coordinate of the edge the ball is meant to strike.
func (p Paddle) Face() float64 {
	if p.Side == SideLeft {
		return p.Right()
	}
	return p.Left()
}

// Ball is the square ball and its per-tick velocity.
type Ball struct {
	Rect
	VX, VY float64
}

// Speed returns the velocity magnitude in pixels per tick.
func (b Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b Ball) String() string {
	return fmt.Sprintf("(%.1f,%.1f) v=(%.2f,%.2f)", b.X, b.Y, b.VX, b.VY)
}

// Score is the point tally of both sides.
type Score struct {
	Left  int
	Right int
}

// Of returns the points held by side.
func (s Score) Of(side Side) int {
	switch side {
	case SideLeft:
		return s.Left
	case SideRight:
		return s.Right
	default:
		return 0
	}
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Left, s.Right)
}
