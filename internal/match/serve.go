package match

import "math"

// Rand is the randomness a match needs. *math/rand.Rand satisfies it; tests
// pass scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// centerBall puts the ball in the middle of the playfield without touching
// its velocity.
func centerBall(b *Ball, r Rules) {
	b.W, b.H = r.BallSize, r.BallSize
	b.X = r.Width/2 - r.BallSize/2
	b.Y = r.Height/2 - r.BallSize/2
}

// serve recenters the ball and gives it a fresh velocity. prevVX/prevVY is the
// velocity the ball left play with; fresh is true at match start and reset,
// where there is no previous direction to reverse.
func serve(b *Ball, r Rules, rng Rand, prevVX, prevVY float64, fresh bool) {
	centerBall(b, r)
	switch r.Serve {
	case ServeReverse:
		if fresh {
			prevVX = coinSign(rng)
			prevVY = coinSign(rng)
		}
		b.VX = -sign(prevVX) * r.BallSpeed
		b.VY = sign(prevVY) * r.BallSpeed
	default:
		angle := (rng.Float64()*2 - 1) * r.ServeAngle
		dir := coinSign(rng)
		b.VX = dir * r.BallSpeed * (0.7 + 0.3*math.Abs(angle))
		b.VY = r.BallSpeed * angle
	}
}

func coinSign(rng Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// ServeSpeedRange returns the smallest and largest speed a serve can have
// under r.
func ServeSpeedRange(r Rules) (lo, hi float64) {
	if r.Serve == ServeReverse {
		s := r.BallSpeed * math.Sqrt2
		return s, s
	}
	a := r.ServeAngle
	return r.BallSpeed * 0.7, r.BallSpeed * math.Hypot(0.7+0.3*a, a)
}
