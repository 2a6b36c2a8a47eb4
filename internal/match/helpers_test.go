package match

import (
	"math"
	"testing"
)

// seqRand replays fixed Float64 and Intn results, repeating the last value
// once a sequence runs out.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertApprox(t *testing.T, what string, got, want float64) {
	t.Helper()
	if !approx(got, want) {
		t.Fatalf("%s: expected %.4f, got %.4f", what, want, got)
	}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// leftPaddle and rightPaddle build paddles at their starting positions.
func leftPaddle(r Rules) Paddle {
	return New(r, &seqRand{}).Left
}

func rightPaddle(r Rules) Paddle {
	return New(r, &seqRand{}).Right
}
