package match

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// TicksPerSecond is the fixed update rate the match is tuned for.
const TicksPerSecond = 60

// CollisionPolicy selects how a ball/paddle overlap is classified.
type CollisionPolicy int

const (
	// CollisionFace treats every overlap as a hit on the paddle's face.
	CollisionFace CollisionPolicy = iota
	// CollisionEdgeAware tells face hits apart from grazes on the paddle's
	// top or bottom by comparing edge distances within EdgeTolerance.
	CollisionEdgeAware
)

var collisionPolicyNames = map[CollisionPolicy]string{
	CollisionFace:      "face",
	CollisionEdgeAware: "edge-aware",
}

func (c CollisionPolicy) String() string {
	if n, ok := collisionPolicyNames[c]; ok {
		return n
	}
	return fmt.Sprintf("collision(%d)", int(c))
}

func (c CollisionPolicy) MarshalText() ([]byte, error) {
	n, ok := collisionPolicyNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown collision policy %d", int(c))
	}
	return []byte(n), nil
}

func (c *CollisionPolicy) UnmarshalText(b []byte) error {
	for k, n := range collisionPolicyNames {
		if strings.EqualFold(string(b), n) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown collision policy %q (want face or edge-aware)", string(b))
}

// ServePolicy selects how the ball is launched after a point.
type ServePolicy int

const (
	// ServeRandomAngle launches at a random angle within ±ServeAngle toward
	// a random side.
	ServeRandomAngle ServePolicy = iota
	// ServeReverse relaunches at a fixed magnitude with the horizontal
	// direction reversed.
	ServeReverse
)

var servePolicyNames = map[ServePolicy]string{
	ServeRandomAngle: "random-angle",
	ServeReverse:     "reverse",
}

func (s ServePolicy) String() string {
	if n, ok := servePolicyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("serve(%d)", int(s))
}

func (s ServePolicy) MarshalText() ([]byte, error) {
	n, ok := servePolicyNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown serve policy %d", int(s))
	}
	return []byte(n), nil
}

func (s *ServePolicy) UnmarshalText(b []byte) error {
	for k, n := range servePolicyNames {
		if strings.EqualFold(string(b), n) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown serve policy %q (want random-angle or reverse)", string(b))
}

// Controller says who drives a paddle.
type Controller int

const (
	ControllerHuman Controller = iota
	ControllerComputer
)

var controllerNames = map[Controller]string{
	ControllerHuman:    "human",
	ControllerComputer: "computer",
}

func (c Controller) String() string {
	if n, ok := controllerNames[c]; ok {
		return n
	}
	return fmt.Sprintf("controller(%d)", int(c))
}

func (c Controller) MarshalText() ([]byte, error) {
	n, ok := controllerNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown controller %d", int(c))
	}
	return []byte(n), nil
}

func (c *Controller) UnmarshalText(b []byte) error {
	for k, n := range controllerNames {
		if strings.EqualFold(string(b), n) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown controller %q (want human or computer)", string(b))
}

// Rules holds every tunable of a match. Distances are pixels, speeds are
// pixels per tick.
type Rules struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleInset  float64 `toml:"paddle_inset"` // gap between side wall and paddle
	PaddleSpeed  float64 `toml:"paddle_speed"`

	BallSize  float64 `toml:"ball_size"`
	BallSpeed float64 `toml:"ball_speed"` // base serve speed

	WinScore int `toml:"win_score"`

	SpeedGain     float64         `toml:"speed_gain"` // multiplier on |vx| per face hit
	AngleGain     float64         `toml:"angle_gain"` // vy change for a hit at the paddle tip
	MaxSpeed      float64         `toml:"max_speed"`  // per-component velocity cap
	Collision     CollisionPolicy `toml:"collision"`
	EdgeTolerance float64         `toml:"edge_tolerance"`

	Serve      ServePolicy `toml:"serve"`
	ServeAngle float64     `toml:"serve_angle"` // radians either side of horizontal

	Left  Controller `toml:"left"`
	Right Controller `toml:"right"`
}

// Classic is the two-player table: first to 10, rallies speed up, serves
// go out at a random angle.
func Classic() Rules {
	return Rules{
		Width:         800,
		Height:        600,
		PaddleWidth:   15,
		PaddleHeight:  100,
		PaddleInset:   30,
		PaddleSpeed:   8,
		BallSize:      15,
		BallSpeed:     7,
		WinScore:      10,
		SpeedGain:     1.05,
		AngleGain:     2,
		MaxSpeed:      20,
		Collision:     CollisionFace,
		EdgeTolerance: 10,
		Serve:         ServeRandomAngle,
		ServeAngle:    0.6,
		Left:          ControllerHuman,
		Right:         ControllerHuman,
	}
}

// Versus is the single-player table against the computer: first to 5,
// constant rally speed, grazes on paddle ends are told apart from face hits.
func Versus() Rules {
	return Rules{
		Width:         800,
		Height:        600,
		PaddleWidth:   15,
		PaddleHeight:  100,
		PaddleInset:   50,
		PaddleSpeed:   7,
		BallSize:      20,
		BallSpeed:     5,
		WinScore:      5,
		SpeedGain:     1,
		AngleGain:     2,
		MaxSpeed:      20,
		Collision:     CollisionEdgeAware,
		EdgeTolerance: 10,
		Serve:         ServeReverse,
		ServeAngle:    0.6,
		Left:          ControllerHuman,
		Right:         ControllerComputer,
	}
}

// PresetNames lists the names accepted by Preset.
var PresetNames = []string{"classic", "versus"}

// Preset returns the rules registered under name.
func Preset(name string) (Rules, error) {
	switch strings.ToLower(name) {
	case "", "classic":
		return Classic(), nil
	case "versus":
		return Versus(), nil
	default:
		return Rules{}, fmt.Errorf("unknown preset %q (want one of %s)", name, strings.Join(PresetNames, ", "))
	}
}

// ErrInvalidRules is wrapped by every Validate failure.
var ErrInvalidRules = errors.New("invalid rules")

// Validate checks that the rules describe a playable table.
func (r Rules) Validate() error {
	var problems []string
	positive := []struct {
		name string
		v    float64
	}{
		{"width", r.Width},
		{"height", r.Height},
		{"paddle_width", r.PaddleWidth},
		{"paddle_height", r.PaddleHeight},
		{"paddle_speed", r.PaddleSpeed},
		{"ball_size", r.BallSize},
		{"ball_speed", r.BallSpeed},
		{"max_speed", r.MaxSpeed},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			problems = append(problems, fmt.Sprintf("%s must be > 0 (got %v)", p.name, p.v))
		}
	}
	if r.PaddleHeight >= r.Height {
		problems = append(problems, "paddle_height must be smaller than height")
	}
	if r.BallSize >= r.Height {
		problems = append(problems, "ball_size must be smaller than height")
	}
	if r.PaddleInset < 0 || 2*(r.PaddleInset+r.PaddleWidth)+r.BallSize >= r.Width {
		problems = append(problems, "paddle_inset leaves no room between the paddles")
	}
	if r.WinScore < 1 {
		problems = append(problems, "win_score must be >= 1")
	}
	if r.SpeedGain < 1 {
		problems = append(problems, "speed_gain must be >= 1")
	}
	if r.AngleGain < 0 {
		problems = append(problems, "angle_gain must be >= 0")
	}
	if r.MaxSpeed >= r.PaddleWidth+r.BallSize {
		problems = append(problems, "max_speed must be below paddle_width+ball_size or the ball can pass through a paddle")
	}
	if r.BallSpeed > r.MaxSpeed {
		problems = append(problems, "ball_speed must not exceed max_speed")
	}
	if r.Collision == CollisionEdgeAware && !(r.EdgeTolerance > 0) {
		problems = append(problems, "edge_tolerance must be > 0 with the edge-aware policy")
	}
	if r.ServeAngle < 0 || r.ServeAngle >= math.Pi/2 {
		problems = append(problems, "serve_angle must be within [0, pi/2)")
	}
	if _, ok := collisionPolicyNames[r.Collision]; !ok {
		problems = append(problems, fmt.Sprintf("unknown collision policy %d", int(r.Collision)))
	}
	if _, ok := servePolicyNames[r.Serve]; !ok {
		problems = append(problems, fmt.Sprintf("unknown serve policy %d", int(r.Serve)))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRules, strings.Join(problems, "; "))
	}
	return nil
}

// ControllerFor returns who drives the paddle on side.
func (r Rules) ControllerFor(side Side) Controller {
	if side == SideRight {
		return r.Right
	}
	return r.Left
}
