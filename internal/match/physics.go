package match

// integrate advances the ball one tick and resolves top/bottom wall contact,
// returning the wall touched. After a bounce VY always points away from that
// wall.
func integrate(b *Ball, r Rules) Wall {
	b.X += b.VX
	b.Y += b.VY

	if b.Top() <= 0 {
		b.Y = 0
		b.VY = abs(b.VY)
		return WallTop
	}
	if b.Bottom() >= r.Height {
		b.Y = r.Height - b.H
		b.VY = -abs(b.VY)
		return WallBottom
	}
	return WallNone
}

// Wall identifies the horizontal boundary the ball bounced off.
type Wall int

const (
	WallNone Wall = iota
	WallTop
	WallBottom
)

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Contact classifies a ball/paddle collision.
type Contact int

const (
	ContactNone Contact = iota
	ContactFace
	ContactTopEdge
	ContactBottomEdge
)

func (c Contact) String() string {
	switch c {
	case ContactFace:
		return "face"
	case ContactTopEdge:
		return "top-edge"
	case ContactBottomEdge:
		return "bottom-edge"
	default:
		return "none"
	}
}

// collide resolves an overlap between the ball and p according to the
// configured policy and reports what kind of contact it was. wall is the
// wall integrate touched this tick; the ball keeps moving away from it.
func collide(b *Ball, p Paddle, r Rules, wall Wall) Contact {
	if !b.Overlaps(p.Rect) {
		return ContactNone
	}
	c := classify(b, p, r, wall)
	switch c {
	case ContactTopEdge:
		b.Y = p.Top() - b.H
		b.VY = -abs(b.VY)
	case ContactBottomEdge:
		b.Y = p.Bottom()
		b.VY = abs(b.VY)
	default:
		faceHit(b, p, r)
	}
	switch wall {
	case WallTop:
		b.VY = abs(b.VY)
	case WallBottom:
		b.VY = -abs(b.VY)
	}
	return c
}

// classify decides between a face hit and a graze. Under CollisionFace every
// overlap is a face hit. Under CollisionEdgeAware the leading edge is tested
// first, then the paddle's top (ball falling) and bottom (ball rising). A
// graze needs room for the ball between the paddle end and the wall, and is
// never sent back into a wall touched this tick. Anything else, including a
// deep overlap, is a face hit so the ball never stays inside the paddle.
func classify(b *Ball, p Paddle, r Rules, wall Wall) Contact {
	if r.Collision != CollisionEdgeAware {
		return ContactFace
	}
	tol := r.EdgeTolerance
	lead := b.Left()
	if p.Side == SideRight {
		lead = b.Right()
	}
	topRoom := p.Top()-b.H >= 0 && wall != WallTop
	bottomRoom := p.Bottom()+b.H <= r.Height && wall != WallBottom
	switch {
	case abs(lead-p.Face()) < tol:
		return ContactFace
	case topRoom && abs(b.Bottom()-p.Top()) < tol && b.VY > 0:
		return ContactTopEdge
	case bottomRoom && abs(b.Top()-p.Bottom()) < tol && b.VY < 0:
		return ContactBottomEdge
	default:
		return ContactFace
	}
}

// faceHit pushes the ball out through the paddle face, sends it back faster
// and bends its vertical speed by where on the paddle it landed.
func faceHit(b *Ball, p Paddle, r Rules) {
	vx := abs(b.VX) * r.SpeedGain
	if vx > r.MaxSpeed {
		vx = r.MaxSpeed
	}
	if p.Side == SideLeft {
		b.X = p.Right()
	} else {
		b.X = p.Left() - b.W
		vx = -vx
	}
	b.VX = vx

	hit := (b.CenterY() - p.CenterY()) / (p.H / 2)
	b.VY = clamp(b.VY+hit*r.AngleGain, -r.MaxSpeed, r.MaxSpeed)
}
