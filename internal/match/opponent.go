package match

// trackBall steps a computer paddle one PaddleSpeed toward the ball's
// vertical center. It has no lookahead and no deadzone, so steep returns
// outrun it.
func trackBall(p *Paddle, b Ball, r Rules) {
	switch {
	case p.CenterY() < b.CenterY():
		p.Move(1, r.PaddleSpeed, r.Height)
	case p.CenterY() > b.CenterY():
		p.Move(-1, r.PaddleSpeed, r.Height)
	}
}

// steer applies a human's held keys. Up and down held together cancel out.
func steer(p *Paddle, in PaddleInput, r Rules) {
	dir := 0
	if in.Up {
		dir--
	}
	if in.Down {
		dir++
	}
	p.Move(dir, r.PaddleSpeed, r.Height)
}
