package dasher

// Body is the player's vertical motion state. Velocity is in pixels per
// second, positive downward.
type Body struct {
	Y        float64
	Velocity float64
	Airborne bool
}

// IsGrounded reports whether the body is at or below the ground line.
func (b Body) IsGrounded(groundY float64) bool {
	return b.Y >= groundY
}

// ApplyGravity runs the ground test for this tick. A grounded body stops,
// lands and is snapped back onto the ground line if it overshot; any other
// body accelerates downward.
func (b *Body) ApplyGravity(groundY, gravity, dt float64) {
	if b.IsGrounded(groundY) {
		b.Y = groundY
		b.Velocity = 0
		b.Airborne = false
		return
	}
	b.Velocity += gravity * dt
	b.Airborne = true
}

// Jump adds impulse to the velocity if the body is on the ground.
// It reports whether the jump was accepted.
func (b *Body) Jump(impulse float64) bool {
	if b.Airborne {
		return false
	}
	b.Velocity += impulse
	return true
}

// Integrate moves the body by its velocity over dt.
func (b *Body) Integrate(dt float64) {
	b.Y += b.Velocity * dt
}
