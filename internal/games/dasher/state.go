package dasher

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Tuning holds the per-run constants State.Update reads.
type Tuning struct {
	GroundY        float64 // Player y when standing
	Gravity        float64 // px/s²
	JumpImpulse    float64 // px/s, negative is up
	HitboxPadding  float64
	PlayerMaxFrame int
}

// State is everything one run simulates. It has no knowledge of input
// devices, clocks or drawing.
type State struct {
	Tuning   Tuning
	Layers   []Layer // Back to front
	Player   Sprite
	Body     Body
	Field    ObstacleField
	Collided bool // Latched on the first overlap
	Outcome  core.Outcome
	Elapsed  float64
	Jumps    int
	Distance float64
}

// Update advances the run by dt seconds. jump is the edge-triggered jump
// command for this tick.
//
// The math keeps running after the outcome is decided; only drawing changes.
// A non-nil error means the state went non-finite and the run cannot continue.
func (s *State) Update(dt float64, jump bool) error {
	s.Elapsed += dt

	for i := range s.Layers {
		s.Layers[i].Scroll(dt)
	}

	s.Body.ApplyGravity(s.Tuning.GroundY, s.Tuning.Gravity, dt)
	if jump && s.Body.Jump(s.Tuning.JumpImpulse) {
		s.Jumps++
	}
	s.Body.Integrate(dt)
	s.Player.Pos.Y = s.Body.Y

	s.Field.Move(dt)
	s.Distance += s.Field.Travelled(dt)

	// No running animation in the air.
	if !s.Body.Airborne {
		s.Player = s.Player.Advance(dt, s.Tuning.PlayerMaxFrame)
	}
	s.Field.Animate(dt)

	if CheckCollision(s.Field.Obstacles, s.Player, s.Tuning.HitboxPadding) {
		s.Collided = true
	}
	s.Outcome = DeriveOutcome(s.Outcome, s.Collided, s.Player.Pos.X, s.Field.FinishLine)

	return s.check()
}

// DeriveOutcome computes this tick's outcome. A decided outcome never changes;
// otherwise a collision loses, and the finish line reaching the player wins.
// A win is final: the last nebula can still run into the player after the
// finish line passes, and that overlap no longer turns the run into a loss.
func DeriveOutcome(prev core.Outcome, collided bool, playerX, finishLine float64) core.Outcome {
	switch {
	case prev.Terminal():
		return prev
	case collided:
		return core.OutcomeLost
	case playerX >= finishLine:
		return core.OutcomeWon
	default:
		return core.OutcomePlaying
	}
}

// check reports the first non-finite value in the state.
func (s *State) check() error {
	values := []struct {
		what string
		v    float64
	}{
		{"elapsed", s.Elapsed},
		{"player.y", s.Body.Y},
		{"player.velocity", s.Body.Velocity},
		{"player.x", s.Player.Pos.X},
		{"finish_line", s.Field.FinishLine},
	}
	for _, v := range values {
		if !core.Finite(v.v) {
			return &core.InvariantError{What: v.what, Detail: strconv.FormatFloat(v.v, 'g', -1, 64)}
		}
	}

	for _, l := range s.Layers {
		if !core.Finite(l.OffsetX) {
			return &core.InvariantError{What: "layer " + l.Texture.String(), Detail: "offset is " + strconv.FormatFloat(l.OffsetX, 'g', -1, 64)}
		}
	}
	for i, o := range s.Field.Obstacles {
		if !o.Bounds().Finite() {
			return &core.InvariantError{What: fmt.Sprintf("obstacle %d", i), Detail: fmt.Sprintf("position is (%v, %v)", o.Pos.X, o.Pos.Y)}
		}
	}
	return nil
}
