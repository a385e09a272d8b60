package dasher

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// runnerState is a small run: a 10x10 player standing at x=100 on ground y=0
// and obstacles that never come near it unless a test moves them.
func runnerState(obstacles FieldLayout) State {
	return State{
		Tuning: Tuning{GroundY: 0, Gravity: 1000, JumpImpulse: -600, HitboxPadding: 10, PlayerMaxFrame: 5},
		Player: Sprite{Rect: core.NewRect(0, 0, 10, 10), Pos: core.Vec2{X: 100}, Interval: 1.0 / 12.0},
		Field:  NewObstacleField(obstacles),
	}
}

func TestScenarioStandingStill(t *testing.T) {
	s, err := NewState(config.DefaultDasherConfig(), builtinSizes)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	startY := s.Body.Y

	for i := 0; i < 10; i++ {
		if err := s.Update(1.0/60.0, false); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	if s.Body.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0", s.Body.Velocity)
	}
	if s.Body.Y != startY || s.Player.Pos.Y != startY {
		t.Errorf("Y = %v, expected %v", s.Body.Y, startY)
	}
	// 10/60 s at 12 frames per second.
	if s.Player.Frame != 2 {
		t.Errorf("Frame = %d, expected 2", s.Player.Frame)
	}
	if s.Outcome != core.OutcomePlaying {
		t.Errorf("Outcome = %v, expected playing", s.Outcome)
	}
}

func TestScenarioFinishLineReachesPlayer(t *testing.T) {
	far := FieldLayout{Count: 1, Frame: core.NewRect(0, 0, 40, 40), StartX: 1800, Y: 500, Velocity: -200}

	t.Run("exact steps", func(t *testing.T) {
		s := runnerState(far)
		// 8.5 s in steps of 0.125 s moves the field exactly 1700 px.
		for tick := 1; tick <= 68; tick++ {
			if err := s.Update(0.125, false); err != nil {
				t.Fatalf("Update() failed: %v", err)
			}
			want := core.OutcomePlaying
			if tick == 68 {
				want = core.OutcomeWon
			}
			if s.Outcome != want {
				t.Fatalf("tick %d: Outcome = %v (finish line %v), expected %v", tick, s.Outcome, s.Field.FinishLine, want)
			}
		}
		if s.Elapsed != 8.5 {
			t.Errorf("Elapsed = %v, expected 8.5", s.Elapsed)
		}
	})

	t.Run("frame rate steps", func(t *testing.T) {
		s := runnerState(far)
		won := 0
		for tick := 1; tick <= 600 && won == 0; tick++ {
			if err := s.Update(1.0/60.0, false); err != nil {
				t.Fatalf("Update() failed: %v", err)
			}
			if s.Outcome == core.OutcomeWon {
				won = tick
			}
		}
		// 8.5 s is 510 ticks; rounding in the sum may shift the crossing by one.
		if won < 509 || won > 511 {
			t.Errorf("won at tick %d, expected about 510", won)
		}
	})
}

func TestScenarioTouchingHitboxIsNotACollision(t *testing.T) {
	// The first obstacle's hitbox spans x 110..130 and y 0..20, sharing an
	// edge with the player's 100..110 frame. The second one sets a far
	// finish line.
	s := runnerState(FieldLayout{Count: 2, Frame: core.NewRect(0, 0, 40, 40), StartX: 100, Y: -10, Gap: 1000})

	for i := 0; i < 30; i++ {
		if err := s.Update(1.0/60.0, false); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}
	if s.Collided {
		t.Error("Collided = true, expected false for a shared edge")
	}
	if s.Outcome != core.OutcomePlaying {
		t.Errorf("Outcome = %v, expected playing", s.Outcome)
	}
}

func TestCollisionIsSticky(t *testing.T) {
	// One obstacle overlapping the player on the first tick, then moving away fast.
	s := runnerState(FieldLayout{Count: 2, Frame: core.NewRect(0, 0, 40, 40), StartX: 85, Y: -15, Gap: 5000, Velocity: -6000})

	if err := s.Update(1.0/1000.0, false); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if !s.Collided || s.Outcome != core.OutcomeLost {
		t.Fatalf("first tick: Collided %v Outcome %v, expected a loss", s.Collided, s.Outcome)
	}

	// The second obstacle is still well to the right after 40 ticks.
	for i := 0; i < 40; i++ {
		if err := s.Update(1.0/60.0, false); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if CheckCollision(s.Field.Obstacles, s.Player, s.Tuning.HitboxPadding) {
			t.Fatal("obstacle should have moved off the player")
		}
		if s.Outcome != core.OutcomeLost {
			t.Fatalf("tick %d: Outcome = %v, expected to stay lost", i, s.Outcome)
		}
	}
}

func TestDeriveOutcome(t *testing.T) {
	tests := []struct {
		name     string
		prev     core.Outcome
		collided bool
		playerX  float64
		finish   float64
		expected core.Outcome
	}{
		{"running", core.OutcomePlaying, false, 100, 500, core.OutcomePlaying},
		{"collision", core.OutcomePlaying, true, 100, 500, core.OutcomeLost},
		{"finish reached", core.OutcomePlaying, false, 100, 100, core.OutcomeWon},
		{"collision beats finish", core.OutcomePlaying, true, 100, 50, core.OutcomeLost},
		{"lost stays lost", core.OutcomeLost, false, 100, 50, core.OutcomeLost},
		{"won stays won", core.OutcomeWon, true, 100, 50, core.OutcomeWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveOutcome(tc.prev, tc.collided, tc.playerX, tc.finish); got != tc.expected {
				t.Errorf("DeriveOutcome() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestUpdateWinSurvivesLaterCollision(t *testing.T) {
	// The finish line sits on the only obstacle, whose hitbox (pad 10) spans
	// y -5..15 and reaches the player one tick after the line does.
	s := runnerState(FieldLayout{
		Count:    1,
		Frame:    core.NewRect(0, 0, 40, 40),
		StartX:   110,
		Y:        -15,
		Velocity: -100,
	})

	if err := s.Update(0.1, false); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if s.Outcome != core.OutcomeWon || s.Collided {
		t.Fatalf("Outcome = %v Collided = %v, expected won without a collision", s.Outcome, s.Collided)
	}

	if err := s.Update(0.1, false); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if !s.Collided {
		t.Error("the obstacle should overlap the player on the second tick")
	}
	if s.Outcome != core.OutcomeWon {
		t.Errorf("Outcome = %v, expected the win to stand", s.Outcome)
	}
}

func TestUpdateJump(t *testing.T) {
	s := runnerState(FieldLayout{Count: 1, Frame: core.NewRect(0, 0, 40, 40), StartX: 5000})
	const dt = 1.0 / 60.0

	if err := s.Update(dt, true); err != nil {
		t.Fatal(err)
	}
	if s.Jumps != 1 {
		t.Errorf("Jumps = %d, expected 1", s.Jumps)
	}
	if s.Body.Y >= 0 {
		t.Errorf("Y = %v, expected the player to leave the ground", s.Body.Y)
	}

	// Pressing again mid-air does nothing, and the running animation stops.
	frame := s.Player.Frame
	velocity := s.Body.Velocity
	if err := s.Update(dt, true); err != nil {
		t.Fatal(err)
	}
	if s.Jumps != 1 {
		t.Errorf("Jumps = %d, expected the mid-air jump to be ignored", s.Jumps)
	}
	if want := velocity + 1000*dt; math.Abs(s.Body.Velocity-want) > 1e-9 {
		t.Errorf("Velocity = %v, expected %v from gravity alone", s.Body.Velocity, want)
	}

	for i := 0; i < 30; i++ {
		if err := s.Update(dt, false); err != nil {
			t.Fatal(err)
		}
		if s.Body.Airborne && s.Player.Frame != frame {
			t.Fatalf("player animated in the air: frame %d -> %d", frame, s.Player.Frame)
		}
	}

	// Back on the ground within the jump's flight time of about 1.2 s.
	for i := 0; i < 120; i++ {
		if err := s.Update(dt, false); err != nil {
			t.Fatal(err)
		}
	}
	if s.Body.Airborne || s.Body.Y != 0 {
		t.Errorf("Body = %+v, expected to have landed on y=0", s.Body)
	}
}

func TestUpdateReportsNonFiniteState(t *testing.T) {
	s := runnerState(FieldLayout{Count: 1, Frame: core.NewRect(0, 0, 40, 40), StartX: 5000})
	s.Field.Velocity = math.Inf(-1)

	err := s.Update(1.0/60.0, false)
	var invErr *core.InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("Update() = %v, expected an InvariantError", err)
	}
	if invErr.What != "finish_line" {
		t.Errorf("What = %q, expected finish_line", invErr.What)
	}
}
