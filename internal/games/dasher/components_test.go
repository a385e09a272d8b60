package dasher

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

func TestSpriteAdvance(t *testing.T) {
	s := Sprite{Rect: core.NewRect(0, 0, 10, 10), Interval: 0.1}

	s = s.Advance(0.05, 5)
	if s.Frame != 0 || s.Elapsed != 0.05 {
		t.Errorf("Advance() before interval = frame %d elapsed %v, expected 0 0.05", s.Frame, s.Elapsed)
	}

	s = s.Advance(0.05, 5)
	if s.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", s.Frame)
	}
	if s.Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0 after advancing", s.Elapsed)
	}
	// The rectangle shows the frame that was current before the step.
	if s.Rect.X != 0 {
		t.Errorf("Rect.X = %v, expected 0", s.Rect.X)
	}

	s = s.Advance(0.1, 5)
	if s.Rect.X != 10 || s.Frame != 2 {
		t.Errorf("Advance() = rect.x %v frame %d, expected 10 2", s.Rect.X, s.Frame)
	}
}

func TestSpriteAdvanceIsPure(t *testing.T) {
	s := Sprite{Rect: core.NewRect(0, 0, 10, 10), Interval: 0.1}
	_ = s.Advance(1, 5)
	if s.Frame != 0 || s.Elapsed != 0 {
		t.Errorf("Advance() modified its receiver: %+v", s)
	}
}

func TestSpriteWithoutIntervalNeverAdvances(t *testing.T) {
	for _, interval := range []float64{0, -1} {
		s := Sprite{Rect: core.NewRect(0, 0, 10, 10), Interval: interval}
		for i := 0; i < 100; i++ {
			s = s.Advance(1.0/60.0, 7)
		}
		if s.Frame != 0 || s.Rect.X != 0 {
			t.Errorf("interval %v: frame %d rect.x %v, expected no animation", interval, s.Frame, s.Rect.X)
		}
	}
}

func TestSpriteFrameStaysInRange(t *testing.T) {
	const maxFrame = 5
	s := Sprite{Rect: core.NewRect(0, 0, 128, 128), Interval: 0.1}

	advances := 0
	for i := 0; i < 1000; i++ {
		prev := s.Frame
		s = s.Advance(0.03, maxFrame)

		if s.Frame < 0 || s.Frame > maxFrame {
			t.Fatalf("tick %d: Frame = %d, out of [0, %d]", i, s.Frame, maxFrame)
		}
		if s.Frame == prev {
			continue
		}
		advances++
		want := prev + 1
		if prev == maxFrame {
			want = 0
		}
		if s.Frame != want {
			t.Fatalf("tick %d: Frame went %d -> %d, expected %d", i, prev, s.Frame, want)
		}
	}
	if advances == 0 {
		t.Error("sprite never advanced")
	}
}

func TestBodyGroundedGravityStep(t *testing.T) {
	const groundY = 252.0
	tests := []struct {
		name     string
		body     Body
		expected float64
	}{
		{"at rest on ground", Body{Y: groundY}, groundY},
		{"landing", Body{Y: groundY, Velocity: 300, Airborne: true}, groundY},
		{"overshoot", Body{Y: groundY + 7.5, Velocity: 420, Airborne: true}, groundY},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			if !b.IsGrounded(groundY) {
				t.Fatal("IsGrounded() = false, expected true")
			}
			b.ApplyGravity(groundY, 1000, 1.0/60.0)
			if b.Velocity != 0 {
				t.Errorf("Velocity = %v, expected 0", b.Velocity)
			}
			if b.Airborne {
				t.Error("Airborne = true, expected false")
			}
			if b.Y != tc.expected {
				t.Errorf("Y = %v, expected %v", b.Y, tc.expected)
			}
		})
	}
}

func TestBodyFalls(t *testing.T) {
	b := Body{Y: 100}
	b.ApplyGravity(252, 1000, 0.5)
	if !b.Airborne || b.Velocity != 500 {
		t.Errorf("ApplyGravity() = %+v, expected airborne with velocity 500", b)
	}
	b.Integrate(0.5)
	if b.Y != 350 {
		t.Errorf("Y = %v, expected 350", b.Y)
	}
	if !b.IsGrounded(252) {
		t.Error("body below ground should be grounded")
	}
}

func TestBodyJump(t *testing.T) {
	grounded := Body{Y: 252}
	if !grounded.Jump(-600) {
		t.Error("Jump() on the ground should be accepted")
	}
	if grounded.Velocity != -600 {
		t.Errorf("Velocity = %v, expected -600", grounded.Velocity)
	}

	airborne := Body{Y: 100, Velocity: 50, Airborne: true}
	if airborne.Jump(-600) {
		t.Error("Jump() in the air should be rejected")
	}
	if airborne.Velocity != 50 {
		t.Errorf("Velocity = %v, expected unchanged 50", airborne.Velocity)
	}
}

func TestLayerScrollWraps(t *testing.T) {
	speeds := []float64{20, 40, 80, 333}
	const dt = 1.0 / 60.0

	for _, speed := range speeds {
		l := Layer{Speed: speed, TileWidth: 256, Scale: 2}
		wrapped := false
		for i := 0; i < 10000 && !wrapped; i++ {
			before := l.OffsetX
			l.Scroll(dt)
			if l.OffsetX < -l.Span()-speed*dt {
				t.Fatalf("speed %v: OffsetX = %v, below %v", speed, l.OffsetX, -l.Span()-speed*dt)
			}
			if l.OffsetX > before {
				wrapped = true
				if l.OffsetX != 0 {
					t.Errorf("speed %v: OffsetX after wrap = %v, expected 0", speed, l.OffsetX)
				}
			}
		}
		if !wrapped {
			t.Errorf("speed %v: layer never wrapped", speed)
		}
	}
}

func TestLayerCopies(t *testing.T) {
	l := Layer{OffsetX: -100, TileWidth: 256, Scale: 2}
	if c := l.Copies(); c[0] != -100 || c[1] != 412 {
		t.Errorf("Copies() = %v, expected [-100 412]", c)
	}
}

func TestObstacleFieldLayout(t *testing.T) {
	f := NewObstacleField(FieldLayout{
		Count:    6,
		Frame:    core.NewRect(0, 0, 100, 100),
		StartX:   512,
		Y:        280,
		Gap:      300,
		Velocity: -200,
		Interval: 1.0 / 16.0,
		MaxFrame: 7,
	})

	if len(f.Obstacles) != 6 {
		t.Fatalf("len(Obstacles) = %d, expected 6", len(f.Obstacles))
	}
	for i, o := range f.Obstacles {
		if x := 512 + float64(i)*300; o.Pos.X != x || o.Pos.Y != 280 {
			t.Errorf("obstacle %d at %+v, expected (%v, 280)", i, o.Pos, x)
		}
	}
	if f.FinishLine != 2012 {
		t.Errorf("FinishLine = %v, expected 2012", f.FinishLine)
	}

	f.Tick(0.5)
	if f.Obstacles[0].Pos.X != 412 || f.FinishLine != 1912 {
		t.Errorf("after Tick(0.5): first x %v finish %v, expected 412 1912", f.Obstacles[0].Pos.X, f.FinishLine)
	}
	if f.FinishLine != f.Obstacles[5].Pos.X {
		t.Error("finish line should move with the last obstacle")
	}
	if f.Obstacles[3].Frame != 1 {
		t.Errorf("Frame = %d, expected 1 after a full interval", f.Obstacles[3].Frame)
	}
	if got := f.Travelled(0.5); got != 100 {
		t.Errorf("Travelled(0.5) = %v, expected 100", got)
	}
}

func TestEmptyObstacleField(t *testing.T) {
	f := NewObstacleField(FieldLayout{StartX: 512})
	f.Tick(1)
	if len(f.Obstacles) != 0 || f.FinishLine != 0 {
		t.Errorf("empty field = %+v", f)
	}
}

func TestCheckCollision(t *testing.T) {
	frame := core.NewRect(0, 0, 40, 40)
	player := Sprite{Rect: core.NewRect(0, 0, 10, 10), Pos: core.Vec2{X: 100, Y: 0}}

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		// Hitbox is the 20x20 center of the 40x40 frame.
		{"overlapping", core.Vec2{X: 85, Y: -15}, true},
		{"hitbox touches right edge", core.Vec2{X: 100, Y: -10}, false},
		{"hitbox touches bottom edge", core.Vec2{X: 85, Y: 0}, false},
		{"hitbox touches corner", core.Vec2{X: 100, Y: 0}, false},
		{"only padding overlaps", core.Vec2{X: 105, Y: -15}, false},
		{"far away", core.Vec2{X: 500, Y: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obstacles := []Sprite{{Rect: frame, Pos: tc.pos}}
			if got := CheckCollision(obstacles, player, 10); got != tc.expected {
				t.Errorf("CheckCollision() = %v, expected %v (hitbox %+v)", got, tc.expected, Hitbox(obstacles[0], 10))
			}
		})
	}
}

func TestCheckCollisionPointHitbox(t *testing.T) {
	// A padding of half the frame shrinks the hitbox to its center point.
	frame := core.NewRect(0, 0, 100, 100)
	player := Sprite{Rect: core.NewRect(0, 0, 128, 128), Pos: core.Vec2{X: 192, Y: 200}}

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"point inside the player", core.Vec2{X: 150, Y: 200}, true},
		{"point on the player's left edge", core.Vec2{X: 142, Y: 200}, false},
		{"point on the player's top edge", core.Vec2{X: 150, Y: 150}, false},
		{"point left of the player", core.Vec2{X: 100, Y: 200}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Sprite{Rect: frame, Pos: tc.pos}
			if hb := Hitbox(o, 50); hb.W != 0 || hb.H != 0 {
				t.Fatalf("Hitbox() = %+v, expected a point", hb)
			}
			if got := CheckCollision([]Sprite{o}, player, 50); got != tc.expected {
				t.Errorf("CheckCollision() = %v, expected %v (hitbox %+v)", got, tc.expected, Hitbox(o, 50))
			}
		})
	}
}

func TestCheckCollisionOrderIndependent(t *testing.T) {
	frame := core.NewRect(0, 0, 40, 40)
	player := Sprite{Rect: core.NewRect(0, 0, 10, 10), Pos: core.Vec2{X: 100, Y: 0}}
	obstacles := []Sprite{
		{Rect: frame, Pos: core.Vec2{X: 300}},
		{Rect: frame, Pos: core.Vec2{X: 600}},
		{Rect: frame, Pos: core.Vec2{X: 85, Y: -15}},
		{Rect: frame, Pos: core.Vec2{X: -200}},
	}

	want := CheckCollision(obstacles, player, 10)
	if !want {
		t.Fatal("CheckCollision() = false, expected true")
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		shuffled := append([]Sprite(nil), obstacles...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := CheckCollision(shuffled, player, 10); got != want {
			t.Fatalf("CheckCollision() = %v for order %+v, expected %v", got, shuffled, want)
		}
	}
}
