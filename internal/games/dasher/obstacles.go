package dasher

import (
	"math"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// FieldLayout describes where a new obstacle field starts.
type FieldLayout struct {
	Count    int       // Number of obstacles, fixed for the run
	Frame    core.Rect // First frame of the obstacle sheet
	StartX   float64   // X of the first obstacle
	Y        float64   // Shared top edge
	Gap      float64   // Spacing between consecutive obstacles
	Velocity float64   // Shared horizontal velocity, px/s
	Interval float64   // Seconds per animation frame
	MaxFrame int       // Last frame index in the sheet row
}

// ObstacleField is the fixed set of obstacles scrolling toward the player,
// plus the finish line that travels with them.
type ObstacleField struct {
	Obstacles  []Sprite
	Velocity   float64
	FinishLine float64
	MaxFrame   int
}

// NewObstacleField lays out Count obstacles Gap apart, starting at StartX.
// The finish line starts where the last obstacle does.
func NewObstacleField(l FieldLayout) ObstacleField {
	f := ObstacleField{
		Obstacles: make([]Sprite, l.Count),
		Velocity:  l.Velocity,
		MaxFrame:  l.MaxFrame,
	}
	for i := range f.Obstacles {
		f.Obstacles[i] = Sprite{
			Rect:     l.Frame,
			Pos:      core.Vec2{X: l.StartX + float64(i)*l.Gap, Y: l.Y},
			Interval: l.Interval,
		}
	}
	if l.Count > 0 {
		f.FinishLine = f.Obstacles[l.Count-1].Pos.X
	}
	return f
}

// Move shifts every obstacle and the finish line by the shared velocity.
func (f *ObstacleField) Move(dt float64) {
	dx := f.Velocity * dt
	for i := range f.Obstacles {
		f.Obstacles[i].Pos.X += dx
	}
	f.FinishLine += dx
}

// Animate advances every obstacle's frame.
func (f *ObstacleField) Animate(dt float64) {
	for i := range f.Obstacles {
		f.Obstacles[i] = f.Obstacles[i].Advance(dt, f.MaxFrame)
	}
}

// Tick moves and then animates the field.
func (f *ObstacleField) Tick(dt float64) {
	f.Move(dt)
	f.Animate(dt)
}

// Travelled returns how far the field moves in dt, regardless of direction.
func (f ObstacleField) Travelled(dt float64) float64 {
	return math.Abs(f.Velocity * dt)
}
