package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Sprite is an animated sprite: a frame rectangle in a sheet that advances
// on a fixed interval, drawn at a world position.
type Sprite struct {
	Rect     core.Rect // Source rectangle within the sheet
	Pos      core.Vec2 // Top-left corner in the world
	Frame    int       // Next frame to show, in [0, maxFrame]
	Interval float64   // Seconds per frame; <= 0 never advances
	Elapsed  float64   // Seconds since the last advance
}

// Advance accumulates dt and, once a full interval has elapsed, moves the
// source rectangle to the current frame and steps to the next one, wrapping
// to 0 past maxFrame. Leftover time is discarded on each advance.
func (s Sprite) Advance(dt float64, maxFrame int) Sprite {
	s.Elapsed += dt
	if s.Interval <= 0 || s.Elapsed < s.Interval {
		return s
	}

	s.Elapsed = 0
	s.Rect.X = float64(s.Frame) * s.Rect.W
	s.Frame++
	if s.Frame > maxFrame {
		s.Frame = 0
	}
	return s
}

// Bounds returns the sprite's full frame rectangle in world coordinates.
func (s Sprite) Bounds() core.Rect {
	return s.Rect.At(s.Pos)
}
