package dasher

import "github.com/vovakirdan/dapper-dasher/internal/core"

// Layer is one horizontally scrolling backdrop. It is drawn as two copies of
// its texture placed end to end so the viewport is always covered.
type Layer struct {
	Texture   core.TextureID
	OffsetX   float64 // In (-Span, 0] after every Scroll
	Speed     float64 // Pixels per second, leftward
	TileWidth float64 // Texture width in pixels
	Scale     float64 // Draw scale
}

// Span is the drawn width of one copy of the texture.
func (l Layer) Span() float64 {
	return l.TileWidth * l.Scale
}

// Scroll moves the layer left and jumps back to 0 once a whole copy has
// scrolled out of view.
func (l *Layer) Scroll(dt float64) {
	l.OffsetX -= l.Speed * dt
	if l.OffsetX <= -l.Span() {
		l.OffsetX = 0
	}
}

// Copies returns the x positions of the two copies to draw.
func (l Layer) Copies() [2]float64 {
	return [2]float64{l.OffsetX, l.OffsetX + l.Span()}
}
