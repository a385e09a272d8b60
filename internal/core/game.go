package core

import "image/color"

// TextureID identifies one of the textures a game draws with.
type TextureID int

const (
	TexturePlayer TextureID = iota
	TextureObstacle
	TextureBackground
	TextureMidground
	TextureForeground
)

// TextureIDs lists every texture in load order.
var TextureIDs = []TextureID{
	TexturePlayer,
	TextureObstacle,
	TextureBackground,
	TextureMidground,
	TextureForeground,
}

// String returns the texture's config key.
func (t TextureID) String() string {
	switch t {
	case TexturePlayer:
		return "player"
	case TextureObstacle:
		return "obstacle"
	case TextureBackground:
		return "background"
	case TextureMidground:
		return "midground"
	case TextureForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// TextureSizer reports texture dimensions in pixels.
type TextureSizer interface {
	TextureSize(id TextureID) (w, h float64)
}

// Canvas is the drawing surface a platform hands to Game.Render.
// Coordinates are world pixels; the platform maps them to its output.
type Canvas interface {
	TextureSizer

	// Clear fills the whole surface.
	Clear(c color.Color)

	// DrawTextureRegion blits the src region of a texture with its top-left at dst.
	DrawTextureRegion(id TextureID, src Rect, dst Vec2, tint color.Color)

	// DrawTextureScaled draws a whole texture scaled uniformly around its top-left at pos.
	DrawTextureScaled(id TextureID, pos Vec2, scale float64, tint color.Color)

	// DrawText draws a line of text with its top-left at (x, y).
	DrawText(text string, x, y float64, size int, c color.Color)
}

// Game is the interface platforms drive.
// Games contain pure logic; the platform handles input mapping, timing, and output.
type Game interface {
	// ID returns a unique identifier, used for storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state. It must not mutate simulation state.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
