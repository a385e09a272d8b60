package tui

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// alphaCutoff is the alpha below which a texture pixel is left undrawn.
// Half-block cells have no blending.
const alphaCutoff = 128

// Canvas draws world-space textures onto a half-block Screen. The whole world
// is stretched to fill the screen, one texture pixel per half-cell after
// resampling.
type Canvas struct {
	screen   *core.Screen
	textures *assets.Set
	worldW   float64
	worldH   float64
	sx, sy   float64 // Screen pixels per world pixel
}

// NewCanvas creates a canvas that maps a worldW x worldH world onto screen.
func NewCanvas(screen *core.Screen, textures *assets.Set, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: screen, textures: textures, worldW: worldW, worldH: worldH}
	c.Fit()
	return c
}

// Fit recomputes the world-to-screen scale after the screen was resized.
func (c *Canvas) Fit() {
	c.sx = float64(c.screen.Width()) / c.worldW
	c.sy = float64(c.screen.PixelHeight()) / c.worldH
}

// SetWorld changes the world size mapped onto the screen.
func (c *Canvas) SetWorld(w, h float64) {
	c.worldW, c.worldH = w, h
	c.Fit()
}

// TextureSize implements core.TextureSizer.
func (c *Canvas) TextureSize(id core.TextureID) (w, h float64) {
	return c.textures.TextureSize(id)
}

// Clear fills the screen.
func (c *Canvas) Clear(col color.Color) {
	c.screen.Clear(core.ToRGBA(col))
}

// DrawTextureRegion blits part of a texture.
func (c *Canvas) DrawTextureRegion(id core.TextureID, src core.Rect, dst core.Vec2, tint color.Color) {
	img := c.textures.Resampled(id, c.sx, c.sy)
	if img == nil {
		return
	}
	rx, ry := c.ratio(id, img)
	region := image.Rect(
		int(math.Round(src.X*rx)), int(math.Round(src.Y*ry)),
		int(math.Round(src.Right()*rx)), int(math.Round(src.Bottom()*ry)),
	).Intersect(img.Bounds())
	c.blit(img, region, dst, core.ToRGBA(tint))
}

// DrawTextureScaled draws a whole texture at a uniform scale.
func (c *Canvas) DrawTextureScaled(id core.TextureID, pos core.Vec2, scale float64, tint color.Color) {
	img := c.textures.Resampled(id, c.sx*scale, c.sy*scale)
	if img == nil {
		return
	}
	c.blit(img, img.Bounds(), pos, core.ToRGBA(tint))
}

// DrawText writes text at the cell containing (x, y). Terminal text has a
// single size, so size is ignored.
func (c *Canvas) DrawText(text string, x, y float64, _ int, col color.Color) {
	cx := int(math.Round(x * c.sx))
	cy := int(math.Round(y*c.sy)) / 2
	c.screen.DrawText(cx, cy, text, core.ToRGBA(col))
}

// ratio returns the resampled-to-original size ratio of a texture.
func (c *Canvas) ratio(id core.TextureID, img *image.NRGBA) (rx, ry float64) {
	w, h := c.textures.TextureSize(id)
	b := img.Bounds()
	return float64(b.Dx()) / w, float64(b.Dy()) / h
}

// blit copies region of img to the screen with its top-left at the world
// position pos.
func (c *Canvas) blit(img *image.NRGBA, region image.Rectangle, pos core.Vec2, tint color.RGBA) {
	ox := int(math.Round(pos.X * c.sx))
	oy := int(math.Round(pos.Y * c.sy))

	for y := region.Min.Y; y < region.Max.Y; y++ {
		py := oy + y - region.Min.Y
		if py < 0 || py >= c.screen.PixelHeight() {
			continue
		}
		for x := region.Min.X; x < region.Max.X; x++ {
			px := ox + x - region.Min.X
			if px < 0 || px >= c.screen.Width() {
				continue
			}
			p := img.NRGBAAt(x, y)
			if p.A < alphaCutoff {
				continue
			}
			c.screen.SetPixel(px, py, core.Modulate(color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}, tint))
		}
	}
}
