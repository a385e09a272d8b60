package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// faceSize is the pixel height of basicfont.Face7x13.
const faceSize = 13

// Textures holds one GPU image per texture.
type Textures struct {
	images map[core.TextureID]*ebiten.Image
	sizes  core.TextureSizer
}

// NewTextures uploads every texture in set.
func NewTextures(set *assets.Set) *Textures {
	t := &Textures{
		images: make(map[core.TextureID]*ebiten.Image, len(core.TextureIDs)),
		sizes:  set,
	}
	for _, id := range core.TextureIDs {
		if img := set.Image(id); img != nil {
			t.images[id] = ebiten.NewImageFromImage(img)
		}
	}
	return t
}

// Close releases the GPU images.
func (t *Textures) Close() {
	for id, img := range t.images {
		img.Deallocate()
		delete(t.images, id)
	}
}

// Canvas implements core.Canvas on an ebiten screen image.
type Canvas struct {
	dst      *ebiten.Image
	textures *Textures
	face     *text.GoXFace
}

// NewCanvas creates a canvas drawing with textures.
func NewCanvas(textures *Textures) *Canvas {
	return &Canvas{
		textures: textures,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target sets the image the next draws go to.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// TextureSize implements core.TextureSizer.
func (c *Canvas) TextureSize(id core.TextureID) (w, h float64) {
	return c.textures.sizes.TextureSize(id)
}

// Clear fills the target.
func (c *Canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

// DrawTextureRegion blits part of a texture.
func (c *Canvas) DrawTextureRegion(id core.TextureID, src core.Rect, dst core.Vec2, tint color.Color) {
	img := c.textures.images[id]
	if img == nil {
		return
	}
	sub := img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.Right()), int(src.Bottom()))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleWithColor(tint)
	c.dst.DrawImage(sub, op)
}

// DrawTextureScaled draws a whole texture at a uniform scale.
func (c *Canvas) DrawTextureScaled(id core.TextureID, pos core.Vec2, scale float64, tint color.Color) {
	img := c.textures.images[id]
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(tint)
	c.dst.DrawImage(img, op)
}

// DrawText draws text with the bitmap face scaled to size pixels.
func (c *Canvas) DrawText(s string, x, y float64, size int, col color.Color) {
	op := &text.DrawOptions{}
	scale := float64(size) / faceSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face, op)
}
