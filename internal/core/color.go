package core

import "image/color"

// Named colors shared by games and platforms.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

// ToRGBA converts any color to non-premultiplied RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if c == nil {
		return White
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Modulate multiplies a color by a tint, channel by channel.
func Modulate(c, tint color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(tint.R) / 255),
		G: uint8(uint16(c.G) * uint16(tint.G) / 255),
		B: uint8(uint16(c.B) * uint16(tint.B) / 255),
		A: uint8(uint16(c.A) * uint16(tint.A) / 255),
	}
}
