package core

import (
	"image"
	"image/color"
	"strings"
)

// HalfBlock is the glyph used for pixel cells: its foreground paints the top
// half of the cell and its background paints the bottom half.
const HalfBlock = '▀'

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Screen is a 2D character buffer for rendering game graphics in a terminal.
// Every cell holds two vertically stacked pixels, so the pixel height is twice
// the character height.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions in characters.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(Black)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelHeight returns the screen height in pixels.
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(Black)
}

// Clear turns every cell into a pixel cell of the given color.
func (s *Screen) Clear(c color.RGBA) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: HalfBlock, FG: c, BG: c}
		}
	}
}

// SetPixel paints the pixel at (x, py), where py counts half-cells.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, py int, c color.RGBA) {
	y := py / 2
	if x < 0 || x >= s.width || py < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	if cell.Rune != HalfBlock {
		// Text cells are repainted as pixel cells; keep the other half.
		cell.Rune = HalfBlock
		cell.FG = cell.BG
	}
	if py%2 == 0 {
		cell.FG = c
	} else {
		cell.BG = c
	}
}

// Pixel returns the pixel color at (x, py).
// Returns black for out-of-bounds coordinates.
func (s *Screen) Pixel(x, py int) color.RGBA {
	y := py / 2
	if x < 0 || x >= s.width || py < 0 || y >= s.height {
		return Black
	}
	if py%2 == 0 {
		return s.cells[y][x].FG
	}
	return s.cells[y][x].BG
}

// Set places a rune at the given cell, keeping the cell's bottom color as background.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, fg color.RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	cell.Rune = r
	cell.FG = fg
}

// GetCell returns the cell at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg color.RGBA) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, fg)
		i++
	}
}

// String converts the screen buffer to plain text, dropping colors.
// Pixel cells become spaces.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			r := s.cells[y][x].Rune
			if r == HalfBlock {
				r = ' '
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Image returns the pixel layer as an image, one pixel per half-cell.
// Text cells contribute their background color to both halves.
func (s *Screen) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height*2))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			cell := s.cells[y][x]
			top := cell.FG
			if cell.Rune != HalfBlock {
				top = cell.BG
			}
			img.SetNRGBA(x, y*2, color.NRGBA{R: top.R, G: top.G, B: top.B, A: 255})
			img.SetNRGBA(x, y*2+1, color.NRGBA{R: cell.BG.R, G: cell.BG.G, B: cell.BG.B, A: 255})
		}
	}
	return img
}
