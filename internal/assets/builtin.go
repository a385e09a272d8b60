package assets

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Built-in sheet layout. The sizes match the classic runner textures so the
// default config lays out the same as it does with files on disk.
const (
	PlayerFrameSize   = 128
	PlayerFrames      = 6
	ObstacleCellSize  = 100
	ObstacleGridSize  = 8
	BackdropWidth     = 256
	BackdropHeight    = 192
	builtinLayoutSeed = 7
)

// Builtin draws the default textures.
func Builtin() (*Set, error) {
	s := newSet(SourceBuiltin)
	rng := rand.New(rand.NewSource(builtinLayoutSeed))

	drawn := map[core.TextureID]*gg.Context{
		core.TexturePlayer:     drawPlayerSheet(),
		core.TextureObstacle:   drawObstacleSheet(),
		core.TextureBackground: drawSkyline(rng, skyline{sky: true, minH: 60, maxH: 150, width: 18, r: 0.30, g: 0.24, b: 0.45}),
		core.TextureMidground:  drawSkyline(rng, skyline{minH: 40, maxH: 110, width: 26, r: 0.18, g: 0.14, b: 0.30}),
		core.TextureForeground: drawGround(rng),
	}
	for _, id := range core.TextureIDs {
		if err := s.add(id, drawn[id].Image()); err != nil {
			return nil, &core.AssetLoadError{Asset: id.String(), Err: err}
		}
	}
	return s, nil
}

// drawPlayerSheet draws a running figure, one pose per frame, left to right.
func drawPlayerSheet() *gg.Context {
	const size = PlayerFrameSize
	dc := gg.NewContext(size*PlayerFrames, size)
	dc.SetLineCapRound()

	for i := 0; i < PlayerFrames; i++ {
		phase := 2 * math.Pi * float64(i) / PlayerFrames
		cx := float64(i*size) + size/2
		swing := math.Sin(phase)

		// Legs
		dc.SetRGB(0.20, 0.22, 0.35)
		dc.SetLineWidth(9)
		dc.DrawLine(cx, 84, cx+22*swing, 124)
		dc.DrawLine(cx, 84, cx-22*swing, 124)
		dc.Stroke()

		// Body
		dc.SetRGB(0.85, 0.55, 0.25)
		dc.SetLineWidth(14)
		dc.DrawLine(cx, 48, cx, 86)
		dc.Stroke()

		// Arms
		dc.SetRGB(0.95, 0.80, 0.65)
		dc.SetLineWidth(7)
		dc.DrawLine(cx, 56, cx-18*swing, 78)
		dc.DrawLine(cx, 56, cx+18*swing, 78)
		dc.Stroke()

		// Head and scarf
		dc.SetRGB(0.95, 0.80, 0.65)
		dc.DrawCircle(cx, 32, 15)
		dc.Fill()
		dc.SetRGB(0.85, 0.15, 0.20)
		dc.DrawRectangle(cx-14, 44, 28, 7)
		dc.Fill()
		dc.SetLineWidth(5)
		dc.DrawLine(cx-12, 48, cx-30, 44+6*swing)
		dc.Stroke()
	}
	return dc
}

// drawObstacleSheet draws a pulsing glow in every cell of the grid.
// Columns are animation frames; every row repeats the cycle.
func drawObstacleSheet() *gg.Context {
	const cell = ObstacleCellSize
	dc := gg.NewContext(cell*ObstacleGridSize, cell*ObstacleGridSize)

	for row := 0; row < ObstacleGridSize; row++ {
		for col := 0; col < ObstacleGridSize; col++ {
			phase := 2 * math.Pi * float64(col) / ObstacleGridSize
			cx := float64(col*cell) + cell/2
			cy := float64(row*cell) + cell/2
			radius := 30 + 8*math.Sin(phase)

			for k := 5; k >= 0; k-- {
				dc.SetRGBA(0.65, 0.25, 0.90, 0.22)
				dc.DrawCircle(cx, cy, radius*(0.4+0.12*float64(k)))
				dc.Fill()
			}
			dc.SetRGBA(1, 0.85, 1, 0.9)
			dc.DrawCircle(cx, cy, radius*0.25)
			dc.Fill()
		}
	}
	return dc
}

type skyline struct {
	sky        bool
	minH, maxH float64
	width      float64
	r, g, b    float64
}

// drawSkyline draws a row of buildings. Without sky the area above them stays
// transparent so the layer behind shows through.
func drawSkyline(rng *rand.Rand, s skyline) *gg.Context {
	dc := gg.NewContext(BackdropWidth, BackdropHeight)

	if s.sky {
		grad := gg.NewLinearGradient(0, 0, 0, BackdropHeight)
		grad.AddColorStop(0, color.RGBA{R: 26, G: 20, B: 56, A: 255})
		grad.AddColorStop(1, color.RGBA{R: 115, G: 76, B: 128, A: 255})
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, BackdropWidth, BackdropHeight)
		dc.Fill()
	}

	for x := 0.0; x < BackdropWidth; x += s.width + 2 {
		h := s.minH + rng.Float64()*(s.maxH-s.minH)
		dc.SetRGB(s.r, s.g, s.b)
		dc.DrawRectangle(x, BackdropHeight-h, s.width, h)
		dc.Fill()

		// Windows
		dc.SetRGBA(1, 0.9, 0.5, 0.6)
		for wy := BackdropHeight - h + 6; wy < BackdropHeight-8; wy += 12 {
			if rng.Intn(3) == 0 {
				dc.DrawRectangle(x+4, wy, 4, 5)
				dc.Fill()
			}
		}
	}
	return dc
}

// drawGround draws the street strip along the bottom edge.
func drawGround(rng *rand.Rand) *gg.Context {
	dc := gg.NewContext(BackdropWidth, BackdropHeight)

	dc.SetRGB(0.12, 0.10, 0.16)
	dc.DrawRectangle(0, BackdropHeight-14, BackdropWidth, 14)
	dc.Fill()

	dc.SetRGB(0.35, 0.30, 0.40)
	for x := 0.0; x < BackdropWidth; x += 32 {
		dc.DrawRectangle(x+rng.Float64()*8, BackdropHeight-14, 14, 2)
		dc.Fill()
	}

	// Lamp posts
	for x := 40.0; x < BackdropWidth; x += 96 {
		dc.SetRGB(0.20, 0.18, 0.25)
		dc.DrawRectangle(x, BackdropHeight-60, 3, 46)
		dc.Fill()
		dc.SetRGBA(1, 0.85, 0.4, 0.8)
		dc.DrawCircle(x+1.5, BackdropHeight-62, 4)
		dc.Fill()
	}
	return dc
}
