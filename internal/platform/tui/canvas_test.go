package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// testCanvas maps the 512x380 world onto a 64x19 screen: 1/8 horizontally
// and 1/10 vertically.
func testCanvas(t *testing.T) (*Canvas, *core.Screen) {
	t.Helper()
	textures, err := assets.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	screen := core.NewScreen(64, 19)
	return NewCanvas(screen, textures, 512, 380), screen
}

func TestCanvasScale(t *testing.T) {
	c, screen := testCanvas(t)
	if sx, sy := c.sx, c.sy; sx != 0.125 || sy != 0.1 {
		t.Errorf("scale = (%v, %v), expected (0.125, 0.1)", sx, sy)
	}

	screen.Resize(128, 38)
	c.Fit()
	if sx, sy := c.sx, c.sy; sx != 0.25 || sy != 0.2 {
		t.Errorf("scale after resize = (%v, %v), expected (0.25, 0.2)", sx, sy)
	}

	c.SetWorld(256, 76)
	if sx, sy := c.sx, c.sy; sx != 0.5 || sy != 1 {
		t.Errorf("scale after SetWorld = (%v, %v), expected (0.5, 1)", sx, sy)
	}
}

func TestCanvasScaledCoversScreen(t *testing.T) {
	c, screen := testCanvas(t)
	c.Clear(core.Black)

	// The sky is opaque and, at scale 2, exactly as wide as the world.
	c.DrawTextureScaled(core.TextureBackground, core.Vec2{}, 2, core.White)

	for py := 0; py < screen.PixelHeight(); py++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Pixel(x, py) == core.Black {
				t.Fatalf("pixel (%d, %d) not covered", x, py)
			}
		}
	}
}

func TestCanvasRegionStaysInFrame(t *testing.T) {
	c, screen := testCanvas(t)
	c.Clear(core.Black)

	// One 128x128 player frame at (192, 252) lands on columns 24..40, rows 25..38.
	c.DrawTextureRegion(core.TexturePlayer, core.NewRect(0, 0, 128, 128), core.Vec2{X: 192, Y: 252}, core.White)

	painted := 0
	for py := 0; py < screen.PixelHeight(); py++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Pixel(x, py) == core.Black {
				continue
			}
			if x < 24 || x >= 40 || py < 25 {
				t.Errorf("pixel (%d, %d) painted outside the frame", x, py)
			}
			painted++
		}
	}
	if painted == 0 {
		t.Error("player frame left no opaque pixels")
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	c, screen := testCanvas(t)
	c.Clear(core.Black)

	c.DrawTextureRegion(core.TextureObstacle, core.NewRect(0, 0, 100, 100), core.Vec2{X: -2000, Y: -2000}, core.White)
	c.DrawTextureScaled(core.TextureForeground, core.Vec2{X: 5000}, 2, core.White)

	for py := 0; py < screen.PixelHeight(); py++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Pixel(x, py) != core.Black {
				t.Fatalf("pixel (%d, %d) painted by an off-screen draw", x, py)
			}
		}
	}
}

func TestCanvasText(t *testing.T) {
	c, screen := testCanvas(t)
	c.Clear(core.Black)
	c.DrawText("GAME OVER", 128, 190, 40, core.White)

	// (128, 190) is column 16, pixel row 19, cell row 9.
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Fatalf("screen does not contain the text:\n%s", screen.String())
	}
	if cell := screen.GetCell(16, 9); cell.Rune != 'G' || cell.FG != core.White {
		t.Errorf("cell (16, 9) = %+v, expected a white G", cell)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 3)
	s.DrawText(0, 1, "hi", core.White)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("line 1 = %q, expected the text", lines[1])
	}
	if !strings.ContainsRune(lines[0], core.HalfBlock) {
		t.Errorf("line 0 = %q, expected pixel cells", lines[0])
	}
}
