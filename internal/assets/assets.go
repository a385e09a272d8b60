// Package assets loads the textures a run draws with and keeps them for the
// lifetime of the process. Textures come either from PNG files on disk or from
// the built-in sheets drawn at startup.
package assets

import (
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// SourceBuiltin is reported by Source when no asset directory was configured.
const SourceBuiltin = "builtin"

// Set holds one decoded image per core.TextureID.
type Set struct {
	images map[core.TextureID]*image.NRGBA
	source string
	scaled map[scaledKey]*image.NRGBA
}

type scaledKey struct {
	id     core.TextureID
	w, h   int
	filter string
}

func newSet(source string) *Set {
	return &Set{
		images: make(map[core.TextureID]*image.NRGBA, len(core.TextureIDs)),
		source: source,
		scaled: make(map[scaledKey]*image.NRGBA),
	}
}

// Load reads every texture named in cfg from cfg.Dir.
// An empty Dir returns the built-in textures.
// Any missing or undecodable file fails the whole load with a *core.AssetLoadError.
func Load(cfg config.AssetsConfig) (*Set, error) {
	if cfg.Dir == "" {
		return Builtin()
	}

	s := newSet(cfg.Dir)
	for _, id := range core.TextureIDs {
		name := fileName(cfg, id)
		if name == "" {
			return nil, &core.AssetLoadError{Asset: id.String(), Err: errors.New("no file configured")}
		}
		path := filepath.Join(cfg.Dir, name)

		img, err := imaging.Open(path)
		if err != nil {
			return nil, &core.AssetLoadError{Asset: id.String(), Path: path, Err: err}
		}
		if err := s.add(id, img); err != nil {
			return nil, &core.AssetLoadError{Asset: id.String(), Path: path, Err: err}
		}
	}
	return s, nil
}

// fileName returns the configured file for a texture.
func fileName(cfg config.AssetsConfig, id core.TextureID) string {
	switch id {
	case core.TexturePlayer:
		return cfg.Player
	case core.TextureObstacle:
		return cfg.Obstacle
	case core.TextureBackground:
		return cfg.Background
	case core.TextureMidground:
		return cfg.Midground
	case core.TextureForeground:
		return cfg.Foreground
	default:
		return ""
	}
}

// add stores img as an NRGBA copy.
func (s *Set) add(id core.TextureID, img image.Image) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("empty image %dx%d", b.Dx(), b.Dy())
	}
	s.images[id] = imaging.Clone(img)
	return nil
}

// Source returns the asset directory, or SourceBuiltin.
func (s *Set) Source() string {
	return s.source
}

// Image returns the decoded texture, or nil if the set has been closed.
func (s *Set) Image(id core.TextureID) *image.NRGBA {
	return s.images[id]
}

// TextureSize implements core.TextureSizer.
func (s *Set) TextureSize(id core.TextureID) (w, h float64) {
	img := s.images[id]
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resampled returns the texture scaled by (sx, sy), cached per target size.
// Down-scaling averages with a box filter so thin details survive as blended
// colors; up-scaling keeps hard pixel edges.
func (s *Set) Resampled(id core.TextureID, sx, sy float64) *image.NRGBA {
	img := s.images[id]
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * sx))
	h := int(math.Round(float64(b.Dy()) * sy))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}

	filter, name := imaging.Box, "box"
	if sx > 1 || sy > 1 {
		filter, name = imaging.NearestNeighbor, "nearest"
	}
	key := scaledKey{id: id, w: w, h: h, filter: name}
	if cached, ok := s.scaled[key]; ok {
		return cached
	}
	out := imaging.Resize(img, w, h, filter)
	s.scaled[key] = out
	return out
}

// Close releases every texture. The set is unusable afterwards.
func (s *Set) Close() {
	clear(s.images)
	clear(s.scaled)
}
