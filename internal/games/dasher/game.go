// Package dasher implements Dapper Dasher, a side-scrolling runner.
// The player jumps over nebulae drifting in from the right and wins once the
// finish line behind the last one reaches them.
package dasher

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

const (
	// GameID keys recorded runs.
	GameID = "dasher"

	pausedText = "PAUSED"
)

// Game implements core.Game on top of State.
type Game struct {
	cfg      config.DasherConfig
	pending  *config.DasherConfig // Applied at the next Reset
	textures core.TextureSizer
	runtime  core.RuntimeConfig
	state    State
	paused   bool
	err      error // Sticky simulation failure
	tick     int
}

// New creates a game laid out for cfg and the given textures and starts the
// first run.
func New(cfg config.DasherConfig, textures core.TextureSizer) (*Game, error) {
	state, err := NewState(cfg, textures)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		textures: textures,
		runtime:  core.DefaultConfig(),
		state:    state,
	}
	return g, nil
}

// NewState validates cfg and builds the starting state of a run. Frame sizes
// come from the texture dimensions: the player sheet is one row of
// Player.Frames frames, the obstacle sheet a grid of Frames by Rows.
func NewState(cfg config.DasherConfig, textures core.TextureSizer) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}

	width := float64(cfg.Window.Width)
	height := float64(cfg.Window.Height)

	sheetW, sheetH := textures.TextureSize(core.TexturePlayer)
	playerW := math.Floor(sheetW / float64(cfg.Player.Frames))
	if playerW < 1 || sheetH <= 0 {
		return State{}, &core.ConfigError{
			Field:  "player.frames",
			Reason: fmt.Sprintf("a %vx%v sheet cannot hold %d frames", sheetW, sheetH, cfg.Player.Frames),
		}
	}
	playerFrame := core.NewRect(0, 0, playerW, sheetH)

	sheetW, sheetH = textures.TextureSize(core.TextureObstacle)
	obstacleFrame := core.NewRect(0, 0,
		math.Floor(sheetW/float64(cfg.Obstacles.Frames)),
		math.Floor(sheetH/float64(cfg.Obstacles.Rows)))
	if obstacleFrame.W < 1 || obstacleFrame.H < 1 {
		return State{}, &core.ConfigError{
			Field:  "obstacles.frames",
			Reason: fmt.Sprintf("a %vx%v sheet cannot hold %dx%d frames", sheetW, sheetH, cfg.Obstacles.Frames, cfg.Obstacles.Rows),
		}
	}
	if hb := obstacleFrame.Inset(cfg.Obstacles.HitboxPadding); hb.W < 0 || hb.H < 0 {
		return State{}, &core.ConfigError{
			Field:  "obstacles.hitbox_padding",
			Reason: fmt.Sprintf("%v is more than half of a %vx%v frame", cfg.Obstacles.HitboxPadding, obstacleFrame.W, obstacleFrame.H),
		}
	}

	layers := make([]Layer, 0, 3)
	for _, l := range []struct {
		id  core.TextureID
		cfg config.LayerConfig
	}{
		{core.TextureBackground, cfg.Layers.Background},
		{core.TextureMidground, cfg.Layers.Midground},
		{core.TextureForeground, cfg.Layers.Foreground},
	} {
		tileW, _ := textures.TextureSize(l.id)
		if tileW <= 0 {
			return State{}, &core.AssetLoadError{Asset: l.id.String(), Err: errors.New("texture has no width")}
		}
		layers = append(layers, Layer{Texture: l.id, Speed: l.cfg.Speed, TileWidth: tileW, Scale: l.cfg.Scale})
	}

	groundY := height - playerFrame.H
	return State{
		Tuning: Tuning{
			GroundY:        groundY,
			Gravity:        cfg.Physics.Gravity,
			JumpImpulse:    cfg.Physics.JumpImpulse,
			HitboxPadding:  cfg.Obstacles.HitboxPadding,
			PlayerMaxFrame: cfg.Player.Frames - 1,
		},
		Layers: layers,
		Player: Sprite{
			Rect:     playerFrame,
			Pos:      core.Vec2{X: width/2 - playerFrame.W/2, Y: groundY},
			Interval: cfg.Player.FrameInterval,
		},
		Body: Body{Y: groundY},
		Field: NewObstacleField(FieldLayout{
			Count:    cfg.Obstacles.Count,
			Frame:    obstacleFrame,
			StartX:   width,
			Y:        height - obstacleFrame.H,
			Gap:      cfg.Obstacles.Gap,
			Velocity: cfg.Obstacles.Velocity,
			Interval: cfg.Obstacles.FrameInterval,
			MaxFrame: cfg.Obstacles.Frames - 1,
		}),
		Outcome: core.OutcomePlaying,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Window.Title == "" {
		return "Dapper Dasher"
	}
	return g.cfg.Window.Title
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.DasherConfig {
	return g.cfg
}

// SetConfig validates cfg against the loaded textures and schedules it for
// the next run. The run in progress is unaffected.
func (g *Game) SetConfig(cfg config.DasherConfig) error {
	if _, err := NewState(cfg, g.textures); err != nil {
		return err
	}
	g.pending = &cfg
	return nil
}

// ApplyReload schedules a config delivered by a config.Watcher, with the
// difficulty preset applied, for the next run.
//
// Textures are loaded once per process, so the assets section of the running
// config (including any directory override) is kept. assetsIgnored reports
// that the reloaded file asked for different assets.
func (g *Game) ApplyReload(r config.Reload, preset config.DifficultyPreset) (assetsIgnored bool, err error) {
	if r.Err != nil {
		return false, r.Err
	}
	cfg := r.Config
	config.ApplyPreset(&cfg, preset)
	assetsIgnored = cfg.Assets != g.cfg.Assets
	cfg.Assets = g.cfg.Assets
	return assetsIgnored, g.SetConfig(cfg)
}

// Reset starts a new run, picking up any config set since the last one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}

	state, err := NewState(g.cfg, g.textures)
	g.state = state
	g.err = err
	g.paused = false
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionRestart) && g.state.Outcome.Terminal() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Err: g.err}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Delta
	if dt <= 0 {
		dt = g.runtime.FixedDelta()
	}
	g.tick++
	g.err = g.state.Update(dt, in.Has(core.ActionJump))

	return core.StepResult{State: g.State(), Err: g.err}
}

// Render draws the layers, then either the outcome message or the sprites.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.White)

	for _, l := range g.state.Layers {
		for _, x := range l.Copies() {
			dst.DrawTextureScaled(l.Texture, core.Vec2{X: x}, l.Scale, core.White)
		}
	}

	width := float64(g.cfg.Window.Width)
	height := float64(g.cfg.Window.Height)

	switch g.state.Outcome {
	case core.OutcomeLost:
		dst.DrawText(g.cfg.Text.Lose, width/4, height/2, g.cfg.Text.Size, core.White)
	case core.OutcomeWon:
		dst.DrawText(g.cfg.Text.Win, width/4, height/2, g.cfg.Text.Size, core.White)
	default:
		for _, o := range g.state.Field.Obstacles {
			dst.DrawTextureRegion(core.TextureObstacle, o.Rect, o.Pos, core.White)
		}
		p := g.state.Player
		dst.DrawTextureRegion(core.TexturePlayer, p.Rect, p.Pos, core.White)
	}

	if g.paused {
		dst.DrawText(pausedText, width/4, height/4, g.cfg.Text.Size, core.White)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Outcome:  g.state.Outcome,
		Paused:   g.paused,
		Elapsed:  g.state.Elapsed,
		Jumps:    g.state.Jumps,
		Distance: g.state.Distance,
	}
}
