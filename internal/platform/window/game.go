// Package window runs Dapper Dasher in a desktop window with ebiten.
package window

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

// Options configures a window session.
type Options struct {
	TickRate int
	Zoom     float64 // Window size relative to the world, default 1
	Preset   config.DifficultyPreset
	Logger   *log.Logger
	Watcher  *config.Watcher // Nil disables hot reload
}

// keyBindings maps edge-triggered keys to actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionJump,
	ebiten.KeyW:       core.ActionJump,
	ebiten.KeyArrowUp: core.ActionJump,
	ebiten.KeyP:       core.ActionPause,
	ebiten.KeyEscape:  core.ActionPause,
	ebiten.KeyR:       core.ActionRestart,
	ebiten.KeyQ:       core.ActionQuit,
}

// Runner adapts a dasher.Game to ebiten.Game.
type Runner struct {
	game     *dasher.Game
	canvas   *Canvas
	logger   *log.Logger
	watcher  *config.Watcher
	recorder *storage.Recorder
	opts     Options
	runtime  core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	err      error
}

// NewRunner creates a runner drawing with textures.
func NewRunner(game *dasher.Game, textures *Textures, store *storage.Store, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	runtime := core.DefaultConfig()
	if opts.TickRate > 0 {
		runtime.TickRate = opts.TickRate
	}
	return &Runner{
		game:     game,
		canvas:   NewCanvas(textures),
		logger:   opts.Logger,
		watcher:  opts.Watcher,
		recorder: storage.NewRecorder(store, opts.Logger, game.ID(), string(opts.Preset)),
		opts:     opts,
		runtime:  runtime,
		input:    core.NewInputFrame(),
	}
}

// pollInput collects the keys pressed since the last tick.
func (r *Runner) pollInput() {
	r.input.Clear()
	for k, action := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			r.input.Set(action)
		}
	}
	r.input.Delta = 1 / float64(ebiten.TPS())
}

// pollReload applies a pending config change without blocking.
func (r *Runner) pollReload() {
	if r.watcher == nil {
		return
	}
	select {
	case reload, ok := <-r.watcher.Events:
		if !ok {
			r.watcher = nil
			return
		}
		assetsIgnored, err := r.game.ApplyReload(reload, r.opts.Preset)
		if err != nil {
			r.logger.Warn("config reload rejected", "path", reload.Path, "err", err)
			return
		}
		if assetsIgnored {
			r.logger.Warn("asset changes need a restart of dasher", "path", reload.Path)
		}
		r.logger.Info("config reloaded, applies on restart", "path", reload.Path)
	default:
	}
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	r.pollInput()
	if r.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	r.pollReload()

	wasOver := r.state.GameOver()
	result := r.game.Step(r.input)
	r.state = result.State
	if result.Err != nil {
		r.logger.Error("simulation failed", "err", result.Err)
		r.err = result.Err
		return result.Err
	}

	if wasOver && !r.state.GameOver() {
		cfg := r.game.Config()
		ebiten.SetWindowSize(r.windowSize(cfg))
		r.logger.Info("run started", "preset", r.opts.Preset)
	}
	r.recorder.Observe(r.state)
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.Target(screen)
	r.game.Render(r.canvas)
}

// Layout implements ebiten.Game. The logical screen is always the world.
func (r *Runner) Layout(_, _ int) (int, int) {
	cfg := r.game.Config()
	return cfg.Window.Width, cfg.Window.Height
}

func (r *Runner) windowSize(cfg config.DasherConfig) (int, int) {
	zoom := r.opts.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return int(float64(cfg.Window.Width) * zoom), int(float64(cfg.Window.Height) * zoom)
}

// Run opens the window and blocks until it is closed. Textures are released
// on every exit path.
func Run(game *dasher.Game, set *assets.Set, store *storage.Store, opts Options) error {
	textures := NewTextures(set)
	defer textures.Close()

	r := NewRunner(game, textures, store, opts)
	game.Reset(r.runtime)

	ebiten.SetTPS(r.runtime.TickRate)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(r.windowSize(game.Config()))
	r.logger.Info("run started", "tick_rate", r.runtime.TickRate, "preset", opts.Preset)

	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
