package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/vovakirdan/dapper-dasher/internal/assets"
	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Width, Height int // Initial terminal size in cells
	TickRate      int
	Preset        config.DifficultyPreset
	Logger        *log.Logger
	Watcher       *config.Watcher // Nil disables hot reload
	ScreenshotDir string
}

// ConfigReloadedMsg carries a config file change from the watcher.
type ConfigReloadedMsg config.Reload

// Model is the Bubble Tea model for a terminal session.
type Model struct {
	game       *dasher.Game
	screen     *core.Screen
	canvas     *Canvas
	logger     *log.Logger
	watcher    *config.Watcher
	keys       *KeyMapper
	opts       Options
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *storage.Recorder
	quitting   bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case runs are not recorded.
func NewModel(game *dasher.Game, textures *assets.Set, store *storage.Store, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	runtime := core.DefaultConfig()
	if opts.TickRate > 0 {
		runtime.TickRate = opts.TickRate
	}

	cfg := game.Config()
	screen := core.NewScreen(opts.Width, opts.Height)
	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCanvas(screen, textures, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		logger:     opts.Logger,
		watcher:    opts.Watcher,
		keys:       NewKeyMapper(),
		opts:       opts,
		runtime:    runtime,
		inputFrame: core.NewInputFrame(),
		recorder:   storage.NewRecorder(store, opts.Logger, game.ID(), string(opts.Preset)),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.logger.Info("run started", "tick_rate", m.runtime.TickRate, "preset", m.opts.Preset)

	cmds := []tea.Cmd{tickCmd(m.runtime.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForReload blocks on the next config change.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.Events
		if !ok {
			return nil
		}
		return ConfigReloadedMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.canvas.Fit()
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		m.handleReload(config.Reload(msg))
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleReload hands a changed config to the game. It takes effect on restart.
func (m Model) handleReload(r config.Reload) {
	assetsIgnored, err := m.game.ApplyReload(r, m.opts.Preset)
	if err != nil {
		m.logger.Warn("config reload rejected", "path", r.Path, "err", err)
		return
	}
	if assetsIgnored {
		m.logger.Warn("asset changes need a restart of dasher", "path", r.Path)
	}
	m.logger.Info("config reloaded, applies on restart", "path", r.Path)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver()

	m.inputFrame.Delta = m.runtime.FixedDelta()
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Err != nil {
		m.logger.Error("simulation failed", "err", result.Err)
		m.err = result.Err
		return m, tea.Quit
	}

	if wasOver && !m.gameState.GameOver() {
		// Restarted; the world size may have changed with a reloaded config.
		cfg := m.game.Config()
		m.canvas.SetWorld(float64(cfg.Window.Width), float64(cfg.Window.Height))
		m.logger.Info("run started", "preset", m.opts.Preset)
	}
	m.recorder.Observe(m.gameState)

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot writes the current frame as a PNG.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.canvas)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".dasher", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))
	if err := imaging.Save(m.screen.Image(), path); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// Err returns the simulation failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *dasher.Game, textures *assets.Set, store *storage.Store, opts Options) error {
	model := NewModel(game, textures, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
