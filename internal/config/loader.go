package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml -> ./configs/dasher.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only the keys they change.
// The returned source is the file that was used, or SourceEmbedded.
func Load(customPath string) (DasherConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dasher.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			cfg, err := LoadFile(userCfgPath)
			return cfg, userCfgPath, err
		}
	}

	// Try local configs directory
	if _, err := os.Stat(localConfigPath); err == nil {
		cfg, err := LoadFile(localConfigPath)
		return cfg, localConfigPath, err
	}

	cfg := defaults()
	return cfg, SourceEmbedded, cfg.Validate()
}

const localConfigPath = "configs/dasher.yaml"

// LoadFile reads one config file over the defaults and validates the result.
func LoadFile(path string) (DasherConfig, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// defaults returns the embedded default config.
func defaults() DasherConfig {
	var cfg DasherConfig
	if err := yaml.Unmarshal(defaultDasherYAML, &cfg); err != nil {
		return DefaultDasherConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}

// Validate reports every unusable value as a *core.ConfigError, joined.
func (c DasherConfig) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &core.ConfigError{Field: field, Reason: reason})
	}

	if c.Window.Width <= 0 {
		bad("window.width", "must be positive")
	}
	if c.Window.Height <= 0 {
		bad("window.height", "must be positive")
	}
	if c.Player.Frames <= 0 {
		bad("player.frames", "must be positive")
	}
	if c.Player.FrameInterval <= 0 {
		bad("player.frame_interval", "must be positive")
	}
	if c.Obstacles.Count <= 0 {
		bad("obstacles.count", "must be positive")
	}
	if c.Obstacles.Frames <= 0 {
		bad("obstacles.frames", "must be positive")
	}
	if c.Obstacles.Rows <= 0 {
		bad("obstacles.rows", "must be positive")
	}
	if c.Obstacles.FrameInterval <= 0 {
		bad("obstacles.frame_interval", "must be positive")
	}
	if c.Obstacles.Gap < 0 {
		bad("obstacles.gap", "must not be negative")
	}
	if c.Obstacles.HitboxPadding < 0 {
		bad("obstacles.hitbox_padding", "must not be negative")
	}

	layers := []struct {
		name string
		l    LayerConfig
	}{
		{"background", c.Layers.Background},
		{"midground", c.Layers.Midground},
		{"foreground", c.Layers.Foreground},
	}
	for _, layer := range layers {
		if layer.l.Speed < 0 {
			bad("layers."+layer.name+".speed", "must not be negative")
		}
		if layer.l.Scale <= 0 {
			bad("layers."+layer.name+".scale", "must be positive")
		}
	}

	if c.Text.Size <= 0 {
		bad("text.size", "must be positive")
	}

	return errors.Join(errs...)
}
