// Package config provides YAML-based game configuration loading, validation,
// difficulty presets and hot reloading.
package config

// DasherConfig contains all configuration for the game.
type DasherConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Layers    LayersConfig    `yaml:"layers"`
	Assets    AssetsConfig    `yaml:"assets"`
	Text      TextConfig      `yaml:"text"`
}

// WindowConfig defines the world size in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines vertical motion parameters, in pixels per second.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // px/s²
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative is up
}

// PlayerConfig defines the player sprite sheet layout and animation.
type PlayerConfig struct {
	Frames        int     `yaml:"frames"`         // Frames across the sheet
	FrameInterval float64 `yaml:"frame_interval"` // Seconds per frame
}

// ObstaclesConfig defines the obstacle field.
type ObstaclesConfig struct {
	Count         int     `yaml:"count"`
	Velocity      float64 `yaml:"velocity"` // px/s shared by every obstacle
	Gap           float64 `yaml:"gap"`      // Initial spacing between obstacles
	Frames        int     `yaml:"frames"`   // Columns in the sheet
	Rows          int     `yaml:"rows"`     // Rows in the sheet
	FrameInterval float64 `yaml:"frame_interval"`
	HitboxPadding float64 `yaml:"hitbox_padding"` // Inset on every side of the hitbox
}

// LayersConfig defines the three parallax layers, back to front.
type LayersConfig struct {
	Background LayerConfig `yaml:"background"`
	Midground  LayerConfig `yaml:"midground"`
	Foreground LayerConfig `yaml:"foreground"`
}

// LayerConfig defines one parallax layer.
type LayerConfig struct {
	Speed float64 `yaml:"speed"` // px/s
	Scale float64 `yaml:"scale"` // Draw scale of the tile texture
}

// AssetsConfig names the texture files. An empty Dir selects the built-in textures.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Obstacle   string `yaml:"obstacle"`
	Background string `yaml:"background"`
	Midground  string `yaml:"midground"`
	Foreground string `yaml:"foreground"`
}

// TextConfig defines the outcome messages.
type TextConfig struct {
	Size int    `yaml:"size"`
	Win  string `yaml:"win"`
	Lose string `yaml:"lose"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// presetScale returns the velocity and gap multipliers for a preset.
func presetScale(preset DifficultyPreset) (velocity, gap float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 1.2
	case DifficultyHard:
		return 1.3, 0.85
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave it unchanged.
func ApplyPreset(cfg *DasherConfig, preset DifficultyPreset) {
	v, g := presetScale(preset)
	cfg.Obstacles.Velocity *= v
	cfg.Obstacles.Gap *= g
}
