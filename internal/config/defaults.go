package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the default configuration.
// It mirrors defaults/dasher.yaml and is used when the embedded file fails to parse.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		Window: WindowConfig{
			Width:  512,
			Height: 380,
			Title:  "Dapper Dasher",
		},
		Physics: PhysicsConfig{
			Gravity:     1000,
			JumpImpulse: -600,
		},
		Player: PlayerConfig{
			Frames:        6,
			FrameInterval: 1.0 / 12.0,
		},
		Obstacles: ObstaclesConfig{
			Count:         6,
			Velocity:      -200,
			Gap:           300,
			Frames:        8,
			Rows:          8,
			FrameInterval: 1.0 / 16.0,
			HitboxPadding: 50,
		},
		Layers: LayersConfig{
			Background: LayerConfig{Speed: 20, Scale: 2},
			Midground:  LayerConfig{Speed: 40, Scale: 2},
			Foreground: LayerConfig{Speed: 80, Scale: 2},
		},
		Assets: AssetsConfig{
			Player:     "scarfy.png",
			Obstacle:   "12_nebula_spritesheet.png",
			Background: "far-buildings.png",
			Midground:  "back-buildings.png",
			Foreground: "foreground.png",
		},
		Text: TextConfig{
			Size: 40,
			Win:  "YOU WIN",
			Lose: "GAME OVER",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
