package core

import "fmt"

// ConfigError reports a configuration value that cannot be used.
// It is fatal at construction time.
type ConfigError struct {
	Field  string // Dotted YAML path, e.g. "window.width"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// AssetLoadError reports a texture that is missing or cannot be decoded.
// It is fatal at startup.
type AssetLoadError struct {
	Asset string // Logical texture name
	Path  string // File that was read, empty for built-in textures
	Err   error
}

func (e *AssetLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("assets: %s: %v", e.Asset, e.Err)
	}
	return fmt.Sprintf("assets: %s (%s): %v", e.Asset, e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// InvariantError reports simulation state that can only result from a
// programming error, such as NaN positions.
type InvariantError struct {
	What   string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s: %s", e.What, e.Detail)
}
