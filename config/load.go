package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a tuning file produces unusable values.
var ErrInvalidConfig = errors.New("config: invalid physics config")

// ParsePhysics overlays YAML tuning onto the defaults. Keys missing from data
// keep their default value.
func ParsePhysics(data []byte) (PhysicsConfig, error) {
	cfg := DefaultPhysics()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PhysicsConfig{}, fmt.Errorf("config: unmarshal physics: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PhysicsConfig{}, err
	}
	return cfg, nil
}

// LoadPhysics reads a YAML tuning file. An empty path returns the defaults.
func LoadPhysics(path string) (PhysicsConfig, error) {
	if path == "" {
		return DefaultPhysics(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PhysicsConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := ParsePhysics(data)
	if err != nil {
		return PhysicsConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the integrator cannot work with.
func (c PhysicsConfig) Validate() error {
	switch {
	case c.Tile.Width <= 0 || c.Tile.Height <= 0:
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidConfig, c.Tile.Width, c.Tile.Height)
	case c.Jump.MaxJumpTime <= 0:
		return fmt.Errorf("%w: max_jump_time %v", ErrInvalidConfig, c.Jump.MaxJumpTime)
	case c.Player.MaxFallSpeed < 0 || c.Player.MaxMoveSpeed < 0:
		return fmt.Errorf("%w: negative speed limit", ErrInvalidConfig)
	case c.Dash.Duration < 0 || c.Dash.CooldownDuration < 0:
		return fmt.Errorf("%w: negative dash timing", ErrInvalidConfig)
	case c.Player.LocalBounds().Width <= 0 || c.Player.LocalBounds().Height <= 0:
		return fmt.Errorf("%w: empty hitbox", ErrInvalidConfig)
	}
	return nil
}
