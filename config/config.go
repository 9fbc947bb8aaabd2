package config

import "github.com/automoto/alchellmy/shared/gamemath"

// PlayerConfig contains horizontal movement, gravity and hitbox values.
// Speeds are pixels per second, accelerations pixels per second squared.
type PlayerConfig struct {
	// Movement
	MoveAcceleration float64 `yaml:"move_acceleration"`
	MaxMoveSpeed     float64 `yaml:"max_move_speed"`
	GroundDragFactor float64 `yaml:"ground_drag_factor"`
	AirDragFactor    float64 `yaml:"air_drag_factor"`

	// Physics
	GravityAcceleration float64 `yaml:"gravity_acceleration"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`

	// Speed above which a grounded body counts as running
	RunSpeedThreshold float64 `yaml:"run_speed_threshold"`

	// Dimensions
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	// Hitbox as a fraction of the frame size
	HitboxWidthScale  float64 `yaml:"hitbox_width_scale"`
	HitboxHeightScale float64 `yaml:"hitbox_height_scale"`
}

// LocalBounds returns the hitbox relative to the top-left of the sprite frame:
// horizontally centred and resting on the frame's bottom edge.
func (c PlayerConfig) LocalBounds() gamemath.Rect {
	width := int(float64(c.FrameWidth) * c.HitboxWidthScale)
	height := int(float64(c.FrameHeight) * c.HitboxHeightScale)
	return gamemath.Rect{
		X:      (c.FrameWidth - width) / 2,
		Y:      c.FrameHeight - height,
		Width:  width,
		Height: height,
	}
}

// Origin returns the sprite origin, the bottom centre of the frame.
func (c PlayerConfig) Origin() gamemath.Vec {
	return gamemath.Vec{X: float64(c.FrameWidth) / 2, Y: float64(c.FrameHeight)}
}

// JumpConfig controls the power-curve ascent.
type JumpConfig struct {
	ControlPower   float64 `yaml:"control_power"`
	LaunchVelocity float64 `yaml:"launch_velocity"` // negative is up
	MaxJumpTime    float64 `yaml:"max_jump_time"`   // seconds
}

// DashConfig controls the horizontal dash burst.
type DashConfig struct {
	Duration         float64 `yaml:"duration"`          // seconds
	CooldownDuration float64 `yaml:"cooldown_duration"` // seconds
	Velocity         float64 `yaml:"velocity"`          // pixels per second
}

// TileConfig holds the fixed tile size of every level.
type TileConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig bundles everything a player body needs. It is passed by value
// at construction time and never mutated by the body.
type PhysicsConfig struct {
	Player PlayerConfig `yaml:"player"`
	Jump   JumpConfig   `yaml:"jump"`
	Dash   DashConfig   `yaml:"dash"`
	Tile   TileConfig   `yaml:"tile"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DeathConfig controls what happens after a trigger zone kills the player.
type DeathConfig struct {
	RespawnDelay float64 // seconds
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Jump JumpConfig
var Dash DashConfig
var Tile TileConfig
var Death DeathConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// DefaultPhysics returns the built-in tuning.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Player: Player,
		Jump:   Jump,
		Dash:   Dash,
		Tile:   Tile,
	}
}

func init() {
	C = &Config{
		Width:  800,
		Height: 480,
	}

	Player = PlayerConfig{
		// Movement
		MoveAcceleration: 30000.0,
		MaxMoveSpeed:     100000.0,
		GroundDragFactor: 0.48,
		AirDragFactor:    0.48,

		// Physics
		GravityAcceleration: 2400.0,
		MaxFallSpeed:        550.0,

		RunSpeedThreshold: 0.02,

		// Dimensions
		FrameWidth:        64,
		FrameHeight:       64,
		HitboxWidthScale:  0.4,
		HitboxHeightScale: 0.8,
	}

	Jump = JumpConfig{
		ControlPower:   0.14,
		LaunchVelocity: -2500.0,
		MaxJumpTime:    0.7,
	}

	Dash = DashConfig{
		Duration:         0.15,
		CooldownDuration: 0.15,
		Velocity:         800.0,
	}

	Tile = TileConfig{
		Width:  64,
		Height: 64,
	}

	Death = DeathConfig{
		RespawnDelay: 1.0,
	}
}
