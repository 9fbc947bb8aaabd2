package player

import (
	"math"

	cfg "github.com/automoto/alchellmy/config"
)

// JumpState is the variable-height jump. JumpTime is nonzero only while an
// ascent is in progress.
type JumpState struct {
	IsJumping  bool
	WasJumping bool
	JumpTime   float64
}

// JumpInput is what one jump step depends on besides the state itself.
type JumpInput struct {
	Grounded bool
	// Suppressed is set while dashing; no jump can start or continue.
	Suppressed bool

	MaxJumpTime    float64
	LaunchVelocity float64
	ControlPower   float64
}

// NewJumpInput fills the tuning part of a JumpInput from config.
func NewJumpInput(c cfg.JumpConfig, grounded, suppressed bool) JumpInput {
	return JumpInput{
		Grounded:       grounded,
		Suppressed:     suppressed,
		MaxJumpTime:    c.MaxJumpTime,
		LaunchVelocity: c.LaunchVelocity,
		ControlPower:   c.ControlPower,
	}
}

// Step advances the jump by dt. When the body is ascending it returns the
// vertical velocity that replaces gravity integration and true.
func (s JumpState) Step(in JumpInput, dt float64) (JumpState, float64, bool) {
	var (
		velocityY float64
		override  bool
	)

	if s.IsJumping && !in.Suppressed {
		// Begin on a grounded rising edge, or continue an ascent
		if (!s.WasJumping && in.Grounded) || s.JumpTime > 0 {
			s.JumpTime += dt
		}

		if s.JumpTime > 0 && s.JumpTime <= in.MaxJumpTime {
			velocityY = in.LaunchVelocity * (1 - math.Pow(s.JumpTime/in.MaxJumpTime, in.ControlPower))
			override = true
		} else {
			// Apex
			s.JumpTime = 0
		}
	} else {
		s.JumpTime = 0
	}

	s.WasJumping = s.IsJumping
	return s, velocityY, override
}

// Cancel stops an ascent, as when the head hits a ceiling.
func (s JumpState) Cancel() JumpState {
	s.JumpTime = 0
	s.IsJumping = false
	return s
}

// Ascending reports whether a jump is in progress.
func (s JumpState) Ascending() bool {
	return s.JumpTime > 0
}
