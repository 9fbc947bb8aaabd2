// Package player is the kinematics core of the platformer: a body driven by a
// per-tick Intent, collided against a tile grid, with jump and dash state
// machines and a derived animation clip. It never touches input devices or
// rendering.
package player

import (
	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/shared/gamemath"
)

// Body is one player. Position is the sprite origin in world pixels, which
// for the default frame is the bottom centre of the hitbox.
type Body struct {
	grid TileGrid
	cfg  cfg.PhysicsConfig

	position gamemath.Vec
	velocity gamemath.Vec

	localBounds    gamemath.Rect
	origin         gamemath.Vec
	previousBottom float64

	isOnGround  bool
	isAlive     bool
	reachedExit bool

	facing   float64
	movement float64

	jump JumpState
	dash DashState

	lastCollision CollisionResult
	animation     Animation
}

// NewBody spawns a body at position. The body starts grounded and facing
// right.
func NewBody(grid TileGrid, c cfg.PhysicsConfig, position gamemath.Vec) *Body {
	b := &Body{
		grid:        grid,
		cfg:         c,
		localBounds: c.Player.LocalBounds(),
		origin:      c.Player.Origin(),
		facing:      cfg.DirectionRight,
	}
	b.Reset(position)
	return b
}

// Reset brings the body back to life at position with both state machines
// idle. The body counts as grounded until the next collision pass says
// otherwise, whatever it was doing before.
func (b *Body) Reset(position gamemath.Vec) {
	b.position = position
	b.velocity = gamemath.Vec{}
	b.isOnGround = true
	b.isAlive = true
	b.reachedExit = false
	b.movement = 0
	b.jump = JumpState{}
	b.dash = NewDashState(b.cfg.Dash)
	b.lastCollision = CollisionResult{}
	b.previousBottom = float64(b.BoundingRectangle().Bottom())
	b.animation = SelectAnimation(b.snapshot())
}

// SetConfig swaps the tuning. It takes effect on the next Update.
func (b *Body) SetConfig(c cfg.PhysicsConfig) {
	b.cfg = c
	b.localBounds = c.Player.LocalBounds()
	b.origin = c.Player.Origin()
}

// Kill stops the body where it is. A dead body ignores Update until Reset.
func (b *Body) Kill() {
	if !b.isAlive {
		return
	}
	b.isAlive = false
	b.velocity = gamemath.Vec{}
	b.dash = b.dash.Cancel()
	b.animation = SelectAnimation(b.snapshot())
}

// ReachExit marks the level as completed. From then on the body ignores
// intent and settles where it stands.
func (b *Body) ReachExit() {
	b.reachedExit = true
	b.animation = SelectAnimation(b.snapshot())
}

// Update advances the body by dt seconds.
func (b *Body) Update(dt float64, in Intent) {
	if !b.isAlive {
		b.animation = SelectAnimation(b.snapshot())
		return
	}
	if b.reachedExit {
		in = Intent{}
	}

	b.sampleIntent(in)

	previous := b.position
	b.applyPhysics(dt)
	b.lastCollision = ResolveCollisions(b.grid, b)

	// Landing stops the fall on the contact tick
	if b.lastCollision.Grounded && b.lastCollision.HitVertical && b.velocity.Y > 0 {
		b.velocity.Y = 0
	}

	// Blocked movement kills velocity on that axis
	if b.position.X == previous.X {
		b.velocity.X = 0
	}
	if b.position.Y == previous.Y {
		b.velocity.Y = 0
		b.jump = b.jump.Cancel()
	}

	b.dash = b.dash.TickCooldown(dt, b.cfg.Dash)
	b.dash = b.dash.Land(b.isAlive, b.isOnGround)

	b.animation = SelectAnimation(b.snapshot())
}

func (b *Body) sampleIntent(in Intent) {
	dash, triggered := b.dash.Trigger(in.DashHeld, in.dashButton(), b.isOnGround, b.cfg.Dash)
	b.dash = dash
	if !triggered {
		b.movement = gamemath.Clamp(in.MovementAxis, -1, 1)
		if dir := gamemath.Sign(b.movement); dir != 0 {
			b.facing = dir
		}
	}
	b.jump.IsJumping = in.JumpHeld
	b.dash = b.dash.Release(in.DashHeld)
}

func (b *Body) applyPhysics(dt float64) {
	p := b.cfg.Player

	if b.dash.Active() {
		b.dash = b.dash.Advance(dt, b.cfg.Dash)
		if b.dash.Active() {
			b.velocity.X = b.cfg.Dash.Velocity * b.facing
		}
		b.jump, _, _ = b.jump.Step(NewJumpInput(b.cfg.Jump, b.isOnGround, true), dt)
	} else {
		b.velocity.X += b.movement * p.MoveAcceleration * dt
		b.velocity.Y = gamemath.ClampSpeed(b.velocity.Y+p.GravityAcceleration*dt, p.MaxFallSpeed)

		jump, vy, ascending := b.jump.Step(NewJumpInput(b.cfg.Jump, b.isOnGround, false), dt)
		b.jump = jump
		if ascending {
			b.velocity.Y = vy
		}

		if b.isOnGround {
			b.velocity.X *= p.GroundDragFactor
		} else {
			b.velocity.X *= p.AirDragFactor
		}
		b.velocity.X = gamemath.ClampSpeed(b.velocity.X, p.MaxMoveSpeed)
	}

	b.position.X += b.velocity.X * dt
	if !b.dash.Active() {
		b.position.Y += b.velocity.Y * dt
	}
	b.position = gamemath.Vec{
		X: gamemath.RoundPixel(b.position.X),
		Y: gamemath.RoundPixel(b.position.Y),
	}
}

func (b *Body) snapshot() Snapshot {
	return Snapshot{
		Alive:        b.isAlive,
		ReachedExit:  b.reachedExit,
		Grounded:     b.isOnGround,
		VelocityX:    b.velocity.X,
		RunThreshold: b.cfg.Player.RunSpeedThreshold,
	}
}

// BoundingRectangle returns the hitbox in world space.
func (b *Body) BoundingRectangle() gamemath.Rect {
	left := int(gamemath.RoundPixel(b.position.X-b.origin.X)) + b.localBounds.X
	top := int(gamemath.RoundPixel(b.position.Y-b.origin.Y)) + b.localBounds.Y
	return gamemath.Rect{X: left, Y: top, Width: b.localBounds.Width, Height: b.localBounds.Height}
}

func (b *Body) Position() gamemath.Vec         { return b.position }
func (b *Body) Velocity() gamemath.Vec         { return b.velocity }
func (b *Body) IsOnGround() bool               { return b.isOnGround }
func (b *Body) IsAlive() bool                  { return b.isAlive }
func (b *Body) ReachedExit() bool              { return b.reachedExit }
func (b *Body) Facing() float64                { return b.facing }
func (b *Body) Jump() JumpState                { return b.jump }
func (b *Body) Dash() DashState                { return b.dash }
func (b *Body) PreviousBottom() float64        { return b.previousBottom }
func (b *Body) LastCollision() CollisionResult { return b.lastCollision }
func (b *Body) Animation() Animation           { return b.animation }
func (b *Body) Config() cfg.PhysicsConfig      { return b.cfg }

// DashVisual reports whether a renderer should show the dash effect.
func (b *Body) DashVisual() bool { return b.dash.Active() }
