package player

import (
	"math"
	"testing"

	cfg "github.com/automoto/alchellmy/config"
	"github.com/automoto/alchellmy/shared/gamemath"
)

func TestNewBodyHitbox(t *testing.T) {
	grid := newGrid(t, "000", "000", "111")
	b := newBody(grid, 96, 128)

	want := gamemath.Rect{X: 83, Y: 77, Width: 25, Height: 51}
	if got := b.BoundingRectangle(); got != want {
		t.Fatalf("BoundingRectangle() = %v, want %v", got, want)
	}
	if b.PreviousBottom() != 128 {
		t.Fatalf("PreviousBottom() = %v, want 128", b.PreviousBottom())
	}
	if !b.IsOnGround() || !b.IsAlive() || b.Facing() != cfg.DirectionRight {
		t.Fatalf("fresh body: ground=%v alive=%v facing=%v", b.IsOnGround(), b.IsAlive(), b.Facing())
	}
	if b.Dash() != NewDashState(cfg.DefaultPhysics().Dash) {
		t.Fatalf("fresh dash = %+v", b.Dash())
	}
}

func TestRestingOnFloor(t *testing.T) {
	grid := newGrid(t, "000", "000", "111")
	b := newBody(grid, 96, 128)

	for tick := 0; tick < 10; tick++ {
		b.Update(dt, Intent{})
		if !b.IsOnGround() {
			t.Fatalf("tick %d: not on ground", tick)
		}
		if b.Velocity().Y != 0 {
			t.Fatalf("tick %d: velocity.y = %v, want 0", tick, b.Velocity().Y)
		}
		if b.Position() != (gamemath.Vec{X: 96, Y: 128}) {
			t.Fatalf("tick %d: position drifted to %v", tick, b.Position())
		}
		if b.Animation() != AnimationIdle {
			t.Fatalf("tick %d: animation = %v", tick, b.Animation())
		}
	}
}

func TestLandsOnPlatformFromAbove(t *testing.T) {
	grid := newGrid(t,
		"0000",
		"0000",
		"0200",
		"1111",
	)
	b := newBody(grid, 96, 100)

	for tick := 0; tick < 120; tick++ {
		before := b.BoundingRectangle().Bottom()
		b.Update(dt, Intent{})
		if !b.IsOnGround() {
			if b.BoundingRectangle().Bottom() > 128 {
				t.Fatalf("tick %d: fell into the platform, bottom %d", tick, b.BoundingRectangle().Bottom())
			}
			continue
		}
		if tick == 0 {
			// The body spawns airborne; the first tick must not count as landing.
			t.Fatalf("grounded on the first tick with bottom %d", before)
		}
		if b.BoundingRectangle().Bottom() != 128 {
			t.Fatalf("landed with bottom %d, want 128", b.BoundingRectangle().Bottom())
		}
		if b.Velocity().Y != 0 {
			t.Fatalf("landed with velocity.y %v", b.Velocity().Y)
		}
		if !b.LastCollision().HitVertical {
			t.Fatalf("landing did not resolve vertically")
		}
		return
	}
	t.Fatalf("never landed, position %v", b.Position())
}

func TestJumpsUpThroughPlatform(t *testing.T) {
	grid := newGrid(t,
		"0000",
		"0000",
		"0000",
		"0000",
		"0200",
		"1111",
	)
	const platformTop = 256
	b := newBody(grid, 96, 320)

	passed := false
	tick := 0
	for ; tick < 120; tick++ {
		b.Update(dt, Intent{JumpHeld: true})
		if b.Velocity().Y >= 0 {
			break
		}
		if b.IsOnGround() {
			t.Fatalf("tick %d: grounded while rising through the platform", tick)
		}
		if b.LastCollision().HitVertical {
			t.Fatalf("tick %d: platform blocked an upward pass", tick)
		}
		if b.BoundingRectangle().Bottom() < platformTop {
			passed = true
		}
	}
	if !passed {
		t.Fatalf("jump never cleared the platform, bottom %d", b.BoundingRectangle().Bottom())
	}

	for ; tick < 400; tick++ {
		b.Update(dt, Intent{})
		if b.IsOnGround() {
			if got := b.BoundingRectangle().Bottom(); got != platformTop {
				t.Fatalf("landed with bottom %d, want %d", got, platformTop)
			}
			return
		}
	}
	t.Fatalf("never landed back on the platform")
}

func TestHeldJumpAscentThenGravity(t *testing.T) {
	grid := newGrid(t,
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"00000",
		"11111",
	)
	b := newBody(grid, 96, 448)
	p := cfg.DefaultPhysics().Player

	prev := math.Inf(1)
	ascended := 0
	tick := 0
	for ; tick < 100; tick++ {
		b.Update(dt, Intent{JumpHeld: true})
		if !b.Jump().Ascending() {
			break
		}
		ascended++
		vy := b.Velocity().Y
		if vy >= 0 || math.Abs(vy) >= prev {
			t.Fatalf("tick %d: velocity.y %v does not continue the decelerating ascent from %v", tick, vy, -prev)
		}
		prev = math.Abs(vy)
	}
	if ascended < 30 {
		t.Fatalf("ascent lasted %d ticks", ascended)
	}

	vy := b.Velocity().Y
	for i := 0; i < 10; i++ {
		b.Update(dt, Intent{JumpHeld: true})
		want := gamemath.ClampSpeed(vy+p.GravityAcceleration*dt, p.MaxFallSpeed)
		if math.Abs(b.Velocity().Y-want) > 1e-9 {
			t.Fatalf("after apex tick %d: velocity.y = %v, want gravity-only %v", i, b.Velocity().Y, want)
		}
		if b.Jump().JumpTime != 0 {
			t.Fatalf("after apex tick %d: jump restarted in midair", i)
		}
		vy = b.Velocity().Y
	}
}

func TestCeilingCancelsJump(t *testing.T) {
	grid := newGrid(t,
		"111",
		"000",
		"111",
	)
	b := newBody(grid, 96, 128)

	for tick := 0; tick < 30; tick++ {
		b.Update(dt, Intent{JumpHeld: true})
		if top := b.BoundingRectangle().Top(); top < 64 {
			t.Fatalf("tick %d: head inside the ceiling at %d", tick, top)
		}
		if b.Jump().Ascending() {
			continue
		}
		if !b.LastCollision().HitVertical || b.BoundingRectangle().Top() != 64 {
			t.Fatalf("tick %d: ascent ended away from the ceiling, hitbox %v", tick, b.BoundingRectangle())
		}
		if b.Jump().IsJumping {
			t.Fatalf("jump survived the ceiling: %+v", b.Jump())
		}
		if b.Velocity().Y != 0 {
			t.Fatalf("velocity.y = %v after the ceiling", b.Velocity().Y)
		}
		return
	}
	t.Fatalf("never hit the ceiling")
}

func TestGroundDashCancelledByWall(t *testing.T) {
	grid := newGrid(t,
		"00000",
		"00010",
		"11111",
	)
	c := cfg.DefaultPhysics()
	b := newBody(grid, 150, 128)

	b.Update(dt, Intent{DashHeld: true, DashButton: ButtonKeyboard})
	if b.Dash().Phase != GroundDashing {
		t.Fatalf("phase after trigger = %v, want ground dashing", b.Dash().Phase)
	}
	if b.Velocity().X != c.Dash.Velocity {
		t.Fatalf("dash velocity = %v, want %v", b.Velocity().X, c.Dash.Velocity)
	}

	elapsed := dt
	for b.Dash().Active() {
		b.Update(dt, Intent{DashHeld: true})
		elapsed += dt
		if elapsed >= c.Dash.Duration {
			t.Fatalf("dash ran its full duration without meeting the wall")
		}
	}
	if !b.LastCollision().HitHorizontal {
		t.Fatalf("dash ended without a horizontal hit")
	}
	if b.Dash().Phase != NotDashing || b.Dash().Time != 0 {
		t.Fatalf("dash after wall = %+v", b.Dash())
	}
	if got := b.BoundingRectangle().Right(); got != 192 {
		t.Fatalf("hitbox right = %d, want flush with the wall at 192", got)
	}
}

func TestDashCooldownBlocksRetrigger(t *testing.T) {
	grid := newGrid(t,
		"00000000000000",
		"00000000000000",
		"11111111111111",
	)
	c := cfg.DefaultPhysics().Dash
	b := newBody(grid, 96, 128)

	b.Update(dt, Intent{DashHeld: true})
	for i := 0; b.Dash().Active(); i++ {
		if i > 30 {
			t.Fatalf("dash never ended")
		}
		b.Update(dt, Intent{DashHeld: true})
	}

	// Holding through the end of the dash keeps the latch.
	b.Update(dt, Intent{DashHeld: true})
	if b.Dash().Active() {
		t.Fatalf("latched button re-triggered the dash")
	}

	b.Update(dt, Intent{})
	if b.Dash().Latched != ButtonNone {
		t.Fatalf("release did not clear the latch")
	}

	for i := 0; i < 30; i++ {
		before := b.Dash()
		b.Update(dt, Intent{DashHeld: true})
		if !b.Dash().Active() {
			continue
		}
		if before.CooldownTime < c.CooldownDuration {
			t.Fatalf("dash fired with cooldown %v < %v", before.CooldownTime, c.CooldownDuration)
		}
		if i == 0 {
			t.Fatalf("dash fired immediately after the previous one")
		}
		return
	}
	t.Fatalf("dash never became available again")
}

func TestMidairDashPreventsUntilLanding(t *testing.T) {
	grid := newGrid(t,
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"00000000",
		"11111111",
	)
	b := newBody(grid, 200, 100)

	b.Update(dt, Intent{})
	if b.IsOnGround() {
		t.Fatalf("body spawned in the air is grounded")
	}

	y := b.Position().Y
	b.Update(dt, Intent{DashHeld: true})
	if b.Dash().Phase != MidairDashing {
		t.Fatalf("phase = %v, want midair dashing", b.Dash().Phase)
	}
	for i := 0; b.Dash().Active(); i++ {
		if b.Position().Y != y {
			t.Fatalf("vertical motion during a dash: y %v -> %v", y, b.Position().Y)
		}
		if i > 30 {
			t.Fatalf("dash never ended")
		}
		b.Update(dt, Intent{DashHeld: true})
	}
	if b.Dash().Phase != PreventDash {
		t.Fatalf("phase after midair dash = %v, want prevent dash", b.Dash().Phase)
	}

	for tick := 0; tick < 300; tick++ {
		// Alternate the button so the latch is not what blocks the dash.
		b.Update(dt, Intent{DashHeld: tick%2 == 1})
		if b.Dash().Active() {
			t.Fatalf("tick %d: dashed again before landing", tick)
		}
		if !b.IsOnGround() {
			if b.Dash().Phase != PreventDash {
				t.Fatalf("tick %d: prevent dash cleared in the air (%v)", tick, b.Dash().Phase)
			}
			continue
		}
		if b.Dash().Phase != NotDashing {
			t.Fatalf("landing tick: phase = %v, want not dashing on the same tick", b.Dash().Phase)
		}
		return
	}
	t.Fatalf("never landed")
}

func TestFacingFollowsMovement(t *testing.T) {
	grid := newGrid(t, "000000", "000000", "111111")
	b := newBody(grid, 200, 128)

	b.Update(dt, Intent{MovementAxis: -1})
	if b.Facing() != cfg.DirectionLeft {
		t.Fatalf("facing = %v after moving left", b.Facing())
	}
	b.Update(dt, Intent{})
	if b.Facing() != cfg.DirectionLeft {
		t.Fatalf("facing reset to %v when the stick was released", b.Facing())
	}

	for i := 0; i < 5; i++ {
		b.Update(dt, Intent{})
	}
	b.Update(dt, Intent{DashHeld: true})
	if b.Velocity().X != -cfg.DefaultPhysics().Dash.Velocity {
		t.Fatalf("dash velocity = %v, want leftward", b.Velocity().X)
	}
}

func TestRunAnimation(t *testing.T) {
	grid := newGrid(t, "000000", "000000", "111111")
	b := newBody(grid, 96, 128)

	for i := 0; i < 5; i++ {
		b.Update(dt, Intent{MovementAxis: 1})
	}
	if b.Animation() != AnimationRun {
		t.Fatalf("animation = %v, want run", b.Animation())
	}
	if b.DashVisual() {
		t.Fatalf("dash visual set while running")
	}
}

func TestNeverEndsInsideImpassable(t *testing.T) {
	grid := newGrid(t,
		"1111111",
		"0000000",
		"0000000",
		"0000010",
		"1111111",
	)
	b := newBody(grid, 96, 256)

	for tick := 0; tick < 600; tick++ {
		in := Intent{
			MovementAxis: 1,
			JumpHeld:     tick%40 < 25,
			DashHeld:     tick%50 < 4,
		}
		if (tick/150)%2 == 1 {
			in.MovementAxis = -1
		}
		b.Update(dt, in)

		if col, row, hit := overlapsImpassable(grid, b.BoundingRectangle()); hit {
			t.Fatalf("tick %d: hitbox %v overlaps impassable tile (%d, %d)", tick, b.BoundingRectangle(), col, row)
		}
	}
}

func TestLevelEdgeIsSolid(t *testing.T) {
	grid := newGrid(t, "000", "111")
	b := newBody(grid, 96, 64)

	hit := false
	for tick := 0; tick < 60; tick++ {
		b.Update(dt, Intent{MovementAxis: -1})
		if b.BoundingRectangle().Left() < 0 {
			t.Fatalf("tick %d: walked out of the level to %v", tick, b.BoundingRectangle())
		}
		hit = hit || b.LastCollision().HitHorizontal
	}
	if !hit || b.BoundingRectangle().Left() != 0 {
		t.Fatalf("edge not hit, hitbox %v", b.BoundingRectangle())
	}
}

func TestKillFreezesBody(t *testing.T) {
	grid := newGrid(t, "000", "000", "111")
	b := newBody(grid, 96, 40)

	b.Update(dt, Intent{})
	b.Kill()
	if b.IsAlive() || b.Animation() != AnimationDie {
		t.Fatalf("after Kill: alive=%v animation=%v", b.IsAlive(), b.Animation())
	}

	pos := b.Position()
	for i := 0; i < 10; i++ {
		b.Update(dt, Intent{MovementAxis: 1, JumpHeld: true, DashHeld: true})
	}
	if b.Position() != pos || !b.Velocity().IsZero() {
		t.Fatalf("dead body moved: %v %v", b.Position(), b.Velocity())
	}
}

func TestReachExitCelebratesAndIgnoresIntent(t *testing.T) {
	grid := newGrid(t, "000", "000", "111")
	b := newBody(grid, 96, 128)

	b.ReachExit()
	for i := 0; i < 10; i++ {
		b.Update(dt, Intent{MovementAxis: 1, JumpHeld: true})
	}
	if b.Animation() != AnimationCelebrate {
		t.Fatalf("animation = %v, want celebrate", b.Animation())
	}
	if b.Position() != (gamemath.Vec{X: 96, Y: 128}) {
		t.Fatalf("body moved after reaching the exit: %v", b.Position())
	}
}

func TestResetRestoresIdle(t *testing.T) {
	grid := newGrid(t,
		"000000",
		"000000",
		"000000",
		"111111",
	)
	c := cfg.DefaultPhysics()
	b := newBody(grid, 96, 192)

	for i := 0; i < 5; i++ {
		b.Update(dt, Intent{MovementAxis: 1, JumpHeld: true})
	}
	b.Update(dt, Intent{DashHeld: true})
	b.Kill()

	spawn := gamemath.Vec{X: 160, Y: 192}
	b.Reset(spawn)

	if b.Position() != spawn {
		t.Fatalf("position = %v, want %v", b.Position(), spawn)
	}
	if !b.Velocity().IsZero() {
		t.Fatalf("velocity = %v, want zero", b.Velocity())
	}
	if !b.IsAlive() || b.ReachedExit() {
		t.Fatalf("alive=%v reachedExit=%v", b.IsAlive(), b.ReachedExit())
	}
	if b.Jump() != (JumpState{}) {
		t.Fatalf("jump = %+v, want idle", b.Jump())
	}
	if b.Dash() != NewDashState(c.Dash) {
		t.Fatalf("dash = %+v, want idle", b.Dash())
	}
	if b.PreviousBottom() != 192 {
		t.Fatalf("previous bottom = %v, want 192", b.PreviousBottom())
	}

	b.Update(dt, Intent{})
	if !b.IsOnGround() || b.Position() != spawn {
		t.Fatalf("reset body did not settle: ground=%v pos=%v", b.IsOnGround(), b.Position())
	}
}

func TestResetAfterAirborneDeath(t *testing.T) {
	grid := newGrid(t,
		"000000",
		"000000",
		"000000",
		"111111",
	)
	spawn := gamemath.Vec{X: 96, Y: 192}

	killMidJump := func(t *testing.T) *Body {
		t.Helper()
		b := newBody(grid, spawn.X, spawn.Y)
		for i := 0; i < 10; i++ {
			b.Update(dt, Intent{JumpHeld: true})
		}
		if b.IsOnGround() {
			t.Fatalf("body still grounded after 10 jump ticks")
		}
		b.Kill()
		b.Reset(spawn)
		if !b.IsOnGround() {
			t.Fatalf("reset body not grounded")
		}
		return b
	}

	t.Run("dash_starts_on_ground", func(t *testing.T) {
		b := killMidJump(t)
		b.Update(dt, Intent{DashHeld: true})
		if got := b.Dash().Phase; got != GroundDashing {
			t.Fatalf("dash phase = %v, want ground_dashing", got)
		}
	})

	t.Run("jump_launches", func(t *testing.T) {
		b := killMidJump(t)
		fresh := newBody(grid, spawn.X, spawn.Y)

		b.Update(dt, Intent{JumpHeld: true})
		fresh.Update(dt, Intent{JumpHeld: true})

		if b.Jump().JumpTime <= 0 || b.Velocity().Y >= 0 {
			t.Fatalf("jump after respawn: jumpTime=%v vy=%v", b.Jump().JumpTime, b.Velocity().Y)
		}
		if b.Velocity() != fresh.Velocity() || b.Position() != fresh.Position() {
			t.Fatalf("respawned body %v/%v differs from fresh body %v/%v",
				b.Position(), b.Velocity(), fresh.Position(), fresh.Velocity())
		}
	})
}

func TestJumpHeldThroughGroundDash(t *testing.T) {
	grid := newGrid(t, "0000000000", "0000000000", "1111111111")
	b := newBody(grid, 96, 128)

	b.Update(dt, Intent{JumpHeld: true, DashHeld: true})
	if b.Dash().Phase != GroundDashing {
		t.Fatalf("dash phase = %v, want ground_dashing", b.Dash().Phase)
	}

	// Holding jump through and after the dash never launches.
	for i := 0; i < 30; i++ {
		b.Update(dt, Intent{JumpHeld: true})
		if y := b.Position().Y; y != 128 {
			t.Fatalf("tick %d: y = %v, held jump launched after the dash", i, y)
		}
	}
	if b.Dash().Active() || !b.IsOnGround() {
		t.Fatalf("dash=%v ground=%v, want settled on the floor", b.Dash().Phase, b.IsOnGround())
	}

	b.Update(dt, Intent{})
	b.Update(dt, Intent{JumpHeld: true})
	if b.Velocity().Y >= 0 {
		t.Fatalf("re-pressed jump did not launch, vy = %v", b.Velocity().Y)
	}
}

func TestDashLatchHoldsAcrossDevices(t *testing.T) {
	grid := newGrid(t, "0000000000", "0000000000", "1111111111")
	b := newBody(grid, 96, 128)

	b.Update(dt, Intent{DashHeld: true, DashButton: ButtonKeyboard})
	if b.Dash().Phase != GroundDashing || b.Dash().Latched != ButtonKeyboard {
		t.Fatalf("dash = %+v, want ground dash latched to keyboard", b.Dash())
	}

	// Still held, now reported by the gamepad: long enough for the dash and
	// its cooldown to finish, but the latch must not let it fire again.
	for i := 0; i < 40; i++ {
		b.Update(dt, Intent{DashHeld: true, DashButton: ButtonGamepad})
	}
	if b.Dash().Phase != NotDashing || b.Dash().Latched != ButtonKeyboard {
		t.Fatalf("dash = %+v, want idle and still latched to keyboard", b.Dash())
	}

	b.Update(dt, Intent{})
	if b.Dash().Latched != ButtonNone {
		t.Fatalf("latch = %v after release", b.Dash().Latched)
	}
	b.Update(dt, Intent{DashHeld: true, DashButton: ButtonGamepad})
	if b.Dash().Phase != GroundDashing || b.Dash().Latched != ButtonGamepad {
		t.Fatalf("dash = %+v, want a new dash latched to gamepad", b.Dash())
	}
}

func TestSetConfigAppliesNextTick(t *testing.T) {
	grid := newGrid(t, "0000000000", "0000000000", "1111111111")
	b := newBody(grid, 96, 128)

	c := cfg.DefaultPhysics()
	c.Dash.Velocity = 1200
	b.SetConfig(c)

	b.Update(dt, Intent{DashHeld: true})
	if b.Velocity().X != 1200 {
		t.Fatalf("dash velocity = %v, want 1200", b.Velocity().X)
	}
}
