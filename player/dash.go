package player

import (
	cfg "github.com/automoto/alchellmy/config"
)

// DashPhase is the state of the dash machine.
type DashPhase int

const (
	NotDashing DashPhase = iota
	GroundDashing
	MidairDashing
	// PreventDash follows a midair dash and holds until the body lands.
	PreventDash
)

func (p DashPhase) String() string {
	switch p {
	case NotDashing:
		return "not_dashing"
	case GroundDashing:
		return "ground_dashing"
	case MidairDashing:
		return "midair_dashing"
	case PreventDash:
		return "prevent_dash"
	}
	return "unknown"
}

// DashState is the dash machine. Every method is a pure transition returning
// the next state.
type DashState struct {
	Phase        DashPhase
	Time         float64
	CooldownTime float64
	// Latched is the control that fired the current dash and blocks
	// re-triggering while non-empty. Release only looks at whether any dash
	// control is held, so switching devices mid-hold keeps the latch and the
	// stored identity is for display.
	Latched Button
}

// NewDashState returns an idle machine whose cooldown is already spent, so the
// first dash is available immediately.
func NewDashState(c cfg.DashConfig) DashState {
	return DashState{Phase: NotDashing, CooldownTime: c.CooldownDuration}
}

// Active reports whether a dash burst is in progress.
func (s DashState) Active() bool {
	return s.Phase == GroundDashing || s.Phase == MidairDashing
}

// Ready reports whether Trigger would fire for a held button.
func (s DashState) Ready(c cfg.DashConfig) bool {
	return s.Phase == NotDashing &&
		s.CooldownTime >= c.CooldownDuration &&
		s.Latched == ButtonNone
}

// Trigger starts a dash when the button is held and the machine is ready. The
// triggering button stays latched until Release sees it let go.
func (s DashState) Trigger(held bool, button Button, grounded bool, c cfg.DashConfig) (DashState, bool) {
	if !held || !s.Ready(c) {
		return s, false
	}
	if grounded {
		s.Phase = GroundDashing
	} else {
		s.Phase = MidairDashing
	}
	if button == ButtonNone {
		button = ButtonDash
	}
	s.Latched = button
	return s, true
}

// Release clears the latch once no dash control is held.
func (s DashState) Release(held bool) DashState {
	if !held {
		s.Latched = ButtonNone
	}
	return s
}

// Advance accumulates dash time and ends the burst after Duration. A midair
// dash ends in PreventDash.
func (s DashState) Advance(dt float64, c cfg.DashConfig) DashState {
	if !s.Active() {
		return s
	}
	s.Time += dt
	if s.Time >= c.Duration {
		if s.Phase == MidairDashing {
			s.Phase = PreventDash
		} else {
			s.Phase = NotDashing
		}
		s.Time = 0
		s.CooldownTime = 0
	}
	return s
}

// TickCooldown advances the cooldown while not dashing.
func (s DashState) TickCooldown(dt float64, c cfg.DashConfig) DashState {
	if !s.Active() && s.CooldownTime < c.CooldownDuration {
		s.CooldownTime += dt
	}
	return s
}

// Land clears PreventDash for a living body on the ground.
func (s DashState) Land(alive, grounded bool) DashState {
	if alive && grounded && s.Phase == PreventDash {
		s.Phase = NotDashing
	}
	return s
}

// Cancel stops an active dash. The cooldown is left as is.
func (s DashState) Cancel() DashState {
	if s.Active() {
		s.Phase = NotDashing
		s.Time = 0
	}
	return s
}
