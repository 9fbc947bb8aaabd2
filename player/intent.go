package player

// Button identifies the physical control that produced a dash press. The dash
// latch remembers it so that holding the button does not re-trigger.
type Button int

const (
	// ButtonNone is the empty latch.
	ButtonNone Button = iota
	// ButtonDash is used when the sampler cannot tell which device fired.
	ButtonDash
	ButtonKeyboard
	ButtonGamepad
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonDash:
		return "dash"
	case ButtonKeyboard:
		return "keyboard"
	case ButtonGamepad:
		return "gamepad"
	}
	return "unknown"
}

// Intent is everything the body reads from the player in one tick. It is
// sampled once per frame by whoever owns the input devices.
type Intent struct {
	// MovementAxis is in [-1, 1] with the deadzone already applied.
	MovementAxis float64
	JumpHeld     bool
	DashHeld     bool
	// DashButton is the control behind DashHeld.
	DashButton Button
}

func (i Intent) dashButton() Button {
	if i.DashButton == ButtonNone {
		return ButtonDash
	}
	return i.DashButton
}
