package player

import "math"

// Animation is the discrete clip a renderer should play for the body.
type Animation int

const (
	AnimationIdle Animation = iota
	AnimationRun
	AnimationJump
	AnimationCelebrate
	AnimationDie
)

func (a Animation) String() string {
	switch a {
	case AnimationIdle:
		return "idle"
	case AnimationRun:
		return "run"
	case AnimationJump:
		return "jump"
	case AnimationCelebrate:
		return "celebrate"
	case AnimationDie:
		return "die"
	}
	return "unknown"
}

// Snapshot is the slice of body state the animation depends on.
type Snapshot struct {
	Alive       bool
	ReachedExit bool
	Grounded    bool
	VelocityX   float64
	// RunThreshold is the speed a grounded body must exceed to run.
	RunThreshold float64
}

// SelectAnimation maps physics state to a clip.
func SelectAnimation(s Snapshot) Animation {
	switch {
	case !s.Alive:
		return AnimationDie
	case s.ReachedExit:
		return AnimationCelebrate
	case s.Grounded:
		if math.Abs(s.VelocityX)-s.RunThreshold > 0 {
			return AnimationRun
		}
		return AnimationIdle
	}
	return AnimationJump
}
