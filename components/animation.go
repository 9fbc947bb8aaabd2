package components

import (
	"github.com/automoto/alchellmy/player"
	"github.com/yohamta/donburi"
)

// AnimationData tracks playback of the clip the body selected. Frame and
// Elapsed restart whenever the clip changes.
type AnimationData struct {
	Clip    player.Animation
	Frame   int
	Elapsed float64
	// Finished is set once a non-looping clip reaches its last frame.
	Finished bool
}

// SetAnimation switches to clip, restarting playback if it differs.
func (a *AnimationData) SetAnimation(clip player.Animation) {
	if a.Clip == clip {
		return
	}
	a.Clip = clip
	a.Frame = 0
	a.Elapsed = 0
	a.Finished = false
}

var Animation = donburi.NewComponentType[AnimationData]()
