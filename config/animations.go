package config

// AnimationDef describes how one clip plays back. Frames advance every
// FrameTime seconds; a clip that does not loop holds its last frame.
type AnimationDef struct {
	Frames    int
	FrameTime float64
	Looping   bool
}

// CharacterAnimations maps a character key (e.g., "player") to its clips,
// keyed by clip name.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		"idle":      {Frames: 1, FrameTime: 0.1, Looping: true},
		"run":       {Frames: 10, FrameTime: 0.1, Looping: true},
		"jump":      {Frames: 11, FrameTime: 0.1, Looping: false},
		"celebrate": {Frames: 11, FrameTime: 0.1, Looping: false},
		"die":       {Frames: 12, FrameTime: 0.1, Looping: false},
	},
}

// PlayerAnimation returns the player clip called name. Unknown clips play as a
// single held frame.
func PlayerAnimation(name string) AnimationDef {
	if def, ok := CharacterAnimations["player"][name]; ok {
		return def
	}
	return AnimationDef{Frames: 1, FrameTime: 0.1}
}
