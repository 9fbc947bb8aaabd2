package components

import "github.com/yohamta/donburi"

// LevelCompleteData records the player reaching an exit.
type LevelCompleteData struct {
	IsComplete bool
	// Time is the clock's elapsed seconds when the exit was reached.
	Time float64
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
