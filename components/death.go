package components

import "github.com/yohamta/donburi"

// DeathData marks a player that has died. Timer counts down in seconds; when
// it reaches 0 the player respawns.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
