package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	DeadZone = donburi.NewTag().SetName("DeadZone")
	Exit     = donburi.NewTag().SetName("Exit")
)

// Resolv tags for trigger objects
const (
	ResolvPlayer   = "Player"
	ResolvDeadZone = "deadzone"
	ResolvExit     = "exit"
)
