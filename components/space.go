package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv space trigger objects live in. Tiles are never
// added to it; tile collision is handled by the player package.
var Space = donburi.NewComponentType[resolv.Space]()
