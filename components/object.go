package components

import (
	"github.com/automoto/alchellmy/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's presence in the trigger space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as an integer rectangle.
func (o ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: int(o.X), Y: int(o.Y), Width: int(o.W), Height: int(o.H)}
}

var Object = donburi.NewComponentType[ObjectData]()
