package components

import (
	"github.com/automoto/lastpenguin/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's current bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the broadphase index shared by every collidable object.
var Space = donburi.NewComponentType[resolv.Space]()
