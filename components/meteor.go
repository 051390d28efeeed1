package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type MeteorData struct {
	TargetX float64
	TargetY float64
	X       float64
	Y       float64
	Landed  bool

	// Fall drives Y from the start height to TargetY, one unit per tick.
	Fall *gween.Tween
}

var Meteor = donburi.NewComponentType[MeteorData]()
