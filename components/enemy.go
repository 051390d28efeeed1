package components

import (
	"github.com/yohamta/donburi"
)

// Facing is the sprite row an enemy should be drawn with.
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingRight
	FacingUp
)

type EnemyData struct {
	Speed  float64
	Alive  bool
	Facing Facing

	// Last point the planner steered toward.
	TargetX float64
	TargetY float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
