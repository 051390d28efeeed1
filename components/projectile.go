package components

import (
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Owner tells which side fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

type ProjectileData struct {
	Owner    Owner
	Velocity math.Vec2 // normalized direction scaled by speed
	Active   bool
	Hit      bool
	Piercing bool

	// Enemies a piercing shot has already damaged.
	Struck []donburi.Entity
}

// AlreadyStruck reports whether e was damaged by this projectile before.
func (p *ProjectileData) AlreadyStruck(e donburi.Entity) bool {
	return slices.Contains(p.Struck, e)
}

var Projectile = donburi.NewComponentType[ProjectileData]()
