package components

import "github.com/yohamta/donburi"

// Terrain is the variant carried by every obstacle. Exactly one of
// *Permanent, *Destructible or *TemporaryHazard.
type Terrain interface {
	terrain()
}

// Permanent terrain is never damaged and never expires.
type Permanent struct{}

// Destructible terrain loses one point per projectile hit.
type Destructible struct {
	HP    int
	MaxHP int
}

// TemporaryHazard is the crater an area strike leaves behind. Enemies
// cannot cross it; the player and projectiles ignore it.
type TemporaryHazard struct {
	TicksRemaining int
}

func (*Permanent) terrain()       {}
func (*Destructible) terrain()    {}
func (*TemporaryHazard) terrain() {}

type ObstacleData struct {
	Terrain Terrain
}

// IsHazard reports whether the obstacle is a temporary hazard.
func (o *ObstacleData) IsHazard() bool {
	_, ok := o.Terrain.(*TemporaryHazard)
	return ok
}

// Damage removes one point from destructible terrain. Other variants are unaffected.
func (o *ObstacleData) Damage() {
	if d, ok := o.Terrain.(*Destructible); ok && d.HP > 0 {
		d.HP--
	}
}

// Advance counts a hazard down by one tick.
func (o *ObstacleData) Advance() {
	if h, ok := o.Terrain.(*TemporaryHazard); ok && h.TicksRemaining > 0 {
		h.TicksRemaining--
	}
}

// Destroyed reports whether destructible terrain has run out of HP.
func (o *ObstacleData) Destroyed() bool {
	d, ok := o.Terrain.(*Destructible)
	return ok && d.HP <= 0
}

// Expired reports whether a hazard's duration has elapsed.
func (o *ObstacleData) Expired() bool {
	h, ok := o.Terrain.(*TemporaryHazard)
	return ok && h.TicksRemaining <= 0
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
