package components

import (
	"github.com/automoto/lastpenguin/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Username string
	Facing   math.Vec2 // last nonzero movement direction
	Alive    bool

	Score  int
	Ammo   int
	Kills  int
	Misses int

	Cooldowns       [config.AbilityCount]int
	PiercingCharges int
	EvasionTicks    int
	ShotCooldown    int

	// Targeting is set while an area strike waits for a pointer press.
	Targeting bool
}

// UseAmmo spends n rounds. It does nothing and returns false when the
// player cannot afford it.
func (p *PlayerData) UseAmmo(n int) bool {
	if n < 0 || p.Ammo < n {
		return false
	}
	p.Ammo -= n
	return true
}

func (p *PlayerData) AddAmmo(n int) {
	if n > 0 {
		p.Ammo += n
	}
}

func (p *PlayerData) RegisterKill(points int) {
	p.Score += points
	p.Kills++
}

func (p *PlayerData) RegisterMiss() {
	p.Misses++
}

// Evading reports whether the untargetability buff is active.
func (p *PlayerData) Evading() bool {
	return p.EvasionTicks > 0
}

// CanActivate reports whether an ability is off cooldown and affordable.
func (p *PlayerData) CanActivate(id config.AbilityID, ability config.AbilityConfig) bool {
	return p.Cooldowns[id] == 0 && p.Ammo >= ability.Cost
}

var Player = donburi.NewComponentType[PlayerData]()
