package core

import (
	"github.com/automoto/lastpenguin/components"
	"github.com/automoto/lastpenguin/gamemath"
	"github.com/automoto/lastpenguin/systems"
	"github.com/automoto/lastpenguin/tags"
	"github.com/yohamta/donburi"
)

// TerrainKind tells a renderer how to draw an obstacle.
type TerrainKind int

const (
	TerrainPermanent TerrainKind = iota
	TerrainDestructible
	TerrainHazard
)

type PlayerView struct {
	Bounds    gamemath.Rect
	Username  string
	Alive     bool
	Evading   bool
	Score     int
	Ammo      int
	Kills     int
	Misses    int
	Piercing  int
	Cooldowns []int
}

type EnemyView struct {
	Bounds gamemath.Rect
	Facing components.Facing
	Health int
}

type ProjectileView struct {
	Bounds   gamemath.Rect
	Owner    components.Owner
	Piercing bool
}

type ObstacleView struct {
	Bounds gamemath.Rect
	Kind   TerrainKind
	HP     int
	MaxHP  int
	Ticks  int
}

type MeteorView struct {
	X, Y             float64
	TargetX, TargetY float64
}

// Snapshot is a copy of everything a renderer or test needs to see. It
// shares no memory with the world.
type Snapshot struct {
	Tick      uint64
	Paused    bool
	GameOver  bool
	Targeting bool
	// EndedAt is the tick the game over was reported on, 0 before that.
	EndedAt uint64

	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Obstacles   []ObstacleView
	Meteors     []MeteorView
}

// Snapshot copies the current world state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:      systems.Session(w).Tick,
		Paused:    s.Paused(),
		GameOver:  s.GameOver(),
		Targeting: s.Targeting(),
	}
	if latch := components.GameOver.Get(components.GameOver.MustFirst(w)); latch.Notified {
		snap.EndedAt = latch.AtTick
	}

	if e, ok := systems.PlayerEntry(w); ok {
		p := components.Player.Get(e)
		snap.Player = PlayerView{
			Bounds:    components.Object.Get(e).Rect(),
			Username:  p.Username,
			Alive:     p.Alive,
			Evading:   p.Evading(),
			Score:     p.Score,
			Ammo:      p.Ammo,
			Kills:     p.Kills,
			Misses:    p.Misses,
			Piercing:  p.PiercingCharges,
			Cooldowns: append([]int(nil), p.Cooldowns[:]...),
		}
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		snap.Enemies = append(snap.Enemies, EnemyView{
			Bounds: components.Object.Get(e).Rect(),
			Facing: components.Enemy.Get(e).Facing,
			Health: components.Health.Get(e).Current,
		})
	})

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Bounds:   components.Object.Get(e).Rect(),
			Owner:    p.Owner,
			Piercing: p.Piercing,
		})
	})

	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		view := ObstacleView{Bounds: components.Object.Get(e).Rect()}
		switch t := components.Obstacle.Get(e).Terrain.(type) {
		case *components.Permanent:
			view.Kind = TerrainPermanent
		case *components.Destructible:
			view.Kind = TerrainDestructible
			view.HP, view.MaxHP = t.HP, t.MaxHP
		case *components.TemporaryHazard:
			view.Kind = TerrainHazard
			view.Ticks = t.TicksRemaining
		}
		snap.Obstacles = append(snap.Obstacles, view)
	})

	tags.Meteor.Each(w, func(e *donburi.Entry) {
		m := components.Meteor.Get(e)
		snap.Meteors = append(snap.Meteors, MeteorView{X: m.X, Y: m.Y, TargetX: m.TargetX, TargetY: m.TargetY})
	})

	return snap
}
