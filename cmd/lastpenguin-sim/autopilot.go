package main

import (
	"math"

	"github.com/automoto/lastpenguin/components"
	"github.com/automoto/lastpenguin/config"
	"github.com/automoto/lastpenguin/core"
)

// dangerRadius is how close an enemy gets before the autopilot evades.
const dangerRadius = 90

// Autopilot plays a session without a human: it backs away from the
// nearest yeti while shooting at it, and spends ammo on abilities when it
// can afford them.
type Autopilot struct {
	view     func() core.Snapshot
	tuning   config.Tuning
	limit    int
	ticks    int
	stop     func()
	striking bool
}

// NewAutopilot reads the world through view. Once limit intents have been
// produced it calls stop; a limit of zero plays until game over.
func NewAutopilot(view func() core.Snapshot, tuning config.Tuning, limit int, stop func()) *Autopilot {
	return &Autopilot{view: view, tuning: tuning, limit: limit, stop: stop}
}

func (a *Autopilot) Intent() components.InputData {
	a.ticks++
	if a.limit > 0 && a.ticks == a.limit && a.stop != nil {
		a.stop()
	}

	snap := a.view()
	var in components.InputData
	px, py := snap.Player.Bounds.Center()

	target, dist, ok := nearestEnemy(snap, px, py)
	if !ok {
		// Drift back to the middle of the arena while it is quiet.
		in.Left = px > a.tuning.Arena.Width/2+a.tuning.Player.Speed
		in.Right = px < a.tuning.Arena.Width/2-a.tuning.Player.Speed
		a.striking = false
		return in
	}

	tx, ty := target.Bounds.Center()
	in.PointerAvailable = true
	in.PointerX, in.PointerY = tx, ty
	in.Fire = snap.Player.Ammo > 0

	// Keep away horizontally; the yeti close in from below.
	if tx >= px {
		in.Left = true
	} else {
		in.Right = true
	}
	in.Up = ty > py && py > a.tuning.Player.Height

	if a.striking {
		in.PointerPressed = true
		a.striking = false
		return in
	}

	cd := snap.Player.Cooldowns
	affordable := func(id config.AbilityID) bool {
		return len(cd) > int(id) && cd[id] == 0 && snap.Player.Ammo >= a.tuning.Ability(id).Cost
	}
	switch {
	case dist < dangerRadius && !snap.Player.Evading && affordable(config.AbilityEvasion):
		in.AbilityC = true
	case len(snap.Enemies) >= 3 && affordable(config.AbilityAreaStrike):
		in.AbilityB = true
		a.striking = true
	case snap.Player.Piercing == 0 && affordable(config.AbilityBurst):
		in.AbilityA = true
	}
	return in
}

func nearestEnemy(snap core.Snapshot, px, py float64) (core.EnemyView, float64, bool) {
	best, bestDist := core.EnemyView{}, math.Inf(1)
	for _, e := range snap.Enemies {
		ex, ey := e.Bounds.Center()
		if d := math.Hypot(ex-px, ey-py); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}
