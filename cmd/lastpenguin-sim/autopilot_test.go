package main

import (
	"context"
	"testing"

	"github.com/automoto/lastpenguin/config"
	"github.com/automoto/lastpenguin/core"
	"github.com/automoto/lastpenguin/gamemath"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y float64) gamemath.Rect { return gamemath.Rect{X: x, Y: y, W: 50, H: 50} }

func fixed(s core.Snapshot) func() core.Snapshot {
	return func() core.Snapshot { return s }
}

func TestAutopilot_ReturnsToMiddleWhenQuiet(t *testing.T) {
	snap := core.Snapshot{Player: core.PlayerView{Bounds: box(100, 200), Cooldowns: make([]int, 3)}}
	a := NewAutopilot(fixed(snap), config.DefaultTuning(), 0, nil)

	in := a.Intent()
	assert.True(t, in.Right)
	assert.False(t, in.Left)
	assert.False(t, in.Fire)
}

func TestAutopilot_ShootsAtNearestEnemy(t *testing.T) {
	snap := core.Snapshot{
		Player: core.PlayerView{Bounds: box(375, 200), Ammo: 1, Cooldowns: make([]int, 3)},
		Enemies: []core.EnemyView{
			{Bounds: box(700, 550)},
			{Bounds: box(420, 400)},
		},
	}
	a := NewAutopilot(fixed(snap), config.DefaultTuning(), 0, nil)

	in := a.Intent()
	assert.True(t, in.Fire)
	assert.True(t, in.PointerAvailable)
	assert.Equal(t, 445.0, in.PointerX)
	assert.Equal(t, 425.0, in.PointerY)
	assert.True(t, in.Left, "backs away from the enemy on its right")
}

func TestAutopilot_StrikesClusterOnNextTick(t *testing.T) {
	snap := core.Snapshot{
		Player: core.PlayerView{Bounds: box(375, 200), Ammo: 20, Piercing: 1, Cooldowns: make([]int, 3)},
		Enemies: []core.EnemyView{
			{Bounds: box(400, 500)},
			{Bounds: box(450, 500)},
			{Bounds: box(500, 500)},
		},
	}
	a := NewAutopilot(fixed(snap), config.DefaultTuning(), 0, nil)

	first := a.Intent()
	assert.True(t, first.AbilityB)
	assert.False(t, first.PointerPressed)

	second := a.Intent()
	assert.False(t, second.AbilityB)
	assert.True(t, second.PointerPressed)
}

func TestAutopilot_StopsAtLimit(t *testing.T) {
	stopped := 0
	snap := core.Snapshot{Player: core.PlayerView{Bounds: box(375, 200), Cooldowns: make([]int, 3)}}
	a := NewAutopilot(fixed(snap), config.DefaultTuning(), 3, func() { stopped++ })

	for i := 0; i < 5; i++ {
		a.Intent()
	}
	assert.Equal(t, 1, stopped)
}

func TestRunner_PlaysUntilLimit(t *testing.T) {
	settings := config.DefaultSettings()
	r := runner{
		settings: settings,
		username: "bot",
		seed:     42,
		ticks:    120,
		logger:   zerolog.Nop(),
	}

	res, err := r.play(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "bot", res.Username)
	assert.GreaterOrEqual(t, res.Ammo, 0)
	assert.Equal(t, settings.Difficulty, res.Difficulty)

}
