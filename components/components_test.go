package components

import (
	"testing"

	"github.com/automoto/lastpenguin/config"
	"github.com/stretchr/testify/assert"
)

func TestPlayerData_UseAmmo(t *testing.T) {
	p := &PlayerData{Ammo: 3}

	assert.True(t, p.UseAmmo(0))
	assert.Equal(t, 3, p.Ammo)

	assert.False(t, p.UseAmmo(4))
	assert.Equal(t, 3, p.Ammo)

	assert.False(t, p.UseAmmo(-1))
	assert.True(t, p.UseAmmo(3))
	assert.Zero(t, p.Ammo)

	p.AddAmmo(-5)
	assert.Zero(t, p.Ammo)
}

func TestPlayerData_CanActivate(t *testing.T) {
	p := &PlayerData{Ammo: 5}
	ability := config.AbilityConfig{Cost: 5, Cooldown: 10}

	assert.True(t, p.CanActivate(config.AbilityBurst, ability))

	p.Cooldowns[config.AbilityBurst] = 1
	assert.False(t, p.CanActivate(config.AbilityBurst, ability))
	assert.True(t, p.CanActivate(config.AbilityEvasion, ability))

	p.Ammo = 4
	assert.False(t, p.CanActivate(config.AbilityEvasion, ability))
}

func TestHealthData_Damage(t *testing.T) {
	h := &HealthData{Current: 150, Max: 150}

	assert.False(t, h.Damage(100))
	assert.Equal(t, 50, h.Current)
	assert.True(t, h.Damage(100))
	assert.Zero(t, h.Current)
}

func TestObstacleData_Variants(t *testing.T) {
	rock := &ObstacleData{Terrain: &Destructible{HP: 1, MaxHP: 30}}
	stone := &ObstacleData{Terrain: &Permanent{}}
	crater := &ObstacleData{Terrain: &TemporaryHazard{TicksRemaining: 1}}

	for _, o := range []*ObstacleData{rock, stone, crater} {
		o.Damage()
		o.Advance()
	}

	assert.True(t, rock.Destroyed())
	assert.False(t, rock.Expired())
	assert.False(t, stone.Destroyed())
	assert.False(t, stone.Expired())
	assert.True(t, crater.Expired())
	assert.True(t, crater.IsHazard())
	assert.False(t, rock.IsHazard())
}

func TestProjectileData_AlreadyStruck(t *testing.T) {
	p := &ProjectileData{}
	assert.False(t, p.AlreadyStruck(4))

	p.Struck = append(p.Struck, 4)
	assert.True(t, p.AlreadyStruck(4))
}
