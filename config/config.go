package config

import "image/color"

// ArenaConfig describes the playfield and the collision space that indexes it.
type ArenaConfig struct {
	Width  float64
	Height float64

	// The collision space extends below the arena so enemies walking in
	// from the bottom edge are indexed before they become visible.
	SpaceWidth  int
	SpaceHeight int
	CellSize    int

	// Projectiles are culled once fully outside the arena grown by this margin.
	CullMargin float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX float64
	StartY float64
	Width  float64
	Height float64

	Speed           float64 // pixels per tick
	ShotCooldown    int     // ticks between shots
	ProjectileSpeed float64
}

// EnemyConfig contains enemy configuration shared by every difficulty tier.
type EnemyConfig struct {
	Width  float64
	Height float64

	SpawnY          float64
	FireChance      float64 // per enemy per tick
	ProjectileSpeed float64
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Width     float64
	Height    float64
	Damage    int
	KillScore int
}

// ObstacleConfig contains terrain and hazard configuration
type ObstacleConfig struct {
	Width  float64
	Height float64

	MinCount       int
	HighHP         int
	LowHP          int
	HighHPChance   float64
	SafeZoneWidth  float64
	SafeZoneHeight float64
	PlaceAttempts  int
}

// MeteorConfig contains area strike configuration
type MeteorConfig struct {
	StartY     float64
	FallSpeed  float64 // pixels per tick
	OffsetX    float64 // sprite offset from the target x
	KillRadius float64

	HazardWidth    float64
	HazardHeight   float64
	HazardDuration int // ticks
}

// LimitsConfig caps every mutable collection. Spawns past a cap are dropped.
type LimitsConfig struct {
	MaxEnemies     int
	MaxProjectiles int
	MaxObstacles   int
	MaxMeteors     int
}

// Tuning bundles every gameplay table so a session can carry its own copy.
type Tuning struct {
	Arena        ArenaConfig
	Player       PlayerConfig
	Enemy        EnemyConfig
	Projectile   ProjectileConfig
	Obstacle     ObstacleConfig
	Meteor       MeteorConfig
	Limits       LimitsConfig
	Abilities    map[AbilityID]AbilityConfig
	Difficulties map[Difficulty]DifficultyConfig
}

// MaxX returns the largest x the player may occupy.
func (t Tuning) MaxX() float64 { return t.Arena.Width - t.Player.Width }

// MaxY returns the largest y the player may occupy.
func (t Tuning) MaxY() float64 { return t.Arena.Height - t.Player.Height }

// Tier returns the difficulty row for d, falling back to Easy.
func (t Tuning) Tier(d Difficulty) DifficultyConfig {
	if tier, ok := t.Difficulties[d]; ok {
		return tier
	}
	return t.Difficulties[DifficultyEasy]
}

// Ability returns the table entry for id.
func (t Tuning) Ability(id AbilityID) AbilityConfig {
	return t.Abilities[id]
}

// WindowConfig holds host window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// HUDConfig contains colours used by the host renderers
type HUDConfig struct {
	Background    color.RGBA
	PlayerColor   color.RGBA
	EvadingColor  color.RGBA
	EnemyColor    color.RGBA
	PlayerShot    color.RGBA
	PiercingShot  color.RGBA
	EnemyShot     color.RGBA
	RockColor     color.RGBA
	ThornColor    color.RGBA
	WallColor     color.RGBA
	HazardColor   color.RGBA
	MeteorColor   color.RGBA
	TextColor     color.RGBA
	ReticleColor  color.RGBA
	OverlayColor  color.RGBA
	GameOverDelay int // ticks before the result screen replaces the arena
}

// Global configuration instances
var Default Tuning
var Window WindowConfig
var HUD HUDConfig

// DefaultTuning returns a fresh copy of the default gameplay tables.
func DefaultTuning() Tuning {
	t := Default
	t.Abilities = make(map[AbilityID]AbilityConfig, len(Default.Abilities))
	for k, v := range Default.Abilities {
		t.Abilities[k] = v
	}
	t.Difficulties = make(map[Difficulty]DifficultyConfig, len(Default.Difficulties))
	for k, v := range Default.Difficulties {
		t.Difficulties[k] = v
	}
	return t
}

func init() {
	Default = Tuning{
		Arena: ArenaConfig{
			Width:       800,
			Height:      600,
			SpaceWidth:  800,
			SpaceHeight: 700,
			CellSize:    16,
			CullMargin:  50,
		},
		Player: PlayerConfig{
			StartX:          375,
			StartY:          200,
			Width:           50,
			Height:          50,
			Speed:           5,
			ShotCooldown:    20,
			ProjectileSpeed: 10,
		},
		Enemy: EnemyConfig{
			Width:           50,
			Height:          50,
			SpawnY:          610,
			FireChance:      0.01, // 2 in 200
			ProjectileSpeed: 6,
		},
		Projectile: ProjectileConfig{
			Width:     10,
			Height:    10,
			Damage:    100,
			KillScore: 100,
		},
		Obstacle: ObstacleConfig{
			Width:          80,
			Height:         80,
			MinCount:       5,
			HighHP:         30, // rock
			LowHP:          15, // thorn
			HighHPChance:   0.5,
			SafeZoneWidth:  300,
			SafeZoneHeight: 300,
			PlaceAttempts:  32,
		},
		Meteor: MeteorConfig{
			StartY:         -100,
			FallSpeed:      20,
			OffsetX:        40,
			KillRadius:     100,
			HazardWidth:    80,
			HazardHeight:   80,
			HazardDuration: 300,
		},
		Limits: LimitsConfig{
			MaxEnemies:     64,
			MaxProjectiles: 256,
			MaxObstacles:   32,
			MaxMeteors:     8,
		},
		Abilities: map[AbilityID]AbilityConfig{
			AbilityBurst: {
				Name:     "Burst",
				Cost:     5,
				Cooldown: 600,
				Charges:  3,
			},
			AbilityAreaStrike: {
				Name:     "Meteor",
				Cost:     10,
				Cooldown: 900,
			},
			AbilityEvasion: {
				Name:     "Evasion",
				Cost:     3,
				Cooldown: 600,
				Duration: 300,
			},
		},
		Difficulties: map[Difficulty]DifficultyConfig{
			DifficultyEasy: {
				EnemySpeed:    1,
				EnemyHealth:   100,
				SpawnInterval: 180,
			},
			DifficultyMedium: {
				EnemySpeed:    2,
				EnemyHealth:   150,
				SpawnInterval: 120,
			},
			DifficultyHard: {
				EnemySpeed:    3,
				EnemyHealth:   200,
				SpawnInterval: 90,
			},
		},
	}

	Window = WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "Last Penguin",
		TPS:    60,
	}

	HUD = HUDConfig{
		Background:    color.RGBA{R: 214, G: 232, B: 245, A: 255},
		PlayerColor:   color.RGBA{R: 30, G: 30, B: 40, A: 255},
		EvadingColor:  color.RGBA{R: 30, G: 30, B: 40, A: 110},
		EnemyColor:    color.RGBA{R: 245, G: 245, B: 250, A: 255},
		PlayerShot:    color.RGBA{R: 40, G: 120, B: 255, A: 255},
		PiercingShot:  color.RGBA{R: 255, G: 180, B: 50, A: 255},
		EnemyShot:     color.RGBA{R: 200, G: 40, B: 40, A: 255},
		RockColor:     color.RGBA{R: 110, G: 120, B: 135, A: 255},
		ThornColor:    color.RGBA{R: 70, G: 140, B: 90, A: 255},
		WallColor:     color.RGBA{R: 60, G: 60, B: 70, A: 255},
		HazardColor:   color.RGBA{R: 40, G: 25, B: 20, A: 220},
		MeteorColor:   color.RGBA{R: 255, G: 110, B: 30, A: 255},
		TextColor:     color.RGBA{R: 20, G: 20, B: 30, A: 255},
		ReticleColor:  color.RGBA{R: 255, G: 0, B: 0, A: 200},
		OverlayColor:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
		GameOverDelay: 120,
	}
}
