package components

import (
	"math/rand/v2"

	"github.com/automoto/lastpenguin/config"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding everything a session was started with.
type SessionData struct {
	Settings config.Settings
	Tuning   config.Tuning
	Rand     *rand.Rand
	Logger   zerolog.Logger

	Tick uint64
}

// Tier returns the difficulty row of the running session.
func (s *SessionData) Tier() config.DifficultyConfig {
	return s.Tuning.Tier(s.Settings.Difficulty)
}

var Session = donburi.NewComponentType[SessionData]()

// SpawnerData tracks the enemy spawn timer.
type SpawnerData struct {
	Timer int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
