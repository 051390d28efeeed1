package config

import "fmt"

// EventID names something that happened during a tick that the host may
// want to turn into a sound.
type EventID int

const (
	EventNone EventID = iota
	EventShotFired
	EventEnemySpawned
	EventEnemyKilled
	EventObstacleDestroyed
	EventAbilityUsed
	EventMeteorImpact
	EventAmmoScavenged
	EventGameOver
)

var eventNames = map[EventID]string{
	EventNone:              "none",
	EventShotFired:         "shot_fired",
	EventEnemySpawned:      "enemy_spawned",
	EventEnemyKilled:       "enemy_killed",
	EventObstacleDestroyed: "obstacle_destroyed",
	EventAbilityUsed:       "ability_used",
	EventMeteorImpact:      "meteor_impact",
	EventAmmoScavenged:     "ammo_scavenged",
	EventGameOver:          "game_over",
}

func (id EventID) String() string {
	if name, ok := eventNames[id]; ok {
		return name
	}
	return fmt.Sprintf("EventID(%d)", int(id))
}

// Event is a single emitted occurrence. Ability is only meaningful for
// EventAbilityUsed; X and Y carry the location when there is one.
type Event struct {
	ID      EventID
	Ability AbilityID
	X, Y    float64
}

// Tone describes a synthesized sound effect.
type Tone struct {
	Frequency float64 // Hz
	EndFreq   float64 // Hz, linear sweep target
	Duration  int     // milliseconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps events to synthesized tones
type SoundConfig struct {
	Tones             map[EventID]Tone
	AbilityTones      map[AbilityID]Tone
	VolumeMultipliers map[EventID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   0.5,
	}

	Sound = SoundConfig{
		Tones: map[EventID]Tone{
			EventShotFired:         {Frequency: 880, EndFreq: 660, Duration: 60},
			EventEnemySpawned:      {Frequency: 140, EndFreq: 180, Duration: 120},
			EventEnemyKilled:       {Frequency: 520, EndFreq: 220, Duration: 140},
			EventObstacleDestroyed: {Frequency: 200, EndFreq: 90, Duration: 180},
			EventMeteorImpact:      {Frequency: 90, EndFreq: 40, Duration: 350},
			EventAmmoScavenged:     {Frequency: 1200, EndFreq: 1400, Duration: 50},
			EventGameOver:          {Frequency: 330, EndFreq: 110, Duration: 700},
		},
		AbilityTones: map[AbilityID]Tone{
			AbilityBurst:      {Frequency: 700, EndFreq: 1400, Duration: 200},
			AbilityAreaStrike: {Frequency: 300, EndFreq: 900, Duration: 250},
			AbilityEvasion:    {Frequency: 1000, EndFreq: 500, Duration: 200},
		},
		VolumeMultipliers: map[EventID]float64{
			EventShotFired:     0.6,
			EventMeteorImpact:  1.5,
			EventAmmoScavenged: 0.5,
		},
	}
}
