package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the enemy tuning tier for a session.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyConfig holds the enemy tuning for one tier
type DifficultyConfig struct {
	EnemySpeed    float64 // pixels per tick, at least 1
	EnemyHealth   int
	SpawnInterval int // ticks between enemy spawns
}

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "EASY",
	DifficultyMedium: "MEDIUM",
	DifficultyHard:   "HARD",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty accepts the names used in saved scores, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("unknown difficulty %q", s)
}

// Mode selects where finished sessions are recorded.
type Mode int

const (
	ModeOffline Mode = iota
	ModeOnline
)

func (m Mode) String() string {
	if m == ModeOnline {
		return "ONLINE"
	}
	return "OFFLINE"
}

// ParseMode accepts "offline" or "online", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "OFFLINE":
		return ModeOffline, nil
	case "ONLINE":
		return ModeOnline, nil
	}
	return ModeOffline, fmt.Errorf("unknown mode %q", s)
}
