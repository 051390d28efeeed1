package config

// AbilityID identifies one of the three player abilities.
type AbilityID int

const (
	AbilityBurst      AbilityID = iota // piercing shots
	AbilityAreaStrike                  // meteor
	AbilityEvasion
	AbilityCount
)

// AbilityConfig holds cost and timing for a single ability
type AbilityConfig struct {
	Name     string
	Cost     int // ammunition
	Cooldown int // ticks
	Charges  int // piercing shots granted
	Duration int // buff ticks
}
