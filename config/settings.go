package config

// Settings is the snapshot a session reads its player preferences from.
type Settings struct {
	Difficulty Difficulty
	Mode       Mode
	UseMouse   bool

	// Ability key names as understood by the host (ebiten key names).
	AbilityKeys [AbilityCount]string

	MusicVolume int // 0-100
	SFXVolume   int // 0-100
}

// DefaultSettings mirrors a first launch.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:  DifficultyEasy,
		Mode:        ModeOffline,
		UseMouse:    true,
		AbilityKeys: [AbilityCount]string{"Digit1", "Digit2", "Digit3"},
		MusicVolume: 50,
		SFXVolume:   50,
	}
}
