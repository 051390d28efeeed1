package components

import "github.com/yohamta/donburi"

// GameOverData records the one-time game over transition.
type GameOverData struct {
	Notified bool
	AtTick   uint64
}

// GameOver is the component type for the game over latch
var GameOver = donburi.NewComponentType[GameOverData]()
