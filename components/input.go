package components

import "github.com/yohamta/donburi"

// InputData is the intent snapshot the host supplies each tick. It is
// level-triggered: a held key stays true on every tick it is held.
type InputData struct {
	Up, Down, Left, Right bool

	Fire     bool
	AbilityA bool
	AbilityB bool
	AbilityC bool
	Pause    bool

	PointerAvailable bool
	PointerX         float64
	PointerY         float64
	PointerPressed   bool
}

var Input = donburi.NewComponentType[InputData]()
