package core

import (
	"math/rand/v2"

	"github.com/automoto/lastpenguin/components"
	"github.com/automoto/lastpenguin/config"
	"github.com/rs/zerolog"
)

// InputSource supplies the intent snapshot read at the start of each tick.
type InputSource interface {
	Intent() components.InputData
}

// EventSink receives the events raised by a tick, in order, after it completes.
type EventSink interface {
	Emit(ev config.Event)
}

// ResultSink is told the outcome of a session exactly once, on game over.
// It is called on the tick path and must hand slow work off.
type ResultSink interface {
	Record(r Result)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() components.InputData

func (f InputFunc) Intent() components.InputData { return f() }

// EventFunc adapts a function to EventSink.
type EventFunc func(ev config.Event)

func (f EventFunc) Emit(ev config.Event) { f(ev) }

// ResultFunc adapts a function to ResultSink.
type ResultFunc func(r Result)

func (f ResultFunc) Record(r Result) { f(r) }

// Result is the final tally of a session.
type Result struct {
	Username   string
	Score      int
	Kills      int
	Misses     int
	Ammo       int
	Difficulty config.Difficulty
	Mode       config.Mode
}

// Profile identifies who is playing and what they start with.
type Profile struct {
	Username     string
	StartingAmmo int
}

// Dependencies holds everything a Simulation needs from its host.
// Nil collaborators are replaced with no-ops, a nil Rand with a randomly
// seeded one, and a zero Tuning with config.DefaultTuning().
type Dependencies struct {
	Settings config.Settings
	Tuning   config.Tuning
	Input    InputSource
	Events   EventSink
	Results  ResultSink
	Rand     *rand.Rand
	Logger   zerolog.Logger
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Tuning.Abilities == nil || d.Tuning.Difficulties == nil {
		d.Tuning = config.DefaultTuning()
	}
	if d.Input == nil {
		d.Input = InputFunc(func() components.InputData { return components.InputData{} })
	}
	if d.Events == nil {
		d.Events = EventFunc(func(config.Event) {})
	}
	if d.Results == nil {
		d.Results = ResultFunc(func(Result) {})
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d
}
