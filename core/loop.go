package core

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// GameLoop drives a Simulation from a ticker until the context ends, Stop
// is called, or the session is over. A tick rate of zero runs unthrottled.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(sim *Simulation, tickRate int, logger zerolog.Logger) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the loop ends and returns the number of ticks run.
// It returns ctx.Err() if the context ended first.
func (g *GameLoop) Run(ctx context.Context) (int, error) {
	g.logger.Info().Int("tps", g.tickRate).Msg("game loop started")

	var tickC <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
	}

	ticks := 0
	for {
		if g.tickRate > 0 {
			select {
			case <-ctx.Done():
				g.logger.Info().Int("ticks", ticks).Msg("game loop cancelled")
				return ticks, ctx.Err()
			case <-g.stopChan:
				g.logger.Info().Int("ticks", ticks).Msg("game loop stopped")
				return ticks, nil
			case <-tickC:
			}
		} else {
			select {
			case <-ctx.Done():
				return ticks, ctx.Err()
			case <-g.stopChan:
				return ticks, nil
			default:
			}
		}

		g.sim.Tick()
		ticks++

		if g.sim.GameOver() {
			// One more tick delivers the game over notification.
			g.sim.Tick()
			g.logger.Info().Int("ticks", ticks).Msg("game loop finished")
			return ticks, nil
		}
	}
}

// Stop ends the loop. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
