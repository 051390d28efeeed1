// Command lastpenguin-sim plays sessions headlessly with an autopilot and
// records the results like the game does.
package main

import (
	"context"
	"errors"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/lastpenguin/config"
	"github.com/automoto/lastpenguin/core"
	"github.com/automoto/lastpenguin/logging"
	"github.com/automoto/lastpenguin/scores"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory containing "+config.ConfigName)
	difficulty := flag.String("difficulty", "", "EASY, MEDIUM or HARD (default from config)")
	username := flag.String("username", "", "player name (default from config)")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one")
	ticks := flag.Int("ticks", 60*60*5, "give up after this many ticks, 0 plays until game over")
	tickRate := flag.Int("tickrate", 0, "ticks per second, 0 runs as fast as possible")
	sessions := flag.Int("sessions", 1, "number of sessions to play")
	noDB := flag.Bool("nodb", false, "do not record results")
	flag.Parse()

	logger := logging.New("info", os.Stderr)
	if err := config.Load(*configDir); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}
	logger = logging.New(config.App.LogLevel, os.Stderr)

	settings := config.App.Settings()
	settings.UseMouse = true
	if *difficulty != "" {
		d, err := config.ParseDifficulty(*difficulty)
		if err != nil {
			logger.Fatal().Err(err).Msg("Bad difficulty")
		}
		settings.Difficulty = d
	}
	name := config.App.Username
	if *username != "" {
		name = *username
	}
	if *seed == 0 {
		*seed = config.App.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *scores.Store
	var recorder *scores.Recorder
	if !*noDB {
		openCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		s, err := scores.Open(openCtx, config.App.DB, settings.Mode, logger)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("Scores will not be recorded")
		} else {
			store = s
			recorder = scores.NewRecorder(store, *sessions, logger)
			defer func() {
				recorder.Close()
				_ = store.Close()
			}()
		}
	}

	r := runner{
		settings: settings,
		username: name,
		seed:     *seed,
		ticks:    *ticks,
		tickRate: *tickRate,
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
	for i := 0; i < *sessions; i++ {
		res, err := r.play(ctx, i)
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("Interrupted")
			return
		}
		logger.Info().
			Int("session", i+1).
			Int("score", res.Score).
			Int("kills", res.Kills).
			Int("missed", res.Misses).
			Int("ammo", res.Ammo).
			Msg("Session result")
	}
}

type runner struct {
	settings config.Settings
	username string
	seed     uint64
	ticks    int
	tickRate int
	store    *scores.Store
	recorder *scores.Recorder
	logger   zerolog.Logger
}

func (r runner) startingAmmo(ctx context.Context) int {
	if r.store == nil {
		return 0
	}
	data, err := r.store.InitialPlayerData(ctx, r.username, r.settings.Difficulty)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Could not load player data")
		return 0
	}
	return data.Ammo
}

// play runs one session to completion and returns its result.
func (r runner) play(ctx context.Context, index int) (core.Result, error) {
	var rng *rand.Rand
	if r.seed != 0 {
		rng = rand.New(rand.NewPCG(r.seed, uint64(index)))
	}

	var result core.Result
	tuning := config.DefaultTuning()

	var sim *core.Simulation
	var loop *core.GameLoop
	pilot := NewAutopilot(func() core.Snapshot { return sim.Snapshot() }, tuning, r.ticks, func() { loop.Stop() })

	sim = core.New(core.Profile{Username: r.username, StartingAmmo: r.startingAmmo(ctx)}, core.Dependencies{
		Settings: r.settings,
		Tuning:   tuning,
		Input:    pilot,
		Results: core.ResultFunc(func(res core.Result) {
			result = res
			if r.recorder != nil {
				r.recorder.Record(res)
			}
		}),
		Rand:   rng,
		Logger: r.logger,
	})
	loop = core.NewGameLoop(sim, r.tickRate, r.logger)

	_, err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if !sim.GameOver() {
		sim.Surrender()
	}
	return result, nil
}
