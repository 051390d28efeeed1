package core

import (
	"time"

	"github.com/automoto/lastpenguin/archetypes"
	"github.com/automoto/lastpenguin/components"
	"github.com/automoto/lastpenguin/config"
	"github.com/automoto/lastpenguin/systems"
	"github.com/automoto/lastpenguin/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TickDuration is the game time covered by one Tick.
const TickDuration = time.Second / 60

// maxCatchUp bounds how many ticks a single Advance call may run.
const maxCatchUp = 5

// Simulation owns one session's world and advances it one fixed step at a
// time. It is not safe for concurrent use.
type Simulation struct {
	world   donburi.World
	ecs     *ecs.ECS
	deps    Dependencies
	pending time.Duration
}

// New builds a session: collision space, player at the start position with
// the profile's ammo, and the initial terrain.
func New(profile Profile, deps Dependencies) *Simulation {
	deps = deps.withDefaults()
	tuning := deps.Tuning

	w := donburi.NewWorld()

	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		Settings: deps.Settings,
		Tuning:   tuning,
		Rand:     deps.Rand,
		Logger:   deps.Logger,
	})

	factory.CreateSpace(w,
		tuning.Arena.SpaceWidth,
		tuning.Arena.SpaceHeight,
		tuning.Arena.CellSize,
		tuning.Arena.CellSize,
	)
	factory.CreatePlayer(w, profile.Username, tuning.Player.StartX, tuning.Player.StartY, profile.StartingAmmo)
	systems.FillObstacles(w)

	s := &Simulation{
		world: w,
		deps:  deps,
	}

	// Phase order matters: each phase reads what the previous one wrote.
	s.ecs = ecs.NewECS(w)
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimers))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAbilities))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMeteors))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerMovement))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObstacles))
	s.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))

	deps.Logger.Info().
		Str("username", profile.Username).
		Int("ammo", profile.StartingAmmo).
		Stringer("difficulty", deps.Settings.Difficulty).
		Stringer("mode", deps.Settings.Mode).
		Msg("session started")

	return s
}

// Tick advances the world by one fixed step.
func (s *Simulation) Tick() {
	input := systems.Input(s.world)
	*input = s.deps.Input.Intent()

	if input.Pause && !s.GameOver() {
		systems.TogglePause(s.world)
	}

	if s.GameOver() {
		s.finish()
		s.flush()
		return
	}

	if systems.IsPaused(s.world) {
		return
	}

	s.ecs.Update()
	systems.Session(s.world).Tick++
	s.flush()
}

// Advance runs as many fixed ticks as elapsed covers, carrying the
// remainder to the next call. It returns the number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration) int {
	s.pending += elapsed
	n := 0
	for s.pending >= TickDuration && n < maxCatchUp {
		s.Tick()
		s.pending -= TickDuration
		n++
	}
	if n == maxCatchUp {
		s.pending = 0
	}
	return n
}

// Surrender kills the player and runs one more tick so the game over
// transition happens now.
func (s *Simulation) Surrender() {
	if e, ok := systems.PlayerEntry(s.world); ok {
		p := components.Player.Get(e)
		if p.Alive {
			p.Alive = false
			p.Targeting = false
			s.deps.Logger.Info().Msg("player surrendered")
		}
	}
	s.Tick()
}

// TogglePause flips between running and paused. It has no effect after game over.
func (s *Simulation) TogglePause() {
	if s.GameOver() {
		return
	}
	systems.TogglePause(s.world)
}

// UpdateSettings applies preferences the host may change mid-session.
// Difficulty and mode stay as the session started.
func (s *Simulation) UpdateSettings(settings config.Settings) {
	session := systems.Session(s.world)
	settings.Difficulty = session.Settings.Difficulty
	settings.Mode = session.Settings.Mode
	session.Settings = settings

	if !settings.UseMouse {
		if e, ok := systems.PlayerEntry(s.world); ok {
			components.Player.Get(e).Targeting = false
		}
	}
}

// World exposes the entity store to host renderers. Callers must not
// mutate it and must not hold entries across ticks.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Paused reports whether the session is paused.
func (s *Simulation) Paused() bool {
	return systems.IsPaused(s.world)
}

// GameOver reports whether the player is dead.
func (s *Simulation) GameOver() bool {
	return !systems.PlayerAlive(s.world)
}

// Targeting reports whether an area strike is waiting for a pointer press.
func (s *Simulation) Targeting() bool {
	e, ok := systems.PlayerEntry(s.world)
	return ok && components.Player.Get(e).Targeting
}

// finish notifies collaborators of the game over, once.
func (s *Simulation) finish() {
	latch := components.GameOver.Get(components.GameOver.MustFirst(s.world))
	if latch.Notified {
		return
	}
	latch.Notified = true

	session := systems.Session(s.world)
	latch.AtTick = session.Tick

	result := s.result()
	systems.Emit(s.world, config.Event{ID: config.EventGameOver})
	s.deps.Logger.Info().
		Str("username", result.Username).
		Int("score", result.Score).
		Int("kills", result.Kills).
		Int("misses", result.Misses).
		Int("ammo", result.Ammo).
		Uint64("tick", session.Tick).
		Msg("game over")
	s.deps.Results.Record(result)
}

func (s *Simulation) result() Result {
	session := systems.Session(s.world)
	r := Result{
		Difficulty: session.Settings.Difficulty,
		Mode:       session.Settings.Mode,
	}
	if e, ok := systems.PlayerEntry(s.world); ok {
		p := components.Player.Get(e)
		r.Username = p.Username
		r.Score = p.Score
		r.Kills = p.Kills
		r.Misses = p.Misses
		r.Ammo = p.Ammo
	}
	return r
}

func (s *Simulation) flush() {
	for _, ev := range systems.DrainEvents(s.world) {
		s.deps.Events.Emit(ev)
	}
}
