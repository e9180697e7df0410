// internal/app/game.go
package app

import (
	"context"
	"io"
	"log/slog"

	"krusty/internal/assets"
	"krusty/internal/audio"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/input"
	"krusty/internal/system"
	"krusty/internal/types"
	"krusty/internal/utils"
)

// Options configure a Game. Zero values fall back to defaults: DefaultRules,
// a time based seed, no sound and a discarding logger.
type Options struct {
	Rules  *config.Rules
	Seed   int64
	Audio  audio.Service
	Logger *slog.Logger
}

// Game holds the simulation state and runs the systems in a fixed order once per tick.
type Game struct {
	ECS             *entity.ECS
	Rules           config.Rules
	Clock           *Clock
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	PlayerID        types.EntityID

	SpawnSystem       *system.SpawnSystem
	PlayerSystem      *system.PlayerSystem
	EnemyAISystem     *system.EnemyAISystem
	EnemyWeaponSystem *system.EnemyWeaponSystem
	MovementSystem    *system.MovementSystem
	CollisionSystem   *system.CollisionSystem
	ExplosionSystem   *system.ExplosionSystem
	LifecycleSystem   *system.LifecycleSystem
	HUDSystem         *system.HUDSystem

	logger *slog.Logger
	tally  tally
}

// NewGame builds the world: systems, HUD and the single player ship.
func NewGame(opts Options) *Game {
	rules := config.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sound := opts.Audio
	if sound == nil {
		sound = audio.Null{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		ECS:             ecs,
		Rules:           rules,
		Clock:           NewClock(rules.TimeStep),
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		logger:          logger,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, rules, rng, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, rules, eventDispatcher)
	g.EnemyAISystem = system.NewEnemyAISystem(ecs, rules, rng)
	g.EnemyWeaponSystem = system.NewEnemyWeaponSystem(ecs, rules, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, rules)
	g.CollisionSystem = system.NewCollisionSystem(ecs, rules, eventDispatcher, sound, logger)
	g.ExplosionSystem = system.NewExplosionSystem(ecs, rules)
	g.LifecycleSystem = system.NewLifecycleSystem(ecs, rules)
	g.HUDSystem = system.NewHUDSystem(ecs)

	eventDispatcher.Subscribe(event.SoundRequested, audio.NewSoundListener(sound, logger))
	for _, t := range []event.EventType{event.EnemySpawned, event.ProjectileFired, event.PlayerHit, event.EnemyDestroyed} {
		eventDispatcher.Subscribe(t, &g.tally)
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, t := range []event.EventType{event.EnemySpawned, event.ProjectileFired, event.PlayerHit} {
			eventDispatcher.Subscribe(t, eventLogger{logger: logger})
		}
	}

	g.createPlayerEntity()
	g.HUDSystem.Update()

	logger.Info("game created", "seed", rng.Seed(), "max_enemies", rules.MaxEnemies)
	return g
}

func (g *Game) createPlayerEntity() {
	id := g.ECS.NewEntity()
	g.ECS.Players[id] = &component.Player{}
	g.ECS.Positions[id] = &component.Position{X: 0, Y: -g.Rules.Height/2 + g.Rules.WallH}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: g.Rules.PlayerHealth}
	g.ECS.Scores[id] = &component.Score{Value: 0}
	g.ECS.Sprites[id] = &component.Sprite{Image: assets.ImagePlayer, Scale: 1}
	g.PlayerID = id
}

// Update runs one simulation tick.
func (g *Game) Update(in input.Source) {
	dt := g.Clock.Tick()

	g.SpawnSystem.Update(dt)
	g.PlayerSystem.Update(dt, in)
	g.EnemyAISystem.Update(dt)
	g.EnemyWeaponSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.CollisionSystem.Update()
	g.ExplosionSystem.Update(dt)
	g.LifecycleSystem.Update()
	g.HUDSystem.Update()

	g.ECS.FlushDespawns()
}

// Snapshot is a read-only summary of the current tick.
type Snapshot struct {
	Tick        uint64
	Elapsed     float64 // seconds of game time
	Health      int
	Score       int
	Enemies     int
	Explosions  int
	Spawned     int
	PlayerShots int
	EnemyShots  int
	Hits        int // enemy bolts that struck the player
	Kills       int
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.Clock.Ticks,
		Elapsed:     g.Clock.Elapsed,
		Enemies:     len(g.ECS.Enemies),
		Explosions:  len(g.ECS.Explosions),
		Spawned:     g.tally.spawned,
		PlayerShots: g.tally.playerShots,
		EnemyShots:  g.tally.enemyShots,
		Hits:        g.tally.hits,
		Kills:       g.tally.kills,
	}
	if h, ok := g.ECS.Healths[g.PlayerID]; ok {
		s.Health = h.Value
	}
	if sc, ok := g.ECS.Scores[g.PlayerID]; ok {
		s.Score = sc.Value
	}
	return s
}
