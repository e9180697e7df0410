package system

import (
	"strconv"

	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/types"
	"krusty/internal/utils"
)

// SpawnSystem adds one enemy per spawn period while fewer than MaxEnemies are alive.
type SpawnSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	timer           component.Timer
}

func NewSpawnSystem(ecs *entity.ECS, rules config.Rules, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		rules:           rules,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		timer:           component.NewTimer(rules.SpawnPeriod, true),
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.timer.Tick(deltaTime) {
		return
	}
	if len(s.ecs.Enemies) >= s.rules.MaxEnemies {
		return
	}
	s.Spawn()
}

// Spawn creates an enemy at a random x along the top edge, ignoring the timer and the cap.
func (s *SpawnSystem) Spawn() types.EntityID {
	margin := s.rules.SpawnMargin()
	x := s.rng.FloatRange(-s.rules.Width/2+margin, s.rules.Width/2-margin)
	y := s.rules.Height/2 - s.rules.WallH
	canFollow := s.rng.Chance(s.rules.FollowChance)
	health := s.rng.IntRange(s.rules.EnemyMinHealth, s.rules.EnemyMaxHealth)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{X: 0, Y: -s.rules.EnemyDescent}
	s.ecs.Healths[id] = &component.Health{Value: health}
	s.ecs.Enemies[id] = &component.Enemy{
		CanFollow: canFollow,
		FireTimer: component.NewTimer(s.rules.FirePeriod, true),
	}
	image := assets.ImageEnemy
	if canFollow {
		image = assets.ImageFollower
	}
	s.ecs.Sprites[id] = &component.Sprite{Image: image, Scale: 1}

	label := s.ecs.NewEntity()
	s.ecs.Texts[label] = &component.Text{Value: strconv.Itoa(health), Size: config.LabelFontSize}
	s.ecs.Attach(id, label, 0, config.LabelOffsetY)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{ID: id, X: x, Y: y, Health: health, CanFollow: canFollow},
	})
	return id
}
