package system

import (
	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/types"
)

// SpawnProjectile creates a laser bolt at (x, y) moving vertically with velocity vy.
func SpawnProjectile(ecs *entity.ECS, owner component.Faction, x, y, vy float64) types.EntityID {
	id := ecs.NewEntity()
	damage, image := config.PlayerFireDamage, assets.ImagePlayerLaser
	if owner == component.FactionEnemy {
		damage, image = config.EnemyFireDamage, assets.ImageEnemyLaser
	}
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{X: 0, Y: vy}
	ecs.Projectiles[id] = &component.Projectile{Owner: owner, Damage: damage}
	ecs.Sprites[id] = &component.Sprite{Image: image, Scale: 1}
	return id
}

// EnemyWeaponSystem fires one downward bolt per enemy whenever that enemy's
// own fire timer elapses.
type EnemyWeaponSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	eventDispatcher *event.Dispatcher
}

func NewEnemyWeaponSystem(ecs *entity.ECS, rules config.Rules, eventDispatcher *event.Dispatcher) *EnemyWeaponSystem {
	return &EnemyWeaponSystem{ecs: ecs, rules: rules, eventDispatcher: eventDispatcher}
}

func (s *EnemyWeaponSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || !enemy.FireTimer.Tick(deltaTime) {
			continue
		}
		pid := SpawnProjectile(s.ecs, component.FactionEnemy, pos.X, pos.Y, -s.rules.EnemyProjectileSpeed)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.ProjectileFiredData{ID: pid, Owner: component.FactionEnemy},
		})
		s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: assets.SoundEnemyFire})
	}
}
