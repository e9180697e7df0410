// internal/system/projectile.go
package system

import (
	"log/slog"

	"krusty/internal/assets"
	"krusty/internal/audio"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/types"
)

// CollisionSystem resolves projectile hits. Enemy bolts are tested against the
// player, player bolts against every live enemy. Projectiles and enemies are
// visited in spawn order; a bolt damages at most one target and is consumed.
type CollisionSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	eventDispatcher *event.Dispatcher
	audio           audio.Service
	logger          *slog.Logger
}

func NewCollisionSystem(ecs *entity.ECS, rules config.Rules, eventDispatcher *event.Dispatcher, sound audio.Service, logger *slog.Logger) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		rules:           rules,
		eventDispatcher: eventDispatcher,
		audio:           sound,
		logger:          logger,
	}
}

func (s *CollisionSystem) Update() {
	s.resolveEnemyFire()
	s.resolvePlayerFire()
}

func (s *CollisionSystem) resolveEnemyFire() {
	playerID, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	playerPos, hasPos := s.ecs.Positions[playerID]
	if !hasPos {
		return
	}
	ship := SquareBox(playerPos.X, playerPos.Y, s.rules.ShipSize)

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Positions[id]
		if proj.Owner != component.FactionEnemy || !hasPos {
			continue
		}
		if Collide(SquareBox(pos.X, pos.Y, s.rules.ProjectileSize), ship) == CollisionNone {
			continue
		}
		ApplyDamage(s.ecs, playerID, proj.Damage)
		s.ecs.Despawn(id)

		health := s.ecs.Healths[playerID]
		data := event.PlayerHitData{Projectile: id}
		if health != nil {
			data.Health = health.Value
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: data})
	}
}

func (s *CollisionSystem) resolvePlayerFire() {
	enemies := entity.SortedIDs(s.ecs.Enemies)
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Positions[id]
		if proj.Owner != component.FactionPlayer || !hasPos {
			continue
		}
		bolt := SquareBox(pos.X, pos.Y, s.rules.ProjectileSize)

		for _, enemyID := range enemies {
			// Enemies killed earlier in this pass are already gone.
			enemyPos, alive := s.ecs.Positions[enemyID]
			if !alive {
				continue
			}
			if Collide(bolt, SquareBox(enemyPos.X, enemyPos.Y, s.rules.ShipSize)) == CollisionNone {
				continue
			}
			s.ecs.Despawn(id)
			if ApplyDamage(s.ecs, enemyID, proj.Damage) {
				s.destroyEnemy(enemyID, *enemyPos)
			}
			break
		}
	}
}

// destroyEnemy removes the enemy with its children, scores the kill and
// leaves an explosion where it died.
func (s *CollisionSystem) destroyEnemy(id types.EntityID, at component.Position) {
	s.ecs.DespawnRecursive(id)
	score := AwardKill(s.ecs)
	sound := s.audio.Play(assets.SoundExplosion)
	explosion := SpawnExplosion(s.ecs, s.rules, at.X, at.Y, sound)

	s.logger.Info("enemy destroyed", "id", id, "x", at.X, "y", at.Y, "score", score)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{ID: id, X: at.X, Y: at.Y, Explosion: explosion, Score: score},
	})
}
