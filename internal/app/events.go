package app

import (
	"log/slog"

	"krusty/internal/component"
	"krusty/internal/event"
)

// tally counts gameplay events for Snapshot.
type tally struct {
	spawned     int
	playerShots int
	enemyShots  int
	hits        int
	kills       int
}

func (t *tally) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		t.spawned++
	case event.ProjectileFired:
		if d, ok := e.Data.(event.ProjectileFiredData); ok && d.Owner == component.FactionEnemy {
			t.enemyShots++
		} else {
			t.playerShots++
		}
	case event.PlayerHit:
		t.hits++
	case event.EnemyDestroyed:
		t.kills++
	}
}

// eventLogger writes spawns, shots and hits to the debug log.
type eventLogger struct {
	logger *slog.Logger
}

func (l eventLogger) OnEvent(e event.Event) {
	switch d := e.Data.(type) {
	case event.EnemySpawnedData:
		l.logger.Debug("enemy spawned", "id", d.ID, "x", d.X, "health", d.Health, "follower", d.CanFollow)
	case event.ProjectileFiredData:
		l.logger.Debug("projectile fired", "id", d.ID, "owner", d.Owner)
	case event.PlayerHitData:
		l.logger.Debug("player hit", "projectile", d.Projectile, "health", d.Health)
	}
}
