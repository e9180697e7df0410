// internal/event/types.go
package event

import (
	"krusty/internal/component"
	"krusty/internal/types"
)

const (
	EnemySpawned    EventType = "EnemySpawned"    // Data: EnemySpawnedData
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Data: EnemyDestroyedData
	PlayerHit       EventType = "PlayerHit"       // Data: PlayerHitData
	ProjectileFired EventType = "ProjectileFired" // Data: ProjectileFiredData
	SoundRequested  EventType = "SoundRequested"  // Data: assets.SoundID
)

type EnemySpawnedData struct {
	ID        types.EntityID
	X, Y      float64
	Health    int
	CanFollow bool
}

type EnemyDestroyedData struct {
	ID        types.EntityID
	X, Y      float64
	Explosion types.EntityID
	Score     int
}

type PlayerHitData struct {
	Projectile types.EntityID
	Health     int
}

type ProjectileFiredData struct {
	ID    types.EntityID
	Owner component.Faction
}
