// internal/system/utils.go
package system

import (
	"krusty/internal/entity"
	"krusty/internal/types"
)

// ApplyDamage subtracts damage from an entity's health and reports whether it
// is now at or below zero. Health is not clamped: the HUD shows negative values as is.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (depleted bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return false
	}
	health.Value -= damage
	return health.Value <= 0
}

// AwardKill adds one to the player's score and returns the new value.
// Without a player singleton nothing is recorded and -1 is returned.
func AwardKill(ecs *entity.ECS) int {
	id, ok := ecs.PlayerID()
	if !ok {
		return -1
	}
	score, ok := ecs.Scores[id]
	if !ok {
		return -1
	}
	score.Value++
	return score.Value
}
