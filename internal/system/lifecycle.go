package system

import (
	"krusty/internal/config"
	"krusty/internal/entity"
)

// LifecycleSystem reaps entities that left the vertical life band, together
// with their children. It is the only thing that removes stray bolts and
// enemies that flew past the player.
type LifecycleSystem struct {
	ecs   *entity.ECS
	rules config.Rules
}

func NewLifecycleSystem(ecs *entity.ECS, rules config.Rules) *LifecycleSystem {
	return &LifecycleSystem{ecs: ecs, rules: rules}
}

// Update returns the number of reaped entities.
func (s *LifecycleSystem) Update() int {
	band := LifeArea(s.rules)
	reaped := 0
	for _, id := range entity.SortedIDs(s.ecs.Positions) {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if !band.Contains(pos.X, pos.Y) {
			s.ecs.DespawnRecursive(id)
			reaped++
		}
	}
	return reaped
}
