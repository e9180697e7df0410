// internal/system/movement.go
package system

import (
	"krusty/internal/config"
	"krusty/internal/entity"
)

// MovementSystem integrates velocity into position. It does no bounds checking:
// the player is pre-clamped by PlayerSystem and everything else is reaped.
type MovementSystem struct {
	ecs   *entity.ECS
	rules config.Rules
}

func NewMovementSystem(ecs *entity.ECS, rules config.Rules) *MovementSystem {
	return &MovementSystem{ecs: ecs, rules: rules}
}

func (s *MovementSystem) Update(deltaTime float64) {
	step := s.rules.BaseSpeed * deltaTime
	for id, vel := range s.ecs.Velocities {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		pos.X += vel.X * step
		pos.Y += vel.Y * step
	}
}
