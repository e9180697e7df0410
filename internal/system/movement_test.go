package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	ecs := entity.NewECS()
	moving := ecs.NewEntity()
	ecs.Positions[moving] = &component.Position{X: 10, Y: 10}
	ecs.Velocities[moving] = &component.Velocity{X: 1, Y: -0.5}
	// velocity without a position is ignored
	ghost := ecs.NewEntity()
	ecs.Velocities[ghost] = &component.Velocity{X: 1}

	NewMovementSystem(ecs, config.DefaultRules()).Update(dt)

	assert.InDelta(t, 10+400.0/60, ecs.Positions[moving].X, 1e-9)
	assert.InDelta(t, 10-200.0/60, ecs.Positions[moving].Y, 1e-9)
	assert.NotContains(t, ecs.Positions, ghost)
}

func TestMovementScalesWithDelta(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Y: 1.5}

	NewMovementSystem(ecs, config.DefaultRules()).Update(0.5)

	assert.InDelta(t, 300, ecs.Positions[id].Y, 1e-9)
}
