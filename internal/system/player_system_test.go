package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/input"
	"krusty/internal/types"
)

func newPlayerFixture(rules config.Rules, x, y float64) (*entity.ECS, *PlayerSystem, *eventLog) {
	ecs := entity.NewECS()
	spawnPlayer(ecs, x, y, rules.PlayerHealth)
	d := event.NewDispatcher()
	log := listen(d, event.ProjectileFired, event.SoundRequested)
	return ecs, NewPlayerSystem(ecs, rules, d), log
}

func mustPlayer(t *testing.T, ecs *entity.ECS) types.EntityID {
	t.Helper()
	id, ok := ecs.PlayerID()
	require.True(t, ok)
	return id
}

func playerVelocity(t *testing.T, ecs *entity.ECS) component.Velocity {
	t.Helper()
	return *ecs.Velocities[mustPlayer(t, ecs)]
}

func TestPlayerSteering(t *testing.T) {
	tests := []struct {
		name string
		keys []input.Key
		want component.Velocity
	}{
		{"idle", nil, component.Velocity{}},
		{"right", []input.Key{input.KeyRight}, component.Velocity{X: 1}},
		{"left", []input.Key{input.KeyLeft}, component.Velocity{X: -1}},
		{"up", []input.Key{input.KeyUp}, component.Velocity{Y: 1}},
		{"down", []input.Key{input.KeyDown}, component.Velocity{Y: -1}},
		{"diagonal", []input.Key{input.KeyUp, input.KeyRight}, component.Velocity{X: 1, Y: 1}},
		{"left wins over right", []input.Key{input.KeyRight, input.KeyLeft}, component.Velocity{X: -1}},
		{"down wins over up", []input.Key{input.KeyUp, input.KeyDown}, component.Velocity{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, sys, _ := newPlayerFixture(config.DefaultRules(), 0, 0)
			sys.Update(dt, input.Hold(tt.keys...))
			assert.Equal(t, tt.want, playerVelocity(t, ecs))
		})
	}
}

func TestPlayerKeepsAxisWithoutKey(t *testing.T) {
	ecs, sys, _ := newPlayerFixture(config.DefaultRules(), 0, 0)

	sys.Update(dt, input.Hold(input.KeyRight))
	sys.Update(dt, input.Hold(input.KeyUp))
	assert.Equal(t, component.Velocity{X: 1, Y: 1}, playerVelocity(t, ecs), "x keeps its last value while up is held")

	sys.Update(dt, input.Hold(input.KeyLeft))
	assert.Equal(t, component.Velocity{X: -1, Y: 1}, playerVelocity(t, ecs))

	sys.Update(dt, input.None)
	assert.Equal(t, component.Velocity{}, playerVelocity(t, ecs), "releasing every key stops the ship")
}

func TestPlayerKeptAxisStillStopsAtWall(t *testing.T) {
	rules := config.DefaultRules()
	area := PlayArea(rules)
	ecs, sys, _ := newPlayerFixture(rules, area.MaxX-10, 0)

	sys.Update(dt, input.Hold(input.KeyRight))
	sys.Update(dt, input.Hold(input.KeyUp))
	assert.Equal(t, component.Velocity{X: 1, Y: 1}, playerVelocity(t, ecs))

	ecs.Positions[mustPlayer(t, ecs)].X = area.MaxX - 1
	sys.Update(dt, input.Hold(input.KeyUp))
	assert.Equal(t, component.Velocity{Y: 1}, playerVelocity(t, ecs))
}

func TestPlayerStopsAtWalls(t *testing.T) {
	rules := config.DefaultRules()
	area := PlayArea(rules)

	ecs, sys, _ := newPlayerFixture(rules, area.MaxX, area.MinY)
	sys.Update(dt, input.Hold(input.KeyRight, input.KeyDown))
	assert.Equal(t, component.Velocity{}, playerVelocity(t, ecs))

	sys.Update(dt, input.Hold(input.KeyLeft, input.KeyDown))
	assert.Equal(t, component.Velocity{X: -1}, playerVelocity(t, ecs), "only the blocked axis is zeroed")

	// one step short of the wall is still blocked
	ecs, sys, _ = newPlayerFixture(rules, area.MaxX-1, 0)
	sys.Update(dt, input.Hold(input.KeyRight))
	assert.Equal(t, component.Velocity{}, playerVelocity(t, ecs))
}

func TestPlayerUnitLookahead(t *testing.T) {
	rules := config.DefaultRules()
	rules.Lookahead = config.LookaheadUnit
	area := PlayArea(rules)

	ecs, sys, _ := newPlayerFixture(rules, area.MaxX-1, 0)
	sys.Update(dt, input.Hold(input.KeyRight))
	assert.Equal(t, component.Velocity{X: 1}, playerVelocity(t, ecs), "one unit ahead is still inside")

	ecs, sys, _ = newPlayerFixture(rules, area.MaxX-0.5, 0)
	sys.Update(dt, input.Hold(input.KeyRight))
	assert.Equal(t, component.Velocity{}, playerVelocity(t, ecs))
}

func TestPlayerNeverLeavesPlayArea(t *testing.T) {
	rules := config.DefaultRules()
	area := PlayArea(rules)
	ecs, sys, _ := newPlayerFixture(rules, 0, area.MinY)
	movement := NewMovementSystem(ecs, rules)
	id, _ := ecs.PlayerID()

	keys := []input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight}
	r := rand.New(rand.NewSource(7))
	var held []input.Key
	for tick := 0; tick < 20000; tick++ {
		if tick%30 == 0 {
			held = held[:0]
			for _, k := range keys {
				if r.Intn(2) == 0 {
					held = append(held, k)
				}
			}
		}
		sys.Update(dt, input.Hold(held...))
		movement.Update(dt)

		pos := ecs.Positions[id]
		require.True(t, area.Contains(pos.X, pos.Y), "tick %d: player at (%v, %v)", tick, pos.X, pos.Y)
	}
}

func TestPlayerFireIsEdgeTriggered(t *testing.T) {
	ecs, sys, log := newPlayerFixture(config.DefaultRules(), 10, -370)

	sys.Update(dt, input.None.Press(input.KeyFire))
	sys.Update(dt, input.Hold(input.KeyFire))
	sys.Update(dt, input.Hold(input.KeyFire))

	require.Len(t, ecs.Projectiles, 1)
	for id, proj := range ecs.Projectiles {
		assert.Equal(t, component.FactionPlayer, proj.Owner)
		assert.Equal(t, component.Position{X: 10, Y: -370}, *ecs.Positions[id])
		assert.Equal(t, component.Velocity{Y: config.PlayerProjectileSpeed}, *ecs.Velocities[id])
	}

	fired := log.ofType(event.ProjectileFired)
	require.Len(t, fired, 1)
	assert.Equal(t, component.FactionPlayer, fired[0].Data.(event.ProjectileFiredData).Owner)
	sounds := log.ofType(event.SoundRequested)
	require.Len(t, sounds, 1)
	assert.Equal(t, assets.SoundPlayerFire, sounds[0].Data)

	sys.Update(dt, input.None)
	sys.Update(dt, input.None.Press(input.KeyFire))
	assert.Len(t, ecs.Projectiles, 2)
}

func TestPlayerSystemWithoutPlayer(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewPlayerSystem(ecs, config.DefaultRules(), event.NewDispatcher())
	assert.NotPanics(t, func() { sys.Update(dt, input.Hold(input.KeyFire).Press(input.KeyFire)) })
	assert.Empty(t, ecs.Projectiles)
}
