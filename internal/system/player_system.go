// internal/system/player_system.go
package system

import (
	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
	"krusty/internal/input"
)

// PlayerSystem maps keyboard state onto the player ship: held arrows steer,
// a fresh press of fire shoots once.
type PlayerSystem struct {
	ecs             *entity.ECS
	rules           config.Rules
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, rules config.Rules, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, rules: rules, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(deltaTime float64, in input.Source) {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	pos, vel := s.ecs.Positions[id], s.ecs.Velocities[id]
	if pos == nil || vel == nil {
		return
	}

	s.steer(pos, vel, in, deltaTime)

	if in.IsJustPressed(input.KeyFire) {
		s.fire(pos)
	}
}

// steer maps held keys onto velocity. With no direction held the ship stops;
// otherwise only the axes whose keys are held change, so an axis keeps its last
// value while another direction is held. Any axis whose next position would
// leave the play area is then zeroed.
func (s *PlayerSystem) steer(pos *component.Position, vel *component.Velocity, in input.Source, deltaTime float64) {
	right, left := in.IsHeld(input.KeyRight), in.IsHeld(input.KeyLeft)
	up, down := in.IsHeld(input.KeyUp), in.IsHeld(input.KeyDown)
	if !right && !left && !up && !down {
		vel.X, vel.Y = 0, 0
		return
	}
	// Right before Left, Up before Down: with both held the later one wins.
	if right {
		vel.X = 1
	}
	if left {
		vel.X = -1
	}
	if up {
		vel.Y = 1
	}
	if down {
		vel.Y = -1
	}

	look := s.lookahead(deltaTime)
	nextX, nextY := pos.X+vel.X*look, pos.Y+vel.Y*look
	clampedX, clampedY := PlayArea(s.rules).Clamp(nextX, nextY)
	if clampedX != nextX {
		vel.X = 0
	}
	if clampedY != nextY {
		vel.Y = 0
	}
}

func (s *PlayerSystem) lookahead(deltaTime float64) float64 {
	if s.rules.Lookahead == config.LookaheadUnit {
		return 1
	}
	return s.rules.BaseSpeed * deltaTime
}

func (s *PlayerSystem) fire(pos *component.Position) {
	id := SpawnProjectile(s.ecs, component.FactionPlayer, pos.X, pos.Y, s.rules.PlayerProjectileSpeed)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileFiredData{ID: id, Owner: component.FactionPlayer},
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: assets.SoundPlayerFire})
}
