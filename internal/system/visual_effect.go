// internal/system/visual_effect.go
package system

import (
	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/types"
)

// SpawnExplosion places an explosion animation at (x, y). sound may be a
// handle that is not ready yet; the animation does not wait for it.
func SpawnExplosion(ecs *entity.ECS, rules config.Rules, x, y float64, sound component.SoundHandle) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Explosions[id] = &component.Explosion{
		Frame:      0,
		FrameTimer: component.NewTimer(rules.ExplosionPeriod, false),
		Sound:      sound,
	}
	ecs.Sprites[id] = &component.Sprite{Image: assets.ImageExplosion, Frame: 0, Scale: 2}
	return id
}

// ExplosionSystem steps explosion sprite sheets.
//
// Each explosion starts at frame 0. Its sound is started on the first tick the
// handle is ready. Every time the one-shot frame timer fires the frame
// advances and the timer is re-armed; when the frame reaches the sheet length
// the sound is stopped and the entity is removed at the end of the tick.
type ExplosionSystem struct {
	ecs   *entity.ECS
	rules config.Rules
}

func NewExplosionSystem(ecs *entity.ECS, rules config.Rules) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs, rules: rules}
}

func (s *ExplosionSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Explosions) {
		exp := s.ecs.Explosions[id]

		if !exp.Started && exp.Sound != nil && exp.Sound.Ready() {
			exp.Sound.Play()
			exp.Started = true
		}

		if !exp.FrameTimer.Tick(deltaTime) {
			continue
		}
		exp.Frame++
		if exp.Frame >= s.rules.ExplosionFrames {
			if exp.Sound != nil {
				exp.Sound.Stop()
			}
			delete(s.ecs.Explosions, id)
			s.ecs.QueueDespawn(id)
			continue
		}
		exp.FrameTimer.Reset()
		if sprite, ok := s.ecs.Sprites[id]; ok {
			sprite.Frame = exp.Frame
		}
	}
}
