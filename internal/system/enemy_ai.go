package system

import (
	"math"

	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/utils"
)

// EnemyAISystem picks each enemy's horizontal velocity. Followers chase the
// player's x position; the others get a fresh random drift every tick.
// Vertical velocity is fixed at spawn and never touched here.
type EnemyAISystem struct {
	ecs   *entity.ECS
	rules config.Rules
	rng   *utils.PRNGService
}

func NewEnemyAISystem(ecs *entity.ECS, rules config.Rules, rng *utils.PRNGService) *EnemyAISystem {
	return &EnemyAISystem{ecs: ecs, rules: rules, rng: rng}
}

func (s *EnemyAISystem) Update(deltaTime float64) {
	playerX, hasPlayer := s.playerX()
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, vel := s.ecs.Positions[id], s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		if !enemy.CanFollow {
			vel.X = s.rng.FloatRange(s.rules.DriftMin, s.rules.DriftMax)
			continue
		}
		if !hasPlayer {
			continue
		}
		dx := math.Round(playerX) - math.Round(pos.X)
		if math.Abs(dx) > s.rules.FollowDeadZone {
			vel.X = utils.Sign(dx) * s.rules.FollowSpeed
		} else {
			vel.X = 0
		}
	}
}

func (s *EnemyAISystem) playerX() (float64, bool) {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return 0, false
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return 0, false
	}
	return pos.X, true
}
