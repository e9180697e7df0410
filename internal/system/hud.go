package system

import (
	"fmt"
	"strconv"

	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/types"
)

// HUDSystem copies player health and score into the two HUD text entities and
// refreshes the health label hanging under every enemy.
type HUDSystem struct {
	ecs        *entity.ECS
	healthText types.EntityID
	scoreText  types.EntityID
}

// NewHUDSystem creates the HUD text entities in the top-left corner of the screen.
func NewHUDSystem(ecs *entity.ECS) *HUDSystem {
	s := &HUDSystem{ecs: ecs}
	s.healthText = s.newLine(0)
	s.scoreText = s.newLine(1)
	return s
}

func (s *HUDSystem) newLine(row int) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Texts[id] = &component.Text{Size: config.HUDFontSize}
	s.ecs.ScreenAnchors[id] = &component.ScreenAnchor{
		X: config.HUDMarginX,
		Y: config.HUDMarginY + float64(row*config.HUDLineHeight),
	}
	return id
}

func (s *HUDSystem) HealthText() types.EntityID { return s.healthText }
func (s *HUDSystem) ScoreText() types.EntityID  { return s.scoreText }

func (s *HUDSystem) Update() {
	s.syncPlayer()
	for id := range s.ecs.Enemies {
		health, ok := s.ecs.Healths[id]
		if !ok {
			continue
		}
		for _, child := range s.ecs.Children(id) {
			if label, ok := s.ecs.Texts[child]; ok {
				label.Value = strconv.Itoa(health.Value)
			}
		}
	}
}

// syncPlayer is a no-op unless exactly one player exists.
func (s *HUDSystem) syncPlayer() {
	id, ok := s.ecs.PlayerID()
	if !ok {
		return
	}
	if health, ok := s.ecs.Healths[id]; ok {
		if text, ok := s.ecs.Texts[s.healthText]; ok {
			text.Value = fmt.Sprintf("Health: %d", health.Value)
		}
	}
	if score, ok := s.ecs.Scores[id]; ok {
		if text, ok := s.ecs.Texts[s.scoreText]; ok {
			text.Value = fmt.Sprintf("Score: %d", score.Value)
		}
	}
}
