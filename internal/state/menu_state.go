// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"krusty/internal/config"
	"krusty/internal/input"
)

// MenuState is the title screen. It waits for Enter or Space.
type MenuState struct {
	sm       *StateMachine
	deps     Deps
	keyboard input.Source
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps, keyboard: Keyboard{}}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if m.keyboard.IsJustPressed(input.KeyStart) {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.deps.Renderer.HUDFace()
	lines := []string{config.WindowTitle, "arrows / WASD to move, space to fire, P to pause", "press enter to start"}
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-40+i*config.HUDLineHeight, config.HUDTextColor)
	}
}

func (m *MenuState) Exit() {}
