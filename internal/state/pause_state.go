// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"krusty/internal/config"
	"krusty/internal/input"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed under a PAUSED banner.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	keyboard      input.Source
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		keyboard:      Keyboard{},
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.keyboard.IsJustPressed(input.KeyPause) {
		s.stateMachine.Swap(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseShadeColor, false)

	face := s.previousState.deps.Renderer.HUDFace()
	const pauseText = "PAUSED"
	bounds := text.BoundString(face, pauseText)
	text.Draw(screen, pauseText, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.HUDTextColor)
}

func (s *PauseState) Exit() {}
