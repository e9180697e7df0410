package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"krusty/internal/input"
)

// keyBindings maps logical keys onto physical ones. Any bound key counts.
var keyBindings = map[input.Key][]ebiten.Key{
	input.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	input.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyFire:  {ebiten.KeySpace},
	input.KeyPause: {ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF9},
	input.KeyStart: {ebiten.KeyEnter, ebiten.KeySpace},
}

// Keyboard reads ebiten's key state. ebiten refreshes it once per Update, so
// every query within a tick sees the same snapshot.
type Keyboard struct{}

func (Keyboard) IsHeld(key input.Key) bool {
	for _, k := range keyBindings[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (Keyboard) IsJustPressed(key input.Key) bool {
	for _, k := range keyBindings[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
