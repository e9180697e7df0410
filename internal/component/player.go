// internal/component/player.go
package component

// Player marks the single player-controlled ship.
type Player struct{}
