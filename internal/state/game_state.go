// internal/state/game_state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	game "krusty/internal/app"
	"krusty/internal/audio"
	"krusty/internal/config"
	"krusty/internal/input"
	"krusty/pkg/render"
)

// Deps are the long-lived services every state shares.
type Deps struct {
	Renderer *render.SpriteRenderer
	Rules    *config.Rules // nil means config.DefaultRules
	Audio    audio.Service
	Logger   *slog.Logger
	Seed     int64
	Debug    bool
}

// GameState runs the game.
type GameState struct {
	sm       *StateMachine
	deps     Deps
	game     *game.Game
	keyboard input.Source
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	return &GameState{
		sm:   sm,
		deps: deps,
		game: game.NewGame(game.Options{
			Rules:  deps.Rules,
			Seed:   deps.Seed,
			Audio:  deps.Audio,
			Logger: deps.Logger,
		}),
		keyboard: Keyboard{},
	}
}

// Game exposes the simulation, e.g. for the pause overlay.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.deps.Logger.Info("game started", "seed", g.game.Rng.Seed())
}

// Update advances the simulation by one fixed step; deltaTime is ignored
// because the game keeps its own fixed clock.
func (g *GameState) Update(deltaTime float64) {
	if g.keyboard.IsJustPressed(input.KeyPause) {
		g.sm.Swap(NewPauseState(g.sm, g))
		return
	}
	g.game.Update(g.keyboard)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.deps.Renderer.Draw(screen, g.game.ECS)
	if g.deps.Debug {
		snap := g.game.Snapshot()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1fs  enemies %d/%d  spawned %d  shots %d/%d  hits %d  fx %d  tps %.0f",
			snap.Elapsed, snap.Enemies, g.game.Rules.MaxEnemies, snap.Spawned, snap.PlayerShots, snap.EnemyShots,
			snap.Hits, snap.Explosions, ebiten.ActualTPS()), config.HUDMarginX, config.ScreenHeight-24)
	}
}

func (g *GameState) Exit() {
	snap := g.game.Snapshot()
	g.deps.Logger.Info("game left", "tick", snap.Tick, "score", snap.Score, "health", snap.Health,
		"shots", snap.PlayerShots, "hits", snap.Hits)
}
