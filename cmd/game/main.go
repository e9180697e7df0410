// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"krusty/internal/assets"
	"krusty/internal/audio/device"
	"krusty/internal/audio/synth"
	"krusty/internal/config"
	"krusty/internal/defs"
	"krusty/internal/state"
	"krusty/pkg/render"
)

const startFromGame = false // true skips the title screen

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update runs at a fixed config.TPS, so every call is exactly one TimeStep.
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.TimeStep)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	debug := os.Getenv("KRUSTY_DEBUG") != ""
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	rules, seed, err := loadSettings()
	if err != nil {
		logger.Error("load settings", "err", err)
		os.Exit(1)
	}

	// Sounds are synthesised in the background; until then playback requests are skipped.
	bank := assets.NewSoundBank(synth.Render, logger)
	bank.LoadAsync(context.Background(), assets.AllSounds...)
	sound := device.New(eaudio.NewContext(config.AudioSampleRate), bank, config.SoundVolume, logger)

	renderer, err := render.NewSpriteRenderer(render.NewAtlas(), config.ScreenWidth, config.ScreenHeight)
	if err != nil {
		logger.Error("create renderer", "err", err)
		os.Exit(1)
	}

	deps := state.Deps{
		Renderer: renderer,
		Rules:    rules,
		Audio:    sound,
		Seed:     seed,
		Logger:   logger,
		Debug:    debug,
	}
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, deps))
	} else {
		sm.SetState(state.NewMenuState(sm, deps))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	err = ebiten.RunGame(&AppGame{stateMachine: sm})
	sound.Close()
	if err != nil {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}

// loadSettings reads the optional rules file (KRUSTY_RULES) and RNG seed (KRUSTY_SEED).
func loadSettings() (*config.Rules, int64, error) {
	var rules *config.Rules
	if path := os.Getenv("KRUSTY_RULES"); path != "" {
		r, err := defs.LoadRules(path)
		if err != nil {
			return nil, 0, err
		}
		rules = &r
	}
	var seed int64
	if v := os.Getenv("KRUSTY_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("parse KRUSTY_SEED: %w", err)
		}
		seed = s
	}
	return rules, seed, nil
}
