// Package audio defines the playback service the simulation talks to.
// The ebiten-backed implementation lives in audio/device.
package audio

import (
	"log/slog"

	"krusty/internal/assets"
	"krusty/internal/event"
)

// Playback is a handle to one playing or pending sound.
// A handle whose sound is not loaded yet is valid: Ready reports false and
// Play/Stop do nothing. Play and Stop are idempotent.
type Playback interface {
	Ready() bool
	Play()
	Stop()
	IsPlaying() bool
}

// Service starts sounds. Play starts the sound right away when it is loaded and
// returns a handle either way, so callers may retry Play on it later.
type Service interface {
	Play(id assets.SoundID) Playback
}

// Null is a Service with no sound device. Its handles are never ready.
type Null struct{}

func (Null) Play(assets.SoundID) Playback { return nullPlayback{} }

type nullPlayback struct{}

func (nullPlayback) Ready() bool     { return false }
func (nullPlayback) Play()           {}
func (nullPlayback) Stop()           {}
func (nullPlayback) IsPlaying() bool { return false }

// SoundListener plays fire-and-forget effects requested through the event bus.
// Requests for sounds that are not loaded yet are dropped.
type SoundListener struct {
	service Service
	logger  *slog.Logger
}

func NewSoundListener(service Service, logger *slog.Logger) *SoundListener {
	return &SoundListener{service: service, logger: logger}
}

func (l *SoundListener) OnEvent(e event.Event) {
	if e.Type != event.SoundRequested {
		return
	}
	id, ok := e.Data.(assets.SoundID)
	if !ok {
		l.logger.Warn("sound request without sound id", "data", e.Data)
		return
	}
	if pb := l.service.Play(id); !pb.Ready() {
		l.logger.Debug("sound not ready, skipped", "sound", id)
	}
}
