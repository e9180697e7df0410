// Package device plays SoundBank samples through ebiten's audio context.
package device

import (
	"log/slog"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"krusty/internal/assets"
	"krusty/internal/audio"
)

// player is the part of *eaudio.Player the service drives.
type player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Service implements audio.Service on top of an ebiten audio context.
// Players that ran to completion are closed on the next Play.
type Service struct {
	newPlayer func(pcm []byte) player
	bank      *assets.SoundBank
	volume    float64
	logger    *slog.Logger
	active    []*playback
}

var _ audio.Service = (*Service)(nil)

// New wraps ctx. The context's sample rate must match the bank's PCM data.
func New(ctx *eaudio.Context, bank *assets.SoundBank, volume float64, logger *slog.Logger) *Service {
	return newService(func(pcm []byte) player { return ctx.NewPlayerFromBytes(pcm) }, bank, volume, logger)
}

func newService(newPlayer func(pcm []byte) player, bank *assets.SoundBank, volume float64, logger *slog.Logger) *Service {
	return &Service{newPlayer: newPlayer, bank: bank, volume: volume, logger: logger}
}

func (s *Service) Play(id assets.SoundID) audio.Playback {
	s.reap()
	pb := &playback{svc: s, id: id}
	pb.Play()
	return pb
}

// Active returns the number of players not yet closed.
func (s *Service) Active() int {
	return len(s.active)
}

// Close stops and releases every open player.
func (s *Service) Close() {
	for _, pb := range s.active {
		pb.release()
	}
	s.active = nil
}

func (s *Service) reap() {
	kept := s.active[:0]
	for _, pb := range s.active {
		if pb.player == nil {
			continue
		}
		if pb.started && !pb.player.IsPlaying() {
			pb.release()
			continue
		}
		kept = append(kept, pb)
	}
	clear(s.active[len(kept):])
	s.active = kept
}

// playback resolves its player lazily, the first time the sound is found in the bank.
type playback struct {
	svc     *Service
	id      assets.SoundID
	player  player
	started bool
	closed  bool
}

func (p *playback) resolve() bool {
	if p.player != nil {
		return true
	}
	if p.closed {
		return false
	}
	data, ok := p.svc.bank.PCM(p.id)
	if !ok {
		return false
	}
	p.player = p.svc.newPlayer(data)
	p.player.SetVolume(p.svc.volume)
	p.svc.active = append(p.svc.active, p)
	return true
}

func (p *playback) Ready() bool {
	return p.resolve()
}

func (p *playback) Play() {
	if !p.resolve() || p.player.IsPlaying() {
		return
	}
	p.player.Play()
	p.started = true
}

func (p *playback) Stop() {
	p.release()
}

func (p *playback) release() {
	p.closed = true
	if p.player == nil {
		return
	}
	p.player.Pause()
	if err := p.player.Close(); err != nil {
		p.svc.logger.Debug("close audio player", "sound", p.id, "err", err)
	}
	p.player = nil
}

func (p *playback) IsPlaying() bool {
	return p.player != nil && p.player.IsPlaying()
}
