package assets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Synthesizer produces the PCM bytes for one sound.
type Synthesizer func(id SoundID) ([]byte, error)

// SoundBank resolves sounds in the background. Until a sound is loaded its
// lookups report not-ready; callers are expected to try again later.
type SoundBank struct {
	mu     sync.RWMutex
	pcm    map[SoundID][]byte
	synth  Synthesizer
	logger *slog.Logger
}

// NewSoundBank creates an empty bank backed by synth.
func NewSoundBank(synth Synthesizer, logger *slog.Logger) *SoundBank {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundBank{
		pcm:    make(map[SoundID][]byte),
		synth:  synth,
		logger: logger,
	}
}

// Load synthesises the given sounds in parallel and blocks until all finished.
// Sounds that fail stay unresolved; the first error is returned.
func (b *SoundBank) Load(ctx context.Context, ids ...SoundID) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := b.synth(id)
			if err != nil {
				return fmt.Errorf("synthesize sound %q: %w", id, err)
			}
			b.mu.Lock()
			b.pcm[id] = data
			b.mu.Unlock()
			b.logger.Debug("sound loaded", "sound", id, "bytes", len(data))
			return nil
		})
	}
	return g.Wait()
}

// LoadAsync starts Load in a goroutine and returns immediately.
// The returned channel receives the result once and is then closed.
func (b *SoundBank) LoadAsync(ctx context.Context, ids ...SoundID) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := b.Load(ctx, ids...)
		if err != nil {
			b.logger.Warn("sound bank load incomplete", "err", err)
		}
		done <- err
	}()
	return done
}

// PCM returns the decoded samples of a sound if it is loaded.
func (b *SoundBank) PCM(id SoundID) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.pcm[id]
	return data, ok
}

// Ready reports whether a sound is loaded.
func (b *SoundBank) Ready(id SoundID) bool {
	_, ok := b.PCM(id)
	return ok
}
