// Package synth builds the game's sound effects procedurally with beep and
// renders them to the 16-bit little-endian stereo PCM the audio device plays.
package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"krusty/internal/assets"
	"krusty/internal/config"
)

const (
	playerFireDuration = 120 * time.Millisecond
	enemyFireDuration  = 160 * time.Millisecond
	explosionDuration  = 900 * time.Millisecond
	noiseSeed          = 7
)

// Rate is the sample rate every effect is rendered at.
var Rate = beep.SampleRate(config.AudioSampleRate)

// Effect returns the streamer for a sound.
func Effect(id assets.SoundID) (beep.Streamer, error) {
	switch id {
	case assets.SoundPlayerFire:
		s := newSweep(1400, 300, playerFireDuration, squareWave)
		return newVolume(newDecay(s, playerFireDuration, 4), 0.5), nil
	case assets.SoundEnemyFire:
		s := newSweep(520, 160, enemyFireDuration, sawWave)
		return newVolume(newDecay(s, enemyFireDuration, 3), 0.35), nil
	case assets.SoundExplosion:
		noise := newDecay(newNoise(explosionDuration, noiseSeed), explosionDuration, 5)
		rumble := newDecay(newSweep(90, 30, explosionDuration, sineWave), explosionDuration, 3)
		mix := beep.Mix(newVolume(noise, 0.8), newVolume(rumble, 0.6))
		return newVolume(beep.Take(Rate.N(explosionDuration), mix), 0.7), nil
	}
	return nil, fmt.Errorf("unknown sound %q", id)
}

// Render synthesises a sound into PCM bytes. It satisfies assets.Synthesizer.
func Render(id assets.SoundID) ([]byte, error) {
	s, err := Effect(id)
	if err != nil {
		return nil, err
	}
	return Encode(s)
}

// Encode drains s into 16-bit little-endian interleaved stereo PCM.
func Encode(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(sample[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(sample[1])))
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

type waveFunc func(phase float64) float64

func sineWave(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }
func sawWave(phase float64) float64  { return 2 * (phase - 0.5) }
func squareWave(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// sweep is an oscillator whose frequency slides linearly from one value to another.
type sweep struct {
	from, to float64
	wave     waveFunc
	phase    float64
	position int
	total    int
}

func newSweep(from, to float64, d time.Duration, wave waveFunc) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, total: Rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		v := s.wave(s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += freq / float64(Rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise from a fixed seed, so every run sounds the same.
type noise struct {
	rng  *rand.Rand
	left int
}

func newNoise(d time.Duration, seed int64) beep.Streamer {
	return &noise{rng: rand.New(rand.NewSource(seed)), left: Rate.N(d)}
}

func (s *noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.left <= 0 {
			return i, i > 0
		}
		v := s.rng.Float64()*2 - 1
		samples[i][0], samples[i][1] = v, v
		s.left--
	}
	return len(samples), true
}

func (s *noise) Err() error { return nil }

// decay multiplies a stream by exp(-k*t) over d, then ends it.
type decay struct {
	streamer beep.Streamer
	k        float64
	position int
	total    int
}

func newDecay(s beep.Streamer, d time.Duration, k float64) beep.Streamer {
	total := Rate.N(d)
	return beep.Take(total, &decay{streamer: s, k: k, total: total})
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-e.k * float64(e.position) / float64(e.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume scales linearly; beep's Volume effect works in powers of Base.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
