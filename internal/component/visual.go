// internal/component/visual.go
package component

// SoundHandle is the part of an audio playback handle an explosion needs.
// A handle may not be ready yet; Play and Stop are idempotent.
type SoundHandle interface {
	Ready() bool
	Play()
	Stop()
}

// Explosion is a sprite-sheet animation spawned where an enemy died.
type Explosion struct {
	Frame      int   // index into the sheet, 0..ExplosionFrames-1
	FrameTimer Timer // one-shot, re-armed by the animator after every advance
	Sound      SoundHandle
	Started    bool // sound has been started
}
