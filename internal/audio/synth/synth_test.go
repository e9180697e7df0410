package synth

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krusty/internal/assets"
)

// constant streams n frames of the same stereo sample.
type constant struct {
	left, right float64
	n           int
}

func (c *constant) Stream(samples [][2]float64) (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	k := min(len(samples), c.n)
	for i := range samples[:k] {
		samples[i] = [2]float64{c.left, c.right}
	}
	c.n -= k
	return k, true
}

func (c *constant) Err() error { return nil }

func TestEncode(t *testing.T) {
	pcm, err := Encode(&constant{left: 1, right: -2, n: 1000})
	require.NoError(t, err)
	require.Len(t, pcm, 4000)

	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(-32767), int16(binary.LittleEndian.Uint16(pcm[2:])), "out of range samples are clipped")
	assert.Equal(t, pcm[:4], pcm[3996:])
}

func TestRenderFireSounds(t *testing.T) {
	tests := []struct {
		id      assets.SoundID
		samples int
	}{
		{assets.SoundPlayerFire, Rate.N(playerFireDuration)},
		{assets.SoundEnemyFire, Rate.N(enemyFireDuration)},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			pcm, err := Render(tt.id)
			require.NoError(t, err)
			assert.Len(t, pcm, tt.samples*4)
			assert.NotEqual(t, make([]byte, len(pcm)), pcm, "sound is not silent")
		})
	}
}

func TestRenderExplosionIsDeterministic(t *testing.T) {
	a, err := Render(assets.SoundExplosion)
	require.NoError(t, err)
	b, err := Render(assets.SoundExplosion)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Zero(t, len(a)%4)
	assert.LessOrEqual(t, len(a), Rate.N(explosionDuration)*4)
	assert.Greater(t, len(a), Rate.N(explosionDuration)*2)
}

func TestUnknownSound(t *testing.T) {
	_, err := Render("laugh")
	assert.Error(t, err)
}
