package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krusty/internal/config"
)

func TestPlayArea(t *testing.T) {
	area := PlayArea(config.DefaultRules())
	assert.Equal(t, Rect{MinX: -720, MinY: -370, MaxX: 720, MaxY: 370}, area)

	assert.True(t, area.Contains(720, -370), "edges are inclusive")
	assert.False(t, area.Contains(720.01, 0))
	assert.False(t, area.ContainsY(-370.5))

	x, y := area.Clamp(1000, -1000)
	assert.Equal(t, 720.0, x)
	assert.Equal(t, -370.0, y)
	x, y = area.Clamp(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestLifeArea(t *testing.T) {
	band := LifeArea(config.DefaultRules())
	assert.Equal(t, -900.0, band.MinY)
	assert.Equal(t, 900.0, band.MaxY)
	assert.True(t, band.Contains(1e6, 900), "x is unbounded")
	assert.False(t, band.Contains(0, -900.01))
}
