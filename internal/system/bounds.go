package system

import (
	"math"

	"krusty/internal/config"
)

// Rect is an axis-aligned rectangle in world coordinates, edges inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) ContainsX(x float64) bool { return x >= r.MinX && x <= r.MaxX }
func (r Rect) ContainsY(y float64) bool { return y >= r.MinY && y <= r.MaxY }

func (r Rect) Contains(x, y float64) bool {
	return r.ContainsX(x) && r.ContainsY(y)
}

// Clamp returns the point of r closest to (x, y).
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return min(max(x, r.MinX), r.MaxX), min(max(y, r.MinY), r.MaxY)
}

// PlayArea is the region the player ship may occupy: the screen minus the wall margin.
func PlayArea(rules config.Rules) Rect {
	return Rect{
		MinX: -rules.Width/2 + rules.WallW,
		MaxX: rules.Width/2 - rules.WallW,
		MinY: -rules.Height/2 + rules.WallH,
		MaxY: rules.Height/2 - rules.WallH,
	}
}

// LifeArea is the vertical band outside of which entities are reaped.
// It spans a full screen height above and below the centre; x is unbounded.
func LifeArea(rules config.Rules) Rect {
	return Rect{
		MinX: math.Inf(-1),
		MaxX: math.Inf(1),
		MinY: -rules.Height,
		MaxY: rules.Height,
	}
}
