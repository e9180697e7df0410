package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollide(t *testing.T) {
	ship := SquareBox(0, 0, 120)

	tests := []struct {
		name string
		bolt Box
		want Collision
	}{
		{"centred", SquareBox(0, 0, 12.8), CollisionInside},
		{"far away", SquareBox(500, 500, 12.8), CollisionNone},
		{"touching right edge", SquareBox(70, 0, 20), CollisionNone},
		{"touching top edge", SquareBox(0, 70, 20), CollisionNone},
		{"crossing left edge", SquareBox(-60, 0, 12.8), CollisionLeft},
		{"crossing right edge", SquareBox(60, 0, 12.8), CollisionRight},
		{"crossing bottom edge", SquareBox(0, -60, 12.8), CollisionBottom},
		{"crossing top edge", SquareBox(0, 60, 12.8), CollisionTop},
		{"corner, shallower on y", SquareBox(-58, 62, 12.8), CollisionTop},
		{"corner, shallower on x", SquareBox(-62, 58, 12.8), CollisionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collide(tt.bolt, ship))
		})
	}
}

func TestCollisionString(t *testing.T) {
	assert.Equal(t, "none", CollisionNone.String())
	assert.Equal(t, "inside", CollisionInside.String())
	assert.Equal(t, "left", CollisionLeft.String())
}
