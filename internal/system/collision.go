package system

import "math"

// Collision tells which side of box b was hit by box a.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionInside
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	}
	return "none"
}

// Box is an axis-aligned box given by its centre and full size.
type Box struct {
	X, Y float64
	W, H float64
}

func SquareBox(x, y, size float64) Box {
	return Box{X: x, Y: y, W: size, H: size}
}

// Collide tests a against b. Touching edges do not collide. When a crosses
// one edge of b the side with the shallower penetration is reported; a box
// that straddles no edge on either axis is Inside.
func Collide(a, b Box) Collision {
	aMinX, aMaxX := a.X-a.W/2, a.X+a.W/2
	aMinY, aMaxY := a.Y-a.H/2, a.Y+a.H/2
	bMinX, bMaxX := b.X-b.W/2, b.X+b.W/2
	bMinY, bMaxY := b.Y-b.H/2, b.Y+b.H/2

	if !(aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY) {
		return CollisionNone
	}

	xSide, xDepth := CollisionInside, math.Inf(1)
	switch {
	case aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX:
		xSide, xDepth = CollisionLeft, aMaxX-bMinX
	case aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX:
		xSide, xDepth = CollisionRight, bMaxX-aMinX
	}

	ySide, yDepth := CollisionInside, math.Inf(1)
	switch {
	case aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY:
		ySide, yDepth = CollisionBottom, aMaxY-bMinY
	case aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY:
		ySide, yDepth = CollisionTop, bMaxY-aMinY
	}

	if yDepth < xDepth {
		return ySide
	}
	return xSide
}
