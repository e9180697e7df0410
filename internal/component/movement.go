// component/movement.go
package component

// Position is a world position. Origin is the centre of the play area, +Y points up.
type Position struct {
	X, Y float64
}

// Velocity is the direction of motion in units of BaseSpeed per second.
type Velocity struct {
	X, Y float64
}
