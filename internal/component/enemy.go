package component

// Enemy is a hostile ship. Followers steer toward the player's x position,
// the rest drift randomly.
type Enemy struct {
	CanFollow bool
	FireTimer Timer // repeating, one shot per period
}
