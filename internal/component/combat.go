package component

// Health is the remaining hit points. Player health is not clamped and may go negative.
type Health struct {
	Value int
}

// Score counts enemies destroyed by the player.
type Score struct {
	Value int
}

// Faction tells who fired a projectile.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "enemy"
}
