// internal/component/projectile.go
package component

// Projectile is a laser bolt flying in a straight vertical line.
type Projectile struct {
	Owner  Faction
	Damage int
}
