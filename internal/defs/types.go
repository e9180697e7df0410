// internal/defs/types.go
package defs

// RulesDefinition is the on-disk form of config.Rules. Every field is optional:
// a missing key keeps the built-in value.
type RulesDefinition struct {
	BaseSpeed   *float64 `json:"base_speed"`
	Lookahead   *string  `json:"lookahead"`    // "step" or "unit"
	SpawnMargin *string  `json:"spawn_margin"` // "wall_width" or "wall_height"

	Player  *PlayerDefinition  `json:"player"`
	Enemies *EnemiesDefinition `json:"enemies"`

	ExplosionPeriod *float64 `json:"explosion_period"`
}

// PlayerDefinition holds the player ship tunables.
type PlayerDefinition struct {
	Health          *int     `json:"health"`
	ProjectileSpeed *float64 `json:"projectile_speed"`
}

// EnemiesDefinition holds spawner, AI and weapon tunables.
type EnemiesDefinition struct {
	Max             *int     `json:"max"`
	SpawnPeriod     *float64 `json:"spawn_period"`
	FirePeriod      *float64 `json:"fire_period"`
	MinHealth       *int     `json:"min_health"`
	MaxHealth       *int     `json:"max_health"`
	FollowChance    *float64 `json:"follow_chance"`
	Descent         *float64 `json:"descent"`
	FollowSpeed     *float64 `json:"follow_speed"`
	FollowDeadZone  *float64 `json:"follow_dead_zone"`
	DriftMin        *float64 `json:"drift_min"`
	DriftMax        *float64 `json:"drift_max"`
	ProjectileSpeed *float64 `json:"projectile_speed"`
}
