// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"krusty/internal/config"
)

// LoadRules reads a rules file and applies it on top of config.DefaultRules.
func LoadRules(path string) (config.Rules, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return config.Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := ParseRules(file)
	if err != nil {
		return config.Rules{}, fmt.Errorf("rules file %s: %w", path, err)
	}
	return rules, nil
}

// ParseRules decodes a rules document. Unknown keys are rejected so that a
// typo does not silently fall back to the default.
func ParseRules(data []byte) (config.Rules, error) {
	var def RulesDefinition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return config.Rules{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	rules := config.DefaultRules()
	if err := def.Apply(&rules); err != nil {
		return config.Rules{}, err
	}
	if err := Validate(rules); err != nil {
		return config.Rules{}, err
	}
	return rules, nil
}

// Apply copies every present field into r.
func (d RulesDefinition) Apply(r *config.Rules) error {
	set(&r.BaseSpeed, d.BaseSpeed)
	set(&r.ExplosionPeriod, d.ExplosionPeriod)

	if d.Lookahead != nil {
		switch *d.Lookahead {
		case "step":
			r.Lookahead = config.LookaheadStep
		case "unit":
			r.Lookahead = config.LookaheadUnit
		default:
			return fmt.Errorf("unknown lookahead %q", *d.Lookahead)
		}
	}
	if d.SpawnMargin != nil {
		switch *d.SpawnMargin {
		case "wall_width":
			r.SpawnMarginMode = config.SpawnMarginWallWidth
		case "wall_height":
			r.SpawnMarginMode = config.SpawnMarginWallHeight
		default:
			return fmt.Errorf("unknown spawn_margin %q", *d.SpawnMargin)
		}
	}

	if p := d.Player; p != nil {
		set(&r.PlayerHealth, p.Health)
		set(&r.PlayerProjectileSpeed, p.ProjectileSpeed)
	}
	if e := d.Enemies; e != nil {
		set(&r.MaxEnemies, e.Max)
		set(&r.SpawnPeriod, e.SpawnPeriod)
		set(&r.FirePeriod, e.FirePeriod)
		set(&r.EnemyMinHealth, e.MinHealth)
		set(&r.EnemyMaxHealth, e.MaxHealth)
		set(&r.FollowChance, e.FollowChance)
		set(&r.EnemyDescent, e.Descent)
		set(&r.FollowSpeed, e.FollowSpeed)
		set(&r.FollowDeadZone, e.FollowDeadZone)
		set(&r.DriftMin, e.DriftMin)
		set(&r.DriftMax, e.DriftMax)
		set(&r.EnemyProjectileSpeed, e.ProjectileSpeed)
	}
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports every inconsistent value in r.
func Validate(r config.Rules) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("base_speed", r.BaseSpeed)
	positive("time step", r.TimeStep)
	positive("explosion_period", r.ExplosionPeriod)
	positive("player.projectile_speed", r.PlayerProjectileSpeed)
	positive("enemies.projectile_speed", r.EnemyProjectileSpeed)
	positive("enemies.spawn_period", r.SpawnPeriod)
	positive("enemies.fire_period", r.FirePeriod)
	positive("ship size", r.ShipSize)
	positive("projectile size", r.ProjectileSize)

	if r.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("enemies.max must not be negative, got %d", r.MaxEnemies))
	}
	if r.EnemyMinHealth < 1 {
		errs = append(errs, fmt.Errorf("enemies.min_health must be at least 1, got %d", r.EnemyMinHealth))
	}
	if r.EnemyMinHealth > r.EnemyMaxHealth {
		errs = append(errs, fmt.Errorf("enemies.min_health %d exceeds max_health %d", r.EnemyMinHealth, r.EnemyMaxHealth))
	}
	if r.FollowChance < 0 || r.FollowChance > 1 {
		errs = append(errs, fmt.Errorf("enemies.follow_chance must be in [0, 1], got %v", r.FollowChance))
	}
	if r.DriftMin > r.DriftMax {
		errs = append(errs, fmt.Errorf("enemies.drift_min %v exceeds drift_max %v", r.DriftMin, r.DriftMax))
	}
	if r.FollowDeadZone < 0 {
		errs = append(errs, fmt.Errorf("enemies.follow_dead_zone must not be negative, got %v", r.FollowDeadZone))
	}
	if r.ExplosionFrames < 1 {
		errs = append(errs, fmt.Errorf("explosion frame count must be at least 1, got %d", r.ExplosionFrames))
	}
	return errors.Join(errs...)
}
