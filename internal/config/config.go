// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1600
	ScreenHeight = 900
	WallWidth    = 80.0
	WallHeight   = 80.0
	WindowTitle  = "Krusty"

	BaseSpeed = 400.0    // world units per second at velocity 1
	TimeStep  = 1.0 / 60 // fixed logical step
	TPS       = 60

	PlayerStartHealth     = 100
	PlayerProjectileSpeed = 1.5
	EnemyProjectileSpeed  = 1.0
	PlayerFireDamage      = 1
	EnemyFireDamage       = 1

	MaxEnemies        = 10
	EnemySpawnPeriod  = 2.0
	EnemyFirePeriod   = 0.48
	EnemyMinHealth    = 2
	EnemyMaxHealth    = 4
	EnemyFollowChance = 1.0 / 5
	EnemyDescent      = 0.1 // downward velocity, fraction of BaseSpeed
	EnemyFollowSpeed  = 0.5
	EnemyFollowDeadZ  = 5.0
	EnemyDriftMin     = -0.3
	EnemyDriftMax     = 0.35

	ShipSize       = 120.0
	ProjectileSize = 12.8

	ExplosionFramePeriod = 0.1
	ExplosionColumns     = 4
	ExplosionRows        = 4
	ExplosionFrames      = ExplosionColumns * ExplosionRows
	ExplosionTileSize    = 64

	HUDFontSize   = 24
	LabelFontSize = 14
	HUDMarginX    = 20
	HUDMarginY    = 36
	HUDLineHeight = 32
	LabelOffsetY  = 72.0

	AudioSampleRate = 48000
	SoundVolume     = 0.4
)

var (
	BackgroundColor  = color.RGBA{25, 25, 25, 255}
	WallColor        = color.RGBA{45, 45, 60, 255}
	PlayerColor      = color.RGBA{90, 200, 250, 255}
	PlayerTrimColor  = color.RGBA{240, 240, 240, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	FollowerColor    = color.RGBA{255, 160, 40, 255}
	PlayerLaserColor = color.RGBA{120, 255, 120, 255}
	EnemyLaserColor  = color.RGBA{255, 80, 200, 255}
	HUDTextColor     = color.RGBA{240, 240, 240, 255}
	LabelTextColor   = color.RGBA{255, 255, 160, 255}
	PauseShadeColor  = color.RGBA{0, 0, 0, 128}
)

// Rules holds the gameplay parameters threaded into every system. DefaultRules mirrors
// the constants above; tests build their own copy to shrink timers or caps.
type Rules struct {
	Width, Height   float64
	WallW, WallH    float64
	BaseSpeed       float64
	TimeStep        float64
	Lookahead       LookaheadMode
	SpawnMarginMode SpawnMarginMode

	PlayerHealth          int
	PlayerProjectileSpeed float64
	EnemyProjectileSpeed  float64

	MaxEnemies      int
	SpawnPeriod     float64
	FirePeriod      float64
	EnemyMinHealth  int
	EnemyMaxHealth  int
	FollowChance    float64
	EnemyDescent    float64
	FollowSpeed     float64
	FollowDeadZone  float64
	DriftMin        float64
	DriftMax        float64
	ShipSize        float64
	ProjectileSize  float64
	ExplosionPeriod float64
	ExplosionFrames int
}

// LookaheadMode selects how far ahead the player bounds pre-check looks.
type LookaheadMode int

const (
	// LookaheadStep checks the position one full integration step ahead.
	LookaheadStep LookaheadMode = iota
	// LookaheadUnit checks one world unit ahead per held axis.
	LookaheadUnit
)

// SpawnMarginMode selects which wall constant limits the enemy spawn x range.
type SpawnMarginMode int

const (
	SpawnMarginWallWidth SpawnMarginMode = iota
	SpawnMarginWallHeight
)

// DefaultRules returns the rules the shipped game runs with.
func DefaultRules() Rules {
	return Rules{
		Width:                 ScreenWidth,
		Height:                ScreenHeight,
		WallW:                 WallWidth,
		WallH:                 WallHeight,
		BaseSpeed:             BaseSpeed,
		TimeStep:              TimeStep,
		Lookahead:             LookaheadStep,
		SpawnMarginMode:       SpawnMarginWallWidth,
		PlayerHealth:          PlayerStartHealth,
		PlayerProjectileSpeed: PlayerProjectileSpeed,
		EnemyProjectileSpeed:  EnemyProjectileSpeed,
		MaxEnemies:            MaxEnemies,
		SpawnPeriod:           EnemySpawnPeriod,
		FirePeriod:            EnemyFirePeriod,
		EnemyMinHealth:        EnemyMinHealth,
		EnemyMaxHealth:        EnemyMaxHealth,
		FollowChance:          EnemyFollowChance,
		EnemyDescent:          EnemyDescent,
		FollowSpeed:           EnemyFollowSpeed,
		FollowDeadZone:        EnemyFollowDeadZ,
		DriftMin:              EnemyDriftMin,
		DriftMax:              EnemyDriftMax,
		ShipSize:              ShipSize,
		ProjectileSize:        ProjectileSize,
		ExplosionPeriod:       ExplosionFramePeriod,
		ExplosionFrames:       ExplosionFrames,
	}
}

// SpawnMargin is the distance kept from the side walls when placing new enemies.
func (r Rules) SpawnMargin() float64 {
	if r.SpawnMarginMode == SpawnMarginWallHeight {
		return r.WallH
	}
	return r.WallW
}
