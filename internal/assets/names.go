package assets

// ImageID names a sprite resolved by the renderer.
type ImageID string

const (
	ImagePlayer      ImageID = "player"
	ImageEnemy       ImageID = "enemy"
	ImageFollower    ImageID = "follower"
	ImagePlayerLaser ImageID = "player_laser"
	ImageEnemyLaser  ImageID = "enemy_laser"
	ImageExplosion   ImageID = "explosion" // sprite sheet
)

// SoundID names a sound effect held by the SoundBank.
type SoundID string

const (
	SoundPlayerFire SoundID = "player_fire"
	SoundEnemyFire  SoundID = "enemy_fire"
	SoundExplosion  SoundID = "explosion"
)

// AllSounds lists every sound the game requests.
var AllSounds = []SoundID{SoundPlayerFire, SoundEnemyFire, SoundExplosion}
