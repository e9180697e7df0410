package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krusty/internal/assets"
	"krusty/internal/component"
	"krusty/internal/config"
	"krusty/internal/entity"
	"krusty/internal/event"
)

type collisionFixture struct {
	ecs    *entity.ECS
	sys    *CollisionSystem
	audio  *fakeAudio
	events *eventLog
}

func newCollisionFixture() *collisionFixture {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	sound := &fakeAudio{ready: true}
	return &collisionFixture{
		ecs:    ecs,
		sys:    NewCollisionSystem(ecs, config.DefaultRules(), d, sound, discardLogger()),
		audio:  sound,
		events: listen(d, event.PlayerHit, event.EnemyDestroyed),
	}
}

func TestEnemyBoltHitsPlayer(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	bolt := SpawnProjectile(f.ecs, component.FactionEnemy, 0, -370, -1)

	f.sys.Update()

	assert.Equal(t, 99, f.ecs.Healths[player].Value)
	assert.False(t, f.ecs.Alive(bolt))
	hits := f.events.ofType(event.PlayerHit)
	require.Len(t, hits, 1)
	assert.Equal(t, event.PlayerHitData{Projectile: bolt, Health: 99}, hits[0].Data)
}

func TestPlayerHealthIsNotClamped(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 0)
	SpawnProjectile(f.ecs, component.FactionEnemy, 10, -360, -1)
	SpawnProjectile(f.ecs, component.FactionEnemy, -10, -380, -1)

	f.sys.Update()

	assert.Equal(t, -2, f.ecs.Healths[player].Value)
	assert.Empty(t, f.ecs.Projectiles)
}

func TestOwnBoltsDoNotHitOwner(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 0, 300, 3, false)
	SpawnProjectile(f.ecs, component.FactionPlayer, 0, -370, 1.5)
	SpawnProjectile(f.ecs, component.FactionEnemy, 0, 300, -1)

	f.sys.Update()

	assert.Equal(t, 100, f.ecs.Healths[player].Value)
	assert.Equal(t, 3, f.ecs.Healths[enemy].Value)
	assert.Len(t, f.ecs.Projectiles, 2)
}

func TestMissedBoltSurvives(t *testing.T) {
	f := newCollisionFixture()
	spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 0, 300, 3, false)
	bolt := SpawnProjectile(f.ecs, component.FactionPlayer, 200, 300, 1.5)

	f.sys.Update()

	assert.True(t, f.ecs.Alive(bolt))
	assert.Equal(t, 3, f.ecs.Healths[enemy].Value)
}

func TestPlayerBoltDamagesEnemy(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 0, 300, 3, false)
	bolt := SpawnProjectile(f.ecs, component.FactionPlayer, 30, 250, 1.5)

	f.sys.Update()

	assert.False(t, f.ecs.Alive(bolt))
	assert.Equal(t, 2, f.ecs.Healths[enemy].Value)
	assert.Equal(t, 0, f.ecs.Scores[player].Value)
	assert.Empty(t, f.events.ofType(event.EnemyDestroyed))
}

func TestPlayerBoltDestroysEnemy(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 40, 300, 1, false)
	label := f.ecs.Children(enemy)[0]
	SpawnProjectile(f.ecs, component.FactionPlayer, 40, 300, 1.5)

	f.sys.Update()

	assert.False(t, f.ecs.Alive(enemy))
	assert.False(t, f.ecs.Alive(label), "health label goes with its enemy")
	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, 1, f.ecs.Scores[player].Value)

	require.Len(t, f.ecs.Explosions, 1)
	for id, exp := range f.ecs.Explosions {
		assert.Equal(t, component.Position{X: 40, Y: 300}, *f.ecs.Positions[id])
		assert.Equal(t, 0, exp.Frame)
		assert.Same(t, f.audio.handles[0], exp.Sound)
	}
	require.Len(t, f.audio.handles, 1)
	assert.Equal(t, assets.SoundExplosion, f.audio.handles[0].id)

	destroyed := f.events.ofType(event.EnemyDestroyed)
	require.Len(t, destroyed, 1)
	data := destroyed[0].Data.(event.EnemyDestroyedData)
	assert.Equal(t, enemy, data.ID)
	assert.Equal(t, 1, data.Score)
}

func TestOneKillPerEnemy(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 0, 300, 1, false)
	first := SpawnProjectile(f.ecs, component.FactionPlayer, -5, 300, 1.5)
	second := SpawnProjectile(f.ecs, component.FactionPlayer, 5, 300, 1.5)

	f.sys.Update()

	assert.False(t, f.ecs.Alive(enemy))
	assert.False(t, f.ecs.Alive(first), "the earlier bolt takes the kill")
	assert.True(t, f.ecs.Alive(second), "nothing left for the later bolt to hit")
	assert.Equal(t, 1, f.ecs.Scores[player].Value)
	assert.Len(t, f.events.ofType(event.EnemyDestroyed), 1)
	assert.Len(t, f.ecs.Explosions, 1)
}

func TestBoltDamagesOnlyOneEnemy(t *testing.T) {
	f := newCollisionFixture()
	spawnPlayer(f.ecs, 0, -370, 100)
	older := spawnEnemy(f.ecs, -30, 300, 3, false)
	newer := spawnEnemy(f.ecs, 30, 300, 3, false)
	SpawnProjectile(f.ecs, component.FactionPlayer, 0, 300, 1.5)

	f.sys.Update()

	assert.Equal(t, 2, f.ecs.Healths[older].Value)
	assert.Equal(t, 3, f.ecs.Healths[newer].Value)
}

func TestTwoBoltsShareTheKill(t *testing.T) {
	f := newCollisionFixture()
	player := spawnPlayer(f.ecs, 0, -370, 100)
	enemy := spawnEnemy(f.ecs, 0, 300, 2, false)
	SpawnProjectile(f.ecs, component.FactionPlayer, -5, 300, 1.5)
	SpawnProjectile(f.ecs, component.FactionPlayer, 5, 300, 1.5)

	f.sys.Update()

	assert.False(t, f.ecs.Alive(enemy))
	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, 1, f.ecs.Scores[player].Value)
	assert.Len(t, f.events.ofType(event.EnemyDestroyed), 1)
}

func TestKillWithoutPlayerIsNotScored(t *testing.T) {
	f := newCollisionFixture()
	enemy := spawnEnemy(f.ecs, 0, 300, 1, false)
	SpawnProjectile(f.ecs, component.FactionPlayer, 0, 300, 1.5)

	f.sys.Update()

	assert.False(t, f.ecs.Alive(enemy))
	destroyed := f.events.ofType(event.EnemyDestroyed)
	require.Len(t, destroyed, 1)
	assert.Equal(t, -1, destroyed[0].Data.(event.EnemyDestroyedData).Score)
}
