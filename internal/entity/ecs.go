// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"krusty/internal/component"
	"krusty/internal/types"
)

// ECS is the entity store. One map per component type, keyed by entity ID.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Scores        map[types.EntityID]*component.Score
	Players       map[types.EntityID]*component.Player
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Explosions    map[types.EntityID]*component.Explosion
	Sprites       map[types.EntityID]*component.Sprite
	Texts         map[types.EntityID]*component.Text
	ScreenAnchors map[types.EntityID]*component.ScreenAnchor
	Attachments   map[types.EntityID]*component.Attachment

	children map[types.EntityID][]types.EntityID
	pending  []types.EntityID // despawns deferred to the end of the tick
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Scores:        make(map[types.EntityID]*component.Score),
		Players:       make(map[types.EntityID]*component.Player),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Explosions:    make(map[types.EntityID]*component.Explosion),
		Sprites:       make(map[types.EntityID]*component.Sprite),
		Texts:         make(map[types.EntityID]*component.Text),
		ScreenAnchors: make(map[types.EntityID]*component.ScreenAnchor),
		Attachments:   make(map[types.EntityID]*component.Attachment),
		children:      make(map[types.EntityID][]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Attach makes child a dependent of parent: despawning the parent recursively removes it.
func (ecs *ECS) Attach(parent, child types.EntityID, offsetX, offsetY float64) {
	ecs.Attachments[child] = &component.Attachment{Parent: parent, OffsetX: offsetX, OffsetY: offsetY}
	ecs.children[parent] = append(ecs.children[parent], child)
}

// Children returns the direct children of an entity.
func (ecs *ECS) Children(parent types.EntityID) []types.EntityID {
	return ecs.children[parent]
}

// Despawn removes every component of one entity. Its children are left alone.
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Scores, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosions, id)
	delete(ecs.Sprites, id)
	delete(ecs.Texts, id)
	delete(ecs.ScreenAnchors, id)
	if att, ok := ecs.Attachments[id]; ok {
		ecs.detach(att.Parent, id)
		delete(ecs.Attachments, id)
	}
}

// DespawnRecursive removes an entity and, depth first, all of its children.
func (ecs *ECS) DespawnRecursive(id types.EntityID) {
	for _, child := range ecs.children[id] {
		// detach is skipped: the whole list is dropped below
		delete(ecs.Attachments, child)
		ecs.DespawnRecursive(child)
	}
	delete(ecs.children, id)
	ecs.Despawn(id)
}

// QueueDespawn defers a recursive despawn until FlushDespawns, so that systems
// later in the same tick can still read the entity.
func (ecs *ECS) QueueDespawn(id types.EntityID) {
	ecs.pending = append(ecs.pending, id)
}

// FlushDespawns applies queued despawns. Called once at the end of every tick.
func (ecs *ECS) FlushDespawns() {
	for _, id := range ecs.pending {
		ecs.DespawnRecursive(id)
	}
	ecs.pending = ecs.pending[:0]
}

// Alive reports whether the entity still has any component.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if _, ok := ecs.Positions[id]; ok {
		return true
	}
	if _, ok := ecs.Texts[id]; ok {
		return true
	}
	_, ok := ecs.Attachments[id]
	return ok
}

// PlayerID returns the single player entity. ok is false when there is not
// exactly one.
func (ecs *ECS) PlayerID() (types.EntityID, bool) {
	if len(ecs.Players) != 1 {
		return 0, false
	}
	for id := range ecs.Players {
		return id, true
	}
	return 0, false
}

func (ecs *ECS) detach(parent, child types.EntityID) {
	list := ecs.children[parent]
	if i := slices.Index(list, child); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(ecs.children, parent)
		return
	}
	ecs.children[parent] = list
}

// SortedIDs returns the keys of a component map in spawn order. Systems iterate
// through it so that results do not depend on map order.
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
