// Package world tracks live movable entities (players, NPCs, projectiles)
// by tile and supplies the dynamic-obstacle predicates the path engine
// consumes. The engine itself never knows about entities; movers build an
// Obstacles bundle from here per search call.
package world

import (
	"sync"

	"github.com/udisondev/jxqgo/internal/game/geo"
)

// Object is a movable entity occupying a single tile.
type Object struct {
	ID    uint32
	Tile  geo.Tile
	Group uint32
	// Blocking marks the object as a walking obstacle for others.
	// Projectiles and ghosts leave it false.
	Blocking bool
}

// World is the occupancy index. Concurrent-safe; reads take the shared
// lock, so per-frame searches can query it from the simulation step.
type World struct {
	mu      sync.RWMutex
	objects map[uint32]Object
	byTile  map[geo.Tile][]uint32
}

// New creates an empty world.
func New() *World {
	return &World{
		objects: make(map[uint32]Object, 64),
		byTile:  make(map[geo.Tile][]uint32, 64),
	}
}

// Upsert adds an object or moves an existing one to its new tile.
func (w *World) Upsert(obj Object) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if old, ok := w.objects[obj.ID]; ok {
		w.unindex(old)
	}
	w.objects[obj.ID] = obj
	w.byTile[obj.Tile] = append(w.byTile[obj.Tile], obj.ID)
}

// Remove deletes an object. Unknown IDs are a no-op.
func (w *World) Remove(id uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	obj, ok := w.objects[id]
	if !ok {
		return
	}
	w.unindex(obj)
	delete(w.objects, id)
}

// Move relocates an object to a new tile. Returns false for unknown IDs.
func (w *World) Move(id uint32, to geo.Tile) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	obj, ok := w.objects[id]
	if !ok {
		return false
	}
	w.unindex(obj)
	obj.Tile = to
	w.objects[id] = obj
	w.byTile[to] = append(w.byTile[to], id)
	return true
}

// Get returns an object by ID.
func (w *World) Get(id uint32) (Object, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	obj, ok := w.objects[id]
	return obj, ok
}

// Count returns the number of tracked objects.
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.objects)
}

// ObjectsAt returns all objects standing on a tile.
func (w *World) ObjectsAt(t geo.Tile) []Object {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := w.byTile[t]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.objects[id])
	}
	return out
}

// BlockerAt reports whether a blocking object other than exclude stands on
// the tile.
func (w *World) BlockerAt(t geo.Tile, exclude uint32) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, id := range w.byTile[t] {
		if id == exclude {
			continue
		}
		if w.objects[id].Blocking {
			return true
		}
	}
	return false
}

// QueryRadius returns all objects whose tile center lies within radius
// pixels of center.
func (w *World) QueryRadius(center geo.Vector, radius float64) []Object {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []Object
	for _, obj := range w.objects {
		pos := geo.ToPixelPosition(obj.Tile.Col, obj.Tile.Row)
		if pos.Sub(center).Length() <= radius {
			out = append(out, obj)
		}
	}
	return out
}

// QueryRadiusGroup is QueryRadius restricted to one group, used for
// enemy lookup when targeting.
func (w *World) QueryRadiusGroup(center geo.Vector, radius float64, group uint32) []Object {
	var out []Object
	for _, obj := range w.QueryRadius(center, radius) {
		if obj.Group == group {
			out = append(out, obj)
		}
	}
	return out
}

// Obstacles builds the predicate bundle for a mover: terrain classifiers
// plus occupancy by any blocking object other than the mover itself.
func (w *World) Obstacles(terrain *geo.Terrain, selfID uint32) geo.Obstacles {
	obs := geo.TerrainObstacles(terrain)
	obs.HasDynamic = func(t geo.Tile) bool {
		return w.BlockerAt(t, selfID)
	}
	return obs
}

// unindex removes the object's ID from its tile bucket. Caller holds the
// write lock.
func (w *World) unindex(obj Object) {
	ids := w.byTile[obj.Tile]
	for i, id := range ids {
		if id == obj.ID {
			ids[i] = ids[len(ids)-1]
			ids = ids[:len(ids)-1]
			break
		}
	}
	if len(ids) == 0 {
		delete(w.byTile, obj.Tile)
		return
	}
	w.byTile[obj.Tile] = ids
}
