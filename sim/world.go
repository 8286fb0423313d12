package sim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

type bodyEntry struct {
	id   BodyID
	body Body
}

// World holds the attractor and the active set of bodies. Bodies live in an
// index-stable pool; a BodyID stays valid across Compact.
type World struct {
	cfg       Config
	attractor Attractor

	bodies pool[bodyEntry]
	slots  *intmap.Map[BodyID, int]

	tick   uint64
	serial uint32
	stats  worldCounters
}

type worldCounters struct {
	spawned     uint64
	despawned   uint64
	offScreen   uint64
	collided    uint64
	compactions uint64
}

// NewWorld validates cfg and creates a world with the attractor at the centre
// of the visible rectangle.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &World{
		cfg: cfg,
		attractor: Attractor{
			Pos:    cfg.Center(),
			Mass:   cfg.AttractorMass,
			Radius: cfg.AttractorRadius,
		},
		slots: intmap.New[BodyID, int](64),
	}, nil
}

func (w *World) Config() Config {
	return w.cfg
}

func (w *World) Attractor() Attractor {
	return w.attractor
}

// Tick returns the number of frames the world has advanced.
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) advance() uint64 {
	w.tick++
	return w.tick
}

// Spawn adds b to the active set and returns its ID.
func (w *World) Spawn(b Body) BodyID {
	w.serial++
	id := NewBodyID(uint32(w.tick), w.serial)
	slot := w.bodies.Append(bodyEntry{id: id, body: b})
	w.slots.Put(id, slot)
	w.stats.spawned++
	return id
}

// Despawn removes a body from the active set. It returns false if the ID does
// not name an active body.
func (w *World) Despawn(id BodyID) bool {
	return w.despawn(id, Keep)
}

func (w *World) despawn(id BodyID, reason CullReason) bool {
	slot, ok := w.slots.Get(id)
	if !ok {
		return false
	}

	w.slots.Del(id)
	w.bodies.Delete(slot)
	w.stats.despawned++

	switch reason {
	case OffScreen:
		w.stats.offScreen++
	case Collided:
		w.stats.collided++
	}
	return true
}

// Body returns the active body with the given ID, or nil.
func (w *World) Body(id BodyID) *Body {
	slot, ok := w.slots.Get(id)
	if !ok {
		return nil
	}
	entry := w.bodies.Get(slot)
	if entry == nil {
		return nil
	}
	return &entry.body
}

// Len returns the number of active bodies.
func (w *World) Len() int {
	return w.bodies.Len()
}

// Bodies iterates over the active set in slot order. Despawning the yielded
// body is safe; spawns should go through Commands.
func (w *World) Bodies() iter.Seq2[BodyID, *Body] {
	return func(yield func(BodyID, *Body) bool) {
		for slot := range w.bodies.Iter() {
			entry := w.bodies.Get(slot)
			if !yield(entry.id, &entry.body) {
				return
			}
		}
	}
}

// Compact removes the holes left by despawned bodies. IDs remain valid.
func (w *World) Compact() {
	if w.bodies.Free() == 0 {
		return
	}

	w.bodies.Compact()
	w.slots.Clear()
	for slot := range w.bodies.Iter() {
		w.slots.Put(w.bodies.Get(slot).id, slot)
	}
	w.stats.compactions++
}

// fragmentation returns the share of pool slots that are empty.
func (w *World) fragmentation() float64 {
	if w.bodies.Slots() == 0 {
		return 0
	}
	return float64(w.bodies.Free()) / float64(w.bodies.Slots())
}

// WorldStats is a snapshot of the world's bookkeeping.
type WorldStats struct {
	Tick        uint64
	Bodies      int
	Slots       int
	FreeSlots   int
	Spawned     uint64
	Despawned   uint64
	OffScreen   uint64
	Collided    uint64
	Compactions uint64
}

// CollectStats gathers statistics about the world's current state.
func (w *World) CollectStats() *WorldStats {
	return &WorldStats{
		Tick:        w.tick,
		Bodies:      w.bodies.Len(),
		Slots:       w.bodies.Slots(),
		FreeSlots:   w.bodies.Free(),
		Spawned:     w.stats.spawned,
		Despawned:   w.stats.despawned,
		OffScreen:   w.stats.offScreen,
		Collided:    w.stats.collided,
		Compactions: w.stats.compactions,
	}
}
