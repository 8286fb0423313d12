package sim

// Commands buffers structural changes to a World while systems iterate over
// it. The buffer is flushed once at the end of every frame.
type Commands struct {
	spawns   []Body
	despawns []despawnCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type despawnCommand struct {
	id     BodyID
	reason CullReason
}

// Spawn queues a body to join the active set.
func (c *Commands) Spawn(b Body) {
	c.spawns = append(c.spawns, b)
}

// Despawn queues the removal of a body, recording why it left.
func (c *Commands) Despawn(id BodyID, reason CullReason) {
	c.despawns = append(c.despawns, despawnCommand{id: id, reason: reason})
}

// Defer queues a function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.despawns) + len(c.defers)
}

// Flush applies despawns, then spawns, then deferred functions, and resets the
// buffer. Despawning an ID twice is a no-op.
func (c *Commands) Flush(w *World) {
	for _, cmd := range c.despawns {
		w.despawn(cmd.id, cmd.reason)
	}

	for _, b := range c.spawns {
		w.Spawn(b)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
}
