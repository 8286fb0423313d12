package sim

import "fmt"

// BodyID encodes the world tick a body was spawned on (upper 32 bits) and the
// world's spawn serial (lower 32 bits). Serials start at 1, so the zero BodyID
// never names a body.
type BodyID uint64

// NewBodyID creates a BodyID from a spawn tick and a spawn serial.
func NewBodyID(tick uint32, serial uint32) BodyID {
	return BodyID(uint64(tick)<<32 | uint64(serial))
}

// Tick extracts the spawn tick from the body ID.
func (id BodyID) Tick() uint32 {
	return uint32(id >> 32)
}

// Serial extracts the spawn serial from the body ID.
func (id BodyID) Serial() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

func (id BodyID) String() string {
	return fmt.Sprintf("#%d@%d", id.Serial(), id.Tick())
}
