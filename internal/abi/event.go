package abi

import (
	"encoding/binary"
	"time"
)

// EventSize is the on-wire size of one input_event on a 64-bit kernel:
// two 8-byte timestamp fields plus type/code/value. Neither this nor
// SetupSize relies on implicit struct padding — both are serialized by
// explicit byte-offset writes below.
const EventSize = 24

// Event is the in-memory form of one struct input_event. Timestamps are
// filled in at serialization time from wall-clock milliseconds, never
// carried across a queued event's lifetime, matching spec's "derived
// from wall-clock milliseconds at emission time" requirement.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Marshal serializes e into buf using the fixed 24-byte little-endian
// layout: sec(i64) | usec(i64) | type(u16) | code(u16) | value(i32).
// buf must be at least EventSize bytes; Marshal never allocates, so the
// same buffer can be reused across the lifetime of a Device Core.
func (e Event) Marshal(buf []byte) {
	var (
		now  = time.Now()
		sec  = now.Unix()
		usec = int64(now.Nanosecond()/1_000_000) * 1000
	)

	binary.LittleEndian.PutUint64(buf[0:8], uint64(sec))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(usec))
	binary.LittleEndian.PutUint16(buf[16:18], e.Type)
	binary.LittleEndian.PutUint16(buf[18:20], e.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(e.Value))
}

// Unmarshal parses a 24-byte buffer back into an Event, discarding the
// timestamp. It exists so the on-wire layout can be round-tripped in
// tests without depending on a kernel device.
func Unmarshal(buf []byte) Event {
	return Event{
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}
}
