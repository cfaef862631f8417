package abi

import "encoding/binary"

// UinputSetupSize is the byte size of struct uinput_setup on x86-64:
// bustype,vendor,product,version (u16 each, 8 bytes) + name[80] +
// ff_effects_max (u32) = 92 bytes. The source this spec was distilled
// from wrote only 84 bytes (omitting the trailing ff_effects_max word);
// per spec §9 that is a bug in the original, not a target to replicate.
const UinputSetupSize = 2 + 2 + 2 + 2 + UinputMaxNameSize + 4

// Setup is the in-memory form of struct uinput_setup.
type Setup struct {
	Bustype      uint16
	Vendor       uint16
	Product      uint16
	Version      uint16
	Name         string
	FFEffectsMax uint32
}

// Marshal serializes s into a UinputSetupSize-byte buffer. Name is
// copied NUL-padded into the fixed 80-byte field; a name of 80 bytes or
// longer is truncated to 79 bytes plus a trailing NUL so the field is
// always terminated.
func (s Setup) Marshal() []byte {
	buf := make([]byte, UinputSetupSize)

	binary.LittleEndian.PutUint16(buf[0:2], s.Bustype)
	binary.LittleEndian.PutUint16(buf[2:4], s.Vendor)
	binary.LittleEndian.PutUint16(buf[4:6], s.Product)
	binary.LittleEndian.PutUint16(buf[6:8], s.Version)

	name := s.Name
	if len(name) >= UinputMaxNameSize {
		name = name[:UinputMaxNameSize-1]
	}
	copy(buf[8:8+UinputMaxNameSize], name)

	binary.LittleEndian.PutUint32(buf[8+UinputMaxNameSize:], s.FFEffectsMax)

	return buf
}

// PhysBuffer pads path into a NUL-terminated UinputMaxNameSize-byte
// buffer for UI_SET_PHYS, truncating to 79 bytes plus NUL if necessary.
func PhysBuffer(path string) []byte {
	buf := make([]byte, UinputMaxNameSize)

	if len(path) >= UinputMaxNameSize {
		path = path[:UinputMaxNameSize-1]
	}
	copy(buf, path)

	return buf
}
