package abi

import "testing"

func TestUinputSetupSizeIs92Bytes(t *testing.T) {
	if UinputSetupSize != 92 {
		t.Fatalf("UinputSetupSize = %d, want 92 (the kernel's actual struct size)", UinputSetupSize)
	}
}

func TestSetupMarshalLength(t *testing.T) {
	s := Setup{Bustype: BusUSB, Vendor: 0x1234, Product: 0x5678, Version: 1, Name: "Test Device"}
	buf := s.Marshal()
	if len(buf) != UinputSetupSize {
		t.Fatalf("Marshal produced %d bytes, want %d", len(buf), UinputSetupSize)
	}
}

func TestSetupMarshalTruncatesLongName(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}

	s := Setup{Name: string(long)}
	buf := s.Marshal()

	nameField := buf[8 : 8+UinputMaxNameSize]
	nulIdx := -1
	for i, b := range nameField {
		if b == 0 {
			nulIdx = i
			break
		}
	}
	if nulIdx == -1 {
		t.Fatalf("name field has no terminating NUL for an oversized name")
	}
	if nulIdx != UinputMaxNameSize-1 {
		t.Fatalf("oversized name should terminate at byte %d, got %d", UinputMaxNameSize-1, nulIdx)
	}
}

func TestPhysBufferTruncatesAndTerminates(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'p'
	}

	buf := PhysBuffer(string(long))
	if len(buf) != UinputMaxNameSize {
		t.Fatalf("PhysBuffer length = %d, want %d", len(buf), UinputMaxNameSize)
	}
	if buf[UinputMaxNameSize-1] != 0 {
		t.Fatalf("oversized phys path must terminate with NUL at last byte")
	}
}

func TestKnownIoctlConstants(t *testing.T) {
	// Cross-checked against published linux/uinput.h values for x86-64.
	cases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"UISetEvBit", UISetEvBit, 0x40045564},
		{"UIDevCreate", UIDevCreate, 0x5501},
		{"UIDevSetup", UIDevSetup, 0x405c5503},
	}

	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = 0x%x, want 0x%x", c.name, c.got, c.want)
		}
	}
}
