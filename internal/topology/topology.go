// Package topology derives the USB physical-path string a Device Core
// advertises via UI_SET_PHYS, deterministically from a profile-id and
// device kind, per spec.md §4.4.
package topology

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"regexp"

	"rocinante-hid/internal/capability"
)

// commonUSBSlots is the fixed set of PCI device/function addresses real
// motherboard USB controllers commonly expose.
var commonUSBSlots = []int{0x14, 0x1a, 0x1d, 0x1f}

// ValidPhysPath matches the physical-path shapes this package produces,
// both the direct-port and hub variants.
var ValidPhysPath = regexp.MustCompile(`^usb-[0-9a-f]{4}:[0-9a-f]{2}:[0-9a-f]{2}\.[0-9]-[0-9]+(\.[0-9]+)?/input[0-9]+$`)

func hashInt(input string) int32 {
	sum := sha256.Sum256([]byte(input))
	return int32(binary.BigEndian.Uint32(sum[0:4]))
}

func absMod(h int32, m int) int {
	r := int(h) % m
	if r < 0 {
		r += m
	}
	return r
}

// Generate produces a non-hub physical path of the form
// "usb-0000:00:XX.0-P/input0" for (profileID, kind). It is a pure
// function: equal inputs always yield byte-equal output.
func Generate(profileID string, kind capability.Kind) string {
	var (
		h1   = hashInt(fmt.Sprintf("%s:usb-controller", profileID))
		slot = commonUSBSlots[absMod(h1, len(commonUSBSlots))]

		h2   = hashInt(fmt.Sprintf("%s:usb-port:%s", profileID, kind))
		port = 1 + absMod(h2, 10)
	)

	if kind == capability.KindKeyboard {
		port = 1 + (port-1+1)%10
	}

	return fmt.Sprintf("usb-0000:00:%02x.0-%d/input0", slot, port)
}

// GenerateHub produces the hub-topology variant
// "usb-0000:00:XX.0-H.P/input0", where H ∈ [1,4] and P ∈ [1,7]. It
// reuses the same two digests as Generate so a hub path for a given
// (profileID, kind) is just as deterministic.
func GenerateHub(profileID string, kind capability.Kind) string {
	var (
		h1   = hashInt(fmt.Sprintf("%s:usb-controller", profileID))
		slot = commonUSBSlots[absMod(h1, len(commonUSBSlots))]

		h2      = hashInt(fmt.Sprintf("%s:usb-port:%s", profileID, kind))
		hubPort = 1 + absMod(h2, 4)
		devPort = 1 + absMod(h2/4, 7)
	)

	if kind == capability.KindKeyboard {
		devPort = 1 + (devPort-1+1)%7
	}

	return fmt.Sprintf("usb-0000:00:%02x.0-%d.%d/input0", slot, hubPort, devPort)
}
