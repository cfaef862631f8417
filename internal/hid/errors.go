package hid

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, stable for testing via errors.Is/errors.As —
// spec.md §7's error-kind table.
var (
	ErrNotCreated       = errors.New("hid: device not created")
	ErrWrongKind        = errors.New("hid: operation does not match device kind")
	ErrNoCursorOracle   = errors.New("hid: no cursor oracle available")
	ErrPhysTooLong      = errors.New("hid: physical path exceeds uinput buffer size")
)

// OpenFailedError wraps a failure to open /dev/uinput.
type OpenFailedError struct {
	Err error
}

func (e *OpenFailedError) Error() string {
	return fmt.Sprintf("hid: open /dev/uinput failed: %v (the device may require the process to be in the 'input' group, or an explicit device passthrough in a container)", e.Err)
}

func (e *OpenFailedError) Unwrap() error { return e.Err }

// CapabilityConfigFailedError wraps a failing UI_SET_*BIT ioctl.
type CapabilityConfigFailedError struct {
	Which string
	Err   error
}

func (e *CapabilityConfigFailedError) Error() string {
	return fmt.Sprintf("hid: capability configuration failed (%s): %v", e.Which, e.Err)
}

func (e *CapabilityConfigFailedError) Unwrap() error { return e.Err }

// SetupFailedError wraps a failing UI_DEV_SETUP ioctl.
type SetupFailedError struct {
	Err error
}

func (e *SetupFailedError) Error() string { return fmt.Sprintf("hid: UI_DEV_SETUP failed: %v", e.Err) }
func (e *SetupFailedError) Unwrap() error { return e.Err }

// PhysFailedError wraps a failing UI_SET_PHYS ioctl.
type PhysFailedError struct {
	Path string
	Err  error
}

func (e *PhysFailedError) Error() string {
	return fmt.Sprintf("hid: UI_SET_PHYS(%q) failed: %v", e.Path, e.Err)
}

func (e *PhysFailedError) Unwrap() error { return e.Err }

// CreateFailedError wraps a failing UI_DEV_CREATE ioctl.
type CreateFailedError struct {
	Err error
}

func (e *CreateFailedError) Error() string {
	return fmt.Sprintf("hid: UI_DEV_CREATE failed: %v", e.Err)
}

func (e *CreateFailedError) Unwrap() error { return e.Err }

// WriteFailedError wraps a short write or write error during emission.
type WriteFailedError struct {
	Written  int
	Expected int
	Err      error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("hid: write failed: wrote %d of %d bytes: %v", e.Written, e.Expected, e.Err)
}

func (e *WriteFailedError) Unwrap() error { return e.Err }
