// Package mouse implements the Mouse Facet of spec.md §4.7: relative
// movement, button scancode protocol, and standard/high-res scroll, on
// top of a Device Core.
package mouse

import (
	"context"
	"fmt"
	"time"

	"rocinante-hid/internal/abi"
	"rocinante-hid/internal/capability"
	"rocinante-hid/internal/hid"
	"rocinante-hid/internal/preset"
)

// CursorOracle reads the host's current cursor position. It is the
// "external cursor reader" spec.md §4.7/§6 describes; a headless
// environment has none.
type CursorOracle interface {
	ReadCursor() (x, y int, err error)
}

// Mouse is the Mouse Facet: a Device Core plus the tracked cursor
// position spec.md §3 assigns to mouse facet state.
type Mouse struct {
	core   *hid.Core
	cursor CursorOracle

	x, y   int
	synced bool
}

// New constructs a mouse Device Core from p and gates with
// hid.ErrWrongKind if p is not a mouse preset. cursor may be nil, in
// which case SyncPosition always fails with hid.ErrNoCursorOracle
// (e.g. a headless environment).
func New(p preset.Preset, pollingHz int, profileID string, cursor CursorOracle, opts ...hid.Option) (*Mouse, error) {
	if p.Kind != capability.KindMouse {
		return nil, hid.ErrWrongKind
	}

	core, err := hid.New(p, pollingHz, profileID, configure(p), opts...)
	if err != nil {
		return nil, err
	}

	return &Mouse{core: core, cursor: cursor}, nil
}

// configure builds the Configurator the Device Core invokes during
// construction: EV_REL/RELBIT for the preset's axes, EV_KEY/KEYBIT for
// its buttons, and EV_MSC/MSC_SCAN if scancode emission is advertised
// — in that order, matching spec.md scenario S1.
func configure(p preset.Preset) hid.Configurator {
	return func(fd uintptr, backend hid.Backend) error {
		if err := backend.IoctlInt(fd, abi.UISetEvBit, abi.EvRel); err != nil {
			return fmt.Errorf("EV_REL: %w", err)
		}
		for _, axis := range p.Mouse.Axes {
			if err := backend.IoctlInt(fd, abi.UISetRelBit, axis); err != nil {
				return fmt.Errorf("REL axis %d: %w", axis, err)
			}
		}

		if err := backend.IoctlInt(fd, abi.UISetEvBit, abi.EvKey); err != nil {
			return fmt.Errorf("EV_KEY: %w", err)
		}
		for _, btn := range p.Mouse.Buttons {
			if err := backend.IoctlInt(fd, abi.UISetKeyBit, btn); err != nil {
				return fmt.Errorf("button %d: %w", btn, err)
			}
		}

		if p.Mouse.ScancodeSupported {
			if err := backend.IoctlInt(fd, abi.UISetEvBit, abi.EvMsc); err != nil {
				return fmt.Errorf("EV_MSC: %w", err)
			}
			if err := backend.IoctlInt(fd, abi.UISetMscBit, abi.MscScan); err != nil {
				return fmt.Errorf("MSC_SCAN: %w", err)
			}
		}

		return nil
	}
}

// Close releases the underlying Device Core.
func (m *Mouse) Close() error { return m.core.Close() }

// SyncPosition reads the current cursor position from the external
// cursor oracle and marks the facet synced.
func (m *Mouse) SyncPosition() error {
	if m.cursor == nil {
		return hid.ErrNoCursorOracle
	}

	x, y, err := m.cursor.ReadCursor()
	if err != nil {
		return fmt.Errorf("mouse: sync position: %w", err)
	}

	m.x, m.y = x, y
	m.synced = true
	return nil
}

// Synced reports whether SyncPosition has succeeded at least once.
func (m *Mouse) Synced() bool { return m.synced }

// Position returns the facet's tracked cursor position.
func (m *Mouse) Position() (x, y int) { return m.x, m.y }

// MoveTo enqueues the relative delta from the tracked position to
// (x, y) — only the axes that actually changed — and updates the
// tracked position. It does not flush; the polling tick commits the
// frame.
func (m *Mouse) MoveTo(x, y int) error {
	dx, dy := x-m.x, y-m.y

	if dx != 0 {
		if err := m.core.QueueEvent(abi.EvRel, abi.RelX, int32(dx)); err != nil {
			return err
		}
	}
	if dy != 0 {
		if err := m.core.QueueEvent(abi.EvRel, abi.RelY, int32(dy)); err != nil {
			return err
		}
	}

	m.x, m.y = x, y
	return nil
}

// MoveBy enqueues the given deltas directly and updates the tracked
// position. It does not flush.
func (m *Mouse) MoveBy(dx, dy int) error {
	if err := m.core.QueueEvent(abi.EvRel, abi.RelX, int32(dx)); err != nil {
		return err
	}
	if err := m.core.QueueEvent(abi.EvRel, abi.RelY, int32(dy)); err != nil {
		return err
	}

	m.x += dx
	m.y += dy
	return nil
}

func (m *Mouse) scancodeFor(btn int) int32 {
	return int32(abi.ScanBase + (btn - abi.BtnLeft))
}

// PressButton enqueues the button's scancode (if advertised) and press
// event, then flushes.
func (m *Mouse) PressButton(btn int) error {
	return m.editButton(btn, 1)
}

// ReleaseButton enqueues the button's scancode (if advertised) and
// release event, then flushes.
func (m *Mouse) ReleaseButton(btn int) error {
	return m.editButton(btn, 0)
}

func (m *Mouse) editButton(btn int, value int32) error {
	if m.core.Preset().Mouse.ScancodeSupported {
		if err := m.core.QueueEvent(abi.EvMsc, abi.MscScan, m.scancodeFor(btn)); err != nil {
			return err
		}
	}
	if err := m.core.QueueEvent(abi.EvKey, uint16(btn), value); err != nil {
		return err
	}
	return m.core.Flush()
}

// Click presses btn, sleeps holdMs, then releases it. The sleep
// observes ctx cancellation.
func (m *Mouse) Click(ctx context.Context, btn int, holdMs int) error {
	if err := m.PressButton(btn); err != nil {
		return err
	}

	if err := sleepCancellable(ctx, time.Duration(holdMs)*time.Millisecond); err != nil {
		return err
	}

	return m.ReleaseButton(btn)
}

// Scroll emits n vertical wheel notches. If the preset supports
// high-resolution scroll, REL_WHEEL_HI_RES (120 units/notch) precedes
// the compatibility REL_WHEEL event; otherwise only REL_WHEEL is sent.
func (m *Mouse) Scroll(n int) error {
	if n == 0 {
		return nil
	}

	if preset.SupportsHighResScroll(m.core.Preset()) {
		if err := m.core.QueueEvent(abi.EvRel, abi.RelWheelHiRes, int32(n*abi.HiResWheelDetent)); err != nil {
			return err
		}
	}
	if err := m.core.QueueEvent(abi.EvRel, abi.RelWheel, int32(n)); err != nil {
		return err
	}

	return m.core.Flush()
}

// ScrollHorizontal is the horizontal-axis symmetric of Scroll, using
// the HWHEEL codes.
func (m *Mouse) ScrollHorizontal(n int) error {
	if n == 0 {
		return nil
	}

	if preset.SupportsHighResScroll(m.core.Preset()) {
		if err := m.core.QueueEvent(abi.EvRel, abi.RelHWheelHiRes, int32(n*abi.HiResWheelDetent)); err != nil {
			return err
		}
	}
	if err := m.core.QueueEvent(abi.EvRel, abi.RelHWheel, int32(n)); err != nil {
		return err
	}

	return m.core.Flush()
}

func sleepCancellable(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
