// Package keyboard implements the Keyboard Facet of spec.md §4.8: key
// press/release scancode protocol and character-level typing built on
// top of the keymap package's character → key-sequence expansion.
package keyboard

import (
	"context"
	"fmt"
	"time"

	"rocinante-hid/internal/abi"
	"rocinante-hid/internal/capability"
	"rocinante-hid/internal/hid"
	"rocinante-hid/internal/keymap"
	"rocinante-hid/internal/preset"
)

// shiftSettleDelay separates a modifier's press/release from the key
// it composes with, so the kernel (and anything consuming the stream)
// observes the modifier as already down/up when the key edge lands.
const shiftSettleDelay = 10 * time.Millisecond

// Keyboard is the Keyboard Facet: a thin wrapper over a Device Core
// that knows the key press/release and character-typing protocols.
type Keyboard struct {
	core *hid.Core
}

// New constructs a keyboard Device Core from p and gates with
// hid.ErrWrongKind if p is not a keyboard preset.
func New(p preset.Preset, pollingHz int, profileID string, opts ...hid.Option) (*Keyboard, error) {
	if p.Kind != capability.KindKeyboard {
		return nil, hid.ErrWrongKind
	}

	core, err := hid.New(p, pollingHz, profileID, configure(p), opts...)
	if err != nil {
		return nil, err
	}

	return &Keyboard{core: core}, nil
}

// configure builds the Configurator the Device Core invokes during
// construction: EV_KEY/KEYBIT for every key the form factor supports,
// then EV_MSC/MSC_SCAN if scancode emission is advertised.
func configure(p preset.Preset) hid.Configurator {
	return func(fd uintptr, backend hid.Backend) error {
		if err := backend.IoctlInt(fd, abi.UISetEvBit, abi.EvKey); err != nil {
			return fmt.Errorf("EV_KEY: %w", err)
		}
		for _, code := range p.Keyboard.SupportedKeys() {
			if err := backend.IoctlInt(fd, abi.UISetKeyBit, code); err != nil {
				return fmt.Errorf("key %d: %w", code, err)
			}
		}

		if p.Keyboard.ScancodeSupported {
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
func (k *Keyboard) Close() error { return k.core.Close() }

func (k *Keyboard) scancodeFor(code int) int32 {
	return int32(code)
}

// PressKey enqueues the key's scancode (if advertised) and press
// event, then flushes.
func (k *Keyboard) PressKey(code int) error {
	return k.editKey(code, 1)
}

// ReleaseKey enqueues the key's scancode (if advertised) and release
// event, then flushes.
func (k *Keyboard) ReleaseKey(code int) error {
	return k.editKey(code, 0)
}

func (k *Keyboard) editKey(code int, value int32) error {
	if k.core.Preset().Keyboard.ScancodeSupported {
		if err := k.core.QueueEvent(abi.EvMsc, abi.MscScan, k.scancodeFor(code)); err != nil {
			return err
		}
	}
	if err := k.core.QueueEvent(abi.EvKey, uint16(code), value); err != nil {
		return err
	}
	return k.core.Flush()
}

// TapKey presses code, sleeps holdMs, then releases it. The sleep
// observes ctx cancellation.
func (k *Keyboard) TapKey(ctx context.Context, code int, holdMs int) error {
	if err := k.PressKey(code); err != nil {
		return err
	}

	if err := sleepCancellable(ctx, time.Duration(holdMs)*time.Millisecond); err != nil {
		return err
	}

	return k.ReleaseKey(code)
}

// UnmappableCharacterError reports that c has no known key sequence on
// the keyboard's layout.
type UnmappableCharacterError struct {
	Char rune
	Err  error
}

func (e *UnmappableCharacterError) Error() string {
	return fmt.Sprintf("keyboard: cannot type %q: %v", e.Char, e.Err)
}

func (e *UnmappableCharacterError) Unwrap() error { return e.Err }

// TypeChar resolves c through keymap.CharToKeys and types it: a single
// code taps directly; a [modifier, key] pair presses the modifier,
// waits for it to settle, taps the key, then releases the modifier.
func (k *Keyboard) TypeChar(ctx context.Context, c rune, holdMs int) error {
	codes, err := keymap.CharToKeys(c)
	if err != nil {
		return &UnmappableCharacterError{Char: c, Err: err}
	}

	if len(codes) == 1 {
		return k.TapKey(ctx, codes[0], holdMs)
	}

	modifier, key := codes[0], codes[1]

	if err := k.PressKey(modifier); err != nil {
		return err
	}
	if err := sleepCancellable(ctx, shiftSettleDelay); err != nil {
		return err
	}
	if err := k.TapKey(ctx, key, holdMs); err != nil {
		return err
	}
	if err := sleepCancellable(ctx, shiftSettleDelay); err != nil {
		return err
	}
	return k.ReleaseKey(modifier)
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
