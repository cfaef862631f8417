// Package capability holds the per-device-model capability records
// spec.md's Capability Catalog describes: which buttons, axes, form
// factor, and polling rates a given peripheral model advertises. The
// package is read-only data, not logic.
package capability

import "fmt"

// Kind selects which facet layers on a Device Core and which capability
// slot of a preset is consulted.
type Kind int

const (
	KindMouse Kind = iota
	KindKeyboard
)

func (k Kind) String() string {
	switch k {
	case KindMouse:
		return "MOUSE"
	case KindKeyboard:
		return "KEYBOARD"
	default:
		return "UNKNOWN"
	}
}

// FormFactor tags a keyboard's physical key layout.
type FormFactor int

const (
	FormFactorFull FormFactor = iota
	FormFactorTKL
	FormFactor60
	FormFactor65
	FormFactor75
	FormFactorVirtual
)

func (f FormFactor) String() string {
	switch f {
	case FormFactorFull:
		return "FULL"
	case FormFactorTKL:
		return "TKL"
	case FormFactor60:
		return "60%"
	case FormFactor65:
		return "65%"
	case FormFactor75:
		return "75%"
	case FormFactorVirtual:
		return "VIRTUAL"
	default:
		return "UNKNOWN"
	}
}

// Mouse enumerates everything a mouse model advertises to the kernel.
type Mouse struct {
	Buttons            []int
	Axes               []int
	ScancodeSupported  bool
	SupportedRates     []int // sorted ascending, Hz
	DefaultRate        int
	DPIStages          int // metadata only, never reaches the uinput boundary
}

// Validate checks the DefaultRate ∈ SupportedRates invariant spec.md
// §3 requires of MouseCapabilities.
func (m Mouse) Validate() error {
	for _, rate := range m.SupportedRates {
		if rate == m.DefaultRate {
			return nil
		}
	}
	return fmt.Errorf("capability: default polling rate %dHz not in supported set %v", m.DefaultRate, m.SupportedRates)
}

// HasAxis reports whether the mouse advertises the given REL_* axis code.
func (m Mouse) HasAxis(code int) bool {
	for _, a := range m.Axes {
		if a == code {
			return true
		}
	}
	return false
}

// Keyboard enumerates everything a keyboard model advertises.
type Keyboard struct {
	Form              FormFactor
	Numpad            bool
	MediaKeys         bool
	MacroKeys         bool
	MacroKeyCount     int
	LEDs              bool
	KeyRepeat         bool
	ScancodeSupported bool
	SupportedRates    []int
	DefaultRate       int
}

// Validate checks the DefaultRate ∈ SupportedRates invariant.
func (k Keyboard) Validate() error {
	for _, rate := range k.SupportedRates {
		if rate == k.DefaultRate {
			return nil
		}
	}
	return fmt.Errorf("capability: default polling rate %dHz not in supported set %v", k.DefaultRate, k.SupportedRates)
}

// SupportedKeys returns the kernel key codes this keyboard's form
// factor supports: FULL covers the 104-key US layout; TKL-style
// variants (TKL/60%/65%/75%) omit the numpad block.
func (k Keyboard) SupportedKeys() []int {
	if k.Form == FormFactorFull {
		keys := make([]int, len(fullLayoutKeys))
		copy(keys, fullLayoutKeys)
		return keys
	}

	keys := make([]int, 0, len(fullLayoutKeys))
	for _, code := range fullLayoutKeys {
		if isNumpadKey(code) {
			continue
		}
		keys = append(keys, code)
	}
	return keys
}
