// Package preset is the read-only registry of named device identities
// spec.md §4.3 describes: real-peripheral-shaped (name, vendor id,
// product id, capability record) bundles, plus the random/paired
// selection helpers an upstream caller uses to pick one. Presets carry
// no bus type; the Device Core advertises every preset on the USB bus.
package preset

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"rocinante-hid/internal/abi"
	"rocinante-hid/internal/capability"
)

// MaxNameLen is the largest UTF-8 byte length a preset name may have
// before Setup.Marshal truncates it (spec.md §3: "name (≤79 bytes UTF-8)").
const MaxNameLen = 79

// Preset is a named device identity bundled with exactly one of Mouse
// or Keyboard capabilities — spec.md §3's DevicePreset invariant.
type Preset struct {
	Name    string
	Vendor  uint16
	Product uint16
	Kind    capability.Kind

	Mouse    *capability.Mouse
	Keyboard *capability.Keyboard
}

// Validate checks the DevicePreset invariant: the capability slot
// matching Kind is present, the other is absent, and the name fits.
func (p Preset) Validate() error {
	if len(p.Name) > MaxNameLen {
		return fmt.Errorf("preset %q: name exceeds %d bytes", p.Name, MaxNameLen)
	}

	switch p.Kind {
	case capability.KindMouse:
		if p.Mouse == nil || p.Keyboard != nil {
			return fmt.Errorf("preset %q: mouse kind requires Mouse capabilities and no Keyboard capabilities", p.Name)
		}
		return p.Mouse.Validate()
	case capability.KindKeyboard:
		if p.Keyboard == nil || p.Mouse != nil {
			return fmt.Errorf("preset %q: keyboard kind requires Keyboard capabilities and no Mouse capabilities", p.Name)
		}
		return p.Keyboard.Validate()
	default:
		return fmt.Errorf("preset %q: unknown kind", p.Name)
	}
}

// gamingMouseButtons is the button set gaming mice beyond the minimum
// LEFT/RIGHT/MIDDLE set advertise.
var gamingMouseButtons = []int{
	abi.BtnLeft, abi.BtnRight, abi.BtnMiddle,
	abi.BtnSide, abi.BtnExtra, abi.BtnForward, abi.BtnBack, abi.BtnTask,
}

var minimalMouseButtons = []int{abi.BtnLeft, abi.BtnRight, abi.BtnMiddle}

var hiResAxes = []int{abi.RelX, abi.RelY, abi.RelWheel, abi.RelHWheel, abi.RelWheelHiRes, abi.RelHWheelHiRes}
var standardAxes = []int{abi.RelX, abi.RelY, abi.RelWheel}

var standardRates = []int{125, 500, 1000}
var allRates = []int{125, 250, 500, 1000}

// registryEntry pairs a Preset with the brand group it belongs to for
// RandomMatchingPair's same-brand sampling.
type registryEntry struct {
	preset Preset
	brand  string
}

var registry = []registryEntry{
	{brand: "logitech", preset: Preset{
		Name: "Logitech G502 HERO Gaming Mouse", Vendor: 0x046d, Product: 0xc08b, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: gamingMouseButtons, Axes: hiResAxes, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000, DPIStages: 5},
	}},
	{brand: "logitech", preset: Preset{
		Name: "Logitech G Pro X Superlight", Vendor: 0x046d, Product: 0xc094, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: minimalMouseButtons, Axes: hiResAxes, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000, DPIStages: 5},
	}},
	{brand: "logitech", preset: Preset{
		Name: "Logitech G915 TKL Mechanical Keyboard", Vendor: 0x046d, Product: 0xc33f, Kind: capability.KindKeyboard,
		Keyboard: &capability.Keyboard{Form: capability.FormFactorTKL, MediaKeys: true, MacroKeys: true, MacroKeyCount: 5, LEDs: true, KeyRepeat: true, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000},
	}},
	{brand: "razer", preset: Preset{
		Name: "Razer DeathAdder V2", Vendor: 0x1532, Product: 0x0084, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: gamingMouseButtons, Axes: standardAxes, ScancodeSupported: true, SupportedRates: standardRates, DefaultRate: 1000, DPIStages: 4},
	}},
	{brand: "razer", preset: Preset{
		Name: "Razer Viper Ultimate", Vendor: 0x1532, Product: 0x007a, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: gamingMouseButtons, Axes: hiResAxes, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000, DPIStages: 5},
	}},
	{brand: "razer", preset: Preset{
		Name: "Razer BlackWidow V3", Vendor: 0x1532, Product: 0x024e, Kind: capability.KindKeyboard,
		Keyboard: &capability.Keyboard{Form: capability.FormFactorFull, Numpad: true, MediaKeys: true, MacroKeys: false, LEDs: true, KeyRepeat: true, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000},
	}},
	{brand: "razer", preset: Preset{
		Name: "Razer Huntsman Mini", Vendor: 0x1532, Product: 0x0257, Kind: capability.KindKeyboard,
		Keyboard: &capability.Keyboard{Form: capability.FormFactor60, MediaKeys: false, LEDs: true, KeyRepeat: true, ScancodeSupported: true, SupportedRates: standardRates, DefaultRate: 1000},
	}},
	{brand: "steelseries", preset: Preset{
		Name: "SteelSeries Rival 600", Vendor: 0x1038, Product: 0x1724, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: gamingMouseButtons, Axes: standardAxes, ScancodeSupported: true, SupportedRates: standardRates, DefaultRate: 1000, DPIStages: 5},
	}},
	{brand: "steelseries", preset: Preset{
		Name: "SteelSeries Apex Pro TKL", Vendor: 0x1038, Product: 0x1614, Kind: capability.KindKeyboard,
		Keyboard: &capability.Keyboard{Form: capability.FormFactorTKL, MediaKeys: true, LEDs: true, KeyRepeat: true, ScancodeSupported: true, SupportedRates: allRates, DefaultRate: 1000},
	}},
	{brand: "generic", preset: Preset{
		Name: "Generic Virtual Mouse", Vendor: 0xffff, Product: 0x0001, Kind: capability.KindMouse,
		Mouse: &capability.Mouse{Buttons: minimalMouseButtons, Axes: standardAxes, ScancodeSupported: false, SupportedRates: []int{125}, DefaultRate: 125, DPIStages: 1},
	}},
	{brand: "generic", preset: Preset{
		Name: "Generic Virtual Keyboard", Vendor: 0xffff, Product: 0x0002, Kind: capability.KindKeyboard,
		Keyboard: &capability.Keyboard{Form: capability.FormFactorVirtual, ScancodeSupported: false, SupportedRates: []int{125}, DefaultRate: 125},
	}},
}

// All returns every registered preset (used by tests and listing).
func All() []Preset {
	out := make([]Preset, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.preset)
	}
	return out
}

func mousePresets() []registryEntry {
	return filterKind(capability.KindMouse)
}

func keyboardPresets() []registryEntry {
	return filterKind(capability.KindKeyboard)
}

func filterKind(kind capability.Kind) []registryEntry {
	out := make([]registryEntry, 0, len(registry))
	for _, e := range registry {
		if e.preset.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ByName looks up a preset by name, case-insensitively.
func ByName(name string) (Preset, bool) {
	for _, e := range registry {
		if strings.EqualFold(e.preset.Name, name) {
			return e.preset, true
		}
	}
	return Preset{}, false
}

// RandomMouse returns a uniformly chosen mouse preset.
func RandomMouse(rng *rand.Rand) Preset {
	entries := mousePresets()
	return entries[rng.IntN(len(entries))].preset
}

// RandomKeyboard returns a uniformly chosen keyboard preset.
func RandomKeyboard(rng *rand.Rand) Preset {
	entries := keyboardPresets()
	return entries[rng.IntN(len(entries))].preset
}

// RandomMatchingPair returns a (mouse, keyboard) pair. With probability
// 0.70 both are drawn from the same brand group; otherwise they are
// drawn independently.
func RandomMatchingPair(rng *rand.Rand) (Preset, Preset) {
	if rng.Float64() < 0.70 {
		brands := brandsWithBoth()
		if len(brands) > 0 {
			brand := brands[rng.IntN(len(brands))]
			mice := entriesOf(brand, capability.KindMouse)
			kbds := entriesOf(brand, capability.KindKeyboard)
			return mice[rng.IntN(len(mice))].preset, kbds[rng.IntN(len(kbds))].preset
		}
	}

	return RandomMouse(rng), RandomKeyboard(rng)
}

func entriesOf(brand string, kind capability.Kind) []registryEntry {
	out := make([]registryEntry, 0)
	for _, e := range registry {
		if e.brand == brand && e.preset.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func brandsWithBoth() []string {
	mice := map[string]bool{}
	kbds := map[string]bool{}
	order := make([]string, 0)
	seen := map[string]bool{}

	for _, e := range registry {
		if !seen[e.brand] {
			seen[e.brand] = true
			order = append(order, e.brand)
		}
		if e.preset.Kind == capability.KindMouse {
			mice[e.brand] = true
		} else {
			kbds[e.brand] = true
		}
	}

	out := make([]string, 0, len(order))
	for _, b := range order {
		if mice[b] && kbds[b] {
			out = append(out, b)
		}
	}
	return out
}

// SelectPollingRate returns a polling rate supported by preset. With
// probability 0.70 (or always, if the preset supports exactly one
// rate) the preset's default rate is returned; otherwise a rate is
// chosen uniformly from the non-default supported rates.
func SelectPollingRate(p Preset, rng *rand.Rand) int {
	rates, def := supportedRates(p)

	if len(rates) <= 1 || rng.Float64() < 0.70 {
		return def
	}

	alt := make([]int, 0, len(rates)-1)
	for _, r := range rates {
		if r != def {
			alt = append(alt, r)
		}
	}
	return alt[rng.IntN(len(alt))]
}

func supportedRates(p Preset) ([]int, int) {
	if p.Kind == capability.KindMouse {
		return p.Mouse.SupportedRates, p.Mouse.DefaultRate
	}
	return p.Keyboard.SupportedRates, p.Keyboard.DefaultRate
}

// SupportsHighResScroll reports whether a mouse preset's axis set
// includes REL_WHEEL_HI_RES.
func SupportsHighResScroll(p Preset) bool {
	if p.Kind != capability.KindMouse || p.Mouse == nil {
		return false
	}
	return p.Mouse.HasAxis(abi.RelWheelHiRes)
}
