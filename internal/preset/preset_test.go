package preset

import (
	"math/rand/v2"
	"testing"

	"rocinante-hid/internal/capability"
)

func TestAllPresetsValidate(t *testing.T) {
	for _, p := range All() {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %q failed Validate: %v", p.Name, err)
		}
	}
}

func TestByNameCaseInsensitiveRoundTrip(t *testing.T) {
	for _, p := range All() {
		got, ok := ByName(p.Name)
		if !ok {
			t.Fatalf("ByName(%q) not found", p.Name)
		}
		if got.Name != p.Name {
			t.Errorf("ByName(%q) returned %q", p.Name, got.Name)
		}

		if _, ok := ByName(upperLower(p.Name)); !ok {
			t.Errorf("ByName is not case-insensitive for %q", p.Name)
		}
	}
}

func upperLower(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		} else if r >= 'A' && r <= 'Z' {
			out[i] = r - 'A' + 'a'
		}
	}
	return string(out)
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := ByName("Nonexistent Device 9000"); ok {
		t.Fatalf("ByName found a preset that should not exist")
	}
}

func rng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRandomMouseIsAlwaysMouseKind(t *testing.T) {
	r := rng()
	for i := 0; i < 50; i++ {
		p := RandomMouse(r)
		if p.Kind != capability.KindMouse {
			t.Fatalf("RandomMouse returned kind %v", p.Kind)
		}
	}
}

func TestRandomKeyboardIsAlwaysKeyboardKind(t *testing.T) {
	r := rng()
	for i := 0; i < 50; i++ {
		p := RandomKeyboard(r)
		if p.Kind != capability.KindKeyboard {
			t.Fatalf("RandomKeyboard returned kind %v", p.Kind)
		}
	}
}

func TestRandomMatchingPairKinds(t *testing.T) {
	r := rng()
	for i := 0; i < 50; i++ {
		m, k := RandomMatchingPair(r)
		if m.Kind != capability.KindMouse {
			t.Fatalf("RandomMatchingPair mouse slot has kind %v", m.Kind)
		}
		if k.Kind != capability.KindKeyboard {
			t.Fatalf("RandomMatchingPair keyboard slot has kind %v", k.Kind)
		}
	}
}

func TestSelectPollingRateAlwaysSupported(t *testing.T) {
	r := rng()
	for _, p := range All() {
		for i := 0; i < 20; i++ {
			rate := SelectPollingRate(p, r)
			rates, _ := supportedRates(p)
			found := false
			for _, sr := range rates {
				if sr == rate {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("SelectPollingRate(%q) = %d not in supported set %v", p.Name, rate, rates)
			}
		}
	}
}

func TestSupportsHighResScroll(t *testing.T) {
	p, ok := ByName("Logitech G502 HERO Gaming Mouse")
	if !ok {
		t.Fatal("expected G502 HERO preset to exist")
	}
	if !SupportsHighResScroll(p) {
		t.Errorf("G502 HERO should support high-res scroll (hiResAxes)")
	}

	generic, ok := ByName("Generic Virtual Mouse")
	if !ok {
		t.Fatal("expected Generic Virtual Mouse preset to exist")
	}
	if SupportsHighResScroll(generic) {
		t.Errorf("Generic Virtual Mouse should not support high-res scroll (standardAxes)")
	}
}

func TestPresetNameWithinMaxLen(t *testing.T) {
	for _, p := range All() {
		if len(p.Name) > MaxNameLen {
			t.Errorf("preset %q exceeds MaxNameLen", p.Name)
		}
	}
}
