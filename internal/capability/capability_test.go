package capability

import "testing"

func TestMouseValidateDefaultRateMustBeSupported(t *testing.T) {
	m := Mouse{SupportedRates: []int{125, 500, 1000}, DefaultRate: 500}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() with default in supported set: %v", err)
	}

	bad := Mouse{SupportedRates: []int{125, 500}, DefaultRate: 1000}
	if err := bad.Validate(); err == nil {
		t.Errorf("Validate() should reject a default rate outside the supported set")
	}
}

func TestKeyboardValidateDefaultRateMustBeSupported(t *testing.T) {
	k := Keyboard{SupportedRates: []int{125, 1000}, DefaultRate: 125}
	if err := k.Validate(); err != nil {
		t.Errorf("Validate() with default in supported set: %v", err)
	}

	bad := Keyboard{SupportedRates: []int{125}, DefaultRate: 250}
	if err := bad.Validate(); err == nil {
		t.Errorf("Validate() should reject a default rate outside the supported set")
	}
}

func TestMouseHasAxis(t *testing.T) {
	m := Mouse{Axes: []int{0x00, 0x01, 0x08}}
	if !m.HasAxis(0x08) {
		t.Errorf("HasAxis(0x08) = false, want true")
	}
	if m.HasAxis(0x0b) {
		t.Errorf("HasAxis(0x0b) = true, want false")
	}
}

func TestFullFormFactorIncludesNumpad(t *testing.T) {
	k := Keyboard{Form: FormFactorFull}
	keys := k.SupportedKeys()
	if len(keys) != len(fullLayoutKeys) {
		t.Fatalf("FULL form factor should expose all %d keys, got %d", len(fullLayoutKeys), len(keys))
	}
}

func TestTKLFormFactorOmitsNumpad(t *testing.T) {
	k := Keyboard{Form: FormFactorTKL}
	keys := k.SupportedKeys()

	for _, code := range keys {
		if isNumpadKey(code) {
			t.Fatalf("TKL form factor should omit numpad key %d", code)
		}
	}

	wantLen := 0
	for _, code := range fullLayoutKeys {
		if !isNumpadKey(code) {
			wantLen++
		}
	}
	if len(keys) != wantLen {
		t.Fatalf("TKL key count = %d, want %d", len(keys), wantLen)
	}
}

func TestKindString(t *testing.T) {
	if KindMouse.String() != "MOUSE" {
		t.Errorf("KindMouse.String() = %q", KindMouse.String())
	}
	if KindKeyboard.String() != "KEYBOARD" {
		t.Errorf("KindKeyboard.String() = %q", KindKeyboard.String())
	}
}
