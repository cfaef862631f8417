package mouse

import (
	"context"
	"errors"
	"testing"

	"rocinante-hid/internal/abi"
	"rocinante-hid/internal/hid"
	"rocinante-hid/internal/preset"
)

const testPollHz = 1 // slow enough that the background ticker can't race a test's own Flush calls

func TestNewRejectsNonMousePreset(t *testing.T) {
	kbdPreset, ok := preset.ByName("Logitech G915 TKL Mechanical Keyboard")
	if !ok {
		t.Fatal("expected preset to exist")
	}

	_, err := New(kbdPreset, testPollHz, "profile", nil, hid.WithBackend(newMockBackend()))
	if !errors.Is(err, hid.ErrWrongKind) {
		t.Fatalf("New() with keyboard preset: got %v, want hid.ErrWrongKind", err)
	}
}

func TestConfiguratorIoctlOrder(t *testing.T) {
	p, ok := preset.ByName("Logitech G502 HERO Gaming Mouse")
	if !ok {
		t.Fatal("expected G502 HERO preset to exist")
	}

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	calls := backend.intCalls()
	if len(calls) == 0 {
		t.Fatal("no ioctl calls recorded")
	}
	if calls[0].val != abi.EvRel {
		t.Fatalf("first ioctl should set EV_REL, got %d", calls[0].val)
	}

	relEnd := 1 + len(p.Mouse.Axes)
	if calls[relEnd].val != abi.EvKey {
		t.Fatalf("ioctl after axes should set EV_KEY, got %d", calls[relEnd].val)
	}

	keyEnd := relEnd + 1 + len(p.Mouse.Buttons)
	if p.Mouse.ScancodeSupported {
		if calls[keyEnd].val != abi.EvMsc {
			t.Fatalf("ioctl after buttons should set EV_MSC, got %d", calls[keyEnd].val)
		}
		if calls[keyEnd+1].val != abi.MscScan {
			t.Fatalf("last ioctl should set MSC_SCAN, got %d", calls[keyEnd+1].val)
		}
	}
}

func mousePreset(t *testing.T, name string) preset.Preset {
	t.Helper()
	p, ok := preset.ByName(name)
	if !ok {
		t.Fatalf("preset %q not found", name)
	}
	return p
}

func TestPressButtonEmitsScancodeThenKey(t *testing.T) {
	p := mousePreset(t, "Logitech G502 HERO Gaming Mouse") // ScancodeSupported: true

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.PressButton(abi.BtnLeft); err != nil {
		t.Fatalf("PressButton: %v", err)
	}

	if len(backend.written) != 3 {
		t.Fatalf("got %d writes, want 3 (MSC_SCAN, EV_KEY, SYN_REPORT)", len(backend.written))
	}

	scan := abi.Unmarshal(backend.written[0])
	if scan.Type != abi.EvMsc || scan.Code != abi.MscScan || scan.Value != int32(abi.ScanBase) {
		t.Errorf("first frame should be MSC_SCAN with base scancode, got %+v", scan)
	}

	key := abi.Unmarshal(backend.written[1])
	if key.Type != abi.EvKey || key.Code != uint16(abi.BtnLeft) || key.Value != 1 {
		t.Errorf("second frame should be BTN_LEFT press, got %+v", key)
	}

	syn := abi.Unmarshal(backend.written[2])
	if syn.Type != abi.EvSyn || syn.Code != abi.SynReport {
		t.Errorf("third frame should be SYN_REPORT, got %+v", syn)
	}
}

func TestScrollHighResPrecedesCompatEvent(t *testing.T) {
	p := mousePreset(t, "Logitech G502 HERO Gaming Mouse") // hiResAxes

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.Scroll(2); err != nil {
		t.Fatalf("Scroll: %v", err)
	}

	if len(backend.written) != 3 {
		t.Fatalf("got %d writes, want 3 (HI_RES, WHEEL, SYN)", len(backend.written))
	}

	hiRes := abi.Unmarshal(backend.written[0])
	if hiRes.Code != abi.RelWheelHiRes || hiRes.Value != 240 {
		t.Errorf("first frame should be REL_WHEEL_HI_RES=240, got %+v", hiRes)
	}

	wheel := abi.Unmarshal(backend.written[1])
	if wheel.Code != abi.RelWheel || wheel.Value != 2 {
		t.Errorf("second frame should be REL_WHEEL=2, got %+v", wheel)
	}
}

func TestScrollWithoutHighResOnlyEmitsWheel(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse") // standardAxes, no hi-res

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.Scroll(1); err != nil {
		t.Fatalf("Scroll: %v", err)
	}

	if len(backend.written) != 2 {
		t.Fatalf("got %d writes, want 2 (WHEEL, SYN)", len(backend.written))
	}
}

func TestScrollZeroIsNoop(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse")

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.Scroll(0); err != nil {
		t.Fatalf("Scroll(0): %v", err)
	}
	if len(backend.written) != 0 {
		t.Fatalf("Scroll(0) should not write anything, wrote %d frames", len(backend.written))
	}
}

func TestMoveToOnlyEnqueuesChangedAxes(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse")

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.MoveTo(10, 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if err := m.core.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(backend.written) != 2 { // RelX + SYN only, dy == 0
		t.Fatalf("got %d writes, want 2 (RelX + SYN)", len(backend.written))
	}

	x, y := m.Position()
	if x != 10 || y != 0 {
		t.Fatalf("Position() = (%d,%d), want (10,0)", x, y)
	}
}

func TestSyncPositionWithoutOracle(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse")

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.SyncPosition(); !errors.Is(err, hid.ErrNoCursorOracle) {
		t.Fatalf("SyncPosition without oracle: got %v, want hid.ErrNoCursorOracle", err)
	}
	if m.Synced() {
		t.Fatalf("Synced() should be false after a failed sync")
	}
}

type fakeOracle struct{ x, y int }

func (f fakeOracle) ReadCursor() (int, int, error) { return f.x, f.y, nil }

func TestSyncPositionWithOracle(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse")

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", fakeOracle{x: 5, y: 9}, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.SyncPosition(); err != nil {
		t.Fatalf("SyncPosition: %v", err)
	}
	if !m.Synced() {
		t.Fatalf("Synced() should be true after a successful sync")
	}
	x, y := m.Position()
	if x != 5 || y != 9 {
		t.Fatalf("Position() = (%d,%d), want (5,9)", x, y)
	}
}

func TestClickPressesHoldsThenReleases(t *testing.T) {
	p := mousePreset(t, "Generic Virtual Mouse")

	backend := newMockBackend()
	m, err := New(p, testPollHz, "profile", nil, hid.WithBackend(backend))
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	defer m.Close()

	if err := m.Click(context.Background(), abi.BtnLeft, 1); err != nil {
		t.Fatalf("Click: %v", err)
	}

	// Generic Virtual Mouse has no scancode support: press is
	// [EV_KEY, SYN], release is [EV_KEY, SYN] — 4 frames total.
	if len(backend.written) != 4 {
		t.Fatalf("got %d writes, want 4", len(backend.written))
	}

	press := abi.Unmarshal(backend.written[0])
	if press.Value != 1 {
		t.Errorf("first key frame should be a press (value 1), got %+v", press)
	}
	release := abi.Unmarshal(backend.written[2])
	if release.Value != 0 {
		t.Errorf("third frame should be a release (value 0), got %+v", release)
	}
}
