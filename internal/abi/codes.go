// Package abi mirrors the Linux kernel's uinput/input-event-codes ABI:
// event type and code constants, the ioctl request numbers uinput
// expects, and the fixed-layout wire structs written to /dev/uinput.
//
// Values here must match linux/input-event-codes.h and linux/uinput.h
// exactly. The event type and code constants are transcribed from the
// kernel headers; the ioctl request numbers in ioctl.go are computed
// with the headers' _IO/_IOW encoding.
package abi

// Event types (struct input_event.type).
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvRel = 0x02
	EvAbs = 0x03
	EvMsc = 0x04
)

// Synchronization and miscellaneous codes.
const (
	SynReport = 0x00
	MscScan   = 0x04
)

// Relative axis codes (struct input_event.code when type == EvRel).
const (
	RelX           = 0x00
	RelY           = 0x01
	RelHWheel      = 0x06
	RelWheel       = 0x08
	RelWheelHiRes  = 0x0b
	RelHWheelHiRes = 0x0c
)

// Mouse button codes.
const (
	BtnLeft    = 0x110
	BtnRight   = 0x111
	BtnMiddle  = 0x112
	BtnSide    = 0x113
	BtnExtra   = 0x114
	BtnForward = 0x115
	BtnBack    = 0x116
	BtnTask    = 0x117
)

// Bus types (struct input_id.bustype).
const (
	BusUSB       = 0x03
	BusBluetooth = 0x05
	BusVirtual   = 0x06
)

// Misc protocol constants.
const (
	UinputMaxNameSize = 80
	HiResWheelDetent  = 120

	// ScanBase is the base MSC_SCAN value mouse buttons are offset from:
	// scancode = ScanBase + (btn - BtnLeft).
	ScanBase = 0x90001
)

// Keyboard key codes (struct input_event.code when type == EvKey), the
// 104-key US layout plus the keys a TKL/60%/65%/75% board omits.
const (
	KeyEsc       = 1
	Key1         = 2
	Key2         = 3
	Key3         = 4
	Key4         = 5
	Key5         = 6
	Key6         = 7
	Key7         = 8
	Key8         = 9
	Key9         = 10
	Key0         = 11
	KeyMinus     = 12
	KeyEqual     = 13
	KeyBackspace = 14
	KeyTab       = 15
	KeyQ         = 16
	KeyW         = 17
	KeyE         = 18
	KeyR         = 19
	KeyT         = 20
	KeyY         = 21
	KeyU         = 22
	KeyI         = 23
	KeyO         = 24
	KeyP         = 25
	KeyLeftBrace = 26
	KeyRightBrace = 27
	KeyEnter     = 28
	KeyLeftCtrl  = 29
	KeyA         = 30
	KeyS         = 31
	KeyD         = 32
	KeyF         = 33
	KeyG         = 34
	KeyH         = 35
	KeyJ         = 36
	KeyK         = 37
	KeyL         = 38
	KeySemicolon = 39
	KeyApostrophe = 40
	KeyGrave     = 41
	KeyLeftShift = 42
	KeyBackslash = 43
	KeyZ         = 44
	KeyX         = 45
	KeyC         = 46
	KeyV         = 47
	KeyB         = 48
	KeyN         = 49
	KeyM         = 50
	KeyComma     = 51
	KeyDot       = 52
	KeySlash     = 53
	KeyRightShift = 54
	KeyKPAsterisk = 55
	KeyLeftAlt   = 56
	KeySpace     = 57
	KeyCapsLock  = 58
	KeyF1        = 59
	KeyF2        = 60
	KeyF3        = 61
	KeyF4        = 62
	KeyF5        = 63
	KeyF6        = 64
	KeyF7        = 65
	KeyF8        = 66
	KeyF9        = 67
	KeyF10       = 68
	KeyNumLock   = 69
	KeyScrollLock = 70
	KeyKP7       = 71
	KeyKP8       = 72
	KeyKP9       = 73
	KeyKPMinus   = 74
	KeyKP4       = 75
	KeyKP5       = 76
	KeyKP6       = 77
	KeyKPPlus    = 78
	KeyKP1       = 79
	KeyKP2       = 80
	KeyKP3       = 81
	KeyKP0       = 82
	KeyKPDot     = 83
	KeyZenkakuhankaku = 85
	Key102ND     = 86
	KeyF11       = 87
	KeyF12       = 88
	KeyKPEnter   = 96
	KeyRightCtrl = 97
	KeyKPSlash   = 98
	KeySysrq     = 99
	KeyRightAlt  = 100
	KeyHome      = 102
	KeyUp        = 103
	KeyPageUp    = 104
	KeyLeft      = 105
	KeyRight     = 106
	KeyEnd       = 107
	KeyDown      = 108
	KeyPageDown  = 109
	KeyInsert    = 110
	KeyDelete    = 111
	KeyKPEqual   = 117
	KeyLeftMeta  = 125
	KeyRightMeta = 126
	KeyCompose   = 127
)
