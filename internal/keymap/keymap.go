// Package keymap provides the bidirectional logical-keysym ↔ kernel
// key code lookup and the character → key-sequence expansion spec.md
// §4.5 describes. Per spec.md §9's third open question, the
// character lookup is a plain switch/map table — it does not replicate
// the original source's `KEY_A + c - 'a'` arithmetic shortcut, which
// does not match US QWERTY key ordering.
package keymap

import (
	"fmt"

	"rocinante-hid/internal/abi"
)

// keysymToCode is the logical-keysym → kernel key code table. Keysyms
// use the bare key name (no KEY_ prefix): letters, digits, function
// keys, modifiers, navigation, punctuation, and numpad.
var keysymToCode = map[string]int{
	"A": abi.KeyA, "B": abi.KeyB, "C": abi.KeyC, "D": abi.KeyD, "E": abi.KeyE,
	"F": abi.KeyF, "G": abi.KeyG, "H": abi.KeyH, "I": abi.KeyI, "J": abi.KeyJ,
	"K": abi.KeyK, "L": abi.KeyL, "M": abi.KeyM, "N": abi.KeyN, "O": abi.KeyO,
	"P": abi.KeyP, "Q": abi.KeyQ, "R": abi.KeyR, "S": abi.KeyS, "T": abi.KeyT,
	"U": abi.KeyU, "V": abi.KeyV, "W": abi.KeyW, "X": abi.KeyX, "Y": abi.KeyY, "Z": abi.KeyZ,

	"0": abi.Key0, "1": abi.Key1, "2": abi.Key2, "3": abi.Key3, "4": abi.Key4,
	"5": abi.Key5, "6": abi.Key6, "7": abi.Key7, "8": abi.Key8, "9": abi.Key9,

	"F1": abi.KeyF1, "F2": abi.KeyF2, "F3": abi.KeyF3, "F4": abi.KeyF4,
	"F5": abi.KeyF5, "F6": abi.KeyF6, "F7": abi.KeyF7, "F8": abi.KeyF8,
	"F9": abi.KeyF9, "F10": abi.KeyF10, "F11": abi.KeyF11, "F12": abi.KeyF12,

	"UP": abi.KeyUp, "DOWN": abi.KeyDown, "LEFT": abi.KeyLeft, "RIGHT": abi.KeyRight,
	"HOME": abi.KeyHome, "END": abi.KeyEnd, "PAGEUP": abi.KeyPageUp, "PAGEDOWN": abi.KeyPageDown,
	"INSERT": abi.KeyInsert, "DELETE": abi.KeyDelete,

	"LEFTSHIFT": abi.KeyLeftShift, "RIGHTSHIFT": abi.KeyRightShift,
	"LEFTCTRL": abi.KeyLeftCtrl, "RIGHTCTRL": abi.KeyRightCtrl,
	"LEFTALT": abi.KeyLeftAlt, "RIGHTALT": abi.KeyRightAlt,
	"LEFTMETA": abi.KeyLeftMeta, "RIGHTMETA": abi.KeyRightMeta,
	"CAPSLOCK": abi.KeyCapsLock, "NUMLOCK": abi.KeyNumLock, "SCROLLLOCK": abi.KeyScrollLock,

	"SPACE": abi.KeySpace, "TAB": abi.KeyTab, "ENTER": abi.KeyEnter,
	"BACKSPACE": abi.KeyBackspace, "ESC": abi.KeyEsc,

	"MINUS": abi.KeyMinus, "EQUAL": abi.KeyEqual,
	"LEFTBRACE": abi.KeyLeftBrace, "RIGHTBRACE": abi.KeyRightBrace,
	"SEMICOLON": abi.KeySemicolon, "APOSTROPHE": abi.KeyApostrophe, "GRAVE": abi.KeyGrave,
	"BACKSLASH": abi.KeyBackslash, "COMMA": abi.KeyComma, "DOT": abi.KeyDot, "SLASH": abi.KeySlash,

	"KP0": abi.KeyKP0, "KP1": abi.KeyKP1, "KP2": abi.KeyKP2, "KP3": abi.KeyKP3,
	"KP4": abi.KeyKP4, "KP5": abi.KeyKP5, "KP6": abi.KeyKP6, "KP7": abi.KeyKP7,
	"KP8": abi.KeyKP8, "KP9": abi.KeyKP9, "KPDOT": abi.KeyKPDot,
	"KPPLUS": abi.KeyKPPlus, "KPMINUS": abi.KeyKPMinus,
	"KPSLASH": abi.KeyKPSlash, "KPASTERISK": abi.KeyKPAsterisk, "KPENTER": abi.KeyKPEnter,
}

var codeToKeysym = invert(keysymToCode)

func invert(m map[string]int) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// ErrUnknownKeysym is returned when a keysym has no known kernel key
// code.
var ErrUnknownKeysym = fmt.Errorf("keymap: unknown keysym")

// CodeFor resolves a logical keysym to its kernel key code.
func CodeFor(keysym string) (int, error) {
	code, ok := keysymToCode[keysym]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeysym, keysym)
	}
	return code, nil
}

// KeysymFor resolves a kernel key code back to its logical keysym.
func KeysymFor(code int) (string, bool) {
	keysym, ok := codeToKeysym[code]
	return keysym, ok
}

// shiftedSymbols maps each shifted US-layout punctuation character to
// the unshifted key it sits on.
var shiftedSymbols = map[rune]int{
	'!': abi.Key1, '@': abi.Key2, '#': abi.Key3, '$': abi.Key4, '%': abi.Key5,
	'^': abi.Key6, '&': abi.Key7, '*': abi.Key8, '(': abi.Key9, ')': abi.Key0,
	'_': abi.KeyMinus, '+': abi.KeyEqual,
	'{': abi.KeyLeftBrace, '}': abi.KeyRightBrace,
	':': abi.KeySemicolon, '"': abi.KeyApostrophe, '~': abi.KeyGrave,
	'|': abi.KeyBackslash, '<': abi.KeyComma, '>': abi.KeyDot, '?': abi.KeySlash,
}

var unshiftedSymbols = map[rune]int{
	'-': abi.KeyMinus, '=': abi.KeyEqual,
	'[': abi.KeyLeftBrace, ']': abi.KeyRightBrace,
	';': abi.KeySemicolon, '\'': abi.KeyApostrophe, '`': abi.KeyGrave,
	'\\': abi.KeyBackslash, ',': abi.KeyComma, '.': abi.KeyDot, '/': abi.KeySlash,
}

// ErrUnmappableCharacter is the base sentinel for a character with no
// key sequence.
var ErrUnmappableCharacter = fmt.Errorf("keymap: unmappable character")

// CharToKeys resolves a character to the kernel key-code sequence that
// types it: a one-element sequence for characters typed directly, or a
// two-element [LEFTSHIFT, key] sequence for uppercase letters and
// shifted US-layout symbols.
func CharToKeys(c rune) ([]int, error) {
	switch {
	case c == ' ':
		return []int{abi.KeySpace}, nil
	case c == '\t':
		return []int{abi.KeyTab}, nil
	case c == '\n':
		return []int{abi.KeyEnter}, nil
	case c >= 'a' && c <= 'z':
		code, _ := CodeFor(string(c - 'a' + 'A'))
		return []int{code}, nil
	case c >= 'A' && c <= 'Z':
		code, _ := CodeFor(string(c))
		return []int{abi.KeyLeftShift, code}, nil
	case c >= '0' && c <= '9':
		code, _ := CodeFor(string(c))
		return []int{code}, nil
	}

	if code, ok := shiftedSymbols[c]; ok {
		return []int{abi.KeyLeftShift, code}, nil
	}
	if code, ok := unshiftedSymbols[c]; ok {
		return []int{code}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnmappableCharacter, c)
}
