package capability

import "rocinante-hid/internal/abi"

// fullLayoutKeys is the 104-key US layout: letters, digit row, function
// row, modifiers, navigation cluster, punctuation, and numpad.
var fullLayoutKeys = []int{
	abi.KeyEsc,
	abi.Key1, abi.Key2, abi.Key3, abi.Key4, abi.Key5,
	abi.Key6, abi.Key7, abi.Key8, abi.Key9, abi.Key0,
	abi.KeyMinus, abi.KeyEqual, abi.KeyBackspace, abi.KeyTab,
	abi.KeyQ, abi.KeyW, abi.KeyE, abi.KeyR, abi.KeyT, abi.KeyY, abi.KeyU, abi.KeyI, abi.KeyO, abi.KeyP,
	abi.KeyLeftBrace, abi.KeyRightBrace, abi.KeyEnter, abi.KeyLeftCtrl,
	abi.KeyA, abi.KeyS, abi.KeyD, abi.KeyF, abi.KeyG, abi.KeyH, abi.KeyJ, abi.KeyK, abi.KeyL,
	abi.KeySemicolon, abi.KeyApostrophe, abi.KeyGrave, abi.KeyLeftShift, abi.KeyBackslash,
	abi.KeyZ, abi.KeyX, abi.KeyC, abi.KeyV, abi.KeyB, abi.KeyN, abi.KeyM,
	abi.KeyComma, abi.KeyDot, abi.KeySlash, abi.KeyRightShift,
	abi.KeyKPAsterisk, abi.KeyLeftAlt, abi.KeySpace, abi.KeyCapsLock,
	abi.KeyF1, abi.KeyF2, abi.KeyF3, abi.KeyF4, abi.KeyF5, abi.KeyF6,
	abi.KeyF7, abi.KeyF8, abi.KeyF9, abi.KeyF10,
	abi.KeyNumLock, abi.KeyScrollLock,
	abi.KeyKP7, abi.KeyKP8, abi.KeyKP9, abi.KeyKPMinus,
	abi.KeyKP4, abi.KeyKP5, abi.KeyKP6, abi.KeyKPPlus,
	abi.KeyKP1, abi.KeyKP2, abi.KeyKP3, abi.KeyKP0, abi.KeyKPDot,
	abi.Key102ND, abi.KeyF11, abi.KeyF12,
	abi.KeyKPEnter, abi.KeyRightCtrl, abi.KeyKPSlash, abi.KeySysrq, abi.KeyRightAlt,
	abi.KeyHome, abi.KeyUp, abi.KeyPageUp, abi.KeyLeft, abi.KeyRight,
	abi.KeyEnd, abi.KeyDown, abi.KeyPageDown, abi.KeyInsert, abi.KeyDelete,
	abi.KeyKPEqual, abi.KeyLeftMeta, abi.KeyRightMeta, abi.KeyCompose,
}

// numpadKeys is the subset fullLayoutKeys carries that a TKL/60%/65%/75%
// board physically lacks.
var numpadKeys = map[int]bool{
	abi.KeyNumLock:  true,
	abi.KeyKP7:      true,
	abi.KeyKP8:      true,
	abi.KeyKP9:      true,
	abi.KeyKPMinus:  true,
	abi.KeyKP4:      true,
	abi.KeyKP5:      true,
	abi.KeyKP6:      true,
	abi.KeyKPPlus:   true,
	abi.KeyKP1:      true,
	abi.KeyKP2:      true,
	abi.KeyKP3:      true,
	abi.KeyKP0:      true,
	abi.KeyKPDot:    true,
	abi.KeyKPSlash:  true,
	abi.KeyKPAsterisk: true,
	abi.KeyKPEnter:  true,
	abi.KeyKPEqual:  true,
}

func isNumpadKey(code int) bool {
	return numpadKeys[code]
}
