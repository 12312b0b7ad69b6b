// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"polltick.org/io/key"
	"polltick.org/platform"
)

// keyboardScancodes maps the logical keys the keyboard reader samples to
// scancodes. The digit row and punctuation are not sampled.
var keyboardScancodes = [key.NumKeys]platform.Scancode{
	key.Up:    platform.ScancodeUp,
	key.Down:  platform.ScancodeDown,
	key.Left:  platform.ScancodeLeft,
	key.Right: platform.ScancodeRight,

	key.Escape: platform.ScancodeEscape,

	key.Add:   platform.ScancodeKPPlus,
	key.Sub:   platform.ScancodeKPMinus,
	key.Mul:   platform.ScancodeKPMultiply,
	key.Div:   platform.ScancodeKPDivide,
	key.Enter: platform.ScancodeKPEnter,

	key.PrintScreen: platform.ScancodePrintScreen,
	key.ScrollLock:  platform.ScancodeScrollLock,
	key.Pause:       platform.ScancodePause,
	key.NumLock:     platform.ScancodeNumLockClear,
	key.Return:      platform.ScancodeReturn,

	key.LShift: platform.ScancodeLShift,
	key.RShift: platform.ScancodeRShift,
	key.LCtrl:  platform.ScancodeLCtrl,
	key.RCtrl:  platform.ScancodeRCtrl,
	key.LAlt:   platform.ScancodeLAlt,
	key.RAlt:   platform.ScancodeRAlt,
	key.LWin:   platform.ScancodeLGUI,
	key.RWin:   platform.ScancodeRGUI,

	key.Tab:       platform.ScancodeTab,
	key.CapsLock:  platform.ScancodeCapsLock,
	key.Space:     platform.ScancodeSpace,
	key.Backspace: platform.ScancodeBackspace,
	key.Insert:    platform.ScancodeInsert,
	key.Suppr:     platform.ScancodeDelete,
	key.Home:      platform.ScancodeHome,
	key.End:       platform.ScancodeEnd,
	key.PageUp:    platform.ScancodePageUp,
	key.PageDown:  platform.ScancodePageDown,

	key.F1:  platform.ScancodeF1,
	key.F2:  platform.ScancodeF2,
	key.F3:  platform.ScancodeF3,
	key.F4:  platform.ScancodeF4,
	key.F5:  platform.ScancodeF5,
	key.F6:  platform.ScancodeF6,
	key.F7:  platform.ScancodeF7,
	key.F8:  platform.ScancodeF8,
	key.F9:  platform.ScancodeF9,
	key.F10: platform.ScancodeF10,
	key.F11: platform.ScancodeF11,
	key.F12: platform.ScancodeF12,

	key.Numpad0: platform.ScancodeKP0,
	key.Numpad1: platform.ScancodeKP1,
	key.Numpad2: platform.ScancodeKP2,
	key.Numpad3: platform.ScancodeKP3,
	key.Numpad4: platform.ScancodeKP4,
	key.Numpad5: platform.ScancodeKP5,
	key.Numpad6: platform.ScancodeKP6,
	key.Numpad7: platform.ScancodeKP7,
	key.Numpad8: platform.ScancodeKP8,
	key.Numpad9: platform.ScancodeKP9,

	key.A: platform.ScancodeA,
	key.B: platform.ScancodeB,
	key.C: platform.ScancodeC,
	key.D: platform.ScancodeD,
	key.E: platform.ScancodeE,
	key.F: platform.ScancodeF,
	key.G: platform.ScancodeG,
	key.H: platform.ScancodeH,
	key.I: platform.ScancodeI,
	key.J: platform.ScancodeJ,
	key.K: platform.ScancodeK,
	key.L: platform.ScancodeL,
	key.M: platform.ScancodeM,
	key.N: platform.ScancodeN,
	key.O: platform.ScancodeO,
	key.P: platform.ScancodeP,
	key.Q: platform.ScancodeQ,
	key.R: platform.ScancodeR,
	key.S: platform.ScancodeS,
	key.T: platform.ScancodeT,
	key.U: platform.ScancodeU,
	key.V: platform.ScancodeV,
	key.W: platform.ScancodeW,
	key.X: platform.ScancodeX,
	key.Y: platform.ScancodeY,
	key.Z: platform.ScancodeZ,
}

// addressableScancodes extends keyboardScancodes with the keys the
// backend can name but the keyboard reader does not sample.
var addressableScancodes = func() [key.NumKeys]platform.Scancode {
	t := keyboardScancodes
	t[key.Digit0] = platform.Scancode0
	t[key.Digit1] = platform.Scancode1
	t[key.Digit2] = platform.Scancode2
	t[key.Digit3] = platform.Scancode3
	t[key.Digit4] = platform.Scancode4
	t[key.Digit5] = platform.Scancode5
	t[key.Digit6] = platform.Scancode6
	t[key.Digit7] = platform.Scancode7
	t[key.Digit8] = platform.Scancode8
	t[key.Digit9] = platform.Scancode9
	t[key.Plus] = platform.ScancodeEquals
	t[key.Comma] = platform.ScancodeComma
	t[key.Minus] = platform.ScancodeMinus
	t[key.Period] = platform.ScancodePeriod
	return t
}()

// KeyboardScancode returns the scancode the keyboard reader samples for
// k. It reports false if k is not sampled.
func KeyboardScancode(k key.Key) (platform.Scancode, bool) {
	if !k.Valid() {
		return platform.ScancodeUnknown, false
	}
	sc := keyboardScancodes[k]
	return sc, sc != platform.ScancodeUnknown
}

// KeyboardReader samples the backend key table.
type KeyboardReader struct {
	backend platform.Backend
}

// NewKeyboardReader returns a reader of b.
func NewKeyboardReader(b platform.Backend) *KeyboardReader {
	return &KeyboardReader{backend: b}
}

// Read returns the level state of every sampled key. It returns the
// all-up state if the focused window has no native handle.
func (r *KeyboardReader) Read() key.State {
	var s key.State
	if r.backend.NativeHandle(r.backend.Focused()) == 0 {
		return s
	}
	table := r.backend.KeyboardState()
	for k, sc := range keyboardScancodes {
		if sc == platform.ScancodeUnknown || int(sc) >= len(table) {
			continue
		}
		s[k] = table[sc] != 0
	}
	return s
}
