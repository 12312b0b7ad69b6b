// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// Scancode identifies a physical key position. Values are USB HID
// keyboard usage IDs, which SDL uses unchanged.
type Scancode uint16

// NumScancodes bounds the scancode space. Key tables returned by
// Keys.KeyboardState have at most this many entries.
const NumScancodes = 512

const (
	ScancodeUnknown Scancode = 0

	ScancodeA Scancode = 4 + iota - 1
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ

	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0

	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
	ScancodeMinus
	ScancodeEquals
	ScancodeLeftBracket
	ScancodeRightBracket
	ScancodeBackslash
	ScancodeNonUSHash
	ScancodeSemicolon
	ScancodeApostrophe
	ScancodeGrave
	ScancodeComma
	ScancodePeriod
	ScancodeSlash
	ScancodeCapsLock

	ScancodeF1
	ScancodeF2
	ScancodeF3
	ScancodeF4
	ScancodeF5
	ScancodeF6
	ScancodeF7
	ScancodeF8
	ScancodeF9
	ScancodeF10
	ScancodeF11
	ScancodeF12

	ScancodePrintScreen
	ScancodeScrollLock
	ScancodePause
	ScancodeInsert
	ScancodeHome
	ScancodePageUp
	ScancodeDelete
	ScancodeEnd
	ScancodePageDown
	ScancodeRight
	ScancodeLeft
	ScancodeDown
	ScancodeUp

	ScancodeNumLockClear
	ScancodeKPDivide
	ScancodeKPMultiply
	ScancodeKPMinus
	ScancodeKPPlus
	ScancodeKPEnter
	ScancodeKP1
	ScancodeKP2
	ScancodeKP3
	ScancodeKP4
	ScancodeKP5
	ScancodeKP6
	ScancodeKP7
	ScancodeKP8
	ScancodeKP9
	ScancodeKP0
	ScancodeKPPeriod
)

// Modifier keys.
const (
	ScancodeLCtrl Scancode = 224 + iota
	ScancodeLShift
	ScancodeLAlt
	ScancodeLGUI
	ScancodeRCtrl
	ScancodeRShift
	ScancodeRAlt
	ScancodeRGUI
)

var scancodeNames = map[Scancode]string{
	ScancodeReturn: "Return", ScancodeEscape: "Escape", ScancodeBackspace: "Backspace",
	ScancodeTab: "Tab", ScancodeSpace: "Space", ScancodeMinus: "-", ScancodeEquals: "=",
	ScancodeLeftBracket: "[", ScancodeRightBracket: "]", ScancodeBackslash: "\\",
	ScancodeNonUSHash: "#", ScancodeSemicolon: ";", ScancodeApostrophe: "'",
	ScancodeGrave: "`", ScancodeComma: ",", ScancodePeriod: ".", ScancodeSlash: "/",
	ScancodeCapsLock: "CapsLock", ScancodePrintScreen: "PrintScreen",
	ScancodeScrollLock: "ScrollLock", ScancodePause: "Pause", ScancodeInsert: "Insert",
	ScancodeHome: "Home", ScancodePageUp: "PageUp", ScancodeDelete: "Delete",
	ScancodeEnd: "End", ScancodePageDown: "PageDown", ScancodeRight: "Right",
	ScancodeLeft: "Left", ScancodeDown: "Down", ScancodeUp: "Up",
	ScancodeNumLockClear: "Numlock", ScancodeKPDivide: "Keypad /",
	ScancodeKPMultiply: "Keypad *", ScancodeKPMinus: "Keypad -", ScancodeKPPlus: "Keypad +",
	ScancodeKPEnter: "Keypad Enter", ScancodeKPPeriod: "Keypad .",
	ScancodeLCtrl: "Left Ctrl", ScancodeLShift: "Left Shift", ScancodeLAlt: "Left Alt",
	ScancodeLGUI: "Left GUI", ScancodeRCtrl: "Right Ctrl", ScancodeRShift: "Right Shift",
	ScancodeRAlt: "Right Alt", ScancodeRGUI: "Right GUI",
}

// String returns the US layout name of sc, as SDL spells it.
func (sc Scancode) String() string {
	switch {
	case ScancodeA <= sc && sc <= ScancodeZ:
		return string(rune('A' + sc - ScancodeA))
	case Scancode1 <= sc && sc <= Scancode9:
		return string(rune('1' + sc - Scancode1))
	case sc == Scancode0:
		return "0"
	case ScancodeF1 <= sc && sc <= ScancodeF12:
		return fmt.Sprintf("F%d", sc-ScancodeF1+1)
	case ScancodeKP1 <= sc && sc <= ScancodeKP9:
		return fmt.Sprintf("Keypad %d", sc-ScancodeKP1+1)
	case sc == ScancodeKP0:
		return "Keypad 0"
	}
	if n, ok := scancodeNames[sc]; ok {
		return n
	}
	return ""
}

// ParseScancode returns the scancode whose String is name.
func ParseScancode(name string) (Scancode, bool) {
	if name == "" {
		return ScancodeUnknown, false
	}
	for sc := Scancode(1); sc < NumScancodes; sc++ {
		if sc.String() == name {
			return sc, true
		}
	}
	return ScancodeUnknown, false
}
