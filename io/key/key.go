// SPDX-License-Identifier: Unlicense OR MIT

// Package key defines the engine-neutral keyboard model: a closed
// enumeration of logical keys and the dense state snapshot indexed by it.
package key

// Key identifies a logical keyboard key. Keys form a contiguous range
// starting at zero; NumKeys is one past the last key.
type Key uint8

// State is a level sample of every logical key. State[k] is true if
// k was held down when the snapshot was taken. Keys that the producing
// reader cannot address are always false.
type State [NumKeys]bool

const (
	LShift Key = iota
	RShift
	LCtrl
	RCtrl
	LAlt
	RAlt
	LWin
	RWin

	Tab
	CapsLock
	Space
	Backspace
	Insert
	// Suppr is the forward delete key.
	Suppr
	Home
	End
	PageUp
	PageDown

	Up
	Down
	Left
	Right

	Escape

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	PrintScreen
	ScrollLock
	Pause
	NumLock
	Return

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	// Add, Sub, Mul, Div and Enter are the keypad operator keys.
	Add
	Sub
	Mul
	Div
	Enter

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	Plus
	Comma
	Minus
	Period

	// NumKeys is the number of logical keys.
	NumKeys
)

var names = [NumKeys]string{
	LShift: "LShift", RShift: "RShift",
	LCtrl: "LCtrl", RCtrl: "RCtrl",
	LAlt: "LAlt", RAlt: "RAlt",
	LWin: "LWin", RWin: "RWin",
	Tab: "Tab", CapsLock: "CapsLock", Space: "Space", Backspace: "Backspace",
	Insert: "Insert", Suppr: "Suppr", Home: "Home", End: "End",
	PageUp: "PageUp", PageDown: "PageDown",
	Up: "Up", Down: "Down", Left: "Left", Right: "Right",
	Escape: "Escape",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	PrintScreen: "PrintScreen", ScrollLock: "ScrollLock", Pause: "Pause",
	NumLock: "NumLock", Return: "Return",
	Digit0: "0", Digit1: "1", Digit2: "2", Digit3: "3", Digit4: "4",
	Digit5: "5", Digit6: "6", Digit7: "7", Digit8: "8", Digit9: "9",
	Numpad0: "Numpad0", Numpad1: "Numpad1", Numpad2: "Numpad2",
	Numpad3: "Numpad3", Numpad4: "Numpad4", Numpad5: "Numpad5",
	Numpad6: "Numpad6", Numpad7: "Numpad7", Numpad8: "Numpad8",
	Numpad9: "Numpad9",
	Add: "Add", Sub: "Sub", Mul: "Mul", Div: "Div", Enter: "Enter",
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H",
	I: "I", J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P",
	Q: "Q", R: "R", S: "S", T: "T", U: "U", V: "V", W: "W", X: "X",
	Y: "Y", Z: "Z",
	Plus: "Plus", Comma: "Comma", Minus: "Minus", Period: "Period",
}

var byName = func() map[string]Key {
	m := make(map[string]Key, NumKeys)
	for k, n := range names {
		m[n] = Key(k)
	}
	return m
}()

// Valid reports whether k is a member of the enumeration.
func (k Key) Valid() bool {
	return k < NumKeys
}

// String returns the stable identifier of k, as accepted by Parse.
func (k Key) String() string {
	if !k.Valid() {
		panic("invalid Key")
	}
	return names[k]
}

// Parse returns the key whose identifier is s.
func Parse(s string) (Key, bool) {
	k, ok := byName[s]
	return k, ok
}

// All returns every logical key in enumeration order.
func All() []Key {
	keys := make([]Key, NumKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Pressed returns the keys held down in s, in enumeration order.
func (s State) Pressed() []Key {
	var keys []Key
	for k, down := range s {
		if down {
			keys = append(keys, Key(k))
		}
	}
	return keys
}
