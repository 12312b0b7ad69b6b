// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"polltick.org/io/key"
	"polltick.org/io/pointer"
)

// Mouse tracks the current and previous snapshot of one mouse reader.
type Mouse struct {
	reg        *Registry
	name       string
	prev, curr pointer.MouseState
}

// Keyboard tracks the current and previous snapshot of one keyboard
// reader.
type Keyboard struct {
	reg        *Registry
	name       string
	prev, curr key.State
}

// NewMouse returns a device reading from the mouse reader name of reg.
func NewMouse(reg *Registry, name string) *Mouse {
	return &Mouse{reg: reg, name: name}
}

// Update reads a new snapshot. A missing reader reads as the zero
// state.
func (m *Mouse) Update() {
	m.prev = m.curr
	m.curr, _ = m.reg.ReadMouse(m.name)
}

// State returns the current snapshot.
func (m *Mouse) State() pointer.MouseState {
	return m.curr
}

// Down reports whether b is held in the current snapshot.
func (m *Mouse) Down(b pointer.Button) bool {
	return m.curr.Down(b)
}

// Pressed reports whether b went down during the last Update. Presses
// are not reported while the registry's click inhibit is active.
func (m *Mouse) Pressed(b pointer.Button) bool {
	if m.reg.inhibit.Active() {
		return false
	}
	return m.curr.Down(b) && !m.prev.Down(b)
}

// Released reports whether b went up during the last Update.
func (m *Mouse) Released(b pointer.Button) bool {
	return !m.curr.Down(b) && m.prev.Down(b)
}

// Position returns the current pointer position.
func (m *Mouse) Position() (x, y float32) {
	return m.curr.X, m.curr.Y
}

// Delta returns the pointer motion during the last Update.
func (m *Mouse) Delta() (dx, dy float32) {
	return m.curr.X - m.prev.X, m.curr.Y - m.prev.Y
}

// Wheel returns the wheel delta of the current snapshot.
func (m *Mouse) Wheel() int {
	return m.curr.Wheel
}

// NewKeyboard returns a device reading from the keyboard reader name of
// reg.
func NewKeyboard(reg *Registry, name string) *Keyboard {
	return &Keyboard{reg: reg, name: name}
}

// Update reads a new snapshot. A missing reader reads as all keys up.
func (kb *Keyboard) Update() {
	kb.prev = kb.curr
	kb.curr, _ = kb.reg.ReadKeyboard(kb.name)
}

// State returns the current snapshot.
func (kb *Keyboard) State() key.State {
	return kb.curr
}

// Down reports whether k is held in the current snapshot.
func (kb *Keyboard) Down(k key.Key) bool {
	return k.Valid() && kb.curr[k]
}

// Pressed reports whether k went down during the last Update.
func (kb *Keyboard) Pressed(k key.Key) bool {
	return k.Valid() && kb.curr[k] && !kb.prev[k]
}

// Released reports whether k went up during the last Update.
func (kb *Keyboard) Released(k key.Key) bool {
	return k.Valid() && !kb.curr[k] && kb.prev[k]
}

// Name returns the name of k as resolved by the reader's namer.
func (kb *Keyboard) Name(k key.Key) (string, bool) {
	return kb.reg.KeyName(kb.name, k)
}
