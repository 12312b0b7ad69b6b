// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements a scripted platform.Backend without a
// display. Windows, pending events, touch fingers and the key table are
// all set by the caller.
package headless

import (
	"polltick.org/platform"
)

// Backend is a headless backend. The zero value is not usable; call New.
type Backend struct {
	windows   map[platform.Window]*window
	focus     platform.Window
	next      platform.Window
	events    []platform.Event
	fingers   map[platform.TouchID]int
	keys      [platform.NumScancodes]uint8
	names     map[platform.Scancode]string
	newWindow platform.Signal[platform.Window]
}

type window struct {
	width, height int
	minimized     bool
}

var _ platform.Backend = (*Backend)(nil)

// New returns a backend with no windows.
func New() *Backend {
	return &Backend{
		windows: make(map[platform.Window]*window),
		fingers: make(map[platform.TouchID]int),
		names:   make(map[platform.Scancode]string),
	}
}

// CreateWindow creates a focused window with the given client size and
// notifies NewWindow listeners.
func (b *Backend) CreateWindow(width, height int) platform.Window {
	b.next++
	w := b.next
	b.windows[w] = &window{width: width, height: height}
	b.focus = w
	b.newWindow.Emit(w)
	return w
}

// CloseWindow destroys w. Focus is lost if w had it.
func (b *Backend) CloseWindow(w platform.Window) {
	delete(b.windows, w)
	if b.focus == w {
		b.focus = platform.NoWindow
	}
}

// SetFocus moves input focus to w, or clears it for NoWindow.
func (b *Backend) SetFocus(w platform.Window) {
	b.focus = w
}

// Resize changes the client size of w.
func (b *Backend) Resize(w platform.Window, width, height int) {
	if win, ok := b.windows[w]; ok {
		win.width, win.height = width, height
	}
}

// Minimize sets whether w is minimized. Minimized windows have no
// client area.
func (b *Backend) Minimize(w platform.Window, minimized bool) {
	if win, ok := b.windows[w]; ok {
		win.minimized = minimized
	}
}

// Push appends events to the pending queue.
func (b *Backend) Push(evts ...platform.Event) {
	b.events = append(b.events, evts...)
}

// Pending returns the number of queued events.
func (b *Backend) Pending() int {
	return len(b.events)
}

// SetFingers sets the number of fingers down on touch device id.
func (b *Backend) SetFingers(id platform.TouchID, n int) {
	if n <= 0 {
		delete(b.fingers, id)
		return
	}
	b.fingers[id] = n
}

// SetKey sets the state of sc in the key table.
func (b *Backend) SetKey(sc platform.Scancode, down bool) {
	if sc >= platform.NumScancodes {
		return
	}
	var v uint8
	if down {
		v = 1
	}
	b.keys[sc] = v
}

// ReleaseKeys clears the key table.
func (b *Backend) ReleaseKeys() {
	b.keys = [platform.NumScancodes]uint8{}
}

// SetScancodeName overrides the name reported for sc. An empty name
// makes the backend report no name.
func (b *Backend) SetScancodeName(sc platform.Scancode, name string) {
	b.names[sc] = name
}

func (b *Backend) Focused() platform.Window {
	return b.focus
}

func (b *Backend) ClientSize(w platform.Window) (int, int, bool) {
	win, ok := b.windows[w]
	if !ok || win.minimized || win.width <= 0 || win.height <= 0 {
		return 0, 0, false
	}
	return win.width, win.height, true
}

// NativeHandle returns the window id itself; headless windows have no
// native counterpart.
func (b *Backend) NativeHandle(w platform.Window) uintptr {
	if _, ok := b.windows[w]; !ok {
		return 0
	}
	return uintptr(w)
}

func (b *Backend) NewWindow() *platform.Signal[platform.Window] {
	return &b.newWindow
}

func (b *Backend) PollEvent() (platform.Event, bool) {
	if len(b.events) == 0 {
		return nil, false
	}
	e := b.events[0]
	b.events = b.events[1:]
	return e, true
}

func (b *Backend) HasFinger(id platform.TouchID, index int) bool {
	return index >= 0 && index < b.fingers[id]
}

func (b *Backend) KeyboardState() []uint8 {
	return b.keys[:]
}

func (b *Backend) ScancodeName(sc platform.Scancode) string {
	if n, ok := b.names[sc]; ok {
		return n
	}
	return sc.String()
}
