// SPDX-License-Identifier: Unlicense OR MIT

// Package platform describes what an input binding needs from a
// windowing backend. Implementations live in the sub-packages.
//
// Backends are not safe for concurrent use. All methods must be called
// from the thread that owns the backend's event queue.
package platform

// Window identifies a backend window. The zero Window is no window.
type Window uint64

// NoWindow is returned when no window has focus.
const NoWindow Window = 0

// WindowSystem resolves the windows the input binding reads from.
type WindowSystem interface {
	// Focused returns the window with input focus, or NoWindow.
	Focused() Window
	// ClientSize returns the size in pixels of the client area of w.
	// It reports false if w does not exist or has no client area, for
	// example while minimized.
	ClientSize(w Window) (width, height int, ok bool)
	// NativeHandle returns the native handle of w, or 0.
	NativeHandle(w Window) uintptr
	// NewWindow is emitted with each window the backend creates.
	NewWindow() *Signal[Window]
}

// EventQueue is the backend's pending event queue.
type EventQueue interface {
	// PollEvent removes and returns the next pending event. It reports
	// false once the queue is empty. Events the input model has no use
	// for are skipped by the backend.
	PollEvent() (Event, bool)
}

// Touch queries touch devices.
type Touch interface {
	// HasFinger reports whether the finger at index is currently down
	// on the touch device id. Indices start at 0.
	HasFinger(id TouchID, index int) bool
}

// Keys is the backend's keyboard.
type Keys interface {
	// KeyboardState returns the current key table, indexed by Scancode.
	// A non-zero entry means the key is held down. The slice is owned by
	// the backend and valid until the next call.
	KeyboardState() []uint8
	// ScancodeName returns a human-readable name for the key at sc in
	// the current keyboard layout, or the empty string.
	ScancodeName(sc Scancode) string
}

// Backend bundles the capabilities of a windowing backend.
type Backend interface {
	WindowSystem
	EventQueue
	Touch
	Keys
}
