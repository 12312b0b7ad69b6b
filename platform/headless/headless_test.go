// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"strings"
	"testing"

	"polltick.org/platform"
)

func TestClientSize(t *testing.T) {
	b := New()
	if w := b.Focused(); w != platform.NoWindow {
		t.Fatalf("focused window %d before any window exists", w)
	}
	w := b.CreateWindow(640, 480)
	if got := b.Focused(); got != w {
		t.Errorf("new window not focused: got %d; want %d", got, w)
	}
	if width, height, ok := b.ClientSize(w); !ok || width != 640 || height != 480 {
		t.Errorf("ClientSize = %d, %d, %v; want 640, 480, true", width, height, ok)
	}
	b.Minimize(w, true)
	if _, _, ok := b.ClientSize(w); ok {
		t.Error("minimized window has a client area")
	}
	b.Minimize(w, false)
	b.Resize(w, 0, 480)
	if _, _, ok := b.ClientSize(w); ok {
		t.Error("zero-width window has a client area")
	}
	b.CloseWindow(w)
	if b.Focused() != platform.NoWindow || b.NativeHandle(w) != 0 {
		t.Error("closed window still resolvable")
	}
}

func TestNewWindowSignal(t *testing.T) {
	b := New()
	var got []platform.Window
	c := b.NewWindow().Connect(func(w platform.Window) { got = append(got, w) })
	w1 := b.CreateWindow(1, 1)
	b.NewWindow().Disconnect(c)
	b.CreateWindow(1, 1)
	if len(got) != 1 || got[0] != w1 {
		t.Errorf("got %v; want [%d]", got, w1)
	}
}

func TestEventQueueOrder(t *testing.T) {
	b := New()
	b.Push(platform.MouseMotionEvent{X: 1}, platform.MouseWheelEvent{Y: 1})
	if n := b.Pending(); n != 2 {
		t.Fatalf("%d pending events; want 2", n)
	}
	e, ok := b.PollEvent()
	if _, isMotion := e.(platform.MouseMotionEvent); !ok || !isMotion {
		t.Errorf("first event %v; want motion", e)
	}
	e, ok = b.PollEvent()
	if _, isWheel := e.(platform.MouseWheelEvent); !ok || !isWheel {
		t.Errorf("second event %v; want wheel", e)
	}
	if _, ok := b.PollEvent(); ok {
		t.Error("queue not drained")
	}
}

func TestFingersAndKeys(t *testing.T) {
	b := New()
	b.SetFingers(7, 2)
	if !b.HasFinger(7, 1) || b.HasFinger(7, 2) || b.HasFinger(8, 0) {
		t.Error("finger query mismatch")
	}
	b.SetFingers(7, 0)
	if b.HasFinger(7, 0) {
		t.Error("finger still down after clearing")
	}
	b.SetKey(platform.ScancodeA, true)
	if b.KeyboardState()[platform.ScancodeA] == 0 {
		t.Error("key A not down")
	}
	b.ReleaseKeys()
	if b.KeyboardState()[platform.ScancodeA] != 0 {
		t.Error("key A still down after release")
	}
	if got := b.ScancodeName(platform.ScancodeLShift); got != "Left Shift" {
		t.Errorf("got %q; want %q", got, "Left Shift")
	}
	b.SetScancodeName(platform.ScancodeLShift, "")
	if got := b.ScancodeName(platform.ScancodeLShift); got != "" {
		t.Errorf("overridden name %q; want empty", got)
	}
}

const script = `
window: {width: 200, height: 100}
ticks:
  - events:
      - {type: motion, x: 10, y: 20}
      - {type: button, button: left, pressed: true}
    keys: ["Left Shift", "A"]
  - minimized: true
    fingers: {3: 2}
`

func TestScript(t *testing.T) {
	s, err := LoadScript(strings.NewReader(script))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Ticks) != 2 {
		t.Fatalf("%d ticks; want 2", len(s.Ticks))
	}
	b := New()
	w, apply := s.Play(b)
	apply(0)
	if n := b.Pending(); n != 2 {
		t.Errorf("%d pending events; want 2", n)
	}
	keys := b.KeyboardState()
	if keys[platform.ScancodeLShift] == 0 || keys[platform.ScancodeA] == 0 {
		t.Error("scripted keys not down")
	}
	apply(1)
	if keys := b.KeyboardState(); keys[platform.ScancodeA] != 0 {
		t.Error("keys from previous tick still down")
	}
	if _, _, ok := b.ClientSize(w); ok {
		t.Error("window not minimized")
	}
	if !b.HasFinger(3, 1) {
		t.Error("scripted fingers missing")
	}
}

func TestScriptErrors(t *testing.T) {
	for _, tc := range []struct {
		name, src string
	}{
		{"size", "window: {width: 0, height: 1}\n"},
		{"event", "window: {width: 1, height: 1}\nticks:\n  - events: [{type: teleport}]\n"},
		{"button", "window: {width: 1, height: 1}\nticks:\n  - events: [{type: button, button: side}]\n"},
		{"key", "window: {width: 1, height: 1}\nticks:\n  - keys: [Hyper]\n"},
		{"field", "window: {width: 1, height: 1}\nspeed: 3\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScript(strings.NewReader(tc.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
