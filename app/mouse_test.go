// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"

	"polltick.org/io/input"
	"polltick.org/io/pointer"
	"polltick.org/platform"
	"polltick.org/platform/headless"
)

func newMouseTest(t *testing.T) (*headless.Backend, platform.Window, *MouseReader) {
	t.Helper()
	b := headless.New()
	w := b.CreateWindow(200, 100)
	return b, w, NewMouseReader(b, new(input.Inhibit))
}

func TestMouseNoEventsKeepsState(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.Push(
		platform.MouseMotionEvent{X: 20, Y: 30},
		platform.MouseButtonEvent{Button: platform.MouseButtonRight, Pressed: true},
		platform.MouseWheelEvent{Y: 2},
	)
	first := m.Read()
	if first.Wheel != 1 {
		t.Fatalf("wheel = %d; want 1", first.Wheel)
	}
	second := m.Read()
	want := first
	want.Wheel = 0
	if second != want {
		t.Errorf("got %v; want %v", second, want)
	}
}

func TestMouseMotionFlipsY(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.Push(platform.MouseMotionEvent{X: 20, Y: 30})
	s := m.Read()
	if s.X != 20 || s.Y != 70 {
		t.Errorf("position (%g,%g); want (20,70)", s.X, s.Y)
	}
}

func TestMouseLastWriteWins(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.Push(
		platform.MouseMotionEvent{X: 1, Y: 1},
		platform.MouseButtonEvent{Button: platform.MouseButtonLeft, Pressed: true},
		platform.MouseWheelEvent{Y: 1},
		platform.MouseMotionEvent{X: 5, Y: 10},
		platform.MouseButtonEvent{Button: platform.MouseButtonLeft, Pressed: false},
		platform.MouseWheelEvent{Y: -3},
	)
	s := m.Read()
	if s.X != 5 || s.Y != 90 || s.Buttons[pointer.ButtonLeft] || s.Wheel != -1 {
		t.Errorf("got %v; want last event per field", s)
	}
	if b.Pending() != 0 {
		t.Errorf("%d events left in queue", b.Pending())
	}
}

func TestMouseButtonMapping(t *testing.T) {
	for _, tc := range []struct {
		button platform.MouseButton
		want   [pointer.NumButtons]bool
	}{
		{platform.MouseButtonLeft, [pointer.NumButtons]bool{true, false, false}},
		{platform.MouseButtonRight, [pointer.NumButtons]bool{false, true, false}},
		{platform.MouseButtonMiddle, [pointer.NumButtons]bool{false, false, true}},
		{platform.MouseButtonX1, [pointer.NumButtons]bool{}},
		{platform.MouseButtonX2, [pointer.NumButtons]bool{}},
	} {
		t.Run(tc.button.String(), func(t *testing.T) {
			b, _, m := newMouseTest(t)
			b.Push(platform.MouseButtonEvent{Button: tc.button, Pressed: true})
			if got := m.Read().Buttons; got != tc.want {
				t.Errorf("got %v; want %v", got, tc.want)
			}
		})
	}
}

func TestMouseWheel(t *testing.T) {
	for _, tc := range []struct {
		name string
		dy   int32
		want int
	}{
		{"up", 1, 1},
		{"up-fast", 7, 1},
		{"down", -1, -1},
		{"down-fast", -4, -1},
		{"none", 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, _, m := newMouseTest(t)
			b.Push(platform.MouseWheelEvent{Y: tc.dy})
			if got := m.Read().Wheel; got != tc.want {
				t.Errorf("wheel = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestMouseWheelNotPersisted(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.Push(platform.MouseWheelEvent{Y: 1})
	m.Read()
	if got := m.Read().Wheel; got != 0 {
		t.Errorf("wheel = %d on a tick without events; want 0", got)
	}
}

func TestMousePinchDeadZone(t *testing.T) {
	for _, tc := range []struct {
		name  string
		ddist float32
		want  int
	}{
		{"boundary", 0.002, 0},
		{"boundary-close", -0.002, 0},
		{"open", 0.0021, 1},
		{"close", -0.0021, -1},
		{"jitter", 0.001, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, _, m := newMouseTest(t)
			b.Push(platform.MultiGestureEvent{TouchID: 1, DDist: tc.ddist})
			if got := m.Read().Wheel; got != tc.want {
				t.Errorf("wheel = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestMouseSingleFinger(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.SetFingers(1, 1)
	b.Push(platform.FingerEvent{Kind: platform.FingerDown, TouchID: 1, X: 0.25, Y: 0.25})
	s := m.Read()
	if !s.Buttons[pointer.ButtonLeft] || s.X != 50 || s.Y != 75 {
		t.Fatalf("got %v; want left down at (50,75)", s)
	}
	b.Push(platform.FingerEvent{Kind: platform.FingerMotion, TouchID: 1, X: 0.5, Y: 0})
	s = m.Read()
	if s.X != 100 || s.Y != 100 {
		t.Errorf("position (%g,%g); want (100,100)", s.X, s.Y)
	}
	b.SetFingers(1, 0)
	b.Push(platform.FingerEvent{Kind: platform.FingerUp, TouchID: 1, X: 0.5, Y: 0})
	if m.Read().Buttons[pointer.ButtonLeft] {
		t.Error("left still down after finger up")
	}
}

func TestMouseMultiFingerIgnored(t *testing.T) {
	b, _, m := newMouseTest(t)
	b.Push(platform.MouseMotionEvent{X: 10, Y: 10})
	before := m.Read()

	b.SetFingers(1, 2)
	b.Push(
		platform.FingerEvent{Kind: platform.FingerDown, TouchID: 1, X: 0.1, Y: 0.1},
		platform.FingerEvent{Kind: platform.FingerDown, TouchID: 1, X: 0.9, Y: 0.9},
		platform.FingerEvent{Kind: platform.FingerMotion, TouchID: 1, X: 0.5, Y: 0.5},
	)
	if after := m.Read(); after != before {
		t.Errorf("got %v; want unchanged %v", after, before)
	}

	// Fingers on another device are unaffected.
	b.Push(platform.FingerEvent{Kind: platform.FingerMotion, TouchID: 2, X: 0.5, Y: 0.5})
	if s := m.Read(); s.X != 100 || s.Y != 50 {
		t.Errorf("position (%g,%g); want (100,50)", s.X, s.Y)
	}
}

func TestMouseWindowUnavailable(t *testing.T) {
	for _, tc := range []struct {
		name string
		fail func(b *headless.Backend, w platform.Window)
	}{
		{"minimized", func(b *headless.Backend, w platform.Window) { b.Minimize(w, true) }},
		{"unfocused", func(b *headless.Backend, w platform.Window) { b.SetFocus(platform.NoWindow) }},
		{"closed", func(b *headless.Backend, w platform.Window) { b.CloseWindow(w) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, w, m := newMouseTest(t)
			b.Push(
				platform.MouseMotionEvent{X: 10, Y: 10},
				platform.MouseButtonEvent{Button: platform.MouseButtonLeft, Pressed: true},
			)
			m.Read()

			tc.fail(b, w)
			b.Push(platform.MouseWheelEvent{Y: 1})
			if s := m.Read(); s != (pointer.MouseState{}) {
				t.Errorf("got %v; want zero state", s)
			}
			if got := m.Inhibit().Remaining(); got != 3 {
				t.Errorf("inhibit = %d; want 3", got)
			}
			if b.Pending() != 0 {
				t.Error("pending events not discarded")
			}
		})
	}
}

func TestMouseInhibitRearmed(t *testing.T) {
	b, w, m := newMouseTest(t)
	m.Inhibit().Arm(1)
	b.Minimize(w, true)
	m.Read()
	if got := m.Inhibit().Remaining(); got != 3 {
		t.Errorf("inhibit = %d; want 3", got)
	}
}

func TestMouseResumesPreviousState(t *testing.T) {
	b, w, m := newMouseTest(t)
	b.Push(platform.MouseMotionEvent{X: 10, Y: 10})
	want := m.Read()
	b.Minimize(w, true)
	m.Read()
	b.Minimize(w, false)
	if got := m.Read(); got != want {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestMouseOptions(t *testing.T) {
	b := headless.New()
	w := b.CreateWindow(10, 10)
	m := NewMouseReader(b, new(input.Inhibit), InhibitFrames(7), PinchDeadZone(0.5))
	b.Push(platform.MultiGestureEvent{DDist: 0.4})
	if got := m.Read().Wheel; got != 0 {
		t.Errorf("wheel = %d inside the configured dead zone", got)
	}
	b.Minimize(w, true)
	m.Read()
	if got := m.Inhibit().Remaining(); got != 7 {
		t.Errorf("inhibit = %d; want 7", got)
	}
}

func TestMouseReaderRegisteredAlone(t *testing.T) {
	b := headless.New()
	w := b.CreateWindow(100, 100)
	reg := input.NewRegistry(nil)
	reg.AddMouseReader("default", NewMouseReader(b, reg.Inhibit()).Read)
	m := input.NewMouse(reg, "default")

	b.Minimize(w, true)
	reg.Frame()
	m.Update()
	if got := reg.Inhibit().Remaining(); got != 3 {
		t.Fatalf("registry inhibit = %d; want 3", got)
	}

	b.Minimize(w, false)
	b.Push(platform.MouseButtonEvent{Button: platform.MouseButtonLeft, Pressed: true})
	reg.Frame()
	m.Update()
	if m.Pressed(pointer.ButtonLeft) {
		t.Error("click reported during cooldown")
	}
	for i := 0; i < 10; i++ {
		reg.Frame()
	}
	if reg.Inhibit().Active() {
		t.Errorf("inhibit = %d after 10 frames; want 0", reg.Inhibit().Remaining())
	}
}

func TestNewMouseReaderNilInhibit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for nil inhibit counter")
		}
	}()
	NewMouseReader(headless.New(), nil)
}
