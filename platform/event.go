// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// Event is the marker interface for backend events.
type Event interface {
	ImplementsEvent()
}

// TouchID identifies a touch device.
type TouchID int64

// MouseButton is a backend mouse button. The values match SDL's.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButtonRight  MouseButton = 3
	MouseButtonX1     MouseButton = 4
	MouseButtonX2     MouseButton = 5
)

// FingerKind is the kind of a FingerEvent.
type FingerKind uint8

const (
	FingerDown FingerKind = iota
	FingerUp
	FingerMotion
)

// MouseMotionEvent reports the cursor position in window pixels,
// origin top-left.
type MouseMotionEvent struct {
	X, Y int32
}

// MouseButtonEvent reports a button transition.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// MouseWheelEvent reports a scroll. Positive Y scrolls up.
type MouseWheelEvent struct {
	X, Y int32
}

// FingerEvent reports a touch finger. X and Y are normalized to [0, 1]
// over the window, origin top-left.
type FingerEvent struct {
	Kind    FingerKind
	TouchID TouchID
	X, Y    float32
}

// MultiGestureEvent reports a multi-finger gesture. DDist is the change
// in distance between the fingers, positive when they move apart.
type MultiGestureEvent struct {
	TouchID TouchID
	DDist   float32
}

func (MouseMotionEvent) ImplementsEvent()  {}
func (MouseButtonEvent) ImplementsEvent()  {}
func (MouseWheelEvent) ImplementsEvent()   {}
func (FingerEvent) ImplementsEvent()       {}
func (MultiGestureEvent) ImplementsEvent() {}

func (k FingerKind) String() string {
	switch k {
	case FingerDown:
		return "Down"
	case FingerUp:
		return "Up"
	case FingerMotion:
		return "Motion"
	default:
		panic("unknown FingerKind")
	}
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	case MouseButtonX1:
		return "X1"
	case MouseButtonX2:
		return "X2"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}
