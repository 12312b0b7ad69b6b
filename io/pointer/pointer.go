// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer defines the engine-neutral mouse snapshot.
package pointer

import (
	"fmt"
	"strings"
)

// MouseState is a snapshot of the pointer at one tick.
type MouseState struct {
	// X and Y are the position in window client space, in pixels,
	// with the origin at the bottom-left corner.
	X, Y float32
	// Buttons holds the pressed state of each logical button,
	// indexed by Button.
	Buttons [NumButtons]bool
	// Wheel is the scroll delta accumulated during the tick that
	// produced the snapshot: -1, 0 or +1.
	Wheel int
}

// Button is the index of a logical mouse button in MouseState.Buttons.
//
// The ordering is a fixed contract with consumers of MouseState:
// left is 0, right is 1 and middle is 2.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle

	// NumButtons is the number of logical buttons.
	NumButtons
)

// Down reports whether b is pressed in s.
func (s MouseState) Down(b Button) bool {
	return b < NumButtons && s.Buttons[b]
}

func (s MouseState) String() string {
	return fmt.Sprintf("(%g,%g) buttons=[%s] wheel=%d", s.X, s.Y, s.buttons(), s.Wheel)
}

func (s MouseState) buttons() string {
	var strs []string
	for b := Button(0); b < NumButtons; b++ {
		if s.Buttons[b] {
			strs = append(strs, b.String())
		}
	}
	return strings.Join(strs, "|")
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	default:
		panic("unknown Button")
	}
}
