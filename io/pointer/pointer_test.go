// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestButtonIndices(t *testing.T) {
	// Consumers index MouseState.Buttons directly; the order must not move.
	for _, tc := range []struct {
		b   Button
		idx int
	}{
		{ButtonLeft, 0},
		{ButtonRight, 1},
		{ButtonMiddle, 2},
	} {
		if int(tc.b) != tc.idx {
			t.Errorf("%v has index %d; want %d", tc.b, int(tc.b), tc.idx)
		}
	}
	if NumButtons != 3 {
		t.Errorf("NumButtons = %d; want 3", NumButtons)
	}
}

func TestMouseStateString(t *testing.T) {
	for _, tc := range []struct {
		s   MouseState
		res string
	}{
		{MouseState{}, "(0,0) buttons=[] wheel=0"},
		{MouseState{X: 1.5, Y: 2, Wheel: -1}, "(1.5,2) buttons=[] wheel=-1"},
		{MouseState{Buttons: [NumButtons]bool{true, false, true}}, "(0,0) buttons=[Left|Middle] wheel=0"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.s.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestDown(t *testing.T) {
	s := MouseState{}
	s.Buttons[ButtonRight] = true
	if !s.Down(ButtonRight) {
		t.Error("right button not down")
	}
	if s.Down(ButtonLeft) || s.Down(ButtonMiddle) {
		t.Error("unexpected button down")
	}
	if s.Down(NumButtons) {
		t.Error("out of range button reported down")
	}
}
