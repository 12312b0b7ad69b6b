// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"testing"
)

func TestScancodeString(t *testing.T) {
	for _, tc := range []struct {
		sc  Scancode
		res string
	}{
		{ScancodeA, "A"},
		{ScancodeZ, "Z"},
		{Scancode1, "1"},
		{Scancode0, "0"},
		{ScancodeF12, "F12"},
		{ScancodeKP0, "Keypad 0"},
		{ScancodeKP7, "Keypad 7"},
		{ScancodeLShift, "Left Shift"},
		{ScancodeRGUI, "Right GUI"},
		{ScancodeUnknown, ""},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.sc.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
	if ScancodeUp != 82 || ScancodeKPPeriod != 99 || ScancodeRGUI != 231 {
		t.Error("scancodes drifted from USB HID usage values")
	}
}
