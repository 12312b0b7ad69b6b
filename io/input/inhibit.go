// SPDX-License-Identifier: Unlicense OR MIT

package input

// Inhibit counts the ticks during which clicks and touches are
// suppressed. The zero value is inactive.
type Inhibit struct {
	frames int
}

// Arm suppresses clicks for the next n ticks, replacing any running
// cooldown.
func (i *Inhibit) Arm(n int) {
	if n < 0 {
		n = 0
	}
	i.frames = n
}

// Frame consumes one tick of the cooldown.
func (i *Inhibit) Frame() {
	if i.frames > 0 {
		i.frames--
	}
}

// Active reports whether clicks are currently suppressed.
func (i *Inhibit) Active() bool {
	return i.frames > 0
}

// Remaining returns the number of ticks left in the cooldown.
func (i *Inhibit) Remaining() int {
	return i.frames
}
