// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"math"

	"go.uber.org/zap"

	"polltick.org/io/input"
	"polltick.org/io/pointer"
	"polltick.org/platform"
)

// buttons maps backend buttons to logical buttons. Other buttons are
// ignored.
var buttons = map[platform.MouseButton]pointer.Button{
	platform.MouseButtonLeft:   pointer.ButtonLeft,
	platform.MouseButtonRight:  pointer.ButtonRight,
	platform.MouseButtonMiddle: pointer.ButtonMiddle,
}

// MouseReader merges backend mouse and touch events into snapshots.
// It keeps the previous snapshot between calls to Read.
type MouseReader struct {
	backend  platform.Backend
	logger   *zap.Logger
	inhibit  *input.Inhibit
	cooldown int
	deadZone float32

	prev pointer.MouseState
	// lost is set while the focused window has no client area.
	lost bool
}

// NewMouseReader returns a reader of b that arms inhibit, usually the
// counter of the registry the reader is added to.
func NewMouseReader(b platform.Backend, inhibit *input.Inhibit, opts ...Option) *MouseReader {
	if inhibit == nil {
		panic("nil inhibit counter")
	}
	cnf := defaultConfig()
	for _, o := range opts {
		o(&cnf)
	}
	return newMouseReader(b, inhibit, &cnf)
}

func newMouseReader(b platform.Backend, inhibit *input.Inhibit, cnf *config) *MouseReader {
	return &MouseReader{
		backend:  b,
		logger:   cnf.logger,
		inhibit:  inhibit,
		cooldown: cnf.inhibitFrames,
		deadZone: cnf.pinchDeadZone,
	}
}

// Inhibit returns the counter the reader arms.
func (m *MouseReader) Inhibit() *input.Inhibit {
	return m.inhibit
}

// resetPosition forgets the persisted position. Held buttons stay
// down until the backend reports their release.
func (m *MouseReader) resetPosition() {
	m.prev.X, m.prev.Y = 0, 0
}

// Read drains the backend event queue and returns the new snapshot.
//
// If the focused window has no client area, Read arms the inhibit
// counter, discards the pending events and returns the zero state. The
// previous snapshot is kept for the next successful read.
func (m *MouseReader) Read() pointer.MouseState {
	w, h, ok := m.backend.ClientSize(m.backend.Focused())
	if !ok {
		m.inhibit.Arm(m.cooldown)
		for {
			if _, ok := m.backend.PollEvent(); !ok {
				break
			}
		}
		if !m.lost {
			m.lost = true
			m.logger.Debug("focused window has no client area, inhibiting clicks",
				zap.Int("frames", m.cooldown))
		}
		return pointer.MouseState{}
	}
	m.lost = false

	s := m.prev
	s.Wheel = 0
	for {
		e, ok := m.backend.PollEvent()
		if !ok {
			break
		}
		m.apply(&s, e, float32(w), float32(h))
	}
	m.prev = s
	return s
}

func (m *MouseReader) apply(s *pointer.MouseState, e platform.Event, w, h float32) {
	switch e := e.(type) {
	case platform.FingerEvent:
		// Leave multi-finger input to gestures.
		if m.backend.HasFinger(e.TouchID, 1) {
			return
		}
		switch e.Kind {
		case platform.FingerDown:
			s.Buttons[pointer.ButtonLeft] = true
			s.X, s.Y = e.X*w, (1-e.Y)*h
		case platform.FingerMotion:
			s.X, s.Y = e.X*w, (1-e.Y)*h
		case platform.FingerUp:
			s.Buttons[pointer.ButtonLeft] = false
		}
	case platform.MultiGestureEvent:
		if math.Abs(float64(e.DDist)) > float64(m.deadZone) {
			if e.DDist > 0 {
				s.Wheel = 1
			} else {
				s.Wheel = -1
			}
		}
	case platform.MouseMotionEvent:
		s.X = float32(e.X)
		s.Y = h - float32(e.Y)
	case platform.MouseButtonEvent:
		if b, ok := buttons[e.Button]; ok {
			s.Buttons[b] = e.Pressed
		}
	case platform.MouseWheelEvent:
		switch {
		case e.Y >= 1:
			s.Wheel = 1
		case e.Y <= -1:
			s.Wheel = -1
		}
	}
}
