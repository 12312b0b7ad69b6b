// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"polltick.org/platform"
)

// Script is a recorded sequence of ticks for a headless backend.
type Script struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Ticks []Tick `yaml:"ticks"`
}

// Tick is the backend state for one tick of a Script.
type Tick struct {
	Events []ScriptEvent `yaml:"events"`
	// Keys lists the scancode names held down during the tick.
	Keys []string `yaml:"keys"`
	// Fingers is the number of fingers down per touch device.
	Fingers   map[int64]int `yaml:"fingers"`
	Minimized bool          `yaml:"minimized"`
	Unfocused bool          `yaml:"unfocused"`
}

// ScriptEvent is the YAML form of a platform.Event.
type ScriptEvent struct {
	Type    string  `yaml:"type"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Button  string  `yaml:"button"`
	Pressed bool    `yaml:"pressed"`
	Kind    string  `yaml:"kind"`
	Touch   int64   `yaml:"touch"`
	DDist   float32 `yaml:"ddist"`
}

// LoadScript decodes a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	s := new(Script)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("headless: decoding script: %w", err)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return nil, fmt.Errorf("headless: invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	for i, t := range s.Ticks {
		for j, e := range t.Events {
			if _, err := e.Event(); err != nil {
				return nil, fmt.Errorf("headless: tick %d event %d: %w", i, j, err)
			}
		}
		for _, k := range t.Keys {
			if _, ok := platform.ParseScancode(k); !ok {
				return nil, fmt.Errorf("headless: tick %d: unknown key %q", i, k)
			}
		}
	}
	return s, nil
}

// Event converts e to a platform.Event.
func (e ScriptEvent) Event() (platform.Event, error) {
	switch e.Type {
	case "motion":
		return platform.MouseMotionEvent{X: int32(e.X), Y: int32(e.Y)}, nil
	case "button":
		b, err := parseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return platform.MouseButtonEvent{Button: b, Pressed: e.Pressed}, nil
	case "wheel":
		return platform.MouseWheelEvent{X: int32(e.X), Y: int32(e.Y)}, nil
	case "finger":
		k, err := parseFingerKind(e.Kind)
		if err != nil {
			return nil, err
		}
		return platform.FingerEvent{Kind: k, TouchID: platform.TouchID(e.Touch), X: e.X, Y: e.Y}, nil
	case "gesture":
		return platform.MultiGestureEvent{TouchID: platform.TouchID(e.Touch), DDist: e.DDist}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

func parseButton(s string) (platform.MouseButton, error) {
	switch s {
	case "left":
		return platform.MouseButtonLeft, nil
	case "middle":
		return platform.MouseButtonMiddle, nil
	case "right":
		return platform.MouseButtonRight, nil
	case "x1":
		return platform.MouseButtonX1, nil
	case "x2":
		return platform.MouseButtonX2, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

func parseFingerKind(s string) (platform.FingerKind, error) {
	switch s {
	case "down":
		return platform.FingerDown, nil
	case "up":
		return platform.FingerUp, nil
	case "motion":
		return platform.FingerMotion, nil
	default:
		return 0, fmt.Errorf("unknown finger kind %q", s)
	}
}

// Play creates the script's window on b. It returns the window and a
// function that applies tick i to b.
func (s *Script) Play(b *Backend) (platform.Window, func(i int)) {
	w := b.CreateWindow(s.Window.Width, s.Window.Height)
	return w, func(i int) {
		t := s.Ticks[i]
		b.ReleaseKeys()
		for _, k := range t.Keys {
			sc, _ := platform.ParseScancode(k)
			b.SetKey(sc, true)
		}
		for id := range b.fingers {
			delete(b.fingers, id)
		}
		for id, n := range t.Fingers {
			b.SetFingers(platform.TouchID(id), n)
		}
		b.Minimize(w, t.Minimized)
		if t.Unfocused {
			b.SetFocus(platform.NoWindow)
		} else {
			b.SetFocus(w)
		}
		for _, e := range t.Events {
			ev, _ := e.Event()
			b.Push(ev)
		}
	}
}
