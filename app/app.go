// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"go.uber.org/zap"

	"polltick.org/io/input"
	"polltick.org/io/key"
	"polltick.org/platform"
)

// DefaultReaderName is the name readers are registered under unless
// overridden with ReaderName.
const DefaultReaderName = "default"

// Option configures a Binding.
type Option func(*config)

type config struct {
	logger        *zap.Logger
	readerName    string
	inhibitFrames int
	pinchDeadZone float32
	fullKeyNames  bool
	extraKeyNames []key.Key
}

func defaultConfig() config {
	return config{
		logger:        zap.NewNop(),
		readerName:    DefaultReaderName,
		inhibitFrames: 3,
		pinchDeadZone: 0.002,
	}
}

// Logger sets the logger of the binding.
func Logger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// ReaderName sets the name the readers are registered under.
func ReaderName(name string) Option {
	return func(c *config) {
		c.readerName = name
	}
}

// InhibitFrames sets the number of ticks clicks are suppressed after
// the focused window is found without a client area.
func InhibitFrames(n int) Option {
	if n < 0 {
		panic("inhibit frames must not be negative")
	}
	return func(c *config) {
		c.inhibitFrames = n
	}
}

// PinchDeadZone sets the distance change a pinch gesture must exceed
// to scroll.
func PinchDeadZone(d float32) Option {
	if d < 0 {
		panic("pinch dead zone must not be negative")
	}
	return func(c *config) {
		c.pinchDeadZone = d
	}
}

// FullKeyNames makes the key namer resolve every key the backend can
// address instead of the default partial table.
func FullKeyNames() Option {
	return func(c *config) {
		c.fullKeyNames = true
	}
}

// KeyNames adds keys to the key namer table.
func KeyNames(keys ...key.Key) Option {
	return func(c *config) {
		c.extraKeyNames = append(c.extraKeyNames, keys...)
	}
}

// Binding publishes the mouse, touch and keyboard state of a backend
// through an input.Registry.
type Binding struct {
	Mouse    *MouseReader
	Keyboard *KeyboardReader
	Namer    *KeyNamer

	backend platform.Backend
	cnf     config
	reg     *input.Registry
	conn    platform.Connection
}

// New returns a binding for b. It does not touch the backend until the
// readers are called.
func New(b platform.Backend, opts ...Option) *Binding {
	cnf := defaultConfig()
	for _, o := range opts {
		o(&cnf)
	}
	cnf.logger = cnf.logger.Named("binding")
	namer := NewKeyNamer(b)
	if cnf.fullKeyNames {
		namer.AddAll()
	}
	for _, k := range cnf.extraKeyNames {
		if !namer.Add(k) {
			cnf.logger.Warn("key has no scancode, not naming it", zap.Stringer("key", k))
		}
	}
	return &Binding{
		// Init replaces the counter with the registry's.
		Mouse:    newMouseReader(b, new(input.Inhibit), &cnf),
		Keyboard: NewKeyboardReader(b),
		Namer:    namer,
		backend:  b,
		cnf:      cnf,
	}
}

// Init registers the readers with reg and subscribes to the backend's
// new window notification. The mouse reader arms the inhibit counter
// of reg from then on.
func (b *Binding) Init(reg *input.Registry) {
	if b.reg != nil {
		b.Shutdown()
	}
	b.reg = reg
	b.Mouse.inhibit = reg.Inhibit()
	name := b.cnf.readerName
	reg.AddMouseReader(name, b.Mouse.Read)
	reg.AddKeyboardReader(name, b.Keyboard.Read, b.Namer.Name)
	b.conn = b.backend.NewWindow().Connect(b.onNewWindow)
	b.cnf.logger.Info("input readers registered", zap.String("reader", name))
}

// Shutdown disconnects the binding from the backend's notifications.
// The readers stay registered. Shutdown is idempotent.
func (b *Binding) Shutdown() {
	if b.conn == 0 {
		return
	}
	b.backend.NewWindow().Disconnect(b.conn)
	b.conn = 0
	b.cnf.logger.Debug("input binding shut down")
}

func (b *Binding) onNewWindow(w platform.Window) {
	// Positions from another window are meaningless in the new one.
	b.Mouse.resetPosition()
	b.cnf.logger.Debug("new window, mouse position reset", zap.Uint64("window", uint64(w)))
}
