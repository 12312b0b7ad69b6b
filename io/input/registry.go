// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"polltick.org/io/key"
	"polltick.org/io/pointer"
)

// MouseReader produces one mouse snapshot per call.
type MouseReader func() pointer.MouseState

// KeyboardReader produces one keyboard snapshot per call.
type KeyboardReader func() key.State

// KeyNamer returns a human-readable name for a key. It reports false
// when the key has no name.
type KeyNamer func(k key.Key) (string, bool)

// Registry holds named input readers. It is not safe for concurrent
// use; call it from the thread that polls the platform.
type Registry struct {
	logger    *zap.Logger
	mice      map[string]MouseReader
	keyboards map[string]keyboardReader
	inhibit   Inhibit
}

type keyboardReader struct {
	read  KeyboardReader
	namer KeyNamer
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:    logger.Named("input"),
		mice:      make(map[string]MouseReader),
		keyboards: make(map[string]keyboardReader),
	}
}

// AddMouseReader registers read under name, replacing any reader
// previously registered with that name.
func (r *Registry) AddMouseReader(name string, read MouseReader) {
	if _, exists := r.mice[name]; exists {
		r.logger.Info("replacing mouse reader", zap.String("reader", name))
	} else {
		r.logger.Debug("adding mouse reader", zap.String("reader", name))
	}
	r.mice[name] = read
}

// AddKeyboardReader registers read and namer under name, replacing any
// reader previously registered with that name. namer may be nil.
func (r *Registry) AddKeyboardReader(name string, read KeyboardReader, namer KeyNamer) {
	if _, exists := r.keyboards[name]; exists {
		r.logger.Info("replacing keyboard reader", zap.String("reader", name))
	} else {
		r.logger.Debug("adding keyboard reader", zap.String("reader", name))
	}
	r.keyboards[name] = keyboardReader{read: read, namer: namer}
}

// RemoveMouseReader unregisters the mouse reader name.
func (r *Registry) RemoveMouseReader(name string) {
	delete(r.mice, name)
}

// RemoveKeyboardReader unregisters the keyboard reader name.
func (r *Registry) RemoveKeyboardReader(name string) {
	delete(r.keyboards, name)
}

// MouseReaders returns the names of the registered mouse readers in
// sorted order.
func (r *Registry) MouseReaders() []string {
	names := maps.Keys(r.mice)
	slices.Sort(names)
	return names
}

// KeyboardReaders returns the names of the registered keyboard readers
// in sorted order.
func (r *Registry) KeyboardReaders() []string {
	names := maps.Keys(r.keyboards)
	slices.Sort(names)
	return names
}

// ReadMouse calls the mouse reader name. It reports false if no such
// reader is registered.
func (r *Registry) ReadMouse(name string) (pointer.MouseState, bool) {
	read, ok := r.mice[name]
	if !ok {
		return pointer.MouseState{}, false
	}
	return read(), true
}

// ReadKeyboard calls the keyboard reader name. It reports false if no
// such reader is registered.
func (r *Registry) ReadKeyboard(name string) (key.State, bool) {
	kr, ok := r.keyboards[name]
	if !ok {
		return key.State{}, false
	}
	return kr.read(), true
}

// KeyName resolves k through the namer of keyboard reader name.
func (r *Registry) KeyName(name string, k key.Key) (string, bool) {
	kr, ok := r.keyboards[name]
	if !ok || kr.namer == nil || !k.Valid() {
		return "", false
	}
	return kr.namer(k)
}

// Inhibit returns the registry's click inhibit counter.
func (r *Registry) Inhibit() *Inhibit {
	return &r.inhibit
}

// Frame advances the registry by one tick. Call it once per tick,
// before reading.
func (r *Registry) Frame() {
	r.inhibit.Frame()
}
