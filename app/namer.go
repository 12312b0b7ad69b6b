// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"polltick.org/io/key"
	"polltick.org/platform"
)

// KeyNamer resolves key names through the backend's keyboard layout.
//
// Its table is partial: by default only the shift keys are named.
// Keys outside the table have no name. Extend the table with Add or
// AddAll.
type KeyNamer struct {
	keys  platform.Keys
	table [key.NumKeys]platform.Scancode
}

// NewKeyNamer returns a namer with the default table.
func NewKeyNamer(keys platform.Keys) *KeyNamer {
	n := &KeyNamer{keys: keys}
	n.Add(key.LShift)
	n.Add(key.RShift)
	return n
}

// Add includes k in the table. It reports false if the backend cannot
// address k.
func (n *KeyNamer) Add(k key.Key) bool {
	if !k.Valid() {
		return false
	}
	sc := addressableScancodes[k]
	if sc == platform.ScancodeUnknown {
		return false
	}
	n.table[k] = sc
	return true
}

// AddAll includes every addressable key in the table.
func (n *KeyNamer) AddAll() {
	n.table = addressableScancodes
}

// Keys returns the keys in the table, in enumeration order.
func (n *KeyNamer) Keys() []key.Key {
	var keys []key.Key
	for k, sc := range n.table {
		if sc != platform.ScancodeUnknown {
			keys = append(keys, key.Key(k))
		}
	}
	return keys
}

// Name returns the backend's name for k. It reports false if k is not
// in the table or the backend has no name for it.
func (n *KeyNamer) Name(k key.Key) (string, bool) {
	if !k.Valid() {
		return "", false
	}
	sc := n.table[k]
	if sc == platform.ScancodeUnknown {
		return "", false
	}
	name := n.keys.ScancodeName(sc)
	return name, name != ""
}
