// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"reflect"
	"testing"

	"polltick.org/io/key"
	"polltick.org/platform"
	"polltick.org/platform/headless"
)

func TestKeyNamerDefaultTable(t *testing.T) {
	n := NewKeyNamer(headless.New())
	if got, want := n.Keys(), []key.Key{key.LShift, key.RShift}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v; want %v", got, want)
	}
	if name, ok := n.Name(key.LShift); !ok || name != "Left Shift" {
		t.Errorf("Name(LShift) = %q, %v", name, ok)
	}
	for _, k := range []key.Key{key.A, key.Tab, key.F1} {
		if name, ok := n.Name(k); ok || name != "" {
			t.Errorf("Name(%v) = %q, %v; want unmapped", k, name, ok)
		}
	}
	if _, ok := n.Name(key.NumKeys); ok {
		t.Error("invalid key named")
	}
}

func TestKeyNamerExtend(t *testing.T) {
	b := headless.New()
	n := NewKeyNamer(b)
	if !n.Add(key.Digit1) {
		t.Fatal("digit not addable")
	}
	if name, ok := n.Name(key.Digit1); !ok || name != "1" {
		t.Errorf("Name(Digit1) = %q, %v", name, ok)
	}
	if n.Add(key.NumKeys) {
		t.Error("invalid key added")
	}
	n.AddAll()
	for _, k := range key.All() {
		if _, ok := n.Name(k); !ok {
			t.Errorf("%v unnamed with full table", k)
		}
	}
}

func TestKeyNamerBackendWithoutName(t *testing.T) {
	b := headless.New()
	b.SetScancodeName(platform.ScancodeRShift, "")
	n := NewKeyNamer(b)
	if name, ok := n.Name(key.RShift); ok || name != "" {
		t.Errorf("Name(RShift) = %q, %v; want unnamed", name, ok)
	}
}

func TestKeyNamerDeterministic(t *testing.T) {
	n := NewKeyNamer(headless.New())
	n.AddAll()
	for _, k := range key.All() {
		a, okA := n.Name(k)
		b, okB := n.Name(k)
		if a != b || okA != okB {
			t.Errorf("%v: %q, %v then %q, %v", k, a, okA, b, okB)
		}
	}
}
