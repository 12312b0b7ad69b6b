// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"polltick.org/io/input"
	"polltick.org/io/key"
	"polltick.org/io/pointer"
)

// dumper advances the registry one tick at a time and writes a line
// per tick.
type dumper struct {
	out   io.Writer
	reg   *input.Registry
	mouse *input.Mouse
	kb    *input.Keyboard
	tick  int
}

func newDumper(out io.Writer, reg *input.Registry, name string) *dumper {
	return &dumper{
		out:   out,
		reg:   reg,
		mouse: input.NewMouse(reg, name),
		kb:    input.NewKeyboard(reg, name),
	}
}

func (d *dumper) step() error {
	d.reg.Frame()
	d.mouse.Update()
	d.kb.Update()
	_, err := fmt.Fprintln(d.out, d.line())
	d.tick++
	return err
}

func (d *dumper) line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d mouse %v", d.tick, d.mouse.State())
	var clicks []string
	for btn := pointer.Button(0); btn < pointer.NumButtons; btn++ {
		if d.mouse.Pressed(btn) {
			clicks = append(clicks, btn.String())
		}
	}
	if len(clicks) > 0 {
		fmt.Fprintf(&b, " click=%s", strings.Join(clicks, "|"))
	}
	if n := d.reg.Inhibit().Remaining(); n > 0 {
		fmt.Fprintf(&b, " inhibit=%d", n)
	}
	b.WriteString(" keys=[")
	for i, k := range d.kb.State().Pressed() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.keyLabel(k))
	}
	b.WriteByte(']')
	return b.String()
}

// keyLabel returns the layout name of k if the namer resolves it, and
// its identifier otherwise.
func (d *dumper) keyLabel(k key.Key) string {
	if name, ok := d.kb.Name(k); ok {
		return fmt.Sprintf("%s(%s)", k, name)
	}
	return k.String()
}
