// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app binds a platform backend to an input registry.

A Binding owns three readers for one backend: a MouseReader that merges
mouse and touch events into pointer snapshots, a KeyboardReader that
samples the backend key table, and a KeyNamer. Init registers them under
one name, "default" unless configured otherwise:

	reg := input.NewRegistry(logger)
	b := app.New(backend, app.Logger(logger))
	b.Init(reg)
	defer b.Shutdown()

	for {
		reg.Frame()
		mouse, _ := reg.ReadMouse("default")
		keys, _ := reg.ReadKeyboard("default")
		...
	}

# Coordinates

Mouse positions are in window client pixels with the origin at the
bottom-left corner. Touch positions are scaled from the backend's
normalized coordinates to the same space.

# Threading

Readers must be called from the thread that owns the backend event
queue. Nothing in this package blocks.
*/
package app
