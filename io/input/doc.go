// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements the registry of named input readers.

Platform bindings register reader functions with a [Registry]
under a name, typically "default". The tick loop calls [Registry.Frame]
once per tick and then reads snapshots by name, either directly through
[Registry.ReadMouse] and [Registry.ReadKeyboard] or through the [Mouse]
and [Keyboard] devices, which also track press and release edges.

The registry owns the click [Inhibit] counter. Readers arm it when their
window loses its client area; Frame counts it down.
*/
package input
