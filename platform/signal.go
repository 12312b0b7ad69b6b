// SPDX-License-Identifier: Unlicense OR MIT

package platform

// Signal is a list of listeners notified by Emit. It is not safe for
// concurrent use.
type Signal[T any] struct {
	next      Connection
	listeners []listener[T]
}

// Connection identifies a listener connected to a Signal. The zero
// Connection is never returned by Connect.
type Connection uint64

type listener[T any] struct {
	conn Connection
	fn   func(T)
}

// Connect adds fn to the listeners of s.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	s.next++
	s.listeners = append(s.listeners, listener[T]{conn: s.next, fn: fn})
	return s.next
}

// Disconnect removes the listener identified by c. Unknown connections
// are ignored.
func (s *Signal[T]) Disconnect(c Connection) {
	for i, l := range s.listeners {
		if l.conn == c {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Emit calls every listener with v, in connection order.
func (s *Signal[T]) Emit(v T) {
	// Listeners may disconnect while being notified.
	ls := append([]listener[T](nil), s.listeners...)
	for _, l := range ls {
		l.fn(v)
	}
}

// Len returns the number of connected listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
