// Package msgloop runs the thread's native message pump.
package msgloop

import "iter"

// Event is one retrieved window message.
type Event struct {
	Handle  uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	X, Y    int32
}

// Queue is the native message source of the calling thread. Next blocks
// until a message arrives. It reports false once the quit message is
// retrieved or retrieval fails; Err tells the two apart.
type Queue interface {
	Next() (Event, bool)
	Translate(ev *Event)
	Dispatch(ev *Event)
	Err() error
}

// Events yields messages from q until q reports the end of the stream.
func Events(q Queue) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := q.Next()
			if !ok {
				return
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Run pumps q until quit and returns the number of dispatched messages.
func Run(q Queue) (int, error) {
	n := 0
	for ev := range Events(q) {
		q.Translate(&ev)
		q.Dispatch(&ev)
		n++
	}
	return n, q.Err()
}
