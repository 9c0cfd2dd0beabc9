//go:build windows

package msgloop

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetMessage       = user32.NewProc("GetMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessage  = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

func (m *msg) event() Event {
	return Event{
		Handle:  m.hwnd,
		Message: m.message,
		WParam:  m.wParam,
		LParam:  m.lParam,
		Time:    m.time,
		X:       m.pt.x,
		Y:       m.pt.y,
	}
}

func fromEvent(ev *Event) msg {
	var m msg
	m.hwnd = ev.Handle
	m.message = ev.Message
	m.wParam = ev.WParam
	m.lParam = ev.LParam
	m.time = ev.Time
	m.pt.x, m.pt.y = ev.X, ev.Y
	return m
}

// nativeQueue reads the message queue of the thread that calls Next. It
// must stay on the thread that created the window.
type nativeQueue struct {
	err error
}

func Native() Queue { return &nativeQueue{} }

func (q *nativeQueue) Next() (Event, bool) {
	var m msg
	r, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
	switch int32(r) {
	case 0: // WM_QUIT
		return Event{}, false
	case -1:
		q.err = fmt.Errorf("GetMessage: %w", err)
		return Event{}, false
	}
	return m.event(), true
}

func (q *nativeQueue) Translate(ev *Event) {
	m := fromEvent(ev)
	procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
}

func (q *nativeQueue) Dispatch(ev *Event) {
	m := fromEvent(ev)
	procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
}

func (q *nativeQueue) Err() error { return q.err }

// PostQuit posts WM_QUIT to the calling thread's queue.
func PostQuit(code int) {
	procPostQuitMessage.Call(uintptr(code))
}
