// Package window owns the single top-level window of the process and the
// embedded runtime content hosted in it.
package window

import (
	"errors"
	"fmt"
	"sync"

	"runner/geometry"
	"runner/project"
)

var (
	ErrAlreadyCreated = errors.New("window: already created")
	ErrNotLive        = errors.New("window: not live")
	ErrUnsupported    = errors.New("window: native windows not supported on this platform")
)

type State int

const (
	Uncreated State = iota
	Live
	Terminating
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uncreated:
		return "uncreated"
	case Live:
		return "live"
	case Terminating:
		return "terminating"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Hooks are invoked by a Surface on the thread that pumps its messages.
// A non-nil error from OnCreate aborts creation. OnClose runs when a close
// request is honoured, before the window is torn down.
type Hooks struct {
	OnCreate  func(handle uintptr, client geometry.Size) error
	OnResize  func(client geometry.Size)
	OnClose   func()
	OnDestroy func()
}

// Surface is a native top-level window.
type Surface interface {
	Create(title string, origin geometry.Point, size geometry.Size, hooks Hooks) error
	// SetQuitOnClose makes destruction of the window post the quit message.
	SetQuitOnClose(quit bool)
	// SetCloseEnabled toggles the system-menu close item and whether a close
	// request is honoured.
	SetCloseEnabled(enabled bool) error
	Handle() uintptr
	// Close asks the window to close. Safe to call from any goroutine.
	Close()
}

// Content is the embedded runtime view mounted into the window's client area.
type Content interface {
	Mount(handle uintptr, p *project.Project, client geometry.Size) error
	Resize(client geometry.Size)
	Unmount()
}

type Window struct {
	surface Surface
	content Content
	project *project.Project

	mu       sync.Mutex
	state    State
	creating bool
	mounted  bool
}

// New prepares a window hosting p. content may be nil.
func New(s Surface, p *project.Project, content Content) *Window {
	return &Window{surface: s, project: p, content: content}
}

// Create makes the native window. It succeeds at most once per Window; on
// failure the window stays Uncreated.
func (w *Window) Create(title string, origin geometry.Point, size geometry.Size) error {
	w.mu.Lock()
	if w.state != Uncreated || w.creating {
		w.mu.Unlock()
		return ErrAlreadyCreated
	}
	w.creating = true
	w.mu.Unlock()

	err := w.surface.Create(title, origin, size, Hooks{
		OnCreate:  w.mount,
		OnResize:  w.resize,
		OnClose:   w.closing,
		OnDestroy: w.destroyed,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.creating = false
	if err != nil {
		return fmt.Errorf("create window %q: %w", title, err)
	}
	if w.state == Uncreated {
		w.state = Live
	}
	return nil
}

func (w *Window) SetQuitOnClose(quit bool) {
	w.surface.SetQuitOnClose(quit)
}

// DisableClose greys out the close control and ignores close requests.
func (w *Window) DisableClose() error {
	if w.State() != Live {
		return ErrNotLive
	}
	return w.surface.SetCloseEnabled(false)
}

// RequestClose starts an orderly close of a live window. Other states are
// left alone.
func (w *Window) RequestClose() {
	w.mu.Lock()
	if w.state != Live {
		w.mu.Unlock()
		return
	}
	w.state = Terminating
	w.mu.Unlock()
	w.surface.Close()
}

func (w *Window) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Window) Handle() uintptr {
	return w.surface.Handle()
}

func (w *Window) mount(handle uintptr, client geometry.Size) error {
	if w.content == nil {
		return nil
	}
	if err := w.content.Mount(handle, w.project, client); err != nil {
		return fmt.Errorf("mount content: %w", err)
	}
	w.mu.Lock()
	w.mounted = true
	w.mu.Unlock()
	return nil
}

func (w *Window) resize(client geometry.Size) {
	w.mu.Lock()
	mounted := w.mounted
	w.mu.Unlock()
	if mounted {
		w.content.Resize(client)
	}
}

func (w *Window) closing() {
	w.mu.Lock()
	if w.state == Live {
		w.state = Terminating
	}
	w.mu.Unlock()
}

// destroyed unmounts the content while the window is Terminating, whatever
// started the close.
func (w *Window) destroyed() {
	w.closing()
	w.mu.Lock()
	mounted := w.mounted
	w.mounted = false
	w.mu.Unlock()
	if mounted {
		w.content.Unmount()
	}

	w.mu.Lock()
	if !w.creating {
		w.state = Destroyed
	}
	w.mu.Unlock()
}
