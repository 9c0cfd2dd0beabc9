package window

import (
	"sync"

	"runner/geometry"
)

const fakeHandle = 0x1000

// FakeSurface records what the controller asks of it. Close runs the destroy
// path synchronously and then calls OnQuit when quit-on-close is set.
type FakeSurface struct {
	CreateErr error
	OnQuit    func()

	mu           sync.Mutex
	hooks        Hooks
	created      bool
	title        string
	origin       geometry.Point
	size         geometry.Size
	quitOnClose  bool
	closeEnabled bool
	closes       int
	destroyed    bool
}

func NewFakeSurface() *FakeSurface {
	return &FakeSurface{closeEnabled: true}
}

func (f *FakeSurface) Create(title string, origin geometry.Point, size geometry.Size, hooks Hooks) error {
	f.mu.Lock()
	f.title, f.origin, f.size = title, origin, size
	f.hooks = hooks
	f.mu.Unlock()

	if f.CreateErr != nil {
		return f.CreateErr
	}
	if hooks.OnCreate != nil {
		if err := hooks.OnCreate(fakeHandle, size); err != nil {
			if hooks.OnDestroy != nil {
				hooks.OnDestroy()
			}
			return err
		}
	}
	f.mu.Lock()
	f.created = true
	f.mu.Unlock()
	return nil
}

func (f *FakeSurface) SetQuitOnClose(quit bool) {
	f.mu.Lock()
	f.quitOnClose = quit
	f.mu.Unlock()
}

func (f *FakeSurface) SetCloseEnabled(enabled bool) error {
	f.mu.Lock()
	f.closeEnabled = enabled
	f.mu.Unlock()
	return nil
}

func (f *FakeSurface) Handle() uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.created || f.destroyed {
		return 0
	}
	return fakeHandle
}

func (f *FakeSurface) Close() {
	f.mu.Lock()
	f.closes++
	if !f.created || f.destroyed || !f.closeEnabled {
		f.mu.Unlock()
		return
	}
	f.destroyed = true
	hooks, quit, onQuit := f.hooks, f.quitOnClose, f.OnQuit
	f.mu.Unlock()

	if hooks.OnClose != nil {
		hooks.OnClose()
	}
	if hooks.OnDestroy != nil {
		hooks.OnDestroy()
	}
	if quit && onQuit != nil {
		onQuit()
	}
}

// Resize simulates the user resizing the window.
func (f *FakeSurface) Resize(size geometry.Size) {
	f.mu.Lock()
	hooks := f.hooks
	f.mu.Unlock()
	if hooks.OnResize != nil {
		hooks.OnResize(size)
	}
}

func (f *FakeSurface) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

func (f *FakeSurface) Placement() geometry.Placement {
	f.mu.Lock()
	defer f.mu.Unlock()
	return geometry.Placement{Origin: f.origin, Size: f.size}
}

func (f *FakeSurface) QuitOnClose() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quitOnClose
}

func (f *FakeSurface) CloseEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeEnabled
}

func (f *FakeSurface) Closes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}
