//go:build windows

package window

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"runner/geometry"
	"runner/msgloop"
)

const className = "RUNNER_WIN32_WINDOW"

const (
	wmCreate  = 0x0001
	wmDestroy = 0x0002
	wmSize    = 0x0005
	wmClose   = 0x0010

	wsOverlappedWindow = 0x00CF0000
	wsVisible          = 0x10000000

	csHRedraw = 0x0002
	csVRedraw = 0x0001

	idcArrow = 32512

	scClose     = 0xF060
	mfByCommand = 0x0000
	mfEnabled   = 0x0000
	mfGrayed    = 0x0001
)

type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

type rect struct {
	left, top, right, bottom int32
}

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassEx = user32.NewProc("RegisterClassExW")
	procUnregisterClass = user32.NewProc("UnregisterClassW")
	procCreateWindowEx  = user32.NewProc("CreateWindowExW")
	procDefWindowProc   = user32.NewProc("DefWindowProcW")
	procDestroyWindow   = user32.NewProc("DestroyWindow")
	procUpdateWindow    = user32.NewProc("UpdateWindow")
	procPostMessage     = user32.NewProc("PostMessageW")
	procGetClientRect   = user32.NewProc("GetClientRect")
	procLoadCursor      = user32.NewProc("LoadCursorW")
	procGetSystemMenu   = user32.NewProc("GetSystemMenu")
	procEnableMenuItem  = user32.NewProc("EnableMenuItem")
	procGetModuleHandle = kernel32.NewProc("GetModuleHandleW")

	wndProcOnce sync.Once
	wndProcPtr  uintptr

	// active is the one surface whose window is alive. Messages for any other
	// window of the class go to DefWindowProc.
	active atomic.Pointer[nativeSurface]
)

type nativeSurface struct {
	hwnd         atomic.Uintptr
	quitOnClose  atomic.Bool
	closeEnabled atomic.Bool
	hooks        Hooks
	mountErr     error
}

// NewNative returns a Win32 surface. Create must run on the thread that will
// pump its messages.
func NewNative() Surface {
	s := &nativeSurface{}
	s.closeEnabled.Store(true)
	return s
}

func (s *nativeSurface) Create(title string, origin geometry.Point, size geometry.Size, hooks Hooks) error {
	if !active.CompareAndSwap(nil, s) {
		return ErrAlreadyCreated
	}
	s.hooks = hooks

	instance, _, _ := procGetModuleHandle.Call(0)
	cls, err := windows.UTF16PtrFromString(className)
	if err != nil {
		active.Store(nil)
		return err
	}
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		active.Store(nil)
		return err
	}
	if err := registerClass(windows.Handle(instance), cls); err != nil {
		active.Store(nil)
		return err
	}

	hwnd, _, callErr := procCreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(cls)),
		uintptr(unsafe.Pointer(titlePtr)),
		wsOverlappedWindow|wsVisible,
		uintptr(origin.X), uintptr(origin.Y),
		uintptr(size.Width), uintptr(size.Height),
		0, 0, instance, 0,
	)
	if hwnd == 0 {
		active.Store(nil)
		procUnregisterClass.Call(uintptr(unsafe.Pointer(cls)), instance)
		if s.mountErr != nil {
			return s.mountErr
		}
		return fmt.Errorf("CreateWindowEx: %w", callErr)
	}
	procUpdateWindow.Call(hwnd)
	return nil
}

func registerClass(instance windows.Handle, cls *uint16) error {
	wndProcOnce.Do(func() {
		wndProcPtr = windows.NewCallback(wndProc)
	})
	cursor, _, _ := procLoadCursor.Call(0, idcArrow)
	wc := wndClassEx{
		style:     csHRedraw | csVRedraw,
		wndProc:   wndProcPtr,
		instance:  instance,
		cursor:    windows.Handle(cursor),
		className: cls,
	}
	wc.size = uint32(unsafe.Sizeof(wc))
	if r, _, err := procRegisterClassEx.Call(uintptr(unsafe.Pointer(&wc))); r == 0 {
		// registered by an earlier Create
		if err != windows.ERROR_CLASS_ALREADY_EXISTS {
			return fmt.Errorf("RegisterClassEx: %w", err)
		}
	}
	return nil
}

func (s *nativeSurface) SetQuitOnClose(quit bool) {
	s.quitOnClose.Store(quit)
}

func (s *nativeSurface) SetCloseEnabled(enabled bool) error {
	s.closeEnabled.Store(enabled)
	hwnd := s.hwnd.Load()
	if hwnd == 0 {
		return ErrNotLive
	}
	menu, _, _ := procGetSystemMenu.Call(hwnd, 0)
	if menu == 0 {
		return fmt.Errorf("GetSystemMenu: no system menu")
	}
	flag := uintptr(mfByCommand | mfEnabled)
	if !enabled {
		flag = mfByCommand | mfGrayed
	}
	procEnableMenuItem.Call(menu, scClose, flag)
	return nil
}

func (s *nativeSurface) Handle() uintptr {
	return s.hwnd.Load()
}

func (s *nativeSurface) Close() {
	if hwnd := s.hwnd.Load(); hwnd != 0 {
		procPostMessage.Call(hwnd, wmClose, 0, 0)
	}
}

func clientSize(hwnd uintptr) geometry.Size {
	var rc rect
	procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	return geometry.Size{Width: rc.right - rc.left, Height: rc.bottom - rc.top}
}

func wndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	s := active.Load()
	if s == nil {
		r, _, _ := procDefWindowProc.Call(hwnd, uintptr(msg), wParam, lParam)
		return r
	}

	switch msg {
	case wmCreate:
		s.hwnd.Store(hwnd)
		if s.hooks.OnCreate != nil {
			if err := s.hooks.OnCreate(hwnd, clientSize(hwnd)); err != nil {
				s.mountErr = err
				s.hwnd.Store(0)
				return ^uintptr(0) // -1 aborts CreateWindowEx
			}
		}
		return 0
	case wmSize:
		if s.hooks.OnResize != nil {
			s.hooks.OnResize(geometry.Size{
				Width:  int32(lParam & 0xFFFF),
				Height: int32((lParam >> 16) & 0xFFFF),
			})
		}
		return 0
	case wmClose:
		if !s.closeEnabled.Load() {
			return 0
		}
		if s.hooks.OnClose != nil {
			s.hooks.OnClose()
		}
		procDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		s.hwnd.Store(0)
		if s.hooks.OnDestroy != nil {
			s.hooks.OnDestroy()
		}
		if s.quitOnClose.Load() {
			msgloop.PostQuit(0)
		}
		return 0
	}
	r, _, _ := procDefWindowProc.Call(hwnd, uintptr(msg), wParam, lParam)
	return r
}
