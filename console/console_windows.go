//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

const attachParentProcess = ^uint32(0) // (DWORD)-1

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procAttachConsole     = kernel32.NewProc("AttachConsole")
	procAllocConsole      = kernel32.NewProc("AllocConsole")
	procIsDebuggerPresent = kernel32.NewProc("IsDebuggerPresent")
)

type nativeSystem struct{}

// Native returns the kernel32-backed System.
func Native() System { return nativeSystem{} }

func (nativeSystem) AttachParent() error {
	if r, _, err := procAttachConsole.Call(uintptr(attachParentProcess)); r == 0 {
		return err
	}
	rebindStdio()
	return nil
}

func (nativeSystem) DebuggerPresent() bool {
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}

func (nativeSystem) Allocate() error {
	if r, _, err := procAllocConsole.Call(); r == 0 {
		return err
	}
	rebindStdio()
	return nil
}

// rebindStdio points os.Stdout, os.Stderr and the process std handles at the
// console that was just attached.
func rebindStdio() {
	if f, err := os.OpenFile("CONOUT$", os.O_RDWR, 0); err == nil {
		os.Stdout = f
		os.Stderr = f
		_ = windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, windows.Handle(f.Fd()))
		_ = windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(f.Fd()))
	}
	if f, err := os.OpenFile("CONIN$", os.O_RDWR, 0); err == nil {
		os.Stdin = f
		_ = windows.SetStdHandle(windows.STD_INPUT_HANDLE, windows.Handle(f.Fd()))
	}
}
