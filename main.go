package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.design/x/hotkey/mainthread"

	"runner/config"
)

var version = "dev"

func main() {
	os.Exit(onLockedThread(func() int {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not resolve log directory: %v\n", err)
		}
		return run(cfg, nativePlatform())
	}))
}

// onLockedThread runs fn under mainthread.Init with the calling goroutine
// wired to one OS thread. The window, its message queue and the COM
// apartment all belong to the thread that creates them.
func onLockedThread(fn func() int) int {
	code := exitFailure
	mainthread.Init(func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		code = fn()
	})
	return code
}
