//go:build windows

package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify relays Ctrl+C and Ctrl+Break as os.Interrupt and console close,
// logoff and shutdown as SIGTERM.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}
