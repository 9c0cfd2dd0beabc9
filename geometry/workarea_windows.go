//go:build windows

package geometry

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const spiGetWorkArea = 0x0030

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// WorkArea queries the primary monitor's work area, which excludes the
// taskbar and docked app bars. Every call asks the OS again.
func WorkArea() (Rect, error) {
	var rc Rect
	r, _, err := procSystemParametersInfo.Call(spiGetWorkArea, 0, uintptr(unsafe.Pointer(&rc)), 0)
	if r == 0 {
		return Rect{}, fmt.Errorf("SystemParametersInfo(SPI_GETWORKAREA): %w", err)
	}
	return rc, nil
}
