//go:build windows

package cmdline

import (
	"golang.org/x/sys/windows"
)

func init() {
	split = decompose
}

// Raw returns the command line the process was started with.
func Raw() string {
	return windows.UTF16PtrToString(windows.GetCommandLine())
}

func decompose(line string) []string {
	args, err := windows.DecomposeCommandLine(line)
	if err != nil {
		return Split(line)
	}
	return args
}
