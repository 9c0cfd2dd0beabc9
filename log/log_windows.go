//go:build windows

package log

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func getDefaultDir() (string, error) {
	localAppData, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
	if err != nil || localAppData == "" {
		localAppData = os.Getenv("LOCALAPPDATA")
	}
	if localAppData == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		localAppData = filepath.Join(home, "AppData", "Local")
	}
	return filepath.Join(localAppData, "runner", "logs"), nil
}
