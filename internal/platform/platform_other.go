//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package platform

import (
	"os/exec"
)

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("xdg-open", path).Start()
}

// OpenURL opens a URL in the default browser
func OpenURL(url string) error {
	return exec.Command("xdg-open", url).Start()
}

// PrepareCommand prepares a command with platform-specific attributes
func PrepareCommand(cmd *exec.Cmd) {}

// GetInstallHint returns a short platform-specific hint for installing warp-cli.
func GetInstallHint() string {
	return "warp-cli is not officially available for this platform."
}
