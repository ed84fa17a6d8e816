//go:build linux
// +build linux

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
func PrepareCommand(cmd *exec.Cmd) {
	// warp-cli needs no special attributes on Linux
}

// GetInstallHint returns a short platform-specific hint for installing warp-cli.
func GetInstallHint() string {
	return "Install the cloudflare-warp package and run 'warp-cli registration new' once."
}
