//go:build darwin
// +build darwin

package platform

import (
	"os/exec"
)

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("open", path).Start()
}

// OpenURL opens a URL in the default browser
func OpenURL(url string) error {
	return exec.Command("open", url).Start()
}

// PrepareCommand prepares a command with platform-specific attributes
func PrepareCommand(cmd *exec.Cmd) {
	// No special attributes needed for macOS
}

// GetInstallHint returns a short platform-specific hint for installing warp-cli.
func GetInstallHint() string {
	return "Install the Cloudflare WARP app; warp-cli ships inside it."
}
