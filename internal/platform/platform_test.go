package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	dir := t.TempDir()

	if got, want := GetSettingsPath(dir), filepath.Join(dir, "settings.jsonc"); got != want {
		t.Errorf("GetSettingsPath = %q, want %q", got, want)
	}
	if got, want := GetMainLogPath(dir), filepath.Join(dir, "logs", "warp-manager.log"); got != want {
		t.Errorf("GetMainLogPath = %q, want %q", got, want)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureDirectories(dir); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	info, err := os.Stat(GetLogsDir(dir))
	if err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	if !info.IsDir() {
		t.Error("logs path is not a directory")
	}
}
