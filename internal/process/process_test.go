package process

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func staticLister(names ...string) Lister {
	return ListerFunc(func() ([]ProcessInfo, error) {
		out := make([]ProcessInfo, 0, len(names))
		for i, n := range names {
			out = append(out, ProcessInfo{PID: 100 + i, Name: n})
		}
		return out, nil
	})
}

func TestCheckerIsRunning(t *testing.T) {
	tests := []struct {
		name   string
		table  []string
		needle string
		want   bool
	}{
		{"case-insensitive match", []string{"explorer.exe", "Steam.exe"}, "steam", true},
		{"no steam entry", []string{"explorer.exe", "chrome.exe"}, "steam", false},
		{"substring inside name", []string{"steamwebhelper"}, "steam", true},
		{"epic launcher", []string{"EpicGamesLauncher.exe"}, "epicgameslauncher", true},
		{"vanished entries skipped", []string{"", "", "Steam"}, "steam", true},
		{"empty needle", []string{"Steam.exe"}, "", false},
		{"empty table", nil, "steam", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(staticLister(tt.table...))
			if got := c.IsRunning(tt.needle); got != tt.want {
				t.Errorf("IsRunning(%q) = %v, want %v", tt.needle, got, tt.want)
			}
		})
	}
}

func TestCheckerFindReturnsFirstMatch(t *testing.T) {
	c := NewChecker(staticLister("init", "steam", "Steam.exe"))
	p, ok := c.Find("STEAM")
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Name != "steam" || p.PID != 101 {
		t.Errorf("Find returned %+v, want first match", p)
	}
}

func TestCheckerListingFailure(t *testing.T) {
	c := NewChecker(ListerFunc(func() ([]ProcessInfo, error) {
		return nil, errors.New("permission denied")
	}))
	if c.IsRunning("steam") {
		t.Error("listing failure must report not running")
	}
}

func TestGetProcessesIncludesSelf(t *testing.T) {
	procs, err := GetProcesses()
	if err != nil {
		t.Skipf("process table not readable here: %v", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.PID == self {
			exe, _ := os.Executable()
			if p.Name == "" {
				t.Errorf("own process has empty name (exe %s)", filepath.Base(exe))
			}
			return
		}
	}
	t.Errorf("own PID %d not found among %d processes", self, len(procs))
}
