package debuglog

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelVerbose},
		{" verbose ", LevelVerbose},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"off", LevelOff},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.raw); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLogRespectsLevels(t *testing.T) {
	buf := captureLog(t)

	Log("warpcli", LevelVerbose, LevelInfo, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("verbose message logged at info level: %q", buf.String())
	}

	Log("warpcli", LevelWarn, LevelInfo, "shown %d", 2)
	if got := buf.String(); !strings.Contains(got, "[warpcli] shown 2") {
		t.Errorf("unexpected log output %q", got)
	}
}

func TestLogTextFragmentTruncatesLongText(t *testing.T) {
	buf := captureLog(t)

	long := strings.Repeat("a", 50) + strings.Repeat("b", 50)
	LogTextFragment("", LevelInfo, LevelInfo, "status output", long, 10)

	out := buf.String()
	if !strings.Contains(out, "first 10 chars") || !strings.Contains(out, "last 10 chars") {
		t.Errorf("expected head and tail fragments, got %q", out)
	}
	if strings.Contains(out, long) {
		t.Error("full text should not be logged")
	}
}

func TestCloseWithLog(t *testing.T) {
	buf := captureLog(t)

	CloseWithLog("nil closer", nil)
	if buf.Len() != 0 {
		t.Fatalf("nil closer produced output %q", buf.String())
	}

	CloseWithLog("log file", failingCloser{})
	if !strings.Contains(buf.String(), "log file: close failed") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }
