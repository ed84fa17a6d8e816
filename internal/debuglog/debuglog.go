package debuglog

import (
	"fmt"
	"log"
	"os"
	"strings"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	UseGlobal Level = 255
)

const envKey = "WARP_MANAGER_DEBUG"

var (
	GlobalLevel = ParseLevel(os.Getenv(envKey))
)

// ParseLevel maps a level name to a Level. Unknown or empty names select LevelInfo.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace
	case "verbose", "debug":
		return LevelVerbose
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelTrace:
		return "trace"
	}
	return fmt.Sprintf("level(%d)", uint8(l))
}

func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	if !ShouldLog(level, local) {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}

// ErrorLog, WarnLog, InfoLog and DebugLog log at the matching level against GlobalLevel.
func ErrorLog(format string, args ...interface{}) {
	Log("", LevelError, UseGlobal, format, args...)
}

func WarnLog(format string, args ...interface{}) {
	Log("", LevelWarn, UseGlobal, format, args...)
}

func InfoLog(format string, args ...interface{}) {
	Log("", LevelInfo, UseGlobal, format, args...)
}

func DebugLog(format string, args ...interface{}) {
	Log("", LevelVerbose, UseGlobal, format, args...)
}

// LogTextFragment logs command output, keeping only the head and tail of long texts.
func LogTextFragment(prefix string, level Level, local Level, description, text string, maxChars int) {
	if !ShouldLog(level, local) {
		return
	}

	textLen := len(text)
	if textLen <= maxChars*2 {
		Log(prefix, level, local, "%s (len=%d): %q", description, textLen, text)
		return
	}

	Log(prefix, level, local, "%s (len=%d): first %d chars: %q",
		description, textLen, maxChars, text[:maxChars])
	Log(prefix, level, local, "%s (len=%d): last %d chars: %q",
		description, textLen, maxChars, text[textLen-maxChars:])
}
