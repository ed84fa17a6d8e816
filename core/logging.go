package core

import (
	"log"
	"os"

	"warp-manager/internal/platform"
)

const (
	// maxLogFileSize is the maximum log file size before rotation (10 MB)
	maxLogFileSize = 10 * 1024 * 1024
)

// checkAndRotateLogFile renames logPath to logPath+".old" once it exceeds limit.
func checkAndRotateLogFile(logPath string, limit int64) {
	info, err := os.Stat(logPath)
	if err != nil {
		return // File doesn't exist yet, nothing to rotate
	}

	if info.Size() > limit {
		oldPath := logPath + ".old"
		_ = os.Remove(oldPath)
		if err := os.Rename(logPath, oldPath); err != nil {
			log.Printf("checkAndRotateLogFile: Failed to rotate log file %s: %v", logPath, err)
		} else {
			log.Printf("checkAndRotateLogFile: Rotated log file %s (size: %d bytes)", logPath, info.Size())
		}
	}
}

// openLogFileWithRotation opens a log file in append mode, rotating it first if needed.
func openLogFileWithRotation(logPath string, limit int64) (*os.File, error) {
	checkAndRotateLogFile(logPath, limit)
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// SetupLogging sends the standard logger to logs/warp-manager.log under execDir.
// When the file cannot be opened the logger keeps writing to stderr.
func SetupLogging(execDir string) *os.File {
	if err := platform.EnsureDirectories(execDir); err != nil {
		log.Printf("SetupLogging: cannot create logs directory: %v", err)
		return nil
	}
	logFile, err := openLogFileWithRotation(platform.GetMainLogPath(execDir), maxLogFileSize)
	if err != nil {
		log.Printf("SetupLogging: cannot open main log file: %v", err)
		return nil
	}
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
