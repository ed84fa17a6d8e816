package platform

import (
	"os"
	"path/filepath"

	"warp-manager/internal/constants"
)

// GetSettingsPath returns the path to the optional settings file next to the executable.
func GetSettingsPath(execDir string) string {
	return filepath.Join(execDir, constants.SettingsFileName)
}

// GetLogsDir returns the path to logs directory
func GetLogsDir(execDir string) string {
	return filepath.Join(execDir, constants.LogsDirName)
}

// GetMainLogPath returns the path of the application log file.
func GetMainLogPath(execDir string) string {
	return filepath.Join(GetLogsDir(execDir), constants.MainLogFileName)
}

// EnsureDirectories creates necessary directories if they don't exist
func EnsureDirectories(execDir string) error {
	return os.MkdirAll(GetLogsDir(execDir), os.ModePerm)
}

// GetExecDir returns the directory of the running executable.
// Falls back to the working directory when the executable path is unavailable.
func GetExecDir() string {
	ex, err := os.Executable()
	if err != nil {
		if wd, wdErr := os.Getwd(); wdErr == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(ex)
}
