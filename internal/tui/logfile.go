package tui

import "os"

// GetLogFilePath returns the log file to write to, or "" when file logging is off.
// GITPRO_LOG_FILE takes precedence over the configured path.
func GetLogFilePath(configured string) string {
	if customPath := os.Getenv("GITPRO_LOG_FILE"); customPath != "" {
		return customPath
	}
	return configured
}
