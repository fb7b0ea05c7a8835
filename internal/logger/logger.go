package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logging surface shared by every package.
// Component names the emitting subsystem, fields are attached verbatim.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv maps LOG_LEVEL (debug, info, warn, error) to a zerolog level.
// DEBUG=1 forces debug when LOG_LEVEL is unset.
func LevelFromEnv(getenv func(string) string) zerolog.Level {
	switch strings.ToLower(getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

// NewFromEnv builds the console logger used by the application binary.
func NewFromEnv() *ZerologAdapter {
	return NewConsoleLogger(LevelFromEnv(os.Getenv))
}
