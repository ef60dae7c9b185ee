package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging returns a file-backed logger when debug is set, otherwise a disabled one
// The display owns stdout, so nothing is ever logged to the terminal
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		// Keep one previous generation
		rotateErr = os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
	if rotateErr != nil {
		logger.Warn().Err(rotateErr).Msg("log rotation failed, appending to oversized log")
	}
	return logger, f
}
