// Package logging holds the process-wide logger. Output goes to stderr
// and stays at warn level unless debug logging is switched on.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// Setup sets the log level for this invocation.
func Setup(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}
