package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger *zerolog.Logger

// Init configures the global zerolog logger.
// level: "debug", "info", "warn" or "error"; anything else falls back to info
// file: optional log file, appended to alongside the console output
func Init(level string, file string) error {
	logLevel := ParseLevel(level)

	var output io.Writer = os.Stdout

	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(os.Stdout, fileWriter)
	}

	logger := log.Output(output).With().Timestamp().Logger().Level(logLevel)
	logger = logger.Output(zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"})

	Logger = &logger
	return nil
}

// InitWriter points the global logger at w without console formatting.
// The TUI uses it to keep log lines off the alternate screen.
func InitWriter(level string, w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger().Level(ParseLevel(level))
	Logger = &logger
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger.
// Before Init it returns a logger that discards everything.
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
