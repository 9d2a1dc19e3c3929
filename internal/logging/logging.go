package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(level slog.Level, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: level <= slog.LevelDebug,
		Level:           log.Level(level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(level slog.Level, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
}

// New builds a logger for the given level name and format ("text" or
// "json").
func New(levelName, format string, writer io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(SetupHandlerText(level, writer)), nil
	case "json":
		return slog.New(SetupHandlerJSON(level, writer)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
