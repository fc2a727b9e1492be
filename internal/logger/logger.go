// Package logger provides verbose logging for the aroma CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr as slog key=value lines, so a user can follow
// a page from download to stored profile. Errors are always written.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// CLI output; timestamps are noise.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(w)
}

// Debug logs msg with key/value args if verbose mode is enabled.
func Debug(msg string, args ...any) {
	logVerbose(slog.LevelDebug, msg, args...)
}

// Info logs msg with key/value args if verbose mode is enabled.
func Info(msg string, args ...any) {
	logVerbose(slog.LevelInfo, msg, args...)
}

// Warn logs msg with key/value args if verbose mode is enabled.
func Warn(msg string, args ...any) {
	logVerbose(slog.LevelWarn, msg, args...)
}

// Error logs msg with key/value args regardless of verbose mode.
func Error(msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Log(context.Background(), slog.LevelError, msg, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logVerbose(level slog.Level, msg string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		log.Log(context.Background(), level, msg, args...)
	}
}
