// ABOUTME: Debug logging wrapper around slog levels for verbose mode output
// ABOUTME: Global level via SetLevel; SetOutput redirects logs away from a terminal the app owns

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"log/slog"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. A process that has taken the terminal
// into raw mode should point logs at a file so they do not corrupt the
// alternate screen. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	out = w
}

func write(prefix, format string, args ...any) {
	outMu.Lock()
	defer outMu.Unlock()

	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	write("[DEBUG] ", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	write("[INFO] ", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	write("[WARN] ", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	write("[ERROR] ", format, args...)
}
