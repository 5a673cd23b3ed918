// Package logger provides file-backed structured logging for dock.
//
// The terminal is owned by the TUI, so nothing may be written to stdout or
// stderr while the program runs. All diagnostics go to a log file instead.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called.
const DefaultLogPath = "/tmp/dock-debug.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	debug      bool
)

// SetDebug switches between debug and info level output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(currentLevel())
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func currentLevel() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes all log output to it.
// Calling Init after the logger is already initialized is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	install(f)
	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

// UseWriter routes log output to w. Intended for tests and for the
// layout subcommands which run without a TUI.
func UseWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	install(w)
}

func install(w io.Writer) {
	levelVar.Set(currentLevel())
	slogLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

// ensureInit must be called with mu held.
func ensureInit() {
	if initDone {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Can't log the failure; fall back to discarding output.
		install(io.Discard)
		return
	}
	logFile = f
	install(f)
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style debug message.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style info message.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style warning.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style error.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// ComponentLogger returns a logger with the component attribute attached.
//
//	log := logger.ComponentLogger("drag")
//	log.Debug("session started", "session", id, "axis", axis)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	return slogLogger.With(slog.String("component", component))
}

// Close closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	initDone = false
	slogLogger = nil
}

func closeFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Reset returns the logger to its initial state. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	initDone = false
	slogLogger = nil
	debug = false
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the default log file. It returns the number of files removed.
func ClearLogs() (int, error) {
	if err := os.Remove(DefaultLogPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
