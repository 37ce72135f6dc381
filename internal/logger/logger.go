// Package logger provides the process-wide slog logger used by dock.
// All output goes to a log file because stdout belongs to the terminal host.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called.
const DefaultLogPath = "/tmp/dock-debug.log"

// sink is the open log destination plus the handler writing to it.
type sink struct {
	path string
	file *os.File
	log  *slog.Logger
}

var (
	mu    sync.Mutex
	level = new(slog.LevelVar)
	out   *sink
	// fallbackTried is set once ensure has attempted DefaultLogPath.
	fallbackTried bool
)

func openSink(path string) (*sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	s := &sink{
		path: path,
		file: f,
		log:  slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})),
	}
	s.log.Info("Logger initialized", "path", path)
	return s, nil
}

// Init directs log output to path. The first successful call wins; later
// calls are no-ops until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		return nil
	}
	s, err := openSink(path)
	if err != nil {
		return err
	}
	out = s
	return nil
}

// ensure returns the active logger, opening DefaultLogPath on first use.
// Callers hold mu.
func ensure() *slog.Logger {
	if out == nil && !fallbackTried {
		fallbackTried = true
		s, err := openSink(DefaultLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			out = s
		}
	}
	if out == nil || out.file == nil {
		return nil
	}
	return out.log
}

// SetDebug switches between debug and info level output.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

func logf(lvl slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	l := ensure()
	if l == nil || !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a formatted message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a formatted message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Path returns the file currently receiving log output, or "" before init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return ""
	}
	return out.path
}

// Close releases the log file. Later writes are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil && out.file != nil {
		out.file.Close()
		out.file = nil
	}
}

// Reset closes the log file and forgets all state so Init can run again.
// Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if out != nil && out.file != nil {
		out.file.Close()
	}
	out = nil
	fallbackTried = false
	level = new(slog.LevelVar)
}

// ClearLogs removes dock log files from /tmp and returns how many were removed.
func ClearLogs() (int, error) {
	return clearLogsMatching(DefaultLogPath, "/tmp/dock-*.log")
}

func clearLogsMatching(primary, pattern string) (int, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}
	targets := append([]string{primary}, matches...)

	removed := 0
	seen := make(map[string]bool, len(targets))
	for _, p := range targets {
		if seen[p] {
			continue
		}
		seen[p] = true
		switch err := os.Remove(p); {
		case err == nil:
			removed++
		case !os.IsNotExist(err):
			return removed, err
		}
	}
	return removed, nil
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := ensure()
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.With(attr)
}

// ComponentLogger returns a logger tagged with component.
//
//	log := logger.ComponentLogger("panel")
//	log.Debug("panel shown", "project", id, "width", w)
func ComponentLogger(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithProject returns a logger tagged with a project id.
func WithProject(project string) *slog.Logger {
	return with(slog.String("project", project))
}
