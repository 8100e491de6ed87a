// Package trace provides the trace log sink used by the updater.
// A Logger writes "[INFO]" and "[WARN]" lines to a log file in the
// anti-revoke home directory and can mirror them to a second writer.
package trace

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFileName is the name of the trace log inside the home directory.
const LogFileName = "updater.log"

// Logger is a fire-and-forget trace sink. The zero value discards everything.
type Logger struct {
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
}

// Options configures where trace output goes.
type Options struct {
	HomeDir string    // when set, logs go to HomeDir/updater.log (truncated on open)
	Mirror  io.Writer // optional second destination (stderr under --debug)
}

// New opens a Logger. A log file that cannot be created is not fatal: the
// logger falls back to the mirror (or discards) and the error is returned
// for the caller to report.
func New(opts Options) (*Logger, error) {
	var writers []io.Writer
	var openErr error
	var f *os.File

	if opts.HomeDir != "" {
		//nolint:gosec // G301: home directory needs standard permissions
		if err := os.MkdirAll(opts.HomeDir, 0o755); err != nil {
			openErr = fmt.Errorf("create log directory: %w", err)
		} else {
			path := filepath.Join(opts.HomeDir, LogFileName)
			f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				openErr = fmt.Errorf("open log file: %w", err)
			} else {
				writers = append(writers, f)
			}
		}
	}
	if opts.Mirror != nil {
		writers = append(writers, opts.Mirror)
	}

	var w io.Writer = io.Discard
	if len(writers) == 1 {
		w = writers[0]
	} else if len(writers) > 1 {
		w = io.MultiWriter(writers...)
	}

	l := &Logger{
		logger: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		file:   f,
	}
	if f != nil {
		l.logger.Printf("=== anti-revoke updater log started at %s ===", time.Now().Format(time.RFC3339))
	}
	return l, openErr
}

// NewWriter returns a Logger that writes only to w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{logger: log.New(w, "", log.Ldate|log.Ltime)}
}

// Discard returns a Logger that drops every line.
func Discard() *Logger {
	return &Logger{}
}

// TraceInfo writes an informational line.
func (l *Logger) TraceInfo(msg string) { l.print("[INFO] ", msg) }

// TraceWarn writes a warning line.
func (l *Logger) TraceWarn(msg string) { l.print("[WARN] ", msg) }

func (l *Logger) print(level, msg string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logger == nil {
		return
	}
	l.logger.Print(level + msg)
}

// Close closes the log file if one is open. Safe to call more than once.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = nil
	return err
}

// Path returns the trace log location for a home directory.
func Path(homeDir string) string {
	return filepath.Join(homeDir, LogFileName)
}
