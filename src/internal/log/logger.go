package log

import (
	"io"
	"os"
	"sync"

	alog "github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/mattn/go-isatty"
)

// Fields is a set of structured fields attached to an entry.
type Fields = alog.Fields

var (
	mu          sync.RWMutex
	verbose     = false
	disableLogs = false
	logger      = &alog.Logger{
		Handler: newHandler(os.Stdout, os.Stderr),
		Level:   alog.InfoLevel,
	}
)

// splitHandler sends errors to one handler and everything else to another.
type splitHandler struct {
	out alog.Handler
	err alog.Handler
}

func (h *splitHandler) HandleLog(e *alog.Entry) error {
	if e.Level >= alog.ErrorLevel {
		return h.err.HandleLog(e)
	}
	return h.out.HandleLog(e)
}

func handlerFor(w io.Writer) alog.Handler {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return cli.New(w)
	}
	return text.New(w)
}

func newHandler(stdout, stderr io.Writer) alog.Handler {
	return &splitHandler{out: handlerFor(stdout), err: handlerFor(stderr)}
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.Handler = handlerFor(w)
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		logger.Level = alog.DebugLevel
	} else {
		logger.Level = alog.InfoLevel
	}
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// DisableLogs disables all logging.
func DisableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = true
	logger.Handler = discard.New()
}

// IsDisabled returns true if logging is disabled.
func IsDisabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return disableLogs
}

func current() *alog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithFields returns an entry carrying fields, for structured logging.
func WithFields(fields Fields) *alog.Entry {
	return current().WithFields(fields)
}

// WithError returns an entry carrying err in the "error" field.
func WithError(err error) *alog.Entry {
	return current().WithError(err)
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	current().Infof(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	current().Errorf(format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	current().Errorf(format, args...)
	os.Exit(1)
}
