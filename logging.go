// logging.go - structured logging for the fsched scheduler.
//
// The scheduler logs through github.com/joeycumines/logiface, the same
// author's structured logging front end, rather than hand-rolling a logger
// interface: this package is not dependency-free, so per the project's
// convention of using an ecosystem library wherever one is available, the
// field-builder API (Info().Str(...).Log(...)) replaces a bespoke LogEntry
// struct. The default backend is github.com/joeycumines/stumpy, logiface's
// reference JSON implementation. WithLogger accepts another
// logiface.Logger[*stumpy.Event] (for example with a different writer or
// level); loggers of other logiface backends (zerolog, logrus, slog) have a
// different event type and cannot be passed to it.
//
// Design Decision: a package-level default, overridable via WithLogger, is
// appropriate here because tracing is a cross-cutting infrastructure
// concern shared by every Scheduler instance in a process, exactly as
// eventloop.SetStructuredLogger treats logging as package-level state.
package fsched

import (
	"os"
	"sync"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Event is the concrete logiface event type the scheduler logs with.
type Event = stumpy.Event

// Logger is the logging interface the scheduler uses internally. It is
// exactly logiface.Logger[*stumpy.Event]; the alias exists so call sites in
// this package don't need to spell the generic instantiation out.
type Logger = logiface.Logger[*Event]

var defaultLogger struct {
	sync.RWMutex
	logger *Logger
}

// newDefaultLogger builds the stumpy-backed logger used when a Scheduler is
// constructed without WithLogger: informational level, writing to stderr.
func newDefaultLogger() *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(os.Stderr)),
		stumpy.L.WithLevel(logiface.LevelInformational),
	)
}

// SetDefaultLogger overrides the package-level logger used by Schedulers
// constructed without an explicit WithLogger option. It exists mainly for
// tests that want to assert on log output without touching every call site.
func SetDefaultLogger(l *Logger) {
	defaultLogger.Lock()
	defer defaultLogger.Unlock()
	defaultLogger.logger = l
}

func getDefaultLogger() *Logger {
	defaultLogger.RLock()
	l := defaultLogger.logger
	defaultLogger.RUnlock()
	if l != nil {
		return l
	}
	return newDefaultLogger()
}
