package stopwatch

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned by New when an option is given a value it cannot use
var ErrInvalidArgument = errors.New("invalid argument")

// ErrRedundantOperation is what every Warning unwraps to
var ErrRedundantOperation = errors.New("redundant timer operation")

// Operations named by a Warning
const (
	OpResume = "resume"
	OpStop   = "stop"
)

// Warning reports a resume or stop call that left the StopWatch unchanged.
// It is never returned as an error; it goes to the WarningHandler.
type Warning struct {
	Name    string
	Op      string
	Elapsed time.Duration // total at the time of the call
}

func (w *Warning) message() string {
	switch w.Op {
	case OpResume:
		return "timer already running, resume ignored"
	case OpStop:
		return "timer already stopped, returning cached elapsed time"
	default:
		return "redundant " + w.Op
	}
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %s", w.Name, w.message())
}

func (w *Warning) Unwrap() error {
	return ErrRedundantOperation
}

// WarningHandler receives redundant operation warnings
type WarningHandler func(*Warning)

var warnLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "easytimer"})

// LogWarning is the default WarningHandler, it logs to stderr at warn level
func LogWarning(w *Warning) {
	warnLogger.Warn(w.message(), "name", w.Name, "op", w.Op, "elapsed", w.Elapsed)
}

// IgnoreWarnings drops every warning
func IgnoreWarnings(*Warning) {}
