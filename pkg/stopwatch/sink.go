package stopwatch

import (
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Sink receives report lines at informational severity
type Sink interface {
	Info(msg string) error
}

// SinkFunc adapts a plain function to Sink
type SinkFunc func(msg string) error

// Info calls f(msg)
func (f SinkFunc) Info(msg string) error {
	return f(msg)
}

// stdoutSink looks up os.Stdout on every write so redirections made after
// construction are honoured.
type stdoutSink struct{}

func (stdoutSink) Info(msg string) error {
	_, err := fmt.Fprintln(os.Stdout, msg)
	return err
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Info(msg string) error {
	_, err := fmt.Fprintln(s.w, msg)
	return err
}

// NewWriterSink writes each report as one newline-terminated line to w
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// SinkFor adapts logger to a Sink. It accepts nil (stdout), a Sink, a
// charmbracelet *log.Logger, a *slog.Logger, a standard library *log.Logger,
// or anything with an Info(string) or Info(...interface{}) method. Any other
// value, including a typed nil logger, is rejected with ErrInvalidArgument.
func SinkFor(logger any) (Sink, error) {
	switch l := logger.(type) {
	case nil:
		return stdoutSink{}, nil
	case Sink:
		return l, nil
	case *log.Logger:
		if l == nil {
			break
		}
		return SinkFunc(func(msg string) error {
			l.Info(msg)
			return nil
		}), nil
	case *slog.Logger:
		if l == nil {
			break
		}
		return SinkFunc(func(msg string) error {
			l.Info(msg)
			return nil
		}), nil
	case *stdlog.Logger:
		if l == nil {
			break
		}
		return SinkFunc(func(msg string) error {
			return l.Output(2, msg)
		}), nil
	case interface{ Info(string) }:
		return SinkFunc(func(msg string) error {
			l.Info(msg)
			return nil
		}), nil
	case interface{ Info(...interface{}) }:
		return SinkFunc(func(msg string) error {
			l.Info(msg)
			return nil
		}), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "logger of type %T has no informational logging method", logger)
}
