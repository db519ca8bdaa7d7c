package stopwatch

import (
	"io"

	"github.com/pkg/errors"
)

// Option configures a StopWatch at construction
type Option func(*config) error

type config struct {
	sink         Sink
	output       io.Writer
	disablePrint bool
	digits       int
	clock        Clock
	warn         WarningHandler
}

// resolveSink prefers a logger over a plain output writer, then stdout
func (c *config) resolveSink() Sink {
	switch {
	case c.sink != nil:
		return c.sink
	case c.output != nil:
		return NewWriterSink(c.output)
	default:
		return stdoutSink{}
	}
}

// WithLogger routes reports through logger at info level.
// A nil logger keeps the default stdout sink; see SinkFor for the accepted types.
func WithLogger(logger any) Option {
	return func(c *config) error {
		s, err := SinkFor(logger)
		if err != nil {
			return err
		}
		if _, ok := s.(stdoutSink); ok {
			s = nil
		}
		c.sink = s
		return nil
	}
}

// WithOutput writes reports as plain lines to w instead of stdout
func WithOutput(w io.Writer) Option {
	return func(c *config) error {
		if w == nil {
			return errors.Wrap(ErrInvalidArgument, "output writer is nil")
		}
		c.output = w
		return nil
	}
}

// WithDisablePrint suppresses every report
func WithDisablePrint(disable bool) Option {
	return func(c *config) error {
		c.disablePrint = disable
		return nil
	}
}

// WithPrintDigits fixes the number of digits printed after the decimal point
func WithPrintDigits(digits int) Option {
	return func(c *config) error {
		if digits < 0 {
			return errors.Wrapf(ErrInvalidArgument, "print digits must not be negative, got %d", digits)
		}
		c.digits = digits
		return nil
	}
}

// WithClock replaces the wall clock, mostly for tests
func WithClock(clock Clock) Option {
	return func(c *config) error {
		if clock == nil {
			return errors.Wrap(ErrInvalidArgument, "clock is nil")
		}
		c.clock = clock
		return nil
	}
}

// WithWarningHandler replaces LogWarning as the receiver of redundant start and stop warnings
func WithWarningHandler(h WarningHandler) Option {
	return func(c *config) error {
		if h == nil {
			return errors.Wrap(ErrInvalidArgument, "warning handler is nil")
		}
		c.warn = h
		return nil
	}
}
