package stopwatch

import (
	"fmt"
	"time"
)

// DefaultName labels a StopWatch created without a name
const DefaultName = "EasyTimer"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}

// StopWatch is used to tell elapsed time across one or more running segments.
// It is not safe for concurrent use.
type StopWatch struct {
	name         string
	start        time.Time     // beginning of the current running segment
	accumulated  time.Duration // time counted by finished segments
	running      bool
	last         time.Duration // result of the most recent stop transition
	sink         Sink
	disablePrint bool
	digits       int // < 0 prints full precision
	clock        Clock
	warn         WarningHandler
}

// New returns a StopWatch that is already running
func New(name string, opts ...Option) (*StopWatch, error) {
	if name == "" {
		name = DefaultName
	}
	cfg := config{
		digits: -1,
		clock:  wallClock{},
		warn:   LogWarning,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	sw := &StopWatch{
		name:         name,
		sink:         cfg.resolveSink(),
		disablePrint: cfg.disablePrint,
		digits:       cfg.digits,
		clock:        cfg.clock,
		warn:         cfg.warn,
	}
	sw.start = sw.clock.Now()
	sw.running = true
	return sw, nil
}

// Name returns the label used in reports
func (sw *StopWatch) Name() string {
	return sw.name
}

// Running reports whether time is currently accruing
func (sw *StopWatch) Running() bool {
	return sw.running
}

// Resume continues timing after a stop without dropping the time already counted.
// Resuming a running StopWatch leaves it untouched and raises a warning.
func (sw *StopWatch) Resume() {
	if sw.running {
		sw.warn(&Warning{Name: sw.name, Op: OpResume, Elapsed: sw.Elapsed()})
		return
	}
	sw.start = sw.clock.Now()
	sw.running = true
}

// Start is an alias of Resume
func (sw *StopWatch) Start() {
	sw.Resume()
}

// Stop folds the running segment into the total, reports it and returns it.
// Stopping a stopped StopWatch raises a warning and returns the cached total
// without reporting again. The duration is valid even when the sink fails.
func (sw *StopWatch) Stop() (time.Duration, error) {
	if !sw.running {
		sw.warn(&Warning{Name: sw.name, Op: OpStop, Elapsed: sw.last})
		return sw.last, nil
	}
	sw.accumulated += sw.clock.Now().Sub(sw.start)
	sw.running = false
	sw.last = sw.accumulated
	return sw.last, sw.report(sw.last)
}

// End is an alias of Stop
func (sw *StopWatch) End() (time.Duration, error) {
	return sw.Stop()
}

// Restart drops everything counted so far and starts timing from now
func (sw *StopWatch) Restart() {
	sw.accumulated = 0
	sw.last = 0
	sw.start = sw.clock.Now()
	sw.running = true
}

// Elapsed returns the total time counted so far, including the live segment
func (sw *StopWatch) Elapsed() time.Duration {
	if !sw.running {
		return sw.accumulated
	}
	return sw.accumulated + sw.clock.Now().Sub(sw.start)
}

// Check is an alias of Elapsed
func (sw *StopWatch) Check() time.Duration {
	return sw.Elapsed()
}

// Scope hands sw to fn and stops it when fn returns or panics.
// An error from fn takes precedence over a sink error.
func (sw *StopWatch) Scope(fn func(*StopWatch) error) (err error) {
	defer func() {
		if _, stopErr := sw.Stop(); err == nil {
			err = stopErr
		}
	}()
	return fn(sw)
}

// Close stops sw so that it can be released with defer
func (sw *StopWatch) Close() error {
	_, err := sw.Stop()
	return err
}

// Measure times fn with a new StopWatch and returns the elapsed time
func Measure(name string, fn func(*StopWatch) error, opts ...Option) (time.Duration, error) {
	sw, err := New(name, opts...)
	if err != nil {
		return 0, err
	}
	err = sw.Scope(fn)
	return sw.Elapsed(), err
}

// Message returns the report line for d
func (sw *StopWatch) Message(d time.Duration) string {
	return fmt.Sprintf("%s took %s seconds", sw.name, FormatSeconds(d, sw.digits))
}

func (sw *StopWatch) report(d time.Duration) error {
	if sw.disablePrint {
		return nil
	}
	return sw.sink.Info(sw.Message(d))
}

func (sw *StopWatch) String() string {
	return fmt.Sprintf("StopWatch(name=%q, running=%t, elapsed=%ss)",
		sw.name, sw.running, FormatSeconds(sw.Elapsed(), sw.digits))
}

// GoString matches String so %#v output names the watch too
func (sw *StopWatch) GoString() string {
	return sw.String()
}
