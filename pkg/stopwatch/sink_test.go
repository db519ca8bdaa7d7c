package stopwatch_test

import (
	"bytes"
	"errors"
	stdlog "log"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/c-nelson/easytimer/pkg/stopwatch"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type infoOnly struct {
	lines []string
}

func (i *infoOnly) Info(msg string) {
	i.lines = append(i.lines, msg)
}

type variadicInfo struct {
	args []interface{}
}

func (v *variadicInfo) Info(args ...interface{}) {
	v.args = append(v.args, args...)
}

func stopWithLogger(t *testing.T, logger any) string {
	t.Helper()
	return captureStdout(t, func() {
		sw, clock, _ := newFake(t, "Logger Timer", stopwatch.WithLogger(logger))
		clock.Advance(time.Second)
		_, err := sw.Stop()
		require.NoError(t, err)
	})
}

func TestCharmLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	stdout := stopWithLogger(t, logger)
	assert.Empty(t, stdout)
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "Logger Timer took 1 seconds")
}

func TestCharmLoggerAboveInfoDropsReport(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	stdout := stopWithLogger(t, logger)
	assert.Empty(t, stdout)
	assert.Empty(t, buf.String())
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	stdout := stopWithLogger(t, logger)
	assert.Empty(t, stdout)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), `msg="Logger Timer took 1 seconds"`)
}

func TestStdlibLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := stdlog.New(&buf, "[info]    ", 0)

	stdout := stopWithLogger(t, logger)
	assert.Empty(t, stdout)
	assert.Equal(t, "[info]    Logger Timer took 1 seconds\n", buf.String())
}

func TestInfoMethodLoggers(t *testing.T) {
	plain := &infoOnly{}
	assert.Empty(t, stopWithLogger(t, plain))
	assert.Equal(t, []string{"Logger Timer took 1 seconds"}, plain.lines)

	variadic := &variadicInfo{}
	assert.Empty(t, stopWithLogger(t, variadic))
	assert.Equal(t, []interface{}{"Logger Timer took 1 seconds"}, variadic.args)
}

func TestNilLoggerUsesStdout(t *testing.T) {
	stdout := stopWithLogger(t, nil)
	assert.Equal(t, "Logger Timer took 1 seconds\n", stdout)
}

func TestLoggerWinsOverOutput(t *testing.T) {
	var out bytes.Buffer
	plain := &infoOnly{}
	sw, clock, _ := newFake(t, "both", stopwatch.WithLogger(plain), stopwatch.WithOutput(&out))
	clock.Advance(time.Second)
	_, err := sw.Stop()
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Len(t, plain.lines, 1)
}

func TestInvalidLoggerRejected(t *testing.T) {
	var nilCharm *log.Logger
	var nilSlog *slog.Logger
	tests := []struct {
		name   string
		logger any
	}{
		{name: "int", logger: 42},
		{name: "string", logger: "logger"},
		{name: "struct", logger: struct{}{}},
		{name: "typed nil charm logger", logger: nilCharm},
		{name: "typed nil slog logger", logger: nilSlog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, err := stopwatch.New("bad", stopwatch.WithLogger(tt.logger))
			assert.Nil(t, sw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, stopwatch.ErrInvalidArgument))
			assert.False(t, errors.Is(err, stopwatch.ErrRedundantOperation))
		})
	}
}

func TestWriterSinkError(t *testing.T) {
	sink := stopwatch.NewWriterSink(failingWriter{})
	err := sink.Info("x")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "closed"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("writer closed")
}
