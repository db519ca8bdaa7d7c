package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/c-nelson/easytimer/pkg/stopwatch"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var errNoCommand = errors.New("no command given, usage: easytimer [flags] -- command [args...]")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// the child already explained itself, just pass its status on
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal("easytimer failed", "error", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "easytimer",
		Usage:     "run a command and report how long it took",
		ArgsUsage: "-- command [args...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "label used in the report, defaults to the command line",
				EnvVars: []string{"EASYTIMER_NAME"},
			},
			&cli.IntFlag{
				Name:    "digits",
				Aliases: []string{"d"},
				Usage:   "digits printed after the decimal point, full precision when unset",
				EnvVars: []string{"EASYTIMER_DIGITS"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "time the command without printing a report",
				EnvVars: []string{"EASYTIMER_QUIET"},
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "append the report to this file instead of printing it",
				EnvVars: []string{"EASYTIMER_LOG_FILE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "minimum level written to --log-file",
				EnvVars: []string{"EASYTIMER_LOG_LEVEL"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errNoCommand
	}
	args := c.Args().Slice()

	name := c.String("name")
	if name == "" {
		name = strings.Join(args, " ")
	}

	opts := []stopwatch.Option{stopwatch.WithDisablePrint(c.Bool("quiet"))}
	if c.IsSet("digits") {
		opts = append(opts, stopwatch.WithPrintDigits(c.Int("digits")))
	}
	if path := c.String("log-file"); path != "" {
		logger, logfile, err := openLog(path, c.String("log-level"))
		if err != nil {
			return err
		}
		defer logfile.Close()
		opts = append(opts, stopwatch.WithLogger(logger))
	}

	sw, err := stopwatch.New(name, opts...)
	if err != nil {
		return err
	}
	return sw.Scope(func(*stopwatch.StopWatch) error {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return errors.Wrapf(cmd.Run(), "running %s", args[0])
	})
}

// openLog sets up a log file that reports are appended to
func openLog(path, level string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing log level %q", level)
	}
	logfile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening log file")
	}
	logger := log.NewWithOptions(logfile, log.Options{
		Level:           lvl,
		Prefix:          "easytimer",
		ReportTimestamp: true,
	})
	return logger, logfile, nil
}
