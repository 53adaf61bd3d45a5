package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/tomz197/circles/internal/batch"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/geom"
	"github.com/tomz197/circles/internal/input"
	"github.com/tomz197/circles/internal/logging"
	"github.com/tomz197/circles/internal/loop"
	"golang.org/x/term"
)

type options struct {
	Epsilon  float64 `short:"e" long:"eps" description:"Relative tolerance for tangency and coincidence (default $CIRCLES_EPSILON or 1e-9)"`
	Single   bool    `short:"s" long:"single" description:"Compute the query in single precision"`
	File     string  `short:"f" long:"file" description:"YAML case file to evaluate" value-name:"PATH"`
	Workers  int     `short:"w" long:"workers" description:"Concurrent workers for --file (default GOMAXPROCS)"`
	LogLevel string  `long:"log-level" description:"debug, info, warn or error (default $CIRCLES_LOG_LEVEL or info)"`
}

const usage = `[OPTIONS] [x1 y1 r1 x2 y2 [r2]]

With coordinates, prints the intersections of the two circles; r2 defaults
to r1. Put "--" before the first negative number. Without coordinates, reads
commands from the terminal (or from stdin when it is not a terminal).`

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = usage

	args, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.LogLevel == "" {
		opts.LogLevel = config.GetEnv(config.EnvLogLevel, config.DefaultLogLevel)
	}
	logger, err := logging.New(os.Stderr, "circles", opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circles: %v\n", err)
		os.Exit(2)
	}

	opts.Epsilon, err = resolveEpsilon(opts.Epsilon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circles: %v\n", err)
		os.Exit(2)
	}
	if opts.Workers <= 0 {
		opts.Workers = config.Workers()
	}
	solver := geom.Solver{Epsilon: opts.Epsilon}

	switch {
	case opts.File != "":
		err = runFile(opts.File, solver, opts.Workers, logger)
	case len(args) > 0:
		err = runQuery(args, opts.Single, solver, os.Stdout)
	case term.IsTerminal(int(os.Stdin.Fd())):
		err = runInteractive(solver, logger)
	default:
		err = loop.RunScript(os.Stdin, os.Stdout, loop.Options{Solver: solver, Logger: logger})
	}

	if err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

// resolveEpsilon returns the --eps value, or the environment default when the
// flag was not given.
func resolveEpsilon(flag float64) (float64, error) {
	if flag == 0 {
		return config.Epsilon(), nil
	}
	if !geom.ValidEpsilon(flag) {
		return 0, fmt.Errorf("--eps %v: must be positive and finite", flag)
	}
	return flag, nil
}

// runQuery evaluates a single query given on the command line.
func runQuery(args []string, single bool, solver geom.Solver, w io.Writer) error {
	name := "intersect"
	if single {
		name = "intersect32"
	}

	cmd, err := input.Parse(name + " " + strings.Join(args, " "))
	if err != nil {
		return err
	}

	var out string
	if single {
		points, err := solver.Intersect32(cmd.C1.Center.Float32(), cmd.C2.Center.Float32(), cmd.C1.Radius, cmd.C2.Radius)
		if err != nil {
			return err
		}
		out = loop.FormatPoints32(points)
	} else {
		points, err := solver.Intersect(cmd.C1, cmd.C2)
		if err != nil {
			return err
		}
		out = loop.FormatPoints(points)
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

// runFile evaluates a YAML case file and prints the report.
func runFile(path string, solver geom.Solver, workers int, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cases, err := batch.Load(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("evaluating", "file", path, "cases", len(cases.Cases), "circles", len(cases.Circles), "workers", workers)

	report, err := batch.Evaluate(ctx, cases, solver, workers)
	if err != nil {
		return err
	}
	return batch.WriteReport(os.Stdout, report)
}

// runInteractive puts the terminal in raw mode and runs a line-editing session.
func runInteractive(solver geom.Solver, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}

	opts := loop.Options{Solver: solver, Logger: logger}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width, opts.Height = width, height
	}
	return loop.Run(rw, opts)
}
