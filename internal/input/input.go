// Package input parses session command lines.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomz197/circles/internal/geom"
)

// Kind identifies a parsed command.
type Kind int

const (
	CommandNone        Kind = iota // blank line or comment
	CommandIntersect               // intersect two circles in double precision
	CommandIntersect32             // intersect with single precision centers
	CommandEpsilon                 // show or set the solver tolerance
	CommandHelp                    // print usage
	CommandQuit                    // end the session
)

var (
	// ErrUnknownCommand is returned for a line whose first word is not a command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrArgCount is returned when a command gets too few or too many numbers.
	ErrArgCount = errors.New("wrong number of arguments")
	// ErrBadNumber is returned for an argument that is not a valid number.
	ErrBadNumber = errors.New("bad number")
)

// Command is one parsed line.
type Command struct {
	Kind Kind
	// C1 and C2 are set for CommandIntersect and CommandIntersect32.
	C1, C2 geom.Circle
	// Epsilon is set for CommandEpsilon; zero means "show".
	Epsilon float64
}

// commandSpec describes how many numeric arguments a command accepts.
type commandSpec struct {
	kind     Kind
	min, max int
}

var commands = map[string]commandSpec{
	"intersect":   {CommandIntersect, 5, 6},
	"i":           {CommandIntersect, 5, 6},
	"intersect32": {CommandIntersect32, 5, 6},
	"f":           {CommandIntersect32, 5, 6},
	"eps":         {CommandEpsilon, 0, 1},
	"help":        {CommandHelp, 0, 0},
	"?":           {CommandHelp, 0, 0},
	"quit":        {CommandQuit, 0, 0},
	"exit":        {CommandQuit, 0, 0},
	"q":           {CommandQuit, 0, 0},
}

// Usage lists the accepted commands.
const Usage = `commands:
  intersect x1 y1 r1 x2 y2 [r2]    (i)  intersections, r2 defaults to r1
  intersect32 x1 y1 r1 x2 y2 [r2]  (f)  same in single precision
  eps [value]                           show or set the tolerance
  help                             (?)  this text
  quit                             (q)  leave`

// Parse parses a single line. Blank lines and lines starting with '#'
// return CommandNone.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{Kind: CommandNone}, nil
	}

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])

	spec, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	args, err := parseNumbers(fields[1:])
	if err != nil {
		return Command{}, err
	}
	if len(args) < spec.min || len(args) > spec.max {
		return Command{}, fmt.Errorf("%w: %s takes %s, got %d", ErrArgCount, name, arity(spec), len(args))
	}

	cmd := Command{Kind: spec.kind}

	switch spec.kind {
	case CommandIntersect, CommandIntersect32:
		r2 := args[2]
		if len(args) == 6 {
			r2 = args[5]
		}
		cmd.C1 = geom.NewCircle(args[0], args[1], args[2])
		cmd.C2 = geom.NewCircle(args[3], args[4], r2)
	case CommandEpsilon:
		if len(args) == 1 {
			if !geom.ValidEpsilon(args[0]) {
				return Command{}, fmt.Errorf("%w: epsilon must be positive and finite", ErrBadNumber)
			}
			cmd.Epsilon = args[0]
		}
	}

	return cmd, nil
}

// parseNumbers converts every field to a float64. Commas separate numbers
// as well as whitespace, so "0,0,5" is three arguments.
func parseNumbers(fields []string) ([]float64, error) {
	var nums []float64
	for _, f := range fields {
		for _, tok := range strings.Split(f, ",") {
			if tok == "" {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadNumber, tok)
			}
			nums = append(nums, v)
		}
	}
	return nums, nil
}

func arity(spec commandSpec) string {
	switch {
	case spec.min == spec.max && spec.min == 0:
		return "no arguments"
	case spec.min == spec.max:
		return strconv.Itoa(spec.min) + " arguments"
	default:
		return strconv.Itoa(spec.min) + " to " + strconv.Itoa(spec.max) + " arguments"
	}
}
