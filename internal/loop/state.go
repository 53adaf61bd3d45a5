package loop

import (
	"strconv"
	"strings"

	"github.com/tomz197/circles/internal/geom"
	"github.com/tomz197/circles/internal/input"
)

// State holds per-session state.
type State struct {
	Solver  geom.Solver
	Running bool // Session loop running
	Queries int  // Intersection queries answered
}

// NewState creates a running session state around solver.
func NewState(solver geom.Solver) *State {
	return &State{Solver: solver, Running: true}
}

// Exec parses and evaluates one line and returns the text to print, which is
// empty or ends in a newline. Errors are reported in the text; the session
// keeps running unless the line was a quit command.
func (s *State) Exec(line string) string {
	cmd, err := input.Parse(line)
	if err != nil {
		return formatError(err)
	}

	switch cmd.Kind {
	case input.CommandIntersect:
		s.Queries++
		points, err := s.Solver.Intersect(cmd.C1, cmd.C2)
		if err != nil {
			return formatError(err)
		}
		return FormatPoints(points) + "\n"
	case input.CommandIntersect32:
		s.Queries++
		points, err := s.Solver.Intersect32(cmd.C1.Center.Float32(), cmd.C2.Center.Float32(), cmd.C1.Radius, cmd.C2.Radius)
		if err != nil {
			return formatError(err)
		}
		return FormatPoints32(points) + "\n"
	case input.CommandEpsilon:
		if cmd.Epsilon > 0 {
			s.Solver.Epsilon = cmd.Epsilon
			return "epsilon set to " + formatFloat(cmd.Epsilon) + "\n"
		}
		return "epsilon " + formatFloat(s.epsilon()) + "\n"
	case input.CommandHelp:
		return input.Usage + "\n"
	case input.CommandQuit:
		s.Running = false
		return ""
	}

	return ""
}

func (s *State) epsilon() float64 {
	if !geom.ValidEpsilon(s.Solver.Epsilon) {
		return geom.DefaultEpsilon
	}
	return s.Solver.Epsilon
}

// FormatPoints renders an intersection result on one line.
func FormatPoints(points []geom.Point) string {
	strs := make([]string, len(points))
	for i, p := range points {
		strs[i] = p.String()
	}
	return formatResult(strs)
}

// FormatPoints32 is FormatPoints for single precision results.
func FormatPoints32(points []geom.Point32) string {
	strs := make([]string, len(points))
	for i, p := range points {
		strs[i] = p.String()
	}
	return formatResult(strs)
}

func formatResult(points []string) string {
	switch len(points) {
	case 0:
		return "no intersection"
	case 1:
		return "1 point: " + points[0]
	default:
		return strconv.Itoa(len(points)) + " points: " + strings.Join(points, " ")
	}
}

func formatError(err error) string {
	return "error: " + err.Error() + "\n"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
