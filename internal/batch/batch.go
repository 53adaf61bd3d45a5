// Package batch evaluates YAML files of circle intersection cases.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tomz197/circles/internal/geom"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned by Load when the input holds no document.
	ErrEmpty = errors.New("empty case file")
	// ErrEpsilon is returned by Load when the file sets an epsilon that is
	// not positive and finite.
	ErrEpsilon = errors.New("epsilon must be positive and finite")
)

// CircleSpec is a circle as written in a case file.
type CircleSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// Circle converts c to a geom.Circle.
func (c CircleSpec) Circle() geom.Circle {
	return geom.NewCircle(c.X, c.Y, c.R)
}

// Case is one pair of circles to intersect.
type Case struct {
	Name   string     `yaml:"name"`
	C1     CircleSpec `yaml:"c1"`
	C2     CircleSpec `yaml:"c2"`
	Single bool       `yaml:"single,omitempty"` // evaluate in single precision
}

// File is the content of a case file.
type File struct {
	Epsilon float64      `yaml:"epsilon,omitempty"`
	Cases   []Case       `yaml:"cases"`
	Circles []CircleSpec `yaml:"circles,omitempty"`
}

// CaseResult is the outcome of one case. Points holds x, y pairs.
type CaseResult struct {
	Name   string       `yaml:"name"`
	Points [][2]float64 `yaml:"points,flow"`
	Error  string       `yaml:"error,omitempty"`
}

// CrossingResult is one intersecting pair from the circles section.
type CrossingResult struct {
	I          int          `yaml:"i"`
	J          int          `yaml:"j"`
	Points     [][2]float64 `yaml:"points,flow,omitempty"`
	Coincident bool         `yaml:"coincident,omitempty"`
}

// Report is the evaluated form of a File.
type Report struct {
	Epsilon      float64          `yaml:"epsilon"`
	Cases        []CaseResult     `yaml:"cases"`
	Crossings    []CrossingResult `yaml:"crossings,omitempty"`
	CirclesError string           `yaml:"circles_error,omitempty"`
}

// Load decodes a case file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode case file: %w", err)
	}
	if f.Epsilon != 0 && !geom.ValidEpsilon(f.Epsilon) {
		return nil, fmt.Errorf("%w: got %v", ErrEpsilon, f.Epsilon)
	}

	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = "case " + strconv.Itoa(i+1)
		}
	}
	return &f, nil
}

// Evaluate runs every case of f on at most workers goroutines and returns the
// report in case order. solver is used unless the file sets its own epsilon.
// Invalid circles are recorded per case; the only error returned comes from ctx.
func Evaluate(ctx context.Context, f *File, solver geom.Solver, workers int) (*Report, error) {
	if geom.ValidEpsilon(f.Epsilon) {
		solver.Epsilon = f.Epsilon
	}
	if !geom.ValidEpsilon(solver.Epsilon) {
		solver.Epsilon = geom.DefaultEpsilon
	}
	if workers < 1 {
		workers = 1
	}

	report := &Report{
		Epsilon: solver.Epsilon,
		Cases:   make([]CaseResult, len(f.Cases)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, c := range f.Cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Cases[i] = evaluateCase(solver, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(f.Circles) > 0 {
		circles := make([]geom.Circle, len(f.Circles))
		for i, c := range f.Circles {
			circles[i] = c.Circle()
		}

		crossings, err := solver.IntersectAll(circles)
		if err != nil {
			report.CirclesError = err.Error()
		}
		for _, c := range crossings {
			report.Crossings = append(report.Crossings, CrossingResult{
				I:          c.I,
				J:          c.J,
				Points:     pairs(c.Points),
				Coincident: c.Coincident,
			})
		}
	}

	return report, nil
}

func evaluateCase(solver geom.Solver, c Case) CaseResult {
	res := CaseResult{Name: c.Name, Points: [][2]float64{}}

	c1, c2 := c.C1.Circle(), c.C2.Circle()

	if c.Single {
		points, err := solver.Intersect32(c1.Center.Float32(), c2.Center.Float32(), c1.Radius, c2.Radius)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		for _, p := range points {
			res.Points = append(res.Points, [2]float64{float64(p.X), float64(p.Y)})
		}
		return res
	}

	points, err := solver.Intersect(c1, c2)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Points = append(res.Points, pairs(points)...)
	return res
}

func pairs(points []geom.Point) [][2]float64 {
	if len(points) == 0 {
		return nil
	}
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// WriteReport encodes r as YAML.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
