package geom

import (
	"errors"
	"fmt"
	"sort"
)

// Crossing is one pair of circles whose boundaries meet.
type Crossing struct {
	I, J       int // indices into the input slice, I < J
	Points     []Point
	Coincident bool
}

// IntersectAll finds every pair of circles that cross or touch, using
// DefaultSolver.
func IntersectAll(circles []Circle) ([]Crossing, error) {
	return DefaultSolver.IntersectAll(circles)
}

// IntersectAll finds every pair of circles that cross or touch.
//
// Circles are bucketed into a spatial grid so only neighbors are tested.
// Coincident pairs are reported with Coincident set instead of failing the
// whole call. Results are ordered by I, then J.
func (s Solver) IntersectAll(circles []Circle) ([]Crossing, error) {
	if len(circles) < 2 {
		for i, c := range circles {
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("circle %d: %w", i, err)
			}
		}
		return nil, nil
	}

	lo, hi := circles[0].Center, circles[0].Center
	var maxRadius float64
	for i, c := range circles {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
		lo.X, lo.Y = min(lo.X, c.Center.X), min(lo.Y, c.Center.Y)
		hi.X, hi.Y = max(hi.X, c.Center.X), max(hi.Y, c.Center.Y)
		maxRadius = max(maxRadius, c.Radius)
	}

	// Two circles can only meet when their centers are within the sum of
	// radii, so one diameter (plus tolerance) per cell is enough.
	cellSize := 2 * maxRadius
	cellSize += 2 * s.tolerance(cellSize, cellSize)

	grid := NewSpatialGrid(lo, hi, cellSize)
	for i, c := range circles {
		grid.Insert(c.Center, i)
	}

	var crossings []Crossing
	var neighbors []int

	for i, c1 := range circles {
		neighbors = neighbors[:0]
		grid.QueryAround(c1.Center, func(j int) bool {
			if j > i {
				neighbors = append(neighbors, j)
			}
			return false
		})
		sort.Ints(neighbors)

		for _, j := range neighbors {
			points, err := s.Intersect(c1, circles[j])
			switch {
			case errors.Is(err, ErrCoincident):
				crossings = append(crossings, Crossing{I: i, J: j, Coincident: true})
			case err != nil:
				return nil, fmt.Errorf("circles %d and %d: %w", i, j, err)
			case len(points) > 0:
				crossings = append(crossings, Crossing{I: i, J: j, Points: points})
			}
		}
	}

	return crossings, nil
}
