package geom

import "math"

// Circle is a center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, radius float64) Circle {
	return Circle{Center: Point{x, y}, Radius: radius}
}

// Validate checks that the center is finite and the radius is finite and non-negative.
func (c Circle) Validate() error {
	if !c.Center.IsFinite() || !isFinite(c.Radius) {
		return ErrNonFinite
	}
	if c.Radius < 0 {
		return ErrNegativeRadius
	}
	return nil
}

// Contains checks if p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return DistanceSquared(p, c.Center) <= c.Radius*c.Radius
}

// Overlaps checks if two circles overlap. Touching circles do not overlap.
func (c Circle) Overlaps(o Circle) bool {
	minDist := c.Radius + o.Radius
	return DistanceSquared(c.Center, o.Center) < minDist*minDist
}

// Touches reports whether the boundaries of c and o share at least one point,
// using the default solver tolerance.
func (c Circle) Touches(o Circle) bool {
	d := Distance(c.Center, o.Center)
	tol := DefaultSolver.tolerance(d, c.Radius+o.Radius)
	return d <= c.Radius+o.Radius+tol && d >= math.Abs(c.Radius-o.Radius)-tol
}

// Intersect returns the points where the boundaries of c and o cross
// using DefaultSolver.
func (c Circle) Intersect(o Circle) ([]Point, error) {
	return DefaultSolver.Intersect(c, o)
}
