package geom

import "math"

// DefaultEpsilon is the relative tolerance used when a Solver does not set one.
const DefaultEpsilon = 1e-9

// DefaultSolver is used by the package level intersection functions.
var DefaultSolver = Solver{Epsilon: DefaultEpsilon}

// Solver computes circle intersections with a fixed tolerance.
//
// Epsilon is relative: comparisons between lengths use Epsilon scaled by the
// larger of the center distance and the sum of radii. It widens the range of
// distances accepted as touching. A zero, negative or non-finite Epsilon means
// DefaultEpsilon.
type Solver struct {
	Epsilon float64
}

// Intersect returns the points where the boundaries of c1 and c2 cross.
//
// The result has zero, one (tangency) or two points. With two points the
// order is fixed: the point to the right of the c1 to c2 axis comes first.
// Circles that do not touch yield an empty result and a nil error.
// Coincident circles yield ErrCoincident.
//
// The computation runs in a frame centered on c1 and scaled by a power of two
// to unit magnitude, so it behaves the same at any scale and cannot overflow
// for finite input.
func (s Solver) Intersect(c1, c2 Circle) ([]Point, error) {
	if err := c1.Validate(); err != nil {
		return nil, err
	}
	if err := c2.Validate(); err != nil {
		return nil, err
	}

	// Halved differences stay finite for any finite centers.
	hx := c2.Center.X/2 - c1.Center.X/2
	hy := c2.Center.Y/2 - c1.Center.Y/2
	m := max(math.Abs(hx), math.Abs(hy), c1.Radius/2, c2.Radius/2)
	if m == 0 {
		// Two zero radius circles at the same point.
		return nil, ErrCoincident
	}
	_, exp := math.Frexp(m)

	x2, y2 := math.Ldexp(hx, 1-exp), math.Ldexp(hy, 1-exp)
	r1, r2 := math.Ldexp(c1.Radius, -exp), math.Ldexp(c2.Radius, -exp)

	d := math.Hypot(x2, y2)
	tol := s.tolerance(d, r1+r2)

	// Concentric circles never cross; equal ones have no finite answer.
	if d <= tol {
		if math.Abs(r1-r2) <= tol {
			return nil, ErrCoincident
		}
		return nil, nil
	}

	if d > r1+r2+tol || d < math.Abs(r1-r2)-tol {
		return nil, nil
	}

	dsq := d * d
	r1sq, r2sq := r1*r1, r2*r2
	diff := r1sq - r2sq
	a := diff / (2 * dsq)

	fx, fy := x2/2+a*x2, y2/2+a*y2

	csq := 2*(r1sq+r2sq)/dsq - (diff*diff)/(dsq*dsq) - 1
	csq = math.Max(csq, 0)

	// The squared half chord is compared against the rounding error of the
	// terms it was computed from. Anything below that is a tangency.
	hsq := csq * dsq / 4
	noise := roundoff * (2*(r1sq+r2sq) + diff*diff/dsq + dsq)
	if hsq <= noise {
		return []Point{unscale(c1.Center, fx, fy, exp)}, nil
	}

	c := math.Sqrt(csq)
	gx, gy := c*y2/2, -c*x2/2

	i1 := unscale(c1.Center, fx+gx, fy+gy, exp)
	i2 := unscale(c1.Center, fx-gx, fy-gy, exp)
	if i1 == i2 {
		return []Point{i1}, nil
	}
	return []Point{i1, i2}, nil
}

// roundoff bounds the relative error of the half chord computation. It is a
// small multiple of the float64 unit roundoff.
const roundoff = 64 * 0x1p-53

// unscale maps a point of the local frame back to the caller's coordinates.
func unscale(origin Point, x, y float64, exp int) Point {
	return Point{origin.X + math.Ldexp(x, exp), origin.Y + math.Ldexp(y, exp)}
}

// Intersect32 is Intersect for single precision points. The computation runs
// in float64 and only the inputs and results are converted.
func (s Solver) Intersect32(center1, center2 Point32, radius1, radius2 float64) ([]Point32, error) {
	points, err := s.Intersect(
		Circle{Center: center1.Float64(), Radius: radius1},
		Circle{Center: center2.Float64(), Radius: radius2},
	)
	if err != nil || len(points) == 0 {
		return nil, err
	}

	out := make([]Point32, len(points))
	for i, p := range points {
		out[i] = p.Float32()
	}
	// Nearly tangent crossings can collapse in single precision.
	if len(out) == 2 && out[0] == out[1] {
		out = out[:1]
	}
	return out, nil
}

// ValidEpsilon reports whether eps can be used as a solver tolerance: it must
// be finite and positive.
func ValidEpsilon(eps float64) bool {
	return eps > 0 && !math.IsInf(eps, 1)
}

func (s Solver) epsilon() float64 {
	if !ValidEpsilon(s.Epsilon) {
		return DefaultEpsilon
	}
	return s.Epsilon
}

// tolerance scales the relative epsilon to the larger of the center distance
// and the sum of radii.
func (s Solver) tolerance(d, sum float64) float64 {
	return s.epsilon() * math.Max(d, sum)
}

// Intersect returns the intersections of the circle around center1 with
// radius1 and the circle around center2 with radius2, using DefaultSolver.
func Intersect(center1, center2 Point, radius1, radius2 float64) ([]Point, error) {
	return DefaultSolver.Intersect(
		Circle{Center: center1, Radius: radius1},
		Circle{Center: center2, Radius: radius2},
	)
}

// IntersectCongruent is Intersect for two circles sharing the same radius.
func IntersectCongruent(center1, center2 Point, radius float64) ([]Point, error) {
	return Intersect(center1, center2, radius, radius)
}

// Intersect32 is the single precision variant of Intersect using DefaultSolver.
func Intersect32(center1, center2 Point32, radius1, radius2 float64) ([]Point32, error) {
	return DefaultSolver.Intersect32(center1, center2, radius1, radius2)
}
