// Package geom provides planar points, circles and circle intersection.
package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// ApproxEqual reports whether both coordinates of p and q differ by at most eps.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Float32 converts p to single precision.
func (p Point) Float32() Point32 {
	return Point32{float32(p.X), float32(p.Y)}
}

func (p Point) String() string {
	return "(" + formatFloat(p.X, 64) + ", " + formatFloat(p.Y, 64) + ")"
}

// Point32 is a reduced precision point for callers that store coordinates as float32.
type Point32 struct {
	X, Y float32
}

// Float64 widens p to a Point.
func (p Point32) Float64() Point {
	return Point{float64(p.X), float64(p.Y)}
}

func (p Point32) String() string {
	return "(" + formatFloat(float64(p.X), 32) + ", " + formatFloat(float64(p.Y), 32) + ")"
}

// Distance calculates the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(p, q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

// Ensure both point types print through fmt verbs.
var (
	_ fmt.Stringer = Point{}
	_ fmt.Stringer = Point32{}
)
