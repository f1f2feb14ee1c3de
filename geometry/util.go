package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance for parallel beams and for polar angle ties in the hull. This is a
// fixed absolute tolerance; nothing here attempts robust predicates.
const Epsilon = 1e-10

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Cross product of the vectors OA and OB. Positive means O->A->B turns left
// (counterclockwise), zero means the three points are collinear.
func Cross(o, a, b Point) float64 {
	return r2.Cross(r2.Sub(a.vec(), o.vec()), r2.Sub(b.vec(), o.vec()))
}

func distSq(a, b Point) float64 {
	return r2.Norm2(r2.Sub(b.vec(), a.vec()))
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

// The point below the top of the stack.
func (s PointStack) NextToTop() Point {
	return s[len(s)-2]
}

func (s PointStack) Top() Point {
	return s[len(s)-1]
}

func (s PointStack) Len() int {
	return len(s)
}
