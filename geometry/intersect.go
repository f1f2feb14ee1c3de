package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Find where segment ab crosses segment cd. Both parameters are checked against
// the closed interval [0, 1], so an endpoint touching the other segment counts
// as a crossing.
//
// Segments whose direction cross product is below Epsilon in magnitude are
// treated as parallel and never intersect, even when they are collinear and
// overlap, or only nearly parallel.
//
// Coordinates large enough to overflow the products give no crossing rather
// than a NaN point.
func SegmentIntersect(a, b, c, d Point) (Point, bool) {
	denom := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if math.Abs(denom) < Epsilon || math.IsInf(denom, 0) || math.IsNaN(denom) {
		return Point{}, false
	}

	// t runs along ab, u along cd. Written so NaN fails the range check.
	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / denom
	u := -((a.X-b.X)*(a.Y-c.Y) - (a.Y-b.Y)*(a.X-c.X)) / denom
	if !(t >= 0 && t <= 1 && u >= 0 && u <= 1) {
		return Point{}, false
	}

	p := pointFromVec(r2.Add(a.vec(), r2.Scale(t, r2.Sub(b.vec(), a.vec()))))
	if !isFinite(p) {
		return Point{}, false
	}
	return p, true
}

// Every crossing between two beams that do not share a sensor, in discovery
// order. Beam pairs are visited once each, in beam enumeration order.
// Coincident crossings from different beam pairs are all kept.
//
// This is O(n^4) in the number of sensors, which is fine for hand placed
// layouts.
func FindIntersections(sensors []Sensor) []Point {
	// Two beams without a common sensor need four sensors
	if len(sensors) < 4 {
		return nil
	}

	beams := EnumerateBeams(sensors)
	var result []Point
	for i, first := range beams {
		for _, second := range beams[i+1:] {
			if first.SharesEndpoint(second) {
				continue
			}
			if p, ok := SegmentIntersect(first.A.Point, first.B.Point, second.A.Point, second.B.Point); ok {
				result = append(result, p)
			}
		}
	}
	return result
}
