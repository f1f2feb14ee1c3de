package geometry

import "math"

// Shoelace sum over the vertices, wrapping last to first, halved. Positive for
// counterclockwise polygons, negative for clockwise ones, and 0 below three
// vertices.
func SignedArea(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		next := points[CircularIndex(i+1, n)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

// Area of a simple polygon, regardless of winding.
func Area(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

func (poly Polygon) Area() float64 {
	return Area(poly.Points)
}

// Even-odd point-in-polygon test. Points exactly on an edge may land on either
// side.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray running from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) != (next.Y > p.Y) &&
			p.X < (next.X-vertex.X)*(p.Y-vertex.Y)/(next.Y-vertex.Y)+vertex.X {
			crossingCount++
		}
	}
	return crossingCount
}
