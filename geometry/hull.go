package geometry

import (
	"math"
	"sort"
)

// Graham scan. The result is counterclockwise, starts at the anchor (the lowest
// point, leftmost on ties) and contains only strictly convex vertices:
// collinear boundary points and duplicates are dropped.
//
// With fewer than three points there is nothing to scan, and the input is
// returned as is. Callers that need a real polygon must check the length of the
// result; collinear input also collapses to two points.
func ConvexHull(points []Point) []Point {
	if len(points) < 3 {
		return points
	}

	anchorIndex := 0
	for i, p := range points {
		anchor := points[anchorIndex]
		if p.Y < anchor.Y || (p.Y == anchor.Y && p.X < anchor.X) {
			anchorIndex = i
		}
	}
	anchor := points[anchorIndex]

	sorted := make([]Point, 0, len(points)-1)
	sorted = append(sorted, points[:anchorIndex]...)
	sorted = append(sorted, points[anchorIndex+1:]...)
	sortByPolarAngle(anchor, sorted)

	stack := make(PointStack, 0, len(points))
	stack.Push(anchor)
	stack.Push(sorted[0])
	for _, p := range sorted[1:] {
		// Pop anything that would make a right turn or a straight line
		for stack.Len() >= 2 && Cross(stack.NextToTop(), stack.Top(), p) <= 0 {
			stack.Pop()
		}
		stack.Push(p)
	}
	return []Point(stack)
}

// Sort by angle around the anchor, nearest first when the angles tie.
func sortByPolarAngle(anchor Point, points []Point) {
	type polar struct {
		point         Point
		angle, distSq float64
	}
	keyed := make([]polar, len(points))
	for i, p := range points {
		keyed[i] = polar{p, math.Atan2(p.Y-anchor.Y, p.X-anchor.X), distSq(anchor, p)}
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		if math.Abs(keyed[i].angle-keyed[j].angle) < Epsilon {
			return keyed[i].distSq < keyed[j].distSq
		}
		return keyed[i].angle < keyed[j].angle
	})
	for i, k := range keyed {
		points[i] = k.point
	}
}

// Whether every consecutive vertex triple, wrapping around, turns strictly
// left. Polygons with fewer than three vertices are not convex.
func IsStrictlyConvex(points []Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	for i := range points {
		if !(Cross(points[i], points[CircularIndex(i+1, n)], points[CircularIndex(i+2, n)]) > 0) {
			return false
		}
	}
	return true
}
