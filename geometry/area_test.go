package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArea(t *testing.T) {
	t.Run("degenerate", func(t *testing.T) {
		assert.Equal(t, 0.0, Area(nil))
		assert.Equal(t, 0.0, Area([]Point{{1, 1}}))
		assert.Equal(t, 0.0, Area([]Point{{1, 1}, {5, 7}}))
	})

	t.Run("collinear polygon has no area", func(t *testing.T) {
		assert.InDelta(t, 0, Area([]Point{{0, 0}, {1, 1}, {2, 2}}), Epsilon)
	})

	t.Run("rectangle", func(t *testing.T) {
		assert.InDelta(t, 12, Area([]Point{{1, 1}, {5, 1}, {5, 4}, {1, 4}}), Epsilon)
	})

	t.Run("non-convex polygon", func(t *testing.T) {
		// L shape: 2x2 square with a 1x1 bite out of the corner
		poly := []Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
		assert.InDelta(t, 3, Area(poly), Epsilon)
	})
}

func TestAreaIgnoresWinding(t *testing.T) {
	for sides := 3; sides <= 9; sides++ {
		sides := sides
		t.Run(fmt.Sprintf("%d sides", sides), func(t *testing.T) {
			var points []Point
			for i := 0; i < sides; i++ {
				angle := 2 * math.Pi * float64(i) / float64(sides)
				points = append(points, Point{7 + 3*math.Cos(angle), -2 + 3*math.Sin(angle)})
			}
			poly := Polygon{Points: points}
			reversed := reverse(poly)

			expected := float64(sides) / 2 * 9 * math.Sin(2*math.Pi/float64(sides))
			assert.InDelta(t, expected, poly.Area(), 1e-9)
			assert.InDelta(t, poly.Area(), reversed.Area(), 1e-9)
			assert.Greater(t, SignedArea(poly.Points), 0.0)
			assert.Less(t, SignedArea(reversed.Points), 0.0)
		})
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
	assert.True(t, square.ContainsPoint(Point{2, 2}))
	assert.True(t, square.ContainsPoint(Point{0.1, 3.9}))
	assert.False(t, square.ContainsPoint(Point{5, 2}))
	assert.False(t, square.ContainsPoint(Point{-1, -1}))
	assert.False(t, Polygon{}.ContainsPoint(Point{0, 0}))
}

func reverse(poly Polygon) Polygon {
	reversed := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		reversed.Points = append(reversed.Points, poly.Points[i])
	}
	return reversed
}
