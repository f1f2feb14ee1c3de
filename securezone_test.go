package securezone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestCompute(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	snapshot, err := Compute(points...)
	require.NoError(t, err)
	assert.Equal(t, 6, snapshot.BeamCount)
	assert.Len(t, snapshot.Intersections, 1)
	assert.Empty(t, snapshot.SecurePolygon)
	assert.Equal(t, 1, snapshot.Sensors[0].ID)
}

func TestComputeNonFinite(t *testing.T) {
	snapshot, err := Compute(Point{X: 0, Y: 0}, Point{X: 10, Y: 10}, Point{X: 0, Y: 10}, Point{X: math.Inf(1), Y: 0})
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}
