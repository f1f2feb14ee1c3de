// Place sensors on a plane and find their secure zone.
//
// Every pair of sensors is joined by a beam. Wherever two beams that don't
// share a sensor cross, that crossing is covered twice; the convex hull of
// all those crossings is the secure zone.
//
// Use a Field when sensors come and go, or Compute for a one-off answer. The
// geometry package has the individual steps.
package securezone

import "github.com/osuushi/securezone/geometry"

type Point = geometry.Point
type Sensor = geometry.Sensor
type Snapshot = geometry.Snapshot
type Field = geometry.Field

func NewField() *Field {
	return geometry.NewField()
}

// Compute the snapshot for sensors placed at the given points, in order, with
// ids starting at 1.
//
// This only fails if a coordinate is not finite.
func Compute(points ...Point) (result *Snapshot, err error) {
	defer func() {
		recoveredErr := geometry.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	var ps geometry.PointSet
	for _, p := range points {
		ps.Insert(p.X, p.Y)
	}
	return geometry.Recompute(ps.All()), nil
}
