package geometry

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/securezone/internal/dbg"
)

// A location in the plane. Intersection points and secure zone vertices are
// plain Points; they have no identity, and two equal Points are
// interchangeable.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A sensor is a Point with an identity. Ids are assigned by the PointSet that
// created the sensor, and two sensors at the same location are still distinct
// sensors. Sensors are values and are never modified after creation.
type Sensor struct {
	ID int `json:"id"`
	Point
}

// A beam is the segment between two distinct sensors. Beams are derived from
// the sensor list on demand and are never stored on their own.
type Beam struct {
	A, B Sensor
}

// Whether the two beams have a sensor in common. Sensors are compared by id, so
// coincident but distinct sensors do not count as shared.
func (b Beam) SharesEndpoint(other Beam) bool {
	return b.A.ID == other.A.ID || b.A.ID == other.B.ID ||
		b.B.ID == other.A.ID || b.B.ID == other.B.ID
}

type Polygon struct {
	Points []Point
}

type PointStack []Point

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s Sensor) String() string {
	return fmt.Sprintf("#%d%s", s.ID, s.Point)
}

// Readable colored name for debugging output. Names are stable for the life of
// the process, but differ between runs.
func (s Sensor) DbgName() string {
	return aurora.Cyan(dbg.Name(s.ID)).String()
}

func (b Beam) String() string {
	return fmt.Sprintf("%s-%s", b.A, b.B)
}
