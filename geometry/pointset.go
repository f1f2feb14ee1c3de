package geometry

import "gonum.org/v1/gonum/spatial/r2"

// An ordered collection of sensors. Ids come from a counter that starts at 1
// and only goes back to 1 on Clear, so an id is never reused while the set
// lives. The zero value is an empty set ready to use.
//
// PointSet is not safe for concurrent use; Field wraps one with a lock.
type PointSet struct {
	sensors []Sensor
	lastID  int
}

func NewPointSet() *PointSet {
	return &PointSet{}
}

// Append a new sensor at (x, y). Coincident sensors are allowed.
func (ps *PointSet) Insert(x, y float64) Sensor {
	ps.lastID++
	sensor := Sensor{ID: ps.lastID, Point: Point{X: x, Y: y}}
	ps.sensors = append(ps.sensors, sensor)
	return sensor
}

// Remove the first sensor, in insertion order, that lies strictly closer than
// radius to (x, y). The second return value is false if no sensor qualifies,
// in which case the set is unchanged.
func (ps *PointSet) RemoveNear(x, y, radius float64) (Sensor, bool) {
	target := r2.Vec{X: x, Y: y}
	for i, sensor := range ps.sensors {
		if r2.Norm(r2.Sub(sensor.vec(), target)) < radius {
			ps.sensors = append(ps.sensors[:i:i], ps.sensors[i+1:]...)
			return sensor, true
		}
	}
	return Sensor{}, false
}

// Remove every sensor and reset the id counter.
func (ps *PointSet) Clear() {
	ps.sensors = nil
	ps.lastID = 0
}

// The sensors in insertion order. The returned slice is a copy.
func (ps *PointSet) All() []Sensor {
	return append([]Sensor(nil), ps.sensors...)
}

func (ps *PointSet) clone() PointSet {
	return PointSet{sensors: ps.All(), lastID: ps.lastID}
}

func (ps *PointSet) Get(id int) (Sensor, bool) {
	for _, sensor := range ps.sensors {
		if sensor.ID == id {
			return sensor, true
		}
	}
	return Sensor{}, false
}

func (ps *PointSet) Len() int {
	return len(ps.sensors)
}
