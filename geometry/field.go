package geometry

import "sync"

// Everything derived from one state of the sensor list. A snapshot is never
// modified after Recompute returns it; treat its slices as read only.
type Snapshot struct {
	Sensors       []Sensor
	Beams         []Beam
	BeamCount     int
	Intersections []Point
	// Raw output of ConvexHull over the intersections. It has fewer than
	// three points when the intersections do not span an area.
	Hull []Point
	// Hull when it is a real polygon, otherwise empty.
	SecurePolygon []Point
	SecureArea    float64
}

// Compute the full snapshot for a list of sensors: beams, crossings, the hull
// of the crossings, and its area. This is a pure function of its input.
//
// A sensor with a non-finite coordinate has no place on the plane. That is
// reported with a panic that HandlePanicRecover understands.
func Recompute(sensors []Sensor) *Snapshot {
	sensors = append([]Sensor(nil), sensors...)
	for _, sensor := range sensors {
		if !isFinite(sensor.Point) {
			fatalf("non-finite sensor %v", sensor)
		}
	}
	intersections := FindIntersections(sensors)
	hull := ConvexHull(intersections)

	var secure []Point
	if len(hull) >= 3 {
		secure = hull
	}

	return &Snapshot{
		Sensors:       sensors,
		Beams:         EnumerateBeams(sensors),
		BeamCount:     BeamCount(len(sensors)),
		Intersections: intersections,
		Hull:          hull,
		SecurePolygon: secure,
		SecureArea:    Area(secure),
	}
}

// A field owns a PointSet and keeps its snapshot current. Each mutation works on
// a copy of the set and commits the copy together with its snapshot, so readers
// only ever see a snapshot that matches the sensors. If Recompute panics, the
// field keeps its previous state.
type Field struct {
	mu       sync.RWMutex
	points   PointSet
	snapshot *Snapshot
}

func NewField() *Field {
	f := &Field{}
	f.snapshot = Recompute(nil)
	return f
}

func (f *Field) Insert(x, y float64) Sensor {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.points.clone()
	sensor := next.Insert(x, y)
	f.commit(next)
	return sensor
}

// Remove the first sensor strictly within radius of (x, y). When nothing is in
// range the field is left alone and the snapshot is not rebuilt.
func (f *Field) RemoveNear(x, y, radius float64) (Sensor, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.points.clone()
	sensor, ok := next.RemoveNear(x, y, radius)
	if ok {
		f.commit(next)
	}
	return sensor, ok
}

func (f *Field) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var next PointSet
	f.commit(next)
}

// Rebuild the snapshot from the current sensors and return it.
func (f *Field) Recompute() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commit(f.points)
	return f.snapshot
}

func (f *Field) Snapshot() *Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.snapshot == nil {
		// Zero value field that has never been mutated
		return Recompute(nil)
	}
	return f.snapshot
}

func (f *Field) Sensors() []Sensor {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.points.All()
}

// Whether (x, y) lies inside the current secure zone.
func (f *Field) InSecureZone(x, y float64) bool {
	snapshot := f.Snapshot()
	if len(snapshot.SecurePolygon) == 0 {
		return false
	}
	return Polygon{Points: snapshot.SecurePolygon}.ContainsPoint(Point{X: x, Y: y})
}

// Must hold the write lock.
func (f *Field) commit(next PointSet) {
	snapshot := Recompute(next.All())
	f.points = next
	f.snapshot = snapshot
}
