package geometry

// Every unordered pair of sensors, each exactly once, with i < j over the input
// order. Fewer than two sensors give no beams.
func EnumerateBeams(sensors []Sensor) []Beam {
	if len(sensors) < 2 {
		return nil
	}
	beams := make([]Beam, 0, BeamCount(len(sensors)))
	for i := range sensors {
		for j := i + 1; j < len(sensors); j++ {
			beams = append(beams, Beam{sensors[i], sensors[j]})
		}
	}
	return beams
}

// Number of beams between n sensors: n(n-1)/2, or 0 below two sensors.
func BeamCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
