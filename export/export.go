// Package export writes and reads the JSON document that describes one
// snapshot of a sensor field. The key names and nesting are a compatibility
// contract with whatever consumes exported files, so they must not change.
package export

import (
	_ "embed"
	"encoding/json"
	"io"
	"strings"

	"github.com/osuushi/securezone/geometry"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaData []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaData)

type Document struct {
	Sensors       []geometry.Sensor `json:"sensors"`
	Intersections []geometry.Point  `json:"intersections"`
	SecurePolygon []geometry.Point  `json:"securePolygon"`
	Statistics    Statistics        `json:"statistics"`
}

type Statistics struct {
	SensorCount       int     `json:"sensorCount"`
	BeamCount         int     `json:"beamCount"`
	IntersectionCount int     `json:"intersectionCount"`
	SecureArea        float64 `json:"secureArea"`
}

func FromSnapshot(snapshot *geometry.Snapshot) *Document {
	// Empty lists must come out as [] rather than null
	doc := &Document{
		Sensors:       append([]geometry.Sensor{}, snapshot.Sensors...),
		Intersections: append([]geometry.Point{}, snapshot.Intersections...),
		SecurePolygon: append([]geometry.Point{}, snapshot.SecurePolygon...),
	}
	doc.Statistics = Statistics{
		SensorCount:       len(snapshot.Sensors),
		BeamCount:         snapshot.BeamCount,
		IntersectionCount: len(snapshot.Intersections),
		SecureArea:        snapshot.SecureArea,
	}
	return doc
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encoding export")
}

// Decode reads a document, checking it against the schema and checking that
// its statistics agree with its lists.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading export")
	}
	if err := Validate(data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding export")
	}
	if err := doc.Check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks raw JSON against the export schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(err, "validating export")
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return errors.Errorf("export does not match schema: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateDocument runs a document through the same schema check a reader
// would apply.
func ValidateDocument(doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding export")
	}
	return Validate(data)
}

// Check that the statistics agree with the lists they summarize.
func (doc *Document) Check() error {
	stats := doc.Statistics
	if stats.SensorCount != len(doc.Sensors) {
		return errors.Errorf("sensorCount is %d but there are %d sensors", stats.SensorCount, len(doc.Sensors))
	}
	if expected := geometry.BeamCount(len(doc.Sensors)); stats.BeamCount != expected {
		return errors.Errorf("beamCount is %d but %d sensors make %d beams", stats.BeamCount, len(doc.Sensors), expected)
	}
	if stats.IntersectionCount != len(doc.Intersections) {
		return errors.Errorf("intersectionCount is %d but there are %d intersections", stats.IntersectionCount, len(doc.Intersections))
	}
	if n := len(doc.SecurePolygon); n > 0 && n < 3 {
		return errors.Errorf("securePolygon has %d vertices", n)
	}
	return nil
}
