package layout

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/securezone/export"
	"github.com/osuushi/securezone/geometry"
	"github.com/pkg/errors"
)

// Sensors from an earlier export, as inserts in the exported order. The
// exported ids are not kept; the field assigns its own.
func LoadExport(r io.Reader) ([]Event, error) {
	doc, err := export.Decode(r)
	if err != nil {
		return nil, err
	}
	points := make([]geometry.Point, len(doc.Sensors))
	for i, sensor := range doc.Sensors {
		points[i] = sensor.Point
	}
	return insertsAt(points), nil
}

// Load events from a file, picking the reader by extension: .svg drawings,
// .json exports, and event scripts for anything else. A path of "-" reads an
// event script from stdin.
func Load(path string, stdin io.Reader) ([]Event, error) {
	if path == "-" {
		return ParseEvents(stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening layout")
	}
	defer file.Close()

	var events []Event
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		events, err = LoadSVG(file)
	case ".json":
		events, err = LoadExport(file)
	default:
		events, err = ParseEvents(file)
	}
	return events, errors.Wrapf(err, "loading %s", path)
}
