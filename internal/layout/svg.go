package layout

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/securezone/geometry"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It walks the document and
// places a sensor at the center of every <circle>, and at every vertex of every
// <polygon> and <polyline>, in document order. Transforms are ignored.
func LoadSVG(r io.Reader) ([]Event, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []geometry.Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := circleCenter(el)
			if err != nil {
				return err
			}
			points = append(points, p)
		case "polygon", "polyline":
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", el.Name)
			}
			points = append(points, vertices...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found in svg")
	}
	return insertsAt(points), nil
}

func circleCenter(el *svgparser.Element) (geometry.Point, error) {
	// Missing cx or cy default to 0, as in SVG
	var p geometry.Point
	var err error
	if cx, ok := el.Attributes["cx"]; ok {
		if p.X, err = parseNumber(cx); err != nil {
			return p, errors.Wrap(err, "circle cx")
		}
	}
	if cy, ok := el.Attributes["cy"]; ok {
		if p.Y, err = parseNumber(cy); err != nil {
			return p, errors.Wrap(err, "circle cy")
		}
	}
	return p, nil
}

// Parse "x1,y1 x2,y2 ..." where commas and whitespace are interchangeable.
func parsePointList(s string) ([]geometry.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}

	points := make([]geometry.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points, nil
}
