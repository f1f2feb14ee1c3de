// Package layout turns files into sensor placements. It reads event scripts,
// SVG drawings and earlier exports, and applies the result to a Field.
package layout

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/securezone/geometry"
	"github.com/osuushi/securezone/internal/config"
	"github.com/pkg/errors"
)

type Op int

const (
	OpInsert Op = iota
	OpRemove
	OpClear
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "add"
	case OpRemove:
		return "remove"
	case OpClear:
		return "clear"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// One user action against the field. Radius only applies to removals, and
// zero means the configured default.
type Event struct {
	Op     Op
	X, Y   float64
	Radius float64
}

// Read an event script. One event per line:
//
//	add X Y
//	remove X Y [RADIUS]
//	clear
//
// A line with just "X Y" is an add. Blank lines and lines starting with # are
// skipped.
func ParseEvents(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, err := parseEvent(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading events")
	}
	return events, nil
}

func parseEvent(fields []string) (Event, error) {
	switch fields[0] {
	case "add":
		if len(fields) != 3 {
			return Event{}, errors.Errorf("add takes 2 coordinates, got %d", len(fields)-1)
		}
		return parseCoordinates(OpInsert, fields[1:])
	case "remove":
		if len(fields) != 3 && len(fields) != 4 {
			return Event{}, errors.Errorf("remove takes 2 coordinates and an optional radius, got %d values", len(fields)-1)
		}
		event, err := parseCoordinates(OpRemove, fields[1:3])
		if err != nil || len(fields) == 3 {
			return event, err
		}
		event.Radius, err = parseNumber(fields[3])
		if err == nil && !(event.Radius > 0) {
			err = errors.Errorf("radius must be positive, got %g", event.Radius)
		}
		return event, err
	case "clear":
		if len(fields) != 1 {
			return Event{}, errors.New("clear takes no arguments")
		}
		return Event{Op: OpClear}, nil
	}

	if len(fields) == 2 {
		return parseCoordinates(OpInsert, fields)
	}
	return Event{}, errors.Errorf("unknown event %q", strings.Join(fields, " "))
}

func parseCoordinates(op Op, fields []string) (Event, error) {
	x, err := parseNumber(fields[0])
	if err != nil {
		return Event{}, err
	}
	y, err := parseNumber(fields[1])
	if err != nil {
		return Event{}, err
	}
	return Event{Op: op, X: x, Y: y}, nil
}

// Parse a finite number. NaN and infinities would poison every beam they touch.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("non-finite number %q", s)
	}
	return v, nil
}

type Options struct {
	RemoveRadius float64
	Canvas       config.Canvas
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{RemoveRadius: cfg.RemoveRadius, Canvas: cfg.Canvas}
}

// What happened when a script was applied.
type Result struct {
	Inserted []geometry.Sensor
	Removed  []geometry.Sensor
	// Removals that found no sensor in range
	Missed []Event
	Clears int
}

// Apply events in order. Each event is a separate mutation of the field, so
// the field's snapshot is current after every step.
func Apply(field *geometry.Field, events []Event, opts Options) Result {
	var result Result
	for _, event := range events {
		switch event.Op {
		case OpInsert:
			x, y := opts.Canvas.Apply(event.X, event.Y)
			result.Inserted = append(result.Inserted, field.Insert(x, y))
		case OpRemove:
			radius := event.Radius
			if radius == 0 {
				radius = opts.RemoveRadius
			}
			if sensor, ok := field.RemoveNear(event.X, event.Y, radius); ok {
				result.Removed = append(result.Removed, sensor)
			} else {
				result.Missed = append(result.Missed, event)
			}
		case OpClear:
			field.Clear()
			result.Clears++
		}
	}
	return result
}

func insertsAt(points []geometry.Point) []Event {
	events := make([]Event, len(points))
	for i, p := range points {
		events[i] = Event{Op: OpInsert, X: p.X, Y: p.Y}
	}
	return events
}
