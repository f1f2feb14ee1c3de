// Package render draws a field snapshot as an image: sensors, the beams
// between them, beam crossings and the secure zone.
package render

import (
	"io"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/securezone/geometry"
	"github.com/osuushi/securezone/internal/config"
	"github.com/osuushi/securezone/internal/dbg"
	"github.com/pkg/errors"
)

const (
	sensorRadius       = 6
	intersectionRadius = 2.5
)

type Options struct {
	// Size of the canvas the sensor coordinates live on, before scaling
	Width, Height float64
	Scale         float64
	Padding       int
	Beams         bool
	Intersections bool
	Labels        config.LabelStyle
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:         cfg.Canvas.Width,
		Height:        cfg.Canvas.Height,
		Scale:         cfg.Render.Scale,
		Padding:       cfg.Render.Padding,
		Beams:         cfg.Render.Beams,
		Intersections: cfg.Render.Intersections,
		Labels:        cfg.Render.Labels,
	}
}

// Draw the snapshot. Coordinates are canvas coordinates, with the origin at the
// top left and y growing downwards.
func Draw(snapshot *geometry.Snapshot, opts Options) *gg.Context {
	width := int(opts.Scale*opts.Width) + opts.Padding*2
	height := int(opts.Scale*opts.Height) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0.08, 0.08, 0.1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Translate for padding, then scale
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	c.Scale(opts.Scale, opts.Scale)

	// Canvas outline
	c.SetRGB(0.3, 0.3, 0.35)
	c.SetLineWidth(1)
	c.DrawRectangle(0, 0, opts.Width, opts.Height)
	c.Stroke()

	if polygon := snapshot.SecurePolygon; len(polygon) > 0 {
		c.MoveTo(polygon[0].X, polygon[0].Y)
		for _, p := range polygon[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.8, 0.3, 0.35)
		c.FillPreserve()
		c.SetRGB(0, 1, 0.4)
		c.SetLineWidth(2)
		c.Stroke()
	}

	if opts.Beams {
		c.SetRGBA(0.5, 0.7, 1, 0.5)
		c.SetLineWidth(1)
		for _, beam := range snapshot.Beams {
			c.DrawLine(beam.A.X, beam.A.Y, beam.B.X, beam.B.Y)
			c.Stroke()
		}
	}

	if opts.Intersections {
		c.SetRGB(1, 0.6, 0)
		for _, p := range snapshot.Intersections {
			c.DrawCircle(p.X, p.Y, intersectionRadius/opts.Scale)
			c.Fill()
		}
	}

	for _, sensor := range snapshot.Sensors {
		c.DrawCircle(sensor.X, sensor.Y, sensorRadius/opts.Scale)
		c.SetRGB(0, 1, 1)
		c.Fill()
	}
	c.Pop()

	// Labels are drawn at identity so the text isn't scaled with the canvas
	if opts.Labels != config.LabelsNone && opts.Labels != "" {
		c.SetRGB(1, 1, 1)
		for _, sensor := range snapshot.Sensors {
			x := float64(opts.Padding) + sensor.X*opts.Scale
			y := float64(opts.Padding) + sensor.Y*opts.Scale
			c.DrawStringAnchored(label(sensor, opts.Labels), x+sensorRadius+2, y-sensorRadius-2, 0, 0)
		}
	}
	return c
}

func label(sensor geometry.Sensor, style config.LabelStyle) string {
	if style == config.LabelsNames {
		return dbg.Name(sensor.ID)
	}
	return strconv.Itoa(sensor.ID)
}

func SavePNG(snapshot *geometry.Snapshot, opts Options, path string) error {
	return errors.Wrapf(Draw(snapshot, opts).SavePNG(path), "saving %s", path)
}

// Print a saved image to the terminal. Only terminals that understand the
// iTerm inline image protocol will show anything.
func Show(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
