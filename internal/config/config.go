// Package config loads the YAML settings used by the securezone command.
// Every setting has a default, so an empty or missing file is valid.
package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type LabelStyle string

const (
	LabelsNone  LabelStyle = "none"
	LabelsIDs   LabelStyle = "ids"
	LabelsNames LabelStyle = "names"
)

type Config struct {
	Canvas       Canvas  `yaml:"canvas"`
	RemoveRadius float64 `yaml:"remove_radius"`
	Render       Render  `yaml:"render"`
	Export       Export  `yaml:"export"`
}

// The drawing surface sensors are placed on. When Clamp is set, inserted
// coordinates are pulled into [0, Width] x [0, Height].
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Clamp  bool    `yaml:"clamp"`
}

type Render struct {
	Scale         float64    `yaml:"scale"`
	Padding       int        `yaml:"padding"`
	Beams         bool       `yaml:"beams"`
	Intersections bool       `yaml:"intersections"`
	Labels        LabelStyle `yaml:"labels"`
}

type Export struct {
	// Check exported documents against the export schema before writing them
	Validate bool `yaml:"validate"`
}

func Default() *Config {
	return &Config{
		Canvas: Canvas{
			Width:  800,
			Height: 600,
		},
		RemoveRadius: 10,
		Render: Render{
			Scale:         1,
			Padding:       20,
			Beams:         true,
			Intersections: true,
			Labels:        LabelsIDs,
		},
		Export: Export{
			Validate: true,
		},
	}
}

// Load reads the file at path over the defaults. An empty path gives the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !(c.Canvas.Width > 0) || !(c.Canvas.Height > 0) {
		return errors.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if !(c.RemoveRadius > 0) {
		return errors.Errorf("remove_radius must be positive, got %g", c.RemoveRadius)
	}
	if !(c.Render.Scale > 0) {
		return errors.Errorf("render scale must be positive, got %g", c.Render.Scale)
	}
	if c.Render.Padding < 0 {
		return errors.Errorf("render padding must not be negative, got %d", c.Render.Padding)
	}
	switch c.Render.Labels {
	case LabelsNone, LabelsIDs, LabelsNames:
	default:
		return errors.Errorf("unknown label style %q", c.Render.Labels)
	}
	return nil
}

// Pull a coordinate into the canvas if clamping is on.
func (c Canvas) Apply(x, y float64) (float64, float64) {
	if !c.Clamp {
		return x, y
	}
	return math.Min(math.Max(x, 0), c.Width), math.Min(math.Max(y, 0), c.Height)
}
