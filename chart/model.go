// Package chart renders progressive reveals of small datasets. Every frame is
// a pure function of the dataset, configuration, surface extents and
// progress.
package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/chartanim/easing"
)

// Kind is a chart variant.
type Kind string

const (
	Bar     Kind = "bar"
	Line    Kind = "line"
	Area    Kind = "area"
	Pie     Kind = "pie"
	Donut   Kind = "donut"
	StatBar Kind = "statBar"
)

// Axis reports whether the variant is drawn against a value axis and grid.
func (k Kind) Axis() bool {
	return k == Bar || k == Line || k == Area
}

func (k Kind) valid() bool {
	switch k {
	case Bar, Line, Area, Pie, Donut, StatBar:
		return true
	}
	return false
}

// DefaultDuration is used when a configuration has no positive duration.
const DefaultDuration = 3.0

// Default stat-bar range when a row leaves min or max out.
const (
	DefaultMin = 0.0
	DefaultMax = 100.0
)

// DefaultColours are handed out by index to points without a usable colour.
var DefaultColours = []string{
	"#4A7CFF", // Blue
	"#FF4A7C", // Red
	"#7CFF4A", // Green
	"#FFC44A", // Orange
	"#4AFFDF", // Teal
	"#C44AFF", // Purple
	"#FFDF4A", // Yellow
	"#4AC4FF", // Light Blue
	"#FF4AC4", // Pink
}

// Point is one labelled value. Min and Max only apply to stat-bars.
type Point struct {
	Label  string   `yaml:"label" json:"label"`
	Value  float64  `yaml:"value" json:"value"`
	Colour string   `yaml:"color" json:"color"`
	Min    *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// Range returns the stat-bar bounds, defaulting missing ones.
func (p Point) Range() (lo, hi float64) {
	lo, hi = DefaultMin, DefaultMax
	if p.Min != nil {
		lo = *p.Min
	}
	if p.Max != nil {
		hi = *p.Max
	}
	return lo, hi
}

// colour parses the point's colour token, falling back to a default for
// the point's index.
func (p Point) colour(i int) colorful.Color {
	if c, err := colorful.Hex(p.Colour); err == nil {
		return c
	}
	c, _ := colorful.Hex(DefaultColours[i%len(DefaultColours)])
	return c
}

// Dataset is an ordered list of points. Order sets draw order, horizontal
// position and stagger index.
type Dataset []Point

// Clone deep copies the dataset.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	for i, p := range d {
		if p.Min != nil {
			v := *p.Min
			p.Min = &v
		}
		if p.Max != nil {
			v := *p.Max
			p.Max = &v
		}
		out[i] = p
	}
	return out
}

// Values returns the point values in order.
func (d Dataset) Values() []float64 {
	vs := make([]float64, len(d))
	for i, p := range d {
		vs[i] = p.Value
	}
	return vs
}

// Config selects how a dataset is animated.
type Config struct {
	Duration float64     `yaml:"duration" json:"duration"`
	Easing   easing.Kind `yaml:"easing" json:"easing"`
	Chart    Kind        `yaml:"chart" json:"chart"`
	Theme    ThemeKind   `yaml:"theme" json:"theme"`
}

// Normalize fills in defaults and replaces unknown kinds with their
// fallbacks: linear easing, bar chart, dark theme.
func (c Config) Normalize() Config {
	if !(c.Duration > 0) || math.IsInf(c.Duration, 1) {
		c.Duration = DefaultDuration
	}
	switch {
	case c.Easing == "":
		c.Easing = easing.EaseInOut
	case !easing.Valid(c.Easing):
		c.Easing = easing.Linear
	}
	if !c.Chart.valid() {
		c.Chart = Bar
	}
	if !c.Theme.valid() {
		c.Theme = Dark
	}
	return c
}
