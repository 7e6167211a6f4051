package chart

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/chartanim/surface"
)

// GradientTable stores colour stops interpolated in RGB.
type GradientTable []struct {
	Colour colorful.Color
	Pos    float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if t <= g[0].Pos {
		return g[0].Colour
	}
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Colour
			}
			return c1.Colour.BlendRgb(c2.Colour, (t-c1.Pos)/(c2.Pos-c1.Pos))
		}
	}

	// Past the last keypoint.
	return g[len(g)-1].Colour
}

// Solid reports whether the table is a single colour.
func (g GradientTable) Solid() bool {
	return len(g) < 2
}

// Stops converts the table for a surface gradient fill.
func (g GradientTable) Stops() []surface.GradientStop {
	stops := make([]surface.GradientStop, len(g))
	for i, s := range g {
		stops[i] = surface.GradientStop{Offset: s.Pos, Colour: rgba(s.Colour, 1)}
	}
	return stops
}
