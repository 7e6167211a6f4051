package chart

import "math"

// AspectRatio is the shape a surface is fitted to inside its container.
const AspectRatio = 16.0 / 9.0

// containerPadding is left free on every side of the container.
const containerPadding = 20.0

// Margins are the gaps between the surface edge and the plot area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Extents describe the drawable surface and the plot area inside it.
type Extents struct {
	Width, Height float64
	Margin        Margins
}

// NewExtents computes margins for a surface. Sizes below one pixel are
// raised to one.
func NewExtents(width, height float64) Extents {
	width = atLeastOne(width)
	height = atLeastOne(height)
	return Extents{
		Width:  width,
		Height: height,
		Margin: Margins{
			Top:    height * 0.1,
			Right:  width * 0.1,
			Bottom: height * 0.15,
			Left:   width * 0.15,
		},
	}
}

// FitExtents sizes a 16:9 surface to fit inside a container.
func FitExtents(containerWidth, containerHeight float64) Extents {
	width := containerWidth - 2*containerPadding
	height := width / AspectRatio
	if height > containerHeight-2*containerPadding {
		height = containerHeight - 2*containerPadding
		width = height * AspectRatio
	}
	return NewExtents(width, height)
}

func atLeastOne(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}

// ChartWidth is the horizontal size of the plot area.
func (e Extents) ChartWidth() float64 {
	return e.Width - e.Margin.Left - e.Margin.Right
}

// ChartHeight is the vertical size of the plot area.
func (e Extents) ChartHeight() float64 {
	return e.Height - e.Margin.Top - e.Margin.Bottom
}

// Baseline is the y coordinate of the bottom of the plot area.
func (e Extents) Baseline() float64 {
	return e.Margin.Top + e.ChartHeight()
}

// Pixels rounds the surface size to whole pixels.
func (e Extents) Pixels() (int, int) {
	return int(math.Round(e.Width)), int(math.Round(e.Height))
}
