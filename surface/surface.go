// Package surface abstracts the 2D drawing capabilities the chart renderers
// need, so the same paint calls can target a raster image, an SVG document
// or a recording used in tests.
package surface

import "image/color"

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of a text run.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
)

// Font describes the face used for a text run. Size is in pixels.
type Font struct {
	Size float64
	Bold bool
}

// TextStyle groups everything needed to place a text run.
type TextStyle struct {
	Font     Font
	Align    Align
	Baseline Baseline
	Colour   color.Color
}

// GradientStop is a colour at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Colour color.Color
}

// Stroke holds line drawing parameters.
type Stroke struct {
	Colour color.Color
	Width  float64
	Round  bool
}

// A Surface is a mutable drawable area. Painting is synchronous: when a call
// returns its pixels are in place.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Resize reallocates the surface. Dimensions below 1 are raised to 1.
	Resize(width, height int)
	// Clear resets every pixel to transparent.
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	// FillGradient paints the whole surface with a linear gradient running
	// from (x0, y0) to (x1, y1).
	FillGradient(x0, y0, x1, y1 float64, stops []GradientStop)
	FillPath(p *Path, c color.Color)
	StrokePath(p *Path, s Stroke)
	// MeasureText returns the advance width of s.
	MeasureText(s string, f Font) float64
	FillText(s string, x, y float64, style TextStyle)
}

func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
