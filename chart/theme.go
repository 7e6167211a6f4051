package chart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeKind names a palette.
type ThemeKind string

const (
	Dark     ThemeKind = "dark"
	Light    ThemeKind = "light"
	Gradient ThemeKind = "gradient"
)

func (k ThemeKind) valid() bool {
	_, ok := themes[k]
	return ok
}

// Theme holds the colour tokens a frame is painted with.
type Theme struct {
	Background  GradientTable
	Text        colorful.Color
	Grid        colorful.Color
	GridOpacity float64
}

// Base is the representative solid background, used where a shape has to
// blend into the background such as the donut hole and slice borders.
func (t Theme) Base() colorful.Color {
	return t.Background.GetColor(0.5)
}

func hexColour(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func solid(hex string) GradientTable {
	return GradientTable{{hexColour(hex), 0}}
}

var themes = map[ThemeKind]Theme{
	Dark: {
		Background:  solid("#0F1118"),
		Text:        hexColour("#FFFFFF"),
		Grid:        hexColour("#2A2D39"),
		GridOpacity: 0.5,
	},
	Light: {
		Background:  solid("#FFFFFF"),
		Text:        hexColour("#333333"),
		Grid:        hexColour("#CCCCCC"),
		GridOpacity: 0.5,
	},
	Gradient: {
		Background: GradientTable{
			{hexColour("#1A1C25"), 0},
			{hexColour("#2A2A3A"), 1},
		},
		Text:        hexColour("#FFFFFF"),
		Grid:        hexColour("#4A5065"),
		GridOpacity: 0.4,
	},
}

// ThemeFor looks up a palette. Unknown names get the dark theme.
func ThemeFor(k ThemeKind) Theme {
	if t, ok := themes[k]; ok {
		return t
	}
	return themes[Dark]
}

// rgba converts a colour with an opacity in [0, 1] for painting.
func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp(alpha, 0, 1)*255 + 0.5)}
}
