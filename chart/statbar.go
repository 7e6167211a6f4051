package chart

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/chartanim/surface"
)

// MaxStatRows is the number of stat-bar rows drawn; further rows are
// ignored.
const MaxStatRows = 3

// PipCount is the number of pips in each stat-bar gauge.
const PipCount = 20

const (
	pipWidth   = 14.0
	pipSpacing = 6.0
	pipHeight  = 100.0
	pipRadius  = pipWidth / 2

	// Row pitch: gauge plus its labels, then the gap to the next row.
	statRowHeight = 120.0
	statRowGap    = 100.0

	// A partial pip starts rounding its top corners past this fill.
	roundingOnset = 0.85

	titleFontSize = 18.0
	rangeFontSize = 16.0
)

var emptyPipColour = hexColour("#EEEEEE")

type statBarRenderer struct{}

type statRow struct {
	Title    string
	Min, Max float64
	Value    float64 // clamped into [Min, Max]
	Ratio    float64
	Exact    float64
	Full     int
	Partial  float64
	Shown    float64 // number printed under the gauge
	X, Y     float64 // top left of the first pip
	Colour   colorful.Color
}

// statLayout computes the pip fill of every row. Fill and displayed number
// both follow the eased progress so they move together.
func statLayout(sc Scene) []statRow {
	data := sc.Data
	if len(data) > MaxStatRows {
		data = data[:MaxStatRows]
	}
	n := len(data)
	if n == 0 {
		return nil
	}
	ext := sc.Extents
	rowsHeight := float64(n)*statRowHeight + float64(n-1)*statRowGap
	startY := (ext.Height - rowsHeight) / 2
	gaugeWidth := PipCount*pipWidth + (PipCount-1)*pipSpacing
	startX := ext.Width/2 - gaugeWidth/2

	rows := make([]statRow, n)
	for i, p := range data {
		lo, hi := p.Range()
		r := statRow{
			Title:  p.Label,
			Min:    lo,
			Max:    hi,
			Value:  clamp(p.Value, lo, hi),
			X:      startX,
			Y:      startY + float64(i)*(statRowHeight+statRowGap),
			Colour: statColour(p, i),
		}
		if r.Title == "" {
			r.Title = fmt.Sprintf("Stats %d", i+1)
		}
		if hi > lo {
			r.Ratio = (r.Value - lo) / (hi - lo)
		} else {
			// An empty range would divide by zero; show an empty gauge.
			r.Value = lo
		}
		r.Exact = clamp(r.Ratio*PipCount*sc.Progress, 0, PipCount)
		r.Full = int(math.Floor(r.Exact))
		r.Partial = r.Exact - float64(r.Full)
		r.Shown = clamp(roundHalfUp(lo+(r.Value-lo)*sc.Progress), math.Min(lo, hi), math.Max(lo, hi))
		rows[i] = r
	}
	return rows
}

func statColour(p Point, row int) colorful.Color {
	if c, err := colorful.Hex(p.Colour); err == nil {
		return c
	}
	return colorful.Hsl(math.Mod(float64(row)*60+260, 360), 1, 0.65)
}

// pill is a full pip: a rectangle capped by semicircles.
func pill(x, y float64) *surface.Path {
	p := surface.NewPath()
	p.Arc(x+pipRadius, y+pipRadius, pipRadius, math.Pi, math.Pi)
	p.LineTo(x+pipWidth, y+pipHeight-pipRadius)
	p.Arc(x+pipRadius, y+pipHeight-pipRadius, pipRadius, 0, math.Pi)
	p.Close()
	return p
}

// partialPill fills a pip from the bottom. Its top corners stay square until
// the fill passes roundingOnset, then round progressively so a completed pip
// matches a full one.
func partialPill(x, y, partial float64) *surface.Path {
	filled := pipHeight * partial
	top := y + pipHeight - filled
	bottom := y + pipHeight
	br := math.Min(pipRadius, filled)

	p := surface.NewPath()
	p.MoveTo(x, bottom-br)
	p.Arc(x+br, bottom-br, br, math.Pi, -math.Pi/2)
	p.LineTo(x+pipWidth-br, bottom)
	p.Arc(x+pipWidth-br, bottom-br, br, math.Pi/2, -math.Pi/2)

	if partial > roundingOnset {
		tr := pipRadius * cornerBlend(partial)
		p.LineTo(x+pipWidth, top+tr)
		if tr > 0 {
			p.Arc(x+pipWidth-tr, top+tr, tr, 0, -math.Pi/2)
		}
		p.LineTo(x+tr, top)
		if tr > 0 {
			p.Arc(x+tr, top+tr, tr, 1.5*math.Pi, -math.Pi/2)
		}
	} else {
		p.LineTo(x+pipWidth, top)
		p.LineTo(x, top)
	}
	p.LineTo(x, bottom-br)
	p.Close()
	return p
}

// cornerBlend is 0 at the rounding onset and 1 for a full pip.
func cornerBlend(partial float64) float64 {
	return clamp((partial-roundingOnset)/(1-roundingOnset), 0, 1)
}

func (statBarRenderer) Render(s surface.Surface, sc Scene) {
	text := rgba(sc.Theme.Text, 1)
	titleFont := surface.Font{Size: titleFontSize, Bold: true}
	rangeFont := surface.Font{Size: rangeFontSize, Bold: true}

	for _, r := range statLayout(sc) {
		fill := rgba(r.Colour, 1)
		empty := rgba(emptyPipColour, 1)
		for i := 0; i < PipCount; i++ {
			x := r.X + float64(i)*(pipWidth+pipSpacing)
			s.FillPath(pill(x, r.Y), empty)
			switch {
			case i < r.Full:
				s.FillPath(pill(x, r.Y), fill)
			case i == r.Full && r.Partial > 0:
				s.FillPath(partialPill(x, r.Y, r.Partial), fill)
			}
		}

		gaugeWidth := PipCount*pipWidth + (PipCount-1)*pipSpacing
		firstX := r.X + pipWidth/2
		lastX := r.X + gaugeWidth - pipWidth/2

		// The number follows the last pip with any fill in it.
		at := r.Full
		if r.Partial <= 0 && at > 0 {
			at--
		}
		valueX := r.X + float64(at)*(pipWidth+pipSpacing) + pipWidth/2

		minText, maxText, shown := formatNumber(r.Min), formatNumber(r.Max), formatNumber(r.Shown)
		s.FillText(r.Title, sc.Extents.Width/2, r.Y-40, surface.TextStyle{Font: titleFont, Align: surface.AlignCenter, Colour: text})
		s.FillText(minText, firstX-s.MeasureText(minText, rangeFont)/2, r.Y-12, surface.TextStyle{Font: rangeFont, Align: surface.AlignLeft, Colour: text})
		s.FillText(maxText, lastX+s.MeasureText(maxText, rangeFont)/2, r.Y-12, surface.TextStyle{Font: rangeFont, Align: surface.AlignRight, Colour: text})
		s.FillText(shown, valueX, r.Y+pipHeight+25, surface.TextStyle{Font: rangeFont, Align: surface.AlignCenter, Colour: text})
	}
}
