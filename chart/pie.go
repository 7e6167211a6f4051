package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/matt-g-everett/chartanim/surface"
)

const (
	donutHole      = 0.6
	minLabelSweep  = 0.1
	leaderInner    = 0.85
	leaderOuter    = 1.2
	sliceBorder    = 2.0
	totalFontSize  = 24.0
	pieStartAngle  = -math.Pi / 2
	labelTextInset = 5.0
)

type pieRenderer struct {
	donut bool
}

type slice struct {
	Start, Sweep float64
	Share        float64
}

type pieGeometry struct {
	Centre surface.Point
	Radius float64
	Total  float64
	Slices []slice
}

// shares ignores negative values: a slice cannot sweep backwards.
func shares(d Dataset) []float64 {
	vs := d.Values()
	for i, v := range vs {
		if !(v > 0) {
			vs[i] = 0
		}
	}
	return vs
}

// pieLayout sweeps slices in order from twelve o'clock. The swept angles
// always add up to a full turn times progress.
func pieLayout(sc Scene) pieGeometry {
	ext := sc.Extents
	vs := shares(sc.Data)
	g := pieGeometry{
		Centre: surface.Point{X: ext.Margin.Left + ext.ChartWidth()/2, Y: ext.Margin.Top + ext.ChartHeight()/2},
		Radius: math.Min(ext.ChartWidth(), ext.ChartHeight()) / 2,
		Total:  vec.Sum(vs),
	}
	if !(g.Total > 0) {
		return g
	}
	p := clamp(sc.Progress, 0, 1)
	start := pieStartAngle
	g.Slices = make([]slice, len(vs))
	for i, v := range vs {
		share := v / g.Total
		sweep := share * 2 * math.Pi * p
		g.Slices[i] = slice{Start: start, Sweep: sweep, Share: share}
		start += sweep
	}
	return g
}

func (r pieRenderer) Render(s surface.Surface, sc Scene) {
	g := pieLayout(sc)
	if len(g.Slices) == 0 {
		return
	}
	border := surface.Stroke{Colour: rgba(sc.Theme.Base(), 1), Width: sliceBorder}
	for i, sl := range g.Slices {
		if sl.Sweep <= 0 {
			continue
		}
		p := surface.NewPath()
		p.MoveTo(g.Centre.X, g.Centre.Y)
		p.Arc(g.Centre.X, g.Centre.Y, g.Radius, sl.Start, sl.Sweep)
		p.Close()
		s.FillPath(p, rgba(sc.Data[i].colour(i), 1))
		s.StrokePath(p, border)
	}

	if r.donut {
		s.FillPath(surface.Circle(g.Centre.X, g.Centre.Y, g.Radius*donutHole), rgba(sc.Theme.Base(), 1))
		s.FillText(formatNumber(vec.Sum(sc.Data.Values())), g.Centre.X, g.Centre.Y, surface.TextStyle{
			Font:     surface.Font{Size: totalFontSize, Bold: true},
			Align:    surface.AlignCenter,
			Baseline: surface.BaselineMiddle,
			Colour:   rgba(sc.Theme.Text, 1),
		})
	}
}

// Labels draws a leader line and caption for every slice wide enough to
// read. Captions on the left half of the circle are right aligned.
func (r pieRenderer) Labels(s surface.Surface, sc Scene) {
	g := pieLayout(sc)
	for i, sl := range g.Slices {
		if sl.Sweep <= minLabelSweep {
			continue
		}
		mid := sl.Start + sl.Sweep/2
		cos, sin := math.Cos(mid), math.Sin(mid)
		inner := surface.Point{X: g.Centre.X + cos*g.Radius*leaderInner, Y: g.Centre.Y + sin*g.Radius*leaderInner}
		outer := surface.Point{X: g.Centre.X + cos*g.Radius*leaderOuter, Y: g.Centre.Y + sin*g.Radius*leaderOuter}

		c := sc.Data[i].colour(i)
		leader := surface.NewPath()
		leader.MoveTo(inner.X, inner.Y)
		leader.LineTo(outer.X, outer.Y)
		s.StrokePath(leader, surface.Stroke{Colour: rgba(c, 1), Width: sliceBorder})

		style := surface.TextStyle{Font: labelFont, Align: surface.AlignLeft, Colour: rgba(sc.Theme.Text, 1)}
		x := outer.X + labelTextInset
		if cos < 0 {
			style.Align = surface.AlignRight
			x = outer.X - labelTextInset
		}
		text := fmt.Sprintf("%s (%d%%)", sc.Data[i].Label, int(roundHalfUp(sl.Share*100)))
		s.FillText(text, x, outer.Y, style)
	}
}
