package chart

import (
	"math"

	"github.com/matt-g-everett/chartanim/surface"
)

// tension sets how far control points sit from their endpoints, as a
// fraction of the point spacing.
const tension = 0.3

const (
	lineWidth    = 3.0
	markerRadius = 5.0
	areaOpacity  = 0.3
)

// seriesColour is the single colour of line and area series.
var seriesColour = hexColour("#4A90E2")

type lineRenderer struct {
	area bool
}

// cubic is a Bezier segment from P0 to P1.
type cubic struct {
	P0, C1, C2, P1 surface.Point
}

// split returns the part of c over [0, t] by De Casteljau subdivision, so
// the cut end keeps the tangent of the full curve.
func (c cubic) split(t float64) cubic {
	q0 := c.P0.Lerp(c.C1, t)
	q1 := c.C1.Lerp(c.C2, t)
	q2 := c.C2.Lerp(c.P1, t)
	r0 := q0.Lerp(q1, t)
	r1 := q1.Lerp(q2, t)
	return cubic{P0: c.P0, C1: q0, C2: r0, P1: r0.Lerp(r1, t)}
}

type marker struct {
	At    surface.Point
	Alpha float64
}

type lineGeometry struct {
	Points   []surface.Point
	Segments []cubic
	Markers  []marker
}

// front is where the drawn curve currently ends.
func (g lineGeometry) front() surface.Point {
	if len(g.Segments) == 0 {
		return g.Points[0]
	}
	return g.Segments[len(g.Segments)-1].P1
}

func lineLayout(sc Scene) lineGeometry {
	n := len(sc.Data)
	if n == 0 {
		return lineGeometry{}
	}
	ext := sc.Extents
	p := clamp(sc.Progress, 0, 1)
	top := scaleMax(sc.Data)

	y := func(v float64) float64 {
		if top <= 0 {
			return ext.Baseline()
		}
		return ext.Margin.Top + ext.ChartHeight()*(1-v/top)
	}

	var g lineGeometry
	if n == 1 {
		// Nothing to join; a lone point sits mid-plot.
		g.Points = []surface.Point{{X: ext.Margin.Left + ext.ChartWidth()/2, Y: y(sc.Data[0].Value)}}
		if alpha := math.Min(1, p*2); alpha > 0 {
			g.Markers = []marker{{At: g.Points[0], Alpha: alpha}}
		}
		return g
	}

	spacing := ext.ChartWidth() / float64(n-1)
	g.Points = make([]surface.Point, n)
	for i, pt := range sc.Data {
		g.Points[i] = surface.Point{X: ext.Margin.Left + float64(i)*spacing, Y: y(pt.Value)}
	}

	t := p * float64(n-1)
	whole := int(math.Floor(t))
	frac := t - float64(whole)
	for i := 0; i < whole && i < n-1; i++ {
		g.Segments = append(g.Segments, segment(g.Points[i], g.Points[i+1], spacing))
	}
	if whole < n-1 && frac > 0 {
		g.Segments = append(g.Segments, segment(g.Points[whole], g.Points[whole+1], spacing).split(frac))
	}

	for i := range g.Points {
		reached := clamp(t-float64(i)+1, 0, 1)
		if reached <= 0 {
			continue
		}
		alpha := math.Min(1, reached*5)
		if i == 0 {
			alpha = math.Min(1, p*float64(n)*2)
		}
		if alpha > 0 {
			g.Markers = append(g.Markers, marker{At: g.Points[i], Alpha: alpha})
		}
	}
	return g
}

// segment joins two points with horizontal tangents at both ends.
func segment(a, b surface.Point, spacing float64) cubic {
	return cubic{
		P0: a,
		C1: surface.Point{X: a.X + spacing*tension, Y: a.Y},
		C2: surface.Point{X: b.X - spacing*tension, Y: b.Y},
		P1: b,
	}
}

func (l lineRenderer) Render(s surface.Surface, sc Scene) {
	if len(sc.Data) == 0 {
		return
	}
	g := lineLayout(sc)
	c := seriesColour

	if len(g.Segments) > 0 {
		if l.area {
			base := sc.Extents.Baseline()
			first, last := g.Points[0], g.front()
			fill := surface.NewPath()
			fill.MoveTo(first.X, base)
			fill.LineTo(first.X, first.Y)
			traceCurve(fill, g.Segments)
			fill.LineTo(last.X, base)
			fill.LineTo(first.X, base)
			fill.Close()
			s.FillPath(fill, rgba(c, areaOpacity))
		}

		edge := surface.NewPath()
		edge.MoveTo(g.Points[0].X, g.Points[0].Y)
		traceCurve(edge, g.Segments)
		s.StrokePath(edge, surface.Stroke{Colour: rgba(c, 1), Width: lineWidth, Round: true})
	}

	for _, m := range g.Markers {
		s.FillPath(surface.Circle(m.At.X, m.At.Y, markerRadius), rgba(c, m.Alpha))
	}
}

func traceCurve(p *surface.Path, segs []cubic) {
	for _, c := range segs {
		p.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P1.X, c.P1.Y)
	}
}

// Labels sit under their points so they line up with the markers.
func (l lineRenderer) Labels(s surface.Surface, sc Scene) {
	g := lineLayout(sc)
	xs := make([]float64, len(g.Points))
	for i, pt := range g.Points {
		xs[i] = pt.X
	}
	categoryLabels(s, sc, xs)
}
