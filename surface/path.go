package surface

import "math"

// SegmentKind identifies a path segment.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	CubicTo
	ArcTo
	Close
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Lerp moves from p towards q by t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Arc is a circular arc. Angles are in radians, measured clockwise on screen
// from the positive x axis. A positive Sweep runs clockwise.
type Arc struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// End returns the point the arc finishes on.
func (a Arc) End() Point {
	return a.at(a.Start + a.Sweep)
}

// Begin returns the point the arc starts from.
func (a Arc) Begin() Point {
	return a.at(a.Start)
}

func (a Arc) at(angle float64) Point {
	return Point{a.Center.X + math.Cos(angle)*a.Radius, a.Center.Y + math.Sin(angle)*a.Radius}
}

// Segment is one element of a Path. MoveTo and LineTo use Points[0]; CubicTo
// uses Points[0..2] as control, control, end.
type Segment struct {
	Kind   SegmentKind
	Points [3]Point
	Arc    Arc
}

// Path is a sequence of segments in the manner of a 2D canvas path.
type Path struct {
	segs    []Segment
	current Point
	started bool
}

// NewPath creates an empty Path.
func NewPath() *Path {
	return new(Path)
}

// Circle creates a closed full-circle path.
func Circle(cx, cy, r float64) *Path {
	p := NewPath()
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
	return p
}

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, Segment{Kind: MoveTo, Points: [3]Point{{x, y}}})
	p.current = Point{x, y}
	p.started = true
}

func (p *Path) LineTo(x, y float64) {
	if !p.started {
		p.MoveTo(x, y)
		return
	}
	p.segs = append(p.segs, Segment{Kind: LineTo, Points: [3]Point{{x, y}}})
	p.current = Point{x, y}
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.started {
		p.MoveTo(c1x, c1y)
	}
	p.segs = append(p.segs, Segment{Kind: CubicTo, Points: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
	p.current = Point{x, y}
}

// Arc adds an arc around (cx, cy). Like a canvas arc, a straight line joins
// the current point to the start of the arc.
func (p *Path) Arc(cx, cy, r, start, sweep float64) {
	a := Arc{Center: Point{cx, cy}, Radius: r, Start: start, Sweep: sweep}
	b := a.Begin()
	if !p.started {
		p.MoveTo(b.X, b.Y)
	} else if b != p.current {
		p.LineTo(b.X, b.Y)
	}
	p.segs = append(p.segs, Segment{Kind: ArcTo, Arc: a})
	p.current = a.End()
}

func (p *Path) Close() {
	if !p.started {
		return
	}
	p.segs = append(p.segs, Segment{Kind: Close})
}

// Current returns the pen position.
func (p *Path) Current() Point {
	return p.current
}

// Segments returns the recorded segments.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether nothing has been added to the path.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Clone returns a copy that does not share segment storage.
func (p *Path) Clone() *Path {
	c := *p
	c.segs = append([]Segment(nil), p.segs...)
	return &c
}
