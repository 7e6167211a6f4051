package chart

import "github.com/matt-g-everett/chartanim/surface"

// gridDivisions is the number of bands between horizontal grid lines.
const gridDivisions = 5

// Compositor paints complete frames onto a surface it owns.
type Compositor struct {
	surface surface.Surface
	extents Extents
}

// NewCompositor creates a Compositor whose extents match the surface.
func NewCompositor(s surface.Surface) *Compositor {
	w, h := s.Size()
	return &Compositor{surface: s, extents: NewExtents(float64(w), float64(h))}
}

// Surface returns the surface frames are painted on.
func (c *Compositor) Surface() surface.Surface {
	return c.surface
}

// Extents returns the current drawable geometry.
func (c *Compositor) Extents() Extents {
	return c.extents
}

// Resize adopts new extents, rounded to whole pixels so the geometry matches
// the surface. The next Render uses them.
func (c *Compositor) Resize(e Extents) {
	w, h := e.Pixels()
	c.surface.Resize(w, h)
	w, h = c.surface.Size()
	c.extents = NewExtents(float64(w), float64(h))
}

// Render paints one frame: background, grid, geometry and labels. An empty
// dataset paints the background only.
func (c *Compositor) Render(data Dataset, cfg Config, eased float64) {
	cfg = cfg.Normalize()
	theme := ThemeFor(cfg.Theme)
	s := c.surface

	s.Clear()
	c.paintBackground(theme)
	if len(data) == 0 {
		return
	}

	sc := Scene{Data: data, Progress: eased, Extents: c.extents, Theme: theme}
	if cfg.Chart.Axis() {
		c.paintGrid(theme)
	}
	r := RendererFor(cfg.Chart)
	r.Render(s, sc)
	if l, ok := r.(Labeller); ok {
		l.Labels(s, sc)
	}
}

func (c *Compositor) paintBackground(t Theme) {
	e := c.extents
	if t.Background.Solid() {
		c.surface.FillRect(0, 0, e.Width, e.Height, rgba(t.Background.GetColor(0), 1))
		return
	}
	c.surface.FillGradient(0, 0, e.Width, e.Height, t.Background.Stops())
}

func (c *Compositor) paintGrid(t Theme) {
	e := c.extents
	stroke := surface.Stroke{Colour: rgba(t.Grid, t.GridOpacity), Width: 1}
	for i := 0; i <= gridDivisions; i++ {
		y := e.Margin.Top + float64(i)/gridDivisions*e.ChartHeight()
		p := surface.NewPath()
		p.MoveTo(e.Margin.Left, y)
		p.LineTo(e.Width-e.Margin.Right, y)
		c.surface.StrokePath(p, stroke)
	}
}
