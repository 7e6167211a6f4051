package surface

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", fontsErr)
			return
		}
		bold, fontsErr = truetype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", fontsErr)
		}
	})
	return fontsErr
}

// Raster is a Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA
	gc  *drawing.RasterGraphicContext
}

// NewRaster creates a Raster of the given size.
func NewRaster(width, height int) (*Raster, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	r := new(Raster)
	if err := r.alloc(width, height); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Raster) alloc(width, height int) error {
	width, height = clampSize(width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return fmt.Errorf("raster context: %w", err)
	}
	// Font sizes are given in pixels.
	gc.SetDPI(72)
	r.img = img
	r.gc = gc
	return nil
}

// Image returns the backing image. It is overwritten by later paint calls.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Resize(width, height int) {
	if w, h := r.Size(); w == width && h == height {
		return
	}
	// An *image.RGBA is always accepted by the raster context.
	_ = r.alloc(width, height)
}

func (r *Raster) Clear() {
	for i := range r.img.Pix {
		r.img.Pix[i] = 0
	}
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	r.FillPath(p, c)
}

func (r *Raster) FillGradient(x0, y0, x1, y1 float64, stops []GradientStop) {
	if len(stops) == 0 {
		return
	}
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cols[i], _ = colorful.MakeColor(s.Colour)
	}
	dx, dy := x1-x0, y1-y0
	den := dx*dx + dy*dy
	b := r.img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			t := 0.0
			if den > 0 {
				t = ((float64(px)+0.5-x0)*dx + (float64(py)+0.5-y0)*dy) / den
			}
			cr, cg, cb := gradientAt(stops, cols, t).Clamped().RGB255()
			r.img.SetRGBA(px, py, color.RGBA{cr, cg, cb, 0xff})
		}
	}
}

// gradientAt blends between the two stops that straddle t.
func gradientAt(stops []GradientStop, cols []colorful.Color, t float64) colorful.Color {
	if t <= stops[0].Offset {
		return cols[0]
	}
	for i := 0; i < len(stops)-1; i++ {
		s1, s2 := stops[i], stops[i+1]
		if s1.Offset <= t && t <= s2.Offset {
			if s2.Offset == s1.Offset {
				return cols[i+1]
			}
			return cols[i].BlendRgb(cols[i+1], (t-s1.Offset)/(s2.Offset-s1.Offset))
		}
	}
	return cols[len(cols)-1]
}

func (r *Raster) trace(p *Path) {
	r.gc.BeginPath()
	for _, s := range p.Segments() {
		switch s.Kind {
		case MoveTo:
			r.gc.MoveTo(s.Points[0].X, s.Points[0].Y)
		case LineTo:
			r.gc.LineTo(s.Points[0].X, s.Points[0].Y)
		case CubicTo:
			r.gc.CubicCurveTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y, s.Points[2].X, s.Points[2].Y)
		case ArcTo:
			a := s.Arc
			r.gc.ArcTo(a.Center.X, a.Center.Y, a.Radius, a.Radius, a.Start, a.Sweep)
		case Close:
			r.gc.Close()
		}
	}
}

func (r *Raster) FillPath(p *Path, c color.Color) {
	if p == nil || p.Empty() {
		return
	}
	r.trace(p)
	r.gc.SetFillColor(c)
	r.gc.Fill()
}

func (r *Raster) StrokePath(p *Path, s Stroke) {
	if p == nil || p.Empty() || s.Width <= 0 {
		return
	}
	r.gc.Save()
	defer r.gc.Restore()
	r.trace(p)
	r.gc.SetStrokeColor(s.Colour)
	r.gc.SetLineWidth(s.Width)
	if s.Round {
		r.gc.SetLineCap(drawing.RoundCap)
		r.gc.SetLineJoin(drawing.RoundJoin)
	} else {
		r.gc.SetLineCap(drawing.ButtCap)
		r.gc.SetLineJoin(drawing.MiterJoin)
	}
	r.gc.Stroke()
}

func (r *Raster) useFont(f Font) {
	if f.Bold {
		r.gc.SetFont(bold)
	} else {
		r.gc.SetFont(regular)
	}
	r.gc.SetFontSize(f.Size)
}

func (r *Raster) MeasureText(s string, f Font) float64 {
	if s == "" {
		return 0
	}
	r.useFont(f)
	left, _, right, _, err := r.gc.GetStringBounds(s)
	if err != nil {
		return 0
	}
	return right - left
}

func (r *Raster) FillText(s string, x, y float64, style TextStyle) {
	if s == "" {
		return
	}
	r.useFont(style.Font)
	left, top, right, bottom, err := r.gc.GetStringBounds(s)
	if err != nil {
		return
	}
	switch style.Align {
	case AlignCenter:
		x -= (right - left) / 2
	case AlignRight:
		x -= right - left
	}
	if style.Baseline == BaselineMiddle {
		y -= (top + bottom) / 2
	}
	r.gc.SetFillColor(style.Colour)
	if _, err := r.gc.FillStringAt(s, x-left, y); err != nil {
		return
	}
}
