package chart

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/matt-g-everett/chartanim/surface"
)

// headroom scales the tallest value so it stops short of the plot top.
const headroom = 1.1

// Value labels are only shown on bars past these thresholds.
const (
	barLabelMinHeight   = 20.0
	barLabelMinProgress = 0.5
)

type barRenderer struct{}

type barGeometry struct {
	X, Y, W, H float64
	FullHeight float64
	Progress   float64
}

// scaleMax is the value mapped to the top of the plot area, or 0 when
// nothing is positive.
func scaleMax(d Dataset) float64 {
	if len(d) == 0 {
		return 0
	}
	_, hi := stats.Bounds(d.Values())
	if !(hi > 0) {
		return 0
	}
	return hi * headroom
}

// barLayout staggers growth so bar i starts once bar i-1 is complete.
func barLayout(sc Scene) []barGeometry {
	n := len(sc.Data)
	if n == 0 {
		return nil
	}
	ext := sc.Extents
	chartHeight := ext.ChartHeight()
	top := scaleMax(sc.Data)
	slot := ext.ChartWidth() / float64(n)
	pad := slot * 0.2

	bars := make([]barGeometry, n)
	for i, p := range sc.Data {
		full := 0.0
		if top > 0 {
			full = p.Value / top * chartHeight
		}
		progress := clamp(sc.Progress*float64(n)-float64(i), 0, 1)
		h := full * progress
		bars[i] = barGeometry{
			X:          ext.Margin.Left + float64(i)*slot + pad/2,
			Y:          ext.Margin.Top + chartHeight - h,
			W:          slot - pad,
			H:          h,
			FullHeight: full,
			Progress:   progress,
		}
	}
	return bars
}

func (barRenderer) Render(s surface.Surface, sc Scene) {
	for i, b := range barLayout(sc) {
		if b.H <= 0 {
			continue
		}
		s.FillRect(b.X, b.Y, b.W, b.H, rgba(sc.Data[i].colour(i), 1))

		if b.H > barLabelMinHeight && b.Progress > barLabelMinProgress {
			s.FillText(formatNumber(sc.Data[i].Value), b.X+b.W/2, b.Y-5, surface.TextStyle{
				Font:   valueFont,
				Align:  surface.AlignCenter,
				Colour: rgba(sc.Theme.Text, 1),
			})
		}
	}
}

func (barRenderer) Labels(s surface.Surface, sc Scene) {
	n := len(sc.Data)
	slot := sc.Extents.ChartWidth() / float64(n)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = sc.Extents.Margin.Left + (float64(i)+0.5)*slot
	}
	categoryLabels(s, sc, xs)
}
