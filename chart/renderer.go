package chart

import (
	"math"
	"strconv"

	"github.com/matt-g-everett/chartanim/surface"
)

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Data     Dataset
	Progress float64 // eased
	Extents  Extents
	Theme    Theme
}

// A Renderer paints the partial geometry of one chart variant. Rendering the
// same scene twice paints the same pixels.
type Renderer interface {
	Render(s surface.Surface, sc Scene)
}

// A Labeller paints the label overlay that goes on top of every other layer.
type Labeller interface {
	Labels(s surface.Surface, sc Scene)
}

// RendererFor returns the renderer for a variant. Unknown variants are drawn
// as bars.
func RendererFor(k Kind) Renderer {
	switch k {
	case Line:
		return lineRenderer{}
	case Area:
		return lineRenderer{area: true}
	case Pie:
		return pieRenderer{}
	case Donut:
		return pieRenderer{donut: true}
	case StatBar:
		return statBarRenderer{}
	default:
		return barRenderer{}
	}
}

var (
	labelFont = surface.Font{Size: 12}
	valueFont = surface.Font{Size: 12, Bold: true}
)

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// formatNumber prints the shortest decimal form of v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// categoryLabels fades in the label under each category as the reveal
// passes it.
func categoryLabels(s surface.Surface, sc Scene, xs []float64) {
	n := len(sc.Data)
	visible := int(math.Min(float64(n), math.Ceil(float64(n)*sc.Progress)))
	y := sc.Extents.Height - sc.Extents.Margin.Bottom + 20
	for i := 0; i < visible; i++ {
		alpha := clamp(sc.Progress*float64(n)-float64(i), 0, 1)
		if alpha <= 0 {
			continue
		}
		s.FillText(sc.Data[i].Label, xs[i], y, surface.TextStyle{
			Font:   labelFont,
			Align:  surface.AlignCenter,
			Colour: rgba(sc.Theme.Text, alpha),
		})
	}
}
