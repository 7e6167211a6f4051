package surface

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the frame held by rec as an SVG document.
func WriteSVG(w io.Writer, rec *Recorder) {
	width, height := rec.Size()
	canvas := svg.New(w)
	canvas.Start(width, height)
	gradients := 0
	for _, op := range rec.Ops {
		switch op.Kind {
		case OpFillRect:
			canvas.Path(rectData(op.Rect), fillStyle(op.Colour))
		case OpFillGradient:
			id := fmt.Sprintf("g%d", gradients)
			gradients++
			canvas.Def()
			canvas.LinearGradient(id,
				percent(op.Line[0].X, width), percent(op.Line[0].Y, height),
				percent(op.Line[1].X, width), percent(op.Line[1].Y, height),
				offcolors(op.Stops))
			canvas.DefEnd()
			canvas.Rect(0, 0, width, height, "fill:url(#"+id+")")
		case OpFillPath:
			canvas.Path(pathData(op.Path), fillStyle(op.Colour))
		case OpStrokePath:
			canvas.Path(pathData(op.Path), strokeStyle(op.Colour, op.Stroke))
		case OpFillText:
			canvas.Text(int(math.Round(op.At.X)), int(math.Round(op.At.Y)), op.Text, textStyle(op.Colour, op.Style))
		}
	}
	canvas.End()
}

func percent(v float64, extent int) uint8 {
	p := math.Round(v / float64(extent) * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return uint8(p)
}

func offcolors(stops []GradientStop) []svg.Offcolor {
	oc := make([]svg.Offcolor, len(stops))
	for i, s := range stops {
		c := nrgba(s.Colour)
		oc[i] = svg.Offcolor{
			Offset:  percent(s.Offset, 1),
			Color:   hex(c),
			Opacity: float64(c.A) / 255,
		}
	}
	return oc
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", hex(c), num(float64(c.A)/255))
}

func strokeStyle(c color.NRGBA, s Stroke) string {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s", hex(c), num(float64(c.A)/255), num(s.Width))
	if s.Round {
		style += ";stroke-linecap:round;stroke-linejoin:round"
	}
	return style
}

func textStyle(c color.NRGBA, ts TextStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "font-family:Go,sans-serif;font-size:%spx;%s", num(ts.Font.Size), fillStyle(c))
	if ts.Font.Bold {
		b.WriteString(";font-weight:bold")
	}
	switch ts.Align {
	case AlignCenter:
		b.WriteString(";text-anchor:middle")
	case AlignRight:
		b.WriteString(";text-anchor:end")
	}
	if ts.Baseline == BaselineMiddle {
		b.WriteString(";dominant-baseline:middle")
	}
	return b.String()
}

func rectData(r Rect) string {
	return fmt.Sprintf("M%s %sh%sv%sh%sZ", num(r.X), num(r.Y), num(r.W), num(r.H), num(-r.W))
}

func pathData(p *Path) string {
	var b strings.Builder
	for _, s := range p.Segments() {
		switch s.Kind {
		case MoveTo:
			fmt.Fprintf(&b, "M%s %s", num(s.Points[0].X), num(s.Points[0].Y))
		case LineTo:
			fmt.Fprintf(&b, "L%s %s", num(s.Points[0].X), num(s.Points[0].Y))
		case CubicTo:
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				num(s.Points[0].X), num(s.Points[0].Y),
				num(s.Points[1].X), num(s.Points[1].Y),
				num(s.Points[2].X), num(s.Points[2].Y))
		case ArcTo:
			writeArc(&b, s.Arc)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// writeArc emits SVG arc commands. A sweep of a full turn or more cannot be
// expressed as one arc, so it is split in halves.
func writeArc(b *strings.Builder, a Arc) {
	if a.Sweep == 0 || a.Radius <= 0 {
		return
	}
	if math.Abs(a.Sweep) >= 2*math.Pi-1e-9 {
		half := a
		half.Sweep = a.Sweep / 2
		writeArc(b, half)
		half.Start += half.Sweep
		writeArc(b, half)
		return
	}
	large, sweep := 0, 0
	if math.Abs(a.Sweep) > math.Pi {
		large = 1
	}
	if a.Sweep > 0 {
		sweep = 1
	}
	end := a.End()
	fmt.Fprintf(b, "A%s %s 0 %d %d %s %s", num(a.Radius), num(a.Radius), large, sweep, num(end.X), num(end.Y))
}
