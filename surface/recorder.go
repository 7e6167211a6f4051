package surface

import (
	"image/color"
	"unicode/utf8"
)

// OpKind identifies a recorded paint call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillGradient
	OpFillPath
	OpStrokePath
	OpFillText
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fillRect"
	case OpFillGradient:
		return "fillGradient"
	case OpFillPath:
		return "fillPath"
	case OpStrokePath:
		return "strokePath"
	case OpFillText:
		return "fillText"
	}
	return "unknown"
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Op is one recorded paint call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Line   [2]Point
	Stops  []GradientStop
	Path   *Path
	Colour color.NRGBA
	Stroke Stroke
	Text   string
	At     Point
	Style  TextStyle
}

// Recorder is a Surface that keeps a list of the calls made on it. Clear
// discards the list, so after a full frame Ops holds exactly that frame.
type Recorder struct {
	width, height int
	Ops           []Op
}

// NewRecorder creates a Recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	width, height = clampSize(width, height)
	return &Recorder{width: width, height: height}
}

func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = clampSize(width, height)
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: Rect{x, y, w, h}, Colour: nrgba(c)})
}

func (r *Recorder) FillGradient(x0, y0, x1, y1 float64, stops []GradientStop) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpFillGradient,
		Line:  [2]Point{{x0, y0}, {x1, y1}},
		Stops: append([]GradientStop(nil), stops...),
	})
}

func (r *Recorder) FillPath(p *Path, c color.Color) {
	if p == nil || p.Empty() {
		return
	}
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Path: p.Clone(), Colour: nrgba(c)})
}

func (r *Recorder) StrokePath(p *Path, s Stroke) {
	if p == nil || p.Empty() {
		return
	}
	r.Ops = append(r.Ops, Op{Kind: OpStrokePath, Path: p.Clone(), Colour: nrgba(s.Colour), Stroke: s})
}

// MeasureText approximates a proportional face at 0.6em per rune.
func (r *Recorder) MeasureText(s string, f Font) float64 {
	return float64(utf8.RuneCountInString(s)) * f.Size * 0.6
}

func (r *Recorder) FillText(s string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: s, At: Point{x, y}, Style: style, Colour: nrgba(style.Colour)})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns the strings passed to FillText, in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Filter(OpFillText) {
		texts = append(texts, op.Text)
	}
	return texts
}
