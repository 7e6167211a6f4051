package stream

import (
	"context"
	"math"

	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/surface"
)

// ExportProgress returns the raw progress of every exported frame:
// i/total for i = 0..total where total = round(fps*duration), followed by
// one more frame at 1 so the final state is always captured.
func ExportProgress(fps, duration float64) []float64 {
	total := int(math.Round(fps * duration))
	if total < 0 {
		total = 0
	}
	out := make([]float64, 0, total+2)
	for i := 0; i <= total; i++ {
		if total == 0 {
			out = append(out, 1)
			continue
		}
		out = append(out, float64(i)/float64(total))
	}
	return append(out, 1)
}

// Export renders the bound animation frame by frame and hands each one to
// emit before the next is painted.
func Export(ctx context.Context, session *chart.Session, fps float64, emit func(Frame) error) error {
	return exportSlide(ctx, session, 0, fps, 0, emit)
}

// ExportSlides exports every slide in order on one surface. After each
// slide the final frame is repeated for hold seconds.
func ExportSlides(ctx context.Context, slides []Slide, surf surface.Surface, fps, hold float64, emit func(Frame) error) error {
	session := chart.NewSession()
	for i, sl := range slides {
		session.Setup(sl.Data, sl.Animation, surf)
		if err := exportSlide(ctx, session, i, fps, hold, emit); err != nil {
			return err
		}
	}
	return nil
}

func exportSlide(ctx context.Context, session *chart.Session, slide int, fps, hold float64, emit func(Frame) error) error {
	progress := ExportProgress(fps, session.Config().Duration)
	for i := 0; i < int(math.Round(fps*hold)); i++ {
		progress = append(progress, 1)
	}

	for i, p := range progress {
		if err := ctx.Err(); err != nil {
			return err
		}
		session.RenderFrame(p)
		f := Frame{Slide: slide, Index: i, Progress: p, Image: capture(session.Surface())}
		if err := emit(f); err != nil {
			return err
		}
	}
	return nil
}
