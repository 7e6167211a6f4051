package stream

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/easing"
	"github.com/matt-g-everett/chartanim/surface"
)

var sample = chart.Dataset{{Label: "A", Value: 30}, {Label: "B", Value: 50}, {Label: "C", Value: 20}}

func TestExportProgress(t *testing.T) {
	tests := []struct {
		name          string
		fps, duration float64
		want          []float64
	}{
		{"quarters", 4, 1, []float64{0, 0.25, 0.5, 0.75, 1, 1}},
		{"rounded", 2, 1.2, []float64{0, 0.5, 1, 1}},
		{"no frames", 0, 3, []float64{1, 1}},
		{"negative", -5, 3, []float64{1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExportProgress(tc.fps, tc.duration)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("progress mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if n := len(ExportProgress(30, 3)); n != 92 {
		t.Errorf("30fps for 3s gave %d frames, want 92", n)
	}
}

func TestExport(t *testing.T) {
	r, err := surface.NewRaster(64, 36)
	if err != nil {
		t.Fatal(err)
	}
	session := chart.NewSession()
	session.Setup(sample, chart.Config{Duration: 1, Easing: easing.Linear}, r)

	var frames []Frame
	err = Export(context.Background(), session, 10, func(f Frame) error {
		if f.Image == nil {
			t.Fatalf("frame %d has no image", f.Index)
		}
		frames = append(frames, f)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 12 {
		t.Fatalf("exported %d frames, want 12", len(frames))
	}
	if frames[0].Progress != 0 || frames[11].Progress != 1 || frames[11].Index != 11 {
		t.Errorf("first %+v last %+v", frames[0].Progress, frames[11])
	}
}

func TestExportSlidesSequential(t *testing.T) {
	slides := []Slide{
		{Animation: chart.Config{Duration: 1, Chart: chart.Bar}, Data: sample},
		{Animation: chart.Config{Duration: 0.5, Chart: chart.Pie}, Data: sample},
	}
	rec := surface.NewRecorder(1280, 720)

	type mark struct {
		Slide, Index int
	}
	var got []mark
	var pieOps int
	err := ExportSlides(context.Background(), slides, rec, 4, 0.5, func(f Frame) error {
		got = append(got, mark{f.Slide, f.Index})
		if f.Slide == 1 && f.Progress == 1 {
			pieOps = len(rec.Filter(surface.OpFillPath))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	var want []mark
	// 4 frames a second plus the final frame and two held frames.
	for i := 0; i < 4+1+1+2; i++ {
		want = append(want, mark{0, i})
	}
	for i := 0; i < 2+1+1+2; i++ {
		want = append(want, mark{1, i})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
	if pieOps != 3 {
		t.Errorf("final pie frame filled %d slices, want 3", pieOps)
	}
}

func TestExportStops(t *testing.T) {
	session := chart.NewSession()
	session.Setup(sample, chart.Config{}, surface.NewRecorder(100, 100))

	boom := errors.New("boom")
	calls := 0
	err := Export(context.Background(), session, 30, func(Frame) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) || calls != 3 {
		t.Errorf("err = %v after %d calls", err, calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Export(ctx, session, 30, func(Frame) error {
		t.Fatal("emitted after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
