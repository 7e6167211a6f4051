package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matt-g-everett/chartanim/surface"
)

func TestPieSweepsAddUp(t *testing.T) {
	for _, p := range []float64{0, 0.1, 0.5, 0.99, 1} {
		g := pieLayout(scene(abc, p))
		sum := 0.0
		for _, sl := range g.Slices {
			sum += sl.Sweep
		}
		if want := 2 * math.Pi * p; math.Abs(sum-want) > 1e-6 {
			t.Errorf("progress %v: sweeps sum to %v, want %v", p, sum, want)
		}
		if len(g.Slices) > 0 && g.Slices[0].Start != -math.Pi/2 {
			t.Errorf("progress %v: first slice starts at %v", p, g.Slices[0].Start)
		}
	}
}

func TestPieSlicesAreContiguous(t *testing.T) {
	g := pieLayout(scene(abc, 0.7))
	for i := 1; i < len(g.Slices); i++ {
		prev := g.Slices[i-1]
		if math.Abs(prev.Start+prev.Sweep-g.Slices[i].Start) > 1e-12 {
			t.Errorf("gap before slice %d", i)
		}
	}
}

func TestPieZeroTotal(t *testing.T) {
	zero := Dataset{{Label: "A", Value: 0}, {Label: "B", Value: 0}}
	for _, donut := range []bool{false, true} {
		rec := surface.NewRecorder(1280, 720)
		r := pieRenderer{donut: donut}
		r.Render(rec, scene(zero, 1))
		r.Labels(rec, scene(zero, 1))
		if len(rec.Ops) != 0 {
			t.Errorf("donut=%v: painted %d ops for a zero total", donut, len(rec.Ops))
		}
	}
}

func TestPieNegativeValuesIgnored(t *testing.T) {
	g := pieLayout(scene(Dataset{{Value: -10}, {Value: 10}}, 1))
	if g.Slices[0].Sweep != 0 || math.Abs(g.Slices[1].Sweep-2*math.Pi) > 1e-12 {
		t.Fatalf("slices = %+v", g.Slices)
	}
}

func TestPieLabels(t *testing.T) {
	rec := surface.NewRecorder(1280, 720)
	pieRenderer{}.Labels(rec, scene(abc, 1))
	ops := rec.Filter(surface.OpFillText)

	got := rec.Texts()
	if diff := cmp.Diff([]string{"A (30%)", "B (50%)", "C (20%)"}, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	aligns := []surface.Align{ops[0].Style.Align, ops[1].Style.Align, ops[2].Style.Align}
	if diff := cmp.Diff([]surface.Align{surface.AlignLeft, surface.AlignRight, surface.AlignRight}, aligns); diff != "" {
		t.Errorf("alignment mismatch (-want +got):\n%s", diff)
	}
	if n := len(rec.Filter(surface.OpStrokePath)); n != 3 {
		t.Errorf("drew %d leader lines, want 3", n)
	}
}

func TestPieNarrowSlicesUnlabelled(t *testing.T) {
	rec := surface.NewRecorder(1280, 720)
	pieRenderer{}.Labels(rec, scene(abc, 0.05))
	if diff := cmp.Diff([]string{"B (50%)"}, rec.Texts()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestDonutTotal(t *testing.T) {
	rec := surface.NewRecorder(1280, 720)
	pieRenderer{donut: true}.Render(rec, scene(abc, 0.3))
	if diff := cmp.Diff([]string{"100"}, rec.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	fills := rec.Filter(surface.OpFillPath)
	hole := fills[len(fills)-1]
	if diff := cmp.Diff(rgba(ThemeFor(Dark).Base(), 1), hole.Colour); diff != "" {
		t.Errorf("hole colour mismatch (-want +got):\n%s", diff)
	}
}

func TestDonutTotalIsRawSum(t *testing.T) {
	rec := surface.NewRecorder(1280, 720)
	d := Dataset{{Label: "loss", Value: -10}, {Label: "gain", Value: 30}}
	pieRenderer{donut: true}.Render(rec, scene(d, 1))
	if diff := cmp.Diff([]string{"20"}, rec.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}
