package easing

import (
	"math"
	"testing"
)

var allKinds = []Kind{Linear, EaseInOut, Elastic, Bounce}

func TestEndpointsAreExact(t *testing.T) {
	for _, k := range allKinds {
		if got := Ease(k, 0); got != 0 {
			t.Errorf("Ease(%s, 0) = %v, want 0", k, got)
		}
		if got := Ease(k, 1); got != 1 {
			t.Errorf("Ease(%s, 1) = %v, want 1", k, got)
		}
	}
}

func TestProgressIsClamped(t *testing.T) {
	for _, k := range allKinds {
		if got, want := Ease(k, -3), Ease(k, 0); got != want {
			t.Errorf("Ease(%s, -3) = %v, want %v", k, got, want)
		}
		if got, want := Ease(k, 7), Ease(k, 1); got != want {
			t.Errorf("Ease(%s, 7) = %v, want %v", k, got, want)
		}
	}
	if got := Ease(Linear, math.NaN()); got != 0 {
		t.Errorf("Ease(linear, NaN) = %v, want 0", got)
	}
}

func TestMonotonic(t *testing.T) {
	for _, k := range []Kind{Linear, EaseInOut} {
		prev := Ease(k, 0)
		for i := 1; i <= 1000; i++ {
			cur := Ease(k, float64(i)/1000)
			if cur < prev {
				t.Fatalf("%s decreases at p=%v: %v < %v", k, float64(i)/1000, cur, prev)
			}
			prev = cur
		}
	}
}

func TestBounceStaysInRange(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		if v := Ease(Bounce, p); v < 0 || v > 1 {
			t.Fatalf("Ease(bounce, %v) = %v, outside [0, 1]", p, v)
		}
	}
	// Segment joins are continuous.
	for _, b := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
		lo, hi := Ease(Bounce, b-1e-9), Ease(Bounce, b)
		if math.Abs(hi-lo) > 1e-6 {
			t.Errorf("bounce jumps at %v: %v -> %v", b, lo, hi)
		}
	}
}

func TestElasticOvershoots(t *testing.T) {
	over := false
	for i := 1; i < 1000; i++ {
		if Ease(Elastic, float64(i)/1000) > 1 {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("elastic never exceeded 1")
	}
}

func TestEaseInOutMidpoint(t *testing.T) {
	if got := Ease(EaseInOut, 0.5); got != 0.5 {
		t.Fatalf("Ease(easeInOut, 0.5) = %v, want 0.5", got)
	}
	if got := Ease(EaseInOut, 0.25); math.Abs(got-0.125) > 1e-12 {
		t.Fatalf("Ease(easeInOut, 0.25) = %v, want 0.125", got)
	}
	if got := Ease(EaseInOut, 0.75); math.Abs(got-0.875) > 1e-12 {
		t.Fatalf("Ease(easeInOut, 0.75) = %v, want 0.875", got)
	}
}

func TestUnknownKindIsLinear(t *testing.T) {
	for _, p := range []float64{0, 0.2, 0.5, 0.9, 1} {
		if got := Ease("wobble", p); got != p {
			t.Errorf("Ease(wobble, %v) = %v", p, got)
		}
	}
	if Valid("wobble") {
		t.Error("Valid(wobble) = true")
	}
}

func TestKeyframes(t *testing.T) {
	for _, k := range allKinds {
		for _, n := range []int{2, 3, 30, 91} {
			frames := Keyframes(k, n)
			if len(frames) != n {
				t.Fatalf("Keyframes(%s, %d) has %d values", k, n, len(frames))
			}
			if frames[0] != Ease(k, 0) {
				t.Errorf("Keyframes(%s, %d)[0] = %v", k, n, frames[0])
			}
			if frames[n-1] != Ease(k, 1) {
				t.Errorf("Keyframes(%s, %d)[last] = %v", k, n, frames[n-1])
			}
		}
	}
	if frames := Keyframes(EaseInOut, 5); frames[2] != 0.5 {
		t.Errorf("middle keyframe = %v, want 0.5", frames[2])
	}
}

func TestSingleKeyframe(t *testing.T) {
	frames := Keyframes(Bounce, 1)
	if len(frames) != 1 || frames[0] != 0 {
		t.Fatalf("Keyframes(bounce, 1) = %v, want [0]", frames)
	}
	if frames := Keyframes(Linear, 0); frames != nil {
		t.Fatalf("Keyframes(linear, 0) = %v, want nil", frames)
	}
}
