package easing

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/fogleman/ease"
)

// Kind names an easing curve.
type Kind string

const (
	Linear    Kind = "linear"
	EaseInOut Kind = "easeInOut"
	Elastic   Kind = "elastic"
	Bounce    Kind = "bounce"
)

// Func returns the curve for a kind. Unknown kinds are linear.
func Func(k Kind) func(float64) float64 {
	switch k {
	case EaseInOut:
		return ease.InOutQuad
	case Elastic:
		return elastic
	case Bounce:
		return bounce
	default:
		return ease.Linear
	}
}

// Valid reports whether k names a known curve.
func Valid(k Kind) bool {
	switch k {
	case Linear, EaseInOut, Elastic, Bounce:
		return true
	}
	return false
}

// Clamp limits raw progress to [0, 1]. NaN becomes 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Ease clamps p and evaluates the curve for k.
func Ease(k Kind, p float64) float64 {
	return Func(k)(Clamp(p))
}

// Keyframes samples the curve at n evenly spaced points i/(n-1). A single
// keyframe is the sample at progress 0.
func Keyframes(k Kind, n int) []float64 {
	if n < 1 {
		return nil
	}
	f := Func(k)
	frames := vec.Linspace(0, 1, n)
	if n > 1 {
		// Pin the end so the last sample hits the exact curve endpoint.
		frames[n-1] = 1
	}
	for i, p := range frames {
		frames[i] = f(Clamp(p))
	}
	return frames
}

// elastic overshoots past 1 before settling.
func elastic(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	const c4 = (2 * math.Pi) / 3
	return math.Pow(2, -10*p)*math.Sin((p*10-0.75)*c4) + 1
}

func bounce(p float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case p >= 1:
		return 1
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}
