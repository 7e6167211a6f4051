package stream

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameBinary(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{R: 200, G: 10, B: 30, A: 255})

	in := Frame{Slide: 2, Index: 41, Progress: 0.375, Image: img}
	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if string(data[headerSize+1:headerSize+4]) != "PNG" {
		t.Fatalf("payload is not a PNG: % x", data[headerSize:headerSize+8])
	}

	var out Frame
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if out.Slide != 2 || out.Index != 41 || out.Progress != 0.375 {
		t.Errorf("header = %d %d %v", out.Slide, out.Index, out.Progress)
	}
	if got := out.Image.Bounds(); got != img.Bounds() {
		t.Fatalf("bounds = %v", got)
	}
	r, g, b, a := out.Image.At(1, 2).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("pixel = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFrameBinaryErrors(t *testing.T) {
	if _, err := (&Frame{}).MarshalBinary(); err == nil {
		t.Error("frame without an image marshalled")
	}
	var f Frame
	if err := f.UnmarshalBinary([]byte{1, 2, 3}); err == nil {
		t.Error("short frame unmarshalled")
	}
	if err := f.UnmarshalBinary(make([]byte, headerSize+8)); err == nil {
		t.Error("frame without a PNG unmarshalled")
	}
}
