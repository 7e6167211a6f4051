package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/matt-g-everett/chartanim/surface"
)

// headerSize is the fixed prefix of a marshalled frame: slide (uint16),
// index (uint32) and progress (float64 bits), all little endian.
const headerSize = 14

// Frame is one rendered animation frame.
type Frame struct {
	Slide    int
	Index    int
	Progress float64
	// Image is the painted surface. It is only valid until the next frame
	// is painted on the same surface.
	Image image.Image
}

// imager is a surface whose pixels can be read back.
type imager interface {
	Image() *image.RGBA
}

// capture returns the pixels of s, or nil for surfaces without any.
func capture(s surface.Surface) image.Image {
	if im, ok := s.(imager); ok {
		return im.Image()
	}
	return nil
}

// MarshalBinary converts a Frame into a header followed by a PNG.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if f.Image == nil {
		return nil, errors.New("frame has no image")
	}
	var buf bytes.Buffer
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(header[0:], uint16(f.Slide))
	binary.LittleEndian.PutUint32(header[2:], uint32(f.Index))
	binary.LittleEndian.PutUint64(header[6:], math.Float64bits(f.Progress))
	buf.Write(header)

	if err := png.Encode(&buf, f.Image); err != nil {
		return nil, fmt.Errorf("encode frame %d: %w", f.Index, err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data written by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("frame too short: %d bytes", len(data))
	}
	img, err := png.Decode(bytes.NewReader(data[headerSize:]))
	if err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}
	f.Slide = int(binary.LittleEndian.Uint16(data[0:]))
	f.Index = int(binary.LittleEndian.Uint32(data[2:]))
	f.Progress = math.Float64frombits(binary.LittleEndian.Uint64(data[6:]))
	f.Image = img
	return nil
}
