package chart

import (
	"github.com/matt-g-everett/chartanim/easing"
	"github.com/matt-g-everett/chartanim/surface"
)

// Session binds a dataset and configuration to a surface. Each frame depends
// only on the bound snapshot, the extents and the progress passed in.
//
// A Session is not safe for concurrent use; only one frame may be painted
// on its surface at a time.
type Session struct {
	data       Dataset
	config     Config
	compositor *Compositor
}

// NewSession creates an unbound Session.
func NewSession() *Session {
	return new(Session)
}

// Setup replaces the bound snapshot. The dataset is copied so later changes
// by the caller do not leak into frames. A nil surface keeps the current one.
func (s *Session) Setup(data Dataset, cfg Config, surf surface.Surface) {
	s.data = data.Clone()
	s.config = cfg.Normalize()
	if surf != nil && (s.compositor == nil || s.compositor.Surface() != surf) {
		s.compositor = NewCompositor(surf)
	}
}

// RenderFrame paints the frame at raw progress p, clamped to [0, 1].
func (s *Session) RenderFrame(p float64) {
	if s.compositor == nil {
		return
	}
	s.compositor.Render(s.data, s.config, easing.Ease(s.config.Easing, p))
}

// GenerateKeyframes returns n eased progress values evenly spaced in time.
func (s *Session) GenerateKeyframes(n int) []float64 {
	return easing.Keyframes(s.config.Normalize().Easing, n)
}

// Resize fits a 16:9 frame inside a container of the given size and adopts
// it. The snapshot is left alone.
func (s *Session) Resize(containerWidth, containerHeight float64) {
	if s.compositor == nil {
		return
	}
	s.compositor.Resize(FitExtents(containerWidth, containerHeight))
}

// Surface returns the bound surface for capture, or nil before Setup.
func (s *Session) Surface() surface.Surface {
	if s.compositor == nil {
		return nil
	}
	return s.compositor.Surface()
}

// Extents returns the current geometry.
func (s *Session) Extents() Extents {
	if s.compositor == nil {
		return Extents{}
	}
	return s.compositor.Extents()
}

// Config returns the bound configuration with defaults applied.
func (s *Session) Config() Config {
	return s.config.Normalize()
}

// Data returns a copy of the bound dataset.
func (s *Session) Data() Dataset {
	return s.data.Clone()
}
