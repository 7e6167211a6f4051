package stream

import (
	"context"
	"log"
	"time"

	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/surface"
)

// Player drives a Session from the wall clock, walking through slides in
// order. Each tick advances currentTime by the real time elapsed since the
// previous tick and renders progress = currentTime/duration.
type Player struct {
	session *chart.Session
	surface surface.Surface
	slides  []Slide
	fps     float64
	loop    bool
	hold    float64

	slide       int
	index       int
	currentTime float64
	holding     float64
	lastTick    time.Time
	playing     bool
}

// NewPlayer creates an instance of a Player bound to the first slide.
func NewPlayer(config Config, session *chart.Session, surf surface.Surface) *Player {
	p := new(Player)
	p.session = session
	p.surface = surf
	p.slides = config.Slides
	p.fps = config.Playback.FPS
	p.loop = config.Playback.Loop
	p.hold = config.Playback.Hold
	if p.fps <= 0 {
		p.fps = DefaultFPS
	}
	p.bind(0)
	return p
}

func (p *Player) bind(slide int) {
	p.slide = slide
	p.index = 0
	p.currentTime = 0
	p.holding = 0
	if slide < len(p.slides) {
		p.session.Setup(p.slides[slide].Data, p.slides[slide].Animation, p.surface)
	}
}

func (p *Player) duration() float64 {
	return p.session.Config().Duration
}

// Start begins playback at now. A finished slide restarts from the
// beginning.
func (p *Player) Start(now time.Time) {
	if p.playing {
		return
	}
	if p.currentTime >= p.duration() && p.holding <= 0 {
		p.currentTime = 0
		p.index = 0
	}
	p.lastTick = now
	p.playing = true
}

// Stop pauses playback; the current position is kept.
func (p *Player) Stop() {
	p.playing = false
}

// Playing reports whether ticks advance the clock.
func (p *Player) Playing() bool {
	return p.playing
}

// Slide returns the index of the bound slide.
func (p *Player) Slide() int {
	return p.slide
}

// CurrentTime returns the playback position within the slide in seconds.
func (p *Player) CurrentTime() float64 {
	return p.currentTime
}

// Seek moves to t seconds into the slide and renders that frame.
func (p *Player) Seek(t float64) Frame {
	p.currentTime = clampTime(t, p.duration())
	p.holding = 0
	return p.render()
}

func clampTime(t, d float64) float64 {
	switch {
	case !(t > 0):
		return 0
	case t > d:
		return d
	}
	return t
}

func (p *Player) render() Frame {
	progress := p.currentTime / p.duration()
	p.session.RenderFrame(progress)
	f := Frame{Slide: p.slide, Index: p.index, Progress: progress, Image: capture(p.session.Surface())}
	p.index++
	return f
}

// Tick advances the clock to now and renders the resulting frame. When a
// slide finishes, the final frame is held and the next slide is bound;
// after the last slide playback stops unless it loops.
func (p *Player) Tick(now time.Time) Frame {
	if !p.playing {
		return p.render()
	}
	elapsed := now.Sub(p.lastTick).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	p.lastTick = now

	if p.holding > 0 {
		p.holding -= elapsed
		f := p.render()
		if p.holding <= 0 {
			p.advance()
		}
		return f
	}

	p.currentTime += elapsed
	finished := p.currentTime >= p.duration()
	if finished {
		p.currentTime = p.duration()
	}
	f := p.render()
	if finished {
		if p.hold > 0 {
			p.holding = p.hold
		} else {
			p.advance()
		}
	}
	return f
}

func (p *Player) advance() {
	p.holding = 0
	switch {
	case p.slide+1 < len(p.slides):
		p.bind(p.slide + 1)
	case p.loop && len(p.slides) > 0:
		p.bind(0)
	default:
		p.playing = false
	}
}

// Run plays from now at the configured frame rate, passing every frame to
// emit. It returns when playback stops, emit fails or ctx is done.
func (p *Player) Run(ctx context.Context, emit func(Frame) error) error {
	interval := time.Duration(float64(time.Second) / p.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Playing %d slides at %.0f fps", len(p.slides), p.fps)
	p.Start(time.Now())
	if err := emit(p.render()); err != nil {
		return err
	}
	for p.playing {
		select {
		case <-ctx.Done():
			p.Stop()
			return ctx.Err()
		case now := <-ticker.C:
			if err := emit(p.Tick(now)); err != nil {
				p.Stop()
				return err
			}
		}
	}
	return nil
}
