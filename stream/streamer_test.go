package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/surface"
)

type token struct {
	err error
}

func (t *token) Wait() bool                     { return true }
func (t *token) WaitTimeout(time.Duration) bool { return true }
func (t *token) Done() <-chan struct{}          { c := make(chan struct{}); close(c); return c }
func (t *token) Error() error                   { return t.err }

type published struct {
	topic string
	qos   byte
	frame Frame
}

// fakeClient records publishes. Any other client call panics.
type fakeClient struct {
	mqtt.Client
	mu   sync.Mutex
	sent []published
	err  error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	var f Frame
	if err := f.UnmarshalBinary(payload.([]byte)); err != nil {
		return &token{err: err}
	}
	c.sent = append(c.sent, published{topic, qos, f})
	return &token{err: c.err}
}

func TestStreamerPublishesFrames(t *testing.T) {
	c := playerConfig(false, 0, 0.05)
	c.Playback.FPS = 100
	c.Mqtt.Topics.Stream = "home/wall/stream"

	r, err := surface.NewRaster(64, 36)
	if err != nil {
		t.Fatal(err)
	}
	client := new(fakeClient)
	s := NewStreamer(c, client, NewPlayer(c, chart.NewSession(), r))
	if err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(client.sent) < 2 {
		t.Fatalf("published %d frames", len(client.sent))
	}
	for i, p := range client.sent {
		if p.topic != "home/wall/stream" || p.qos != streamQos {
			t.Errorf("frame %d published to %q qos %d", i, p.topic, p.qos)
		}
		if p.frame.Index != i {
			t.Errorf("frame %d has index %d", i, p.frame.Index)
		}
		if b := p.frame.Image.Bounds(); b.Dx() != 64 || b.Dy() != 36 {
			t.Errorf("frame %d is %v", i, b)
		}
	}
	if last := client.sent[len(client.sent)-1].frame; last.Progress != 1 {
		t.Errorf("last frame progress = %v", last.Progress)
	}
}

func TestStreamerPublishError(t *testing.T) {
	c := playerConfig(false, 0, 1)
	r, err := surface.NewRaster(16, 9)
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("broker gone")
	client := &fakeClient{err: boom}
	s := NewStreamer(c, client, NewPlayer(c, chart.NewSession(), r))
	if err := s.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestStreamerNeedsPixels(t *testing.T) {
	c := playerConfig(false, 0, 1)
	s := NewStreamer(c, new(fakeClient), NewPlayer(c, chart.NewSession(), surface.NewRecorder(16, 9)))
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("streamed frames without pixels")
	}
}
