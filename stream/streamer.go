package stream

import (
	"context"
	"fmt"

	"github.com/eclipse/paho.mqtt.golang"
)

// streamQos is the MQTT quality of service used for frames.
const streamQos = 2

// Streamer publishes rendered frames over MQTT.
type Streamer struct {
	client mqtt.Client
	topic  string
	player *Player
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, player *Player) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.player = player
	return s
}

// SendFrame sends a frame as binary over MQTT.
func (s *Streamer) SendFrame(f Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, streamQos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame %d of slide %d: %w", f.Index, f.Slide, err)
	}
	return nil
}

// Run causes the Streamer to send frames until playback ends.
func (s *Streamer) Run(ctx context.Context) error {
	return s.player.Run(ctx, s.SendFrame)
}
