package stream

import (
	"fmt"
	"os"

	"github.com/matt-g-everett/chartanim/chart"
	"gopkg.in/yaml.v2"
)

// Defaults for values missing from the config file. The container default
// fits a 1280x720 frame once padding is removed.
const (
	DefaultContainerWidth  = 1320
	DefaultContainerHeight = 760
	DefaultFPS             = 30
	DefaultAddr            = ":3000"
	DefaultStatic          = "client/dist"
	DefaultClientID        = "chartanim"
	DefaultStreamTopic     = "chartanim/stream"
)

// A Slide is one dataset and the animation applied to it.
type Slide struct {
	Animation chart.Config  `yaml:"animation" json:"animation"`
	Data      chart.Dataset `yaml:"data" json:"data"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Surface struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"surface"`
	Server struct {
		Addr   string `yaml:"addr"`
		Static string `yaml:"static"`
	} `yaml:"server"`
	Playback struct {
		FPS  float64 `yaml:"fps"`
		Loop bool    `yaml:"loop"`
		// Hold is how long the last frame of a slide stays up, in seconds.
		Hold float64 `yaml:"hold"`
	} `yaml:"playback"`
	Slides []Slide `yaml:"slides"`
}

// ReadConfig decodes a YAML config file and applies defaults.
func ReadConfig(path string) (Config, error) {
	var c Config
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	c.ApplyDefaults()
	return c, nil
}

// ApplyDefaults fills in every missing value.
func (c *Config) ApplyDefaults() {
	if !(c.Surface.Width > 0) || !(c.Surface.Height > 0) {
		c.Surface.Width, c.Surface.Height = DefaultContainerWidth, DefaultContainerHeight
	}
	if !(c.Playback.FPS > 0) {
		c.Playback.FPS = DefaultFPS
	}
	if !(c.Playback.Hold > 0) {
		c.Playback.Hold = 0
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Static == "" {
		c.Server.Static = DefaultStatic
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = DefaultClientID
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = DefaultStreamTopic
	}
	for i := range c.Slides {
		c.Slides[i].Animation = c.Slides[i].Animation.Normalize()
	}
}

// Extents is the frame geometry that fits the configured container.
func (c Config) Extents() chart.Extents {
	return chart.FitExtents(c.Surface.Width, c.Surface.Height)
}
