package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matt-g-everett/chartanim/chart"
	"github.com/matt-g-everett/chartanim/easing"
)

const sampleConfig = `
mqtt:
  url: tcp://localhost:1883
  username: user
  topics:
    stream: home/wall/stream
surface:
  width: 1000
  height: 600
playback:
  fps: 24
  loop: true
slides:
  - animation:
      duration: 2
      easing: bounce
      chart: pie
      theme: light
    data:
      - {label: A, value: 30, color: "#FF0000"}
      - {label: B, value: 70}
  - animation:
      chart: statBar
    data:
      - {label: HP, value: 65, min: 0, max: 200}
`

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	if c.Mqtt.URL != "tcp://localhost:1883" || c.Mqtt.Topics.Stream != "home/wall/stream" {
		t.Errorf("mqtt = %+v", c.Mqtt)
	}
	if c.Mqtt.ClientID != DefaultClientID {
		t.Errorf("client id = %q", c.Mqtt.ClientID)
	}
	if c.Playback.FPS != 24 || !c.Playback.Loop {
		t.Errorf("playback = %+v", c.Playback)
	}
	if c.Server.Addr != DefaultAddr || c.Server.Static != DefaultStatic {
		t.Errorf("server = %+v", c.Server)
	}
	if len(c.Slides) != 2 {
		t.Fatalf("got %d slides", len(c.Slides))
	}

	want := []chart.Config{
		{Duration: 2, Easing: easing.Bounce, Chart: chart.Pie, Theme: chart.Light},
		{Duration: chart.DefaultDuration, Easing: easing.EaseInOut, Chart: chart.StatBar, Theme: chart.Dark},
	}
	got := []chart.Config{c.Slides[0].Animation, c.Slides[1].Animation}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("animations mismatch (-want +got):\n%s", diff)
	}

	hp := c.Slides[1].Data[0]
	if lo, hi := hp.Range(); lo != 0 || hi != 200 {
		t.Errorf("stat range = %v..%v", lo, hi)
	}
	if c.Slides[0].Data[0].Colour != "#FF0000" {
		t.Errorf("colour = %q", c.Slides[0].Data[0].Colour)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig(writeConfig(t, "slides: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if w, h := c.Extents().Pixels(); w != 1280 || h != 720 {
		t.Errorf("default frame = %dx%d, want 1280x720", w, h)
	}
	if c.Playback.FPS != DefaultFPS {
		t.Errorf("fps = %v", c.Playback.FPS)
	}
	if c.Mqtt.Topics.Stream != DefaultStreamTopic {
		t.Errorf("topic = %q", c.Mqtt.Topics.Stream)
	}
}

func TestReadConfigErrors(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file did not fail")
	}
	if _, err := ReadConfig(writeConfig(t, "slides: [unterminated\n")); err == nil {
		t.Error("bad yaml did not fail")
	}
}
