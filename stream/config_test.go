package stream

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if c.Ring.Period() != 2000*time.Millisecond {
		t.Errorf("period = %v, want 2s", c.Ring.Period())
	}
	if c.Ring.OutputRange != [2]float64{0, 360} {
		t.Errorf("output range = %v, want [0 360]", c.Ring.OutputRange)
	}
	if c.Ring.StrokeWidth != 12 || c.Ring.Diameter != 200 {
		t.Errorf("stroke/diameter = %v/%v, want 12/200", c.Ring.StrokeWidth, c.Ring.Diameter)
	}
	if len(c.Ring.Colours) != 5 {
		t.Errorf("expected the five default colours, got %v", c.Ring.Colours)
	}
}

func TestReadConfigOverrides(t *testing.T) {
	doc := `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: ring/stream
ring:
  periodMs: 1000
  easing: in-out-sine
  outputRange: [-180, 180]
  pixels: 24
`
	c, err := ReadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Topics.Stream != "ring/stream" {
		t.Errorf("mqtt section not applied: %+v", c.Mqtt)
	}
	if c.Mqtt.Topics.Control != "home/ledring/control" {
		t.Errorf("unset control topic should keep its default, got %q", c.Mqtt.Topics.Control)
	}
	if c.Ring.Pixels != 24 || c.Ring.Diameter != 200 {
		t.Errorf("ring section not merged over defaults: %+v", c.Ring)
	}

	i, err := c.Ring.Interpolator()
	if err != nil {
		t.Fatalf("Interpolator: %v", err)
	}
	if got := i.Advance(0); got != -180 {
		t.Errorf("Advance(0) = %v, want -180", got)
	}
	if got := i.Advance((500 * time.Millisecond).Nanoseconds()); math.Abs(got) > 1e-9 {
		t.Errorf("Advance(500ms) = %v, want 0", got)
	}
}

func TestReadConfigInvalid(t *testing.T) {
	docs := []string{
		"ring:\n  periodMs: 0\n",
		"ring:\n  periodMs: -5\n",
		"ring:\n  outputRange: [360, 0]\n",
		"ring:\n  easing: wobble\n",
		"ring:\n  colours: ['#zzzzzz']\n",
		"ring:\n  pixels: 0\n",
		"ring:\n  brightness: 2\n",
		"ring:\n  periodMs: 18446744073710\n",
		"ring:\n  frameRate: 0\n",
		"ring:\n  frameRate: -30\n",
		"ring:\n  frameRate: .inf\n",
		"ring:\n  transitionSecs: -1\n",
	}

	for _, doc := range docs {
		if _, err := ReadConfig(strings.NewReader(doc)); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%q: expected ErrInvalidConfiguration, got %v", doc, err)
		}
	}
}

func TestReadConfigMalformedYAML(t *testing.T) {
	if _, err := ReadConfig(strings.NewReader("ring: [")); err == nil {
		t.Error("expected a YAML error")
	}
}
