package stream

import (
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v2"
)

// Config for every host of the driver.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
		PublishTimeoutMs int `yaml:"publishTimeoutMs"`
	} `yaml:"mqtt"`

	Ring RingConfig `yaml:"ring"`

	Api struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`

	Profile struct {
		Image       string `yaml:"image"`
		Name        string `yaml:"name"`
		Position    string `yaml:"position"`
		Description string `yaml:"description"`
	} `yaml:"profile"`
}

// RingConfig describes the animated ring and the driver behind it.
type RingConfig struct {
	PeriodMs       int64      `yaml:"periodMs"`
	Easing         string     `yaml:"easing"`
	OutputRange    [2]float64 `yaml:"outputRange"`
	StrokeWidth    float64    `yaml:"strokeWidth"`
	Diameter       float64    `yaml:"diameter"`
	Pixels         int        `yaml:"pixels"`
	FrameRate      float64    `yaml:"frameRate"`
	TransitionSecs float64    `yaml:"transitionSecs"`
	Brightness     float64    `yaml:"brightness"`
	Colours        []string   `yaml:"colours"`
}

// DefaultConfig returns the configuration used for anything a file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.Topics.Stream = "home/ledring/stream"
	c.Mqtt.Topics.Control = "home/ledring/control"
	c.Mqtt.PublishTimeoutMs = 1000

	c.Ring = RingConfig{
		PeriodMs:       DefaultPeriod.Milliseconds(),
		Easing:         "linear",
		OutputRange:    [2]float64{DefaultRange.From, DefaultRange.To},
		StrokeWidth:    12,
		Diameter:       200,
		Pixels:         60,
		FrameRate:      30,
		TransitionSecs: 2,
		Brightness:     0.25,
		Colours:        append([]string(nil), DefaultColours...),
	}

	c.Api.Static = "client/dist"

	c.Profile.Name = "Profile"
	c.Profile.Position = "Position"
	return c
}

// ReadConfig decodes YAML over DefaultConfig and validates the result.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks everything that can be checked without building anything.
func (c Config) Validate() error {
	if !(c.Ring.FrameRate > 0) || math.IsInf(c.Ring.FrameRate, 1) {
		return fmt.Errorf("%w: ring.frameRate must be positive, got %v", ErrInvalidConfiguration, c.Ring.FrameRate)
	}
	if !(c.Ring.TransitionSecs >= 0) {
		return fmt.Errorf("%w: ring.transitionSecs must not be negative, got %v", ErrInvalidConfiguration, c.Ring.TransitionSecs)
	}
	if _, err := c.Ring.Interpolator(); err != nil {
		return err
	}
	if _, err := c.Ring.Gradient(); err != nil {
		return err
	}
	if c.Ring.Pixels <= 0 || c.Ring.Pixels > 0xffff {
		return fmt.Errorf("%w: ring.pixels must be in [1, 65535], got %d", ErrInvalidConfiguration, c.Ring.Pixels)
	}
	if c.Ring.StrokeWidth <= 0 || c.Ring.Diameter <= 0 {
		return fmt.Errorf("%w: ring.strokeWidth and ring.diameter must be positive", ErrInvalidConfiguration)
	}
	if c.Ring.Brightness < 0 || c.Ring.Brightness > 1 {
		return fmt.Errorf("%w: ring.brightness must be in [0, 1], got %v", ErrInvalidConfiguration, c.Ring.Brightness)
	}
	return nil
}

// Period returns the cycle length.
func (r RingConfig) Period() time.Duration {
	return time.Duration(r.PeriodMs) * time.Millisecond
}

// Interpolator builds the Interpolator this ring describes.
func (r RingConfig) Interpolator() (*Interpolator, error) {
	if r.PeriodMs > math.MaxInt64/int64(time.Millisecond) {
		return nil, fmt.Errorf("%w: ring.periodMs %d is too long", ErrInvalidConfiguration, r.PeriodMs)
	}
	easing, err := LookupEasing(r.Easing)
	if err != nil {
		return nil, err
	}
	return NewInterpolator(r.Period(), easing, Range{From: r.OutputRange[0], To: r.OutputRange[1]})
}

// Gradient parses the ring colours.
func (r RingConfig) Gradient() (Gradient, error) {
	return ParseGradient(r.Colours)
}
