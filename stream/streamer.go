package stream

import (
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Publisher is the part of mqtt.Client the Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer is a Sink that streams RGB data frames to an LED ring over MQTT.
type Streamer struct {
	client    Publisher
	topic     string
	timeout   time.Duration
	animation Animation
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Publisher, animation Animation) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = config.Mqtt.Topics.Stream
	s.timeout = time.Duration(config.Mqtt.PublishTimeoutMs) * time.Millisecond
	s.animation = animation
	return s
}

// Render sends the frame for signal as binary over MQTT.
func (s *Streamer) Render(signal float64) {
	f := s.animation.CalculateFrame(signal)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.topic, 0, false, b)
	if !token.WaitTimeout(s.timeout) {
		log.Printf("Publish to %s timed out after %v", s.topic, s.timeout)
		return
	}
	if err := token.Error(); err != nil {
		log.Printf("Publish to %s failed: %v", s.topic, err)
	}
}
