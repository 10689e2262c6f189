package stream

import (
	"errors"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	err     error
	pending bool
}

func (t *fakeToken) Wait() bool                     { return !t.pending }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.pending }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if !t.pending {
		close(ch)
	}
	return ch
}

type published struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	published  []published
	publishErr error
	subscribed map[string]mqtt.MessageHandler
}

func newFakeClient() *fakeClient {
	c := new(fakeClient)
	c.subscribed = make(map[string]mqtt.MessageHandler)
	return c
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, published{topic, payload.([]byte)})
	return &fakeToken{err: c.publishErr}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.subscribed[topic] = callback
	return &fakeToken{}
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

var errBroker = errors.New("broker gone")
