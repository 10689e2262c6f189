package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage is a command received on the control topic.
type ControlMessage struct {
	Type    string   `json:"type"`
	Colours []string `json:"colours,omitempty"`
}

// Subscriber is the part of mqtt.Client that Control needs.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Control applies remote commands to a Driver and its Controller.
type Control struct {
	config     Config
	client     Subscriber
	driver     *Driver
	controller *Controller
}

// NewControl creates an instance of Control.
func NewControl(config Config, client Subscriber, driver *Driver, controller *Controller) *Control {
	c := new(Control)
	c.config = config
	c.client = client
	c.driver = driver
	c.controller = controller
	return c
}

func (c *Control) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	if err := c.Apply(msg.Payload()); err != nil {
		log.Printf("Ignoring control message: %v", err)
	}
}

// Apply decodes and executes one control message.
func (c *Control) Apply(payload []byte) error {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		return err
	}

	switch message.Type {
	case "start":
		c.driver.Start()
	case "stop":
		c.driver.Stop()
	case "gradient":
		gradient, err := ParseGradient(message.Colours)
		if err != nil {
			return err
		}
		ring := c.config.Ring
		c.controller.SetAnimation(NewRing(gradient, ring.Pixels, ring.Brightness))
	default:
		return fmt.Errorf("unknown message type %q", message.Type)
	}

	return nil
}

// Subscribe listens for control messages.
func (c *Control) Subscribe() error {
	token := c.client.Subscribe(c.config.Mqtt.Topics.Control, 0, c.handleClientMessages)
	token.Wait()
	return token.Error()
}
