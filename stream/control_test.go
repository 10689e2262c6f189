package stream

import (
	"testing"
	"time"
)

func newTestControl(t *testing.T) (*Control, *fakeClient, *Driver, *FrameClock, *Controller) {
	t.Helper()
	config := DefaultConfig()
	config.Ring.Pixels = 4
	config.Ring.Brightness = 1.0
	g, _ := config.Ring.Gradient()

	controller := NewController(NewRing(g, 4, 1.0), 30, 0)
	clock := NewFrameClock()
	driver := NewDriver(clock, newDefaultInterpolator(t), SinkFunc(func(float64) {}))
	client := newFakeClient()
	return NewControl(config, client, driver, controller), client, driver, clock, controller
}

func TestControlStartStop(t *testing.T) {
	c, client, driver, _, _ := newTestControl(t)
	if err := c.Subscribe(); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	handler, ok := client.subscribed["home/ledring/control"]
	if !ok {
		t.Fatal("did not subscribe to the control topic")
	}

	handler(nil, &fakeMessage{topic: "home/ledring/control", payload: []byte(`{"type":"start"}`)})
	if driver.State() != Running {
		t.Errorf("start message should start the driver, state %v", driver.State())
	}

	handler(nil, &fakeMessage{topic: "home/ledring/control", payload: []byte(`{"type":"stop"}`)})
	if driver.State() != Stopped {
		t.Errorf("stop message should stop the driver, state %v", driver.State())
	}
}

func TestControlGradient(t *testing.T) {
	c, _, _, _, controller := newTestControl(t)

	if err := c.Apply([]byte(`{"type":"gradient","colours":["#00ff00"]}`)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !controller.Transitioning() {
		t.Fatal("gradient message should start a cross-fade")
	}

	controller.CalculateFrame(0)
	if got := controller.CalculateFrame(0).Pixel(0).Hex(); got != "#00ff00" {
		t.Errorf("pixel after fade = %s, want #00ff00", got)
	}
}

func TestControlRejectsBadMessages(t *testing.T) {
	c, _, driver, clock, _ := newTestControl(t)

	bad := []string{
		`not json`,
		`{"type":"dance"}`,
		`{"type":"gradient","colours":[]}`,
		`{"type":"gradient","colours":["#nothex"]}`,
	}
	for _, payload := range bad {
		if err := c.Apply([]byte(payload)); err == nil {
			t.Errorf("Apply(%s) should fail", payload)
		}
	}

	if driver.State() != Stopped || clock.Tick(time.Second) {
		t.Error("bad messages should not touch the driver")
	}
}
