package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/matt-g-everett/ledring/api"
	"github.com/matt-g-everett/ledring/preview"
	"github.com/matt-g-everett/ledring/stream"
	"github.com/matt-g-everett/ledring/view"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Driver   *stream.Driver
	Control  *stream.Control
	interp   *stream.Interpolator
	gradient stream.Gradient
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Control.Subscribe(); err != nil {
		log.Printf("Subscribing to control topic: %v", err)
	}
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if os.IsNotExist(err) {
		log.Printf("No config at %s, using defaults", configPath)
		a.Config = stream.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	} else {
		defer f.Close()
		a.Config, err = stream.ReadConfig(f)
		if err != nil {
			log.Fatalf("Config %s: %v", configPath, err)
		}
	}

	// Validated above, so neither can fail.
	a.interp, _ = a.Config.Ring.Interpolator()
	a.gradient, _ = a.Config.Ring.Gradient()
}

func (a *app) serveApi() {
	if a.Config.Api.Listen == "" {
		return
	}
	go func() {
		if err := api.NewApi(a.Driver, a.Config.Api.Static).Serve(a.Config.Api.Listen); err != nil {
			log.Printf("API stopped: %v", err)
		}
	}()
}

// runLed streams the ring to an LED strip over MQTT until interrupted.
func (a *app) runLed() {
	ring := a.Config.Ring
	controller := stream.NewController(stream.NewRing(a.gradient, ring.Pixels, ring.Brightness), ring.FrameRate, ring.TransitionSecs)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledring").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	streamer := stream.NewStreamer(a.Config, a.Client, controller)
	a.Driver = stream.NewDriver(stream.NewTickerClock(ring.FrameRate), a.interp, streamer)
	a.Control = stream.NewControl(a.Config, a.Client, a.Driver, controller)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Connecting to %s: %v", a.Config.Mqtt.URL, token.Error())
	}
	a.serveApi()
	a.Driver.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	a.Driver.Stop()
	a.Client.Disconnect(250)
}

// runWindow shows the profile screen in a window.
func (a *app) runWindow() {
	diameter := int(a.Config.Ring.Diameter)
	avatar := view.LoadAvatar(a.Config.Profile.Image, diameter)
	profile := view.NewProfileView(a.Config, a.gradient, avatar)
	a.Driver = stream.NewDriver(profile.Clock(), a.interp, profile)
	a.serveApi()

	ebiten.SetWindowSize(view.ScreenWidth, view.ScreenHeight)
	ebiten.SetWindowTitle(a.Config.Profile.Name)
	a.Driver.Start()
	defer a.Driver.Stop()
	if err := ebiten.RunGame(profile); err != nil {
		log.Fatal(err)
	}
}

// runTerminal draws the ring in the terminal.
func (a *app) runTerminal() {
	// The terminal belongs to bubbletea now.
	if f, err := tea.LogToFile("ledring.log", "ledring"); err == nil {
		defer f.Close()
	}

	clock := stream.NewFrameClock()
	sig := new(preview.Signal)
	a.Driver = stream.NewDriver(clock, a.interp, sig)
	a.serveApi()

	m := preview.NewModel(clock, a.Driver, sig, a.gradient, a.Config.Profile.Name, a.Config.Ring.FrameRate)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
	a.Driver.Stop()
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	mode := flag.String("mode", "led", "Host to run: led, window or terminal.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config.Ring)

	switch *mode {
	case "led":
		a.runLed()
	case "window":
		a.runWindow()
	case "terminal":
		a.runTerminal()
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}
