package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/GoBike/envflag"
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/matt-g-everett/ledfx/config"
	"github.com/matt-g-everett/ledfx/lifecycle"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/preview"
	"github.com/matt-g-everett/ledfx/stream"
)

var (
	logger = logxi.New("ledfx")

	configPath = flag.String("config", "config.yaml", "YAML config file.")
	verbose    = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	showTerm   = flag.Bool("preview", false, "Draw the strip in the terminal")
	startOn    = flag.Bool("on", true, "Turn the light on at startup")
	effectName = flag.String("effect", "", "Effect to select at startup")
)

type app struct {
	Config   *config.Config
	Client   mqtt.Client
	Host     *stream.Host
	Listener *stream.Listener
}

func newApp() *app {
	a := new(app)
	return a
}

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       procedural LED effects → MQTT / OPC")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func (a *app) handleOnConnect(client mqtt.Client) {
	logger.Info("connected", "url", a.Config.Mqtt.URL)
	if err := a.Listener.Subscribe(); err != nil {
		logger.Warn("subscribe failed", "error", err.Error())
	}
}

func (a *app) connect() {
	if a.Client == nil {
		return
	}
	// The host keeps running without a broker; paho retries in the background.
	token := a.Client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		logger.Warn("mqtt connect failed", "url", a.Config.Mqtt.URL, "error", token.Error().Error())
	}
}

func (a *app) run(quitC <-chan struct{}) {
	go func() {
		<-quitC
		a.Host.Stop()
	}()
	a.Host.Run()
	if a.Client != nil {
		a.Client.Disconnect(250)
	}
}

func (a *app) readConfig(configPath string) (err errors.Error) {
	if _, errGo := os.Stat(configPath); os.IsNotExist(errGo) {
		logger.Warn("config not found, using defaults", "path", configPath)
		a.Config = config.Default()
		return nil
	}
	a.Config, err = config.Load(configPath)
	return err
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse the CLI flags
	if !flag.Parsed() {
		envflag.Parse()
	}

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	// Read the config
	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	logger.Debug("config", "config", fmt.Sprintf("%+v", a.Config))

	strip := pixel.NewStrip(a.Config.Strip.Length)
	var notify func(lifecycle.Metadata)

	if a.Config.Mqtt.URL != "" {
		options := mqtt.NewClientOptions().
			AddBroker(a.Config.Mqtt.URL).
			SetClientID(a.Config.Mqtt.ClientID).
			SetUsername(a.Config.Mqtt.Username).
			SetPassword(a.Config.Mqtt.Password).
			SetKeepAlive(30 * time.Second).
			SetPingTimeout(5 * time.Second).
			SetAutoReconnect(true).
			SetOnConnectHandler(a.handleOnConnect)
		a.Client = mqtt.NewClient(options)

		if topic := a.Config.Mqtt.Topics.NowPlaying; topic != "" {
			notify = stream.NewNotifier(stream.NewPublisher(a.Client, 1), topic).Notify
		}
	}

	a.Host = stream.NewHost(a.Config, strip, notify)
	// Outputs correct with the light's gamma so live changes reach them too.
	gamma := a.Host.Light()

	if a.Client != nil {
		if topic := a.Config.Mqtt.Topics.Stream; topic != "" {
			strip.AddFlusher(stream.NewStreamer(stream.NewPublisher(a.Client, 0), topic, gamma))
		}
		a.Listener = stream.NewListener(a.Client, a.Config.Mqtt.Topics.Controls, a.Host)
	}

	errorC := make(chan errors.Error, 4)
	go func() {
		for err := range errorC {
			logger.Warn("output error", "error", err.Error())
		}
	}()

	if a.Config.Opc.Server != "" {
		oc, err := stream.DialOPC(a.Config.Opc.Server, a.Config.Opc.Channel, gamma, errorC)
		if err != nil {
			logger.Warn("opc unavailable", "error", err.Error())
		} else {
			strip.AddFlusher(oc)
		}
	}

	quitC := make(chan struct{})
	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopC
		close(quitC)
	}()

	if *showTerm {
		term, err := preview.NewTerminal(gamma)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		defer term.Close()
		strip.AddFlusher(term)
		go func() {
			<-term.Quit()
			stopC <- os.Interrupt
		}()
	}

	a.connect()

	now := a.Host.Now()
	if *effectName != "" {
		a.Host.SelectEffect(*effectName, now)
	}
	if *startOn {
		a.Host.TurnOn(now)
	}

	a.run(quitC)
}
