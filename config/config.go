// Package config holds the YAML configuration of the effect host.
package config

import (
	"os"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/runner"
)

// Effect is one selectable effect and the presets applied when it starts.
type Effect struct {
	ID      uint8           `yaml:"id"`
	Name    string          `yaml:"name"`
	Presets control.Presets `yaml:"presets"`
}

// Config is the whole configuration file.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientID"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream     string `yaml:"stream"`
			NowPlaying string `yaml:"nowPlaying"`
			Controls   string `yaml:"controls"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Opc struct {
		Server  string `yaml:"server"`
		Channel uint8  `yaml:"channel"`
	} `yaml:"opc"`

	Strip struct {
		Length              int             `yaml:"length"`
		Gamma               float64         `yaml:"gamma"`
		UpdateIntervalMs    uint32          `yaml:"updateIntervalMs"`
		DefaultTransitionMs uint32          `yaml:"defaultTransitionMs"`
		Regions             []runner.Region `yaml:"regions"`
	} `yaml:"strip"`

	// Controls are the initial values of the control surface, keyed by control name.
	Controls map[string]interface{} `yaml:"controls"`

	Effects []Effect `yaml:"effects"`
}

// Default returns a configuration that runs every implemented effect on a 60
// pixel strip, streaming to a local broker.
func Default() *Config {
	c := new(Config)
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "ledfx"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.NowPlaying = "home/xmastree/nowplaying"
	c.Mqtt.Topics.Controls = "home/xmastree/controls"
	c.Strip.Length = 60
	c.Strip.Gamma = palette.ReferenceGamma
	c.Strip.UpdateIntervalMs = 16
	c.Strip.DefaultTransitionMs = 1000
	return c
}

// Load reads path over the defaults.
func Load(path string) (c *Config, err errors.Error) {
	f, errGo := os.Open(path)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	defer f.Close()

	c = Default()
	if errGo = yaml.NewDecoder(f).Decode(c); errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	if err = c.Validate(); err != nil {
		return nil, err.With("path", path)
	}
	return c, nil
}

// Validate rejects configurations the host cannot run.
func (c *Config) Validate() (err errors.Error) {
	if c.Strip.Length <= 0 || c.Strip.Length > 0xFFFF {
		return errors.New("strip length out of range").With("length", c.Strip.Length).With("stack", stack.Trace().TrimRuntime())
	}
	for _, r := range c.Strip.Regions {
		if r.Start < 0 || r.Stop > c.Strip.Length || r.Start >= r.Stop {
			return errors.New("region outside the strip").With("region", r.ID).
				With("start", r.Start).With("stop", r.Stop).With("stack", stack.Trace().TrimRuntime())
		}
	}
	for _, e := range c.Effects {
		if e.Name == "" {
			continue
		}
		if _, ok := fx.ID(e.Name); !ok && !fx.Implemented(e.ID) {
			return errors.New("unknown effect").With("name", e.Name).With("id", e.ID).With("stack", stack.Trace().TrimRuntime())
		}
	}
	return nil
}

// EffectList returns the configured effects, or every implemented effect when
// none are configured.
func (c *Config) EffectList() []Effect {
	if len(c.Effects) > 0 {
		out := make([]Effect, len(c.Effects))
		for i, e := range c.Effects {
			if e.Name == "" {
				e.Name = fx.Name(e.ID)
			}
			out[i] = e
		}
		return out
	}
	ids := fx.IDs()
	out := make([]Effect, 0, len(ids))
	for _, id := range ids {
		out = append(out, Effect{ID: id, Name: fx.Name(id)})
	}
	return out
}
