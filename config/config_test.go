package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/ledfx/fx"
)

const sample = `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: tree/stream
strip:
  length: 120
  regions:
    - id: left
      start: 0
      stop: 60
    - id: right
      start: 60
      stop: 120
      mirror: true
controls:
  speed: 90
  intro: Wipe
  introUsePalette: true
effects:
  - id: 38
    name: Aurora
    presets:
      palette: Ice
      intro: Fade
      introDuration: 2.5
`

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(write(t, sample))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Topics.Stream != "tree/stream" {
		t.Errorf("mqtt section = %+v", c.Mqtt)
	}
	if c.Mqtt.Topics.NowPlaying != Default().Mqtt.Topics.NowPlaying {
		t.Errorf("missing topics should keep their defaults")
	}
	if c.Strip.Length != 120 || len(c.Strip.Regions) != 2 || !c.Strip.Regions[1].Mirror {
		t.Errorf("strip section = %+v", c.Strip)
	}
	if c.Strip.UpdateIntervalMs != 16 {
		t.Errorf("update interval = %d", c.Strip.UpdateIntervalMs)
	}
	if v, ok := c.Controls["speed"].(int); !ok || v != 90 {
		t.Errorf("speed control = %#v", c.Controls["speed"])
	}
	if len(c.Effects) != 1 {
		t.Fatalf("got %d effects", len(c.Effects))
	}
	p := c.Effects[0].Presets
	if p.Palette == nil || *p.Palette != "Ice" || p.IntroDuration == nil || *p.IntroDuration != 2.5 {
		t.Errorf("presets = %+v", p)
	}
	if p.Speed != nil {
		t.Errorf("unset presets should stay nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero length", "strip:\n  length: 0\n"},
		{"region past the end", "strip:\n  length: 10\n  regions:\n    - {id: a, start: 5, stop: 11}\n"},
		{"empty region", "strip:\n  length: 10\n  regions:\n    - {id: a, start: 5, stop: 5}\n"},
		{"unknown effect", "effects:\n  - {id: 250, name: Nonsense}\n"},
	}
	for _, test := range tests {
		if _, err := Load(write(t, test.body)); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestEffectList(t *testing.T) {
	c := Default()
	list := c.EffectList()
	if len(list) != len(fx.IDs()) {
		t.Errorf("got %d effects, want every implemented one", len(list))
	}
	c.Effects = []Effect{{ID: fx.IDFire}}
	if list = c.EffectList(); len(list) != 1 || list[0].Name != "Fire 2012" {
		t.Errorf("list = %+v", list)
	}
}
