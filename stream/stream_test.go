package stream

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/karlmutch/errors"

	"github.com/matt-g-everett/ledfx/config"
	"github.com/matt-g-everett/ledfx/control"
	"github.com/matt-g-everett/ledfx/fx"
	"github.com/matt-g-everett/ledfx/lifecycle"
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

type published struct {
	topic    string
	retained bool
	payload  []byte
}

type fakePublisher struct {
	sent []published
	fail bool
}

func (f *fakePublisher) Publish(topic string, retained bool, payload []byte) (err errors.Error) {
	if f.fail {
		return errors.New("offline")
	}
	f.sent = append(f.sent, published{topic, retained, payload})
	return nil
}

func TestDecode(t *testing.T) {
	m, err := Decode([]byte(`{"type":"light","on":true,"color":"#ff0000","effect":"Fire 2012"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	light, ok := m.(*LightMessage)
	if !ok || light.On == nil || !*light.On || light.Effect != "Fire 2012" || light.Brightness != nil {
		t.Errorf("light message = %+v", m)
	}

	m, err = Decode([]byte(`{"type":"controls","values":{"speed":12,"mirror":true}}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if c, ok := m.(*ControlMessage); !ok || c.Values["speed"] != 12.0 {
		t.Errorf("control message = %+v", m)
	}

	for _, bad := range []string{`{"type":"reboot"}`, `{"type":"light","color":"red"}`, `not json`} {
		if _, err := Decode([]byte(bad)); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}

func TestStreamerFlush(t *testing.T) {
	p := &fakePublisher{}
	s := NewStreamer(p, "tree/stream", palette.FixedGamma(1))
	s.Flush([]pixel.Color{pixel.RGB(255, 0, 0), {W: 255}})
	if len(p.sent) != 1 {
		t.Fatalf("got %d publishes", len(p.sent))
	}
	want := []byte{2, 0, 255, 0, 0, 255, 255, 255}
	if p.sent[0].topic != "tree/stream" || !bytes.Equal(p.sent[0].payload, want) {
		t.Errorf("published %+v, want %v", p.sent[0], want)
	}
	if p.sent[0].retained {
		t.Errorf("frames are not retained")
	}
}

func TestStreamerFollowsLightGamma(t *testing.T) {
	p := &fakePublisher{}
	light := lifecycle.NewState(1, 0)
	s := NewStreamer(p, "tree/stream", light)
	s.Flush([]pixel.Color{pixel.RGB(128, 0, 0)})
	light.SetGamma(2.8)
	s.Flush([]pixel.Color{pixel.RGB(128, 0, 0)})
	if len(p.sent) != 2 {
		t.Fatalf("got %d publishes", len(p.sent))
	}
	if r := p.sent[0].payload[2]; r != 128 {
		t.Errorf("gamma 1 red = %d, want 128", r)
	}
	if r := p.sent[1].payload[2]; r != 37 {
		t.Errorf("gamma 2.8 red = %d, want 37", r)
	}
}

func TestStreamerDropsFrames(t *testing.T) {
	p := &fakePublisher{fail: true}
	s := NewStreamer(p, "tree/stream", palette.FixedGamma(1))
	s.Flush(make([]pixel.Color, 3))
	s.Flush(make([]pixel.Color, 3))
	if s.dropped != 2 {
		t.Errorf("dropped = %d, want 2", s.dropped)
	}
	p.fail = false
	s.Flush(make([]pixel.Color, 3))
	if s.dropped != 0 {
		t.Errorf("a good frame should reset the drop count")
	}
}

func TestNotifier(t *testing.T) {
	p := &fakePublisher{}
	n := NewNotifier(p, "tree/nowplaying")
	aurora := lifecycle.Metadata{Effect: "Aurora", Palette: "Aurora"}

	n.Notify(aurora)
	n.Notify(aurora)
	n.Notify(lifecycle.Metadata{Effect: "Aurora", Palette: "Ice"})
	if len(p.sent) != 3 {
		t.Fatalf("got %d publishes, want 3", len(p.sent))
	}
	if !p.sent[0].retained || p.sent[1].retained || !p.sent[2].retained {
		t.Errorf("only changes are retained: %v %v %v", p.sent[0].retained, p.sent[1].retained, p.sent[2].retained)
	}
	var m lifecycle.Metadata
	if err := json.Unmarshal(p.sent[2].payload, &m); err != nil || m.Palette != "Ice" {
		t.Errorf("payload %s", p.sent[2].payload)
	}

	p.fail = true
	n.Notify(aurora)
	p.fail = false
	n.Notify(aurora)
	if !p.sent[3].retained {
		t.Errorf("a dropped change should be retried as a change")
	}
}

func testHost() (*Host, *pixel.Strip) {
	cfg := config.Default()
	cfg.Strip.Length = 10
	cfg.Effects = []config.Effect{{ID: fx.IDStatic, Name: "Solid"}, {ID: fx.IDFire}}
	strip := pixel.NewStrip(cfg.Strip.Length)
	return NewHost(cfg, strip, nil), strip
}

func TestHostFadesInAndOut(t *testing.T) {
	h, strip := testHost()
	h.TurnOn(0)
	h.Tick(0)
	if strip.Get(0) != pixel.Black {
		t.Errorf("fade in should start dark, got %v", strip.Get(0))
	}
	h.Tick(1000)
	if strip.Get(0) != pixel.White {
		t.Fatalf("fade in should end at the light color, got %v", strip.Get(0))
	}

	h.TurnOff(1000)
	if h.Outro() == nil {
		t.Fatal("turning off should schedule an outro")
	}
	h.Tick(1000)
	if strip.Get(0) != pixel.White {
		t.Errorf("outro starts from the last frame, got %v", strip.Get(0))
	}
	h.Tick(2000)
	if h.Outro() != nil {
		t.Fatalf("outro still running")
	}
	for i := 0; i < strip.Len(); i++ {
		if strip.Get(i) != pixel.Black {
			t.Fatalf("cell %d = %v after the outro", i, strip.Get(i))
		}
	}
}

func TestHostAbortsOutroWhenTurnedOn(t *testing.T) {
	h, _ := testHost()
	h.TurnOn(0)
	h.Tick(0)
	old := h.Current().Runners()

	h.TurnOff(100)
	h.TurnOn(110)
	h.Tick(120)
	if h.Outro() != nil {
		t.Errorf("outro should have been abandoned")
	}
	if !old[0].Released() {
		t.Errorf("outro runners not released")
	}
	now := h.Current().Runners()
	if len(now) == 0 || now[0] == old[0] || now[0].Released() {
		t.Errorf("the effect should run on fresh runners")
	}
}

func TestHostSelectEffect(t *testing.T) {
	h, _ := testHost()
	h.TurnOn(0)
	h.Tick(0)
	old := h.Current().Runners()

	h.handle(&LightMessage{Effect: "Fire 2012"}, 10)
	if h.Current().ID() != fx.IDFire {
		t.Fatalf("current = %s", h.Current().Name())
	}
	if !old[0].Released() {
		t.Errorf("the previous effect's runners were not released")
	}
	if h.Current().Phase() != lifecycle.Main {
		t.Errorf("switching effects should not replay the intro")
	}
	if h.SelectEffect("Nonsense", 20) {
		t.Errorf("unknown effect accepted")
	}
}

func TestHostMessages(t *testing.T) {
	h, _ := testHost()
	h.TurnOn(0)
	half := 0.5
	h.handle(&LightMessage{Brightness: &half, Color: "#00ff00"}, 0)
	if h.Light().Brightness() != 0.5 || h.Light().Color() != pixel.RGB(0, 255, 0) {
		t.Errorf("light = %v %v", h.Light().Brightness(), h.Light().Color())
	}

	h.handle(&ControlMessage{Values: map[string]interface{}{control.Speed: 42.0}}, 0)
	if v, _ := h.Values().Number(control.Speed); v != 42 {
		t.Errorf("speed control = %v", v)
	}
	if r := h.Current().Runners()[0]; r.Seg.Speed != 42 {
		t.Errorf("runner speed = %d", r.Seg.Speed)
	}

	off := false
	h.handle(&LightMessage{On: &off}, 10)
	if h.Light().IsOn() {
		t.Errorf("light still on")
	}
}

func TestHostGammaReachesRunners(t *testing.T) {
	h, _ := testHost()
	h.TurnOn(0)
	h.Tick(0)
	g := 2.2
	h.handle(&LightMessage{Gamma: &g}, 10)
	h.Tick(100)
	if v := h.Current().Runners()[0].Gamma().Value(); v != 2.2 {
		t.Errorf("runner gamma = %v, want 2.2", v)
	}
}

func TestHostSharesPalettes(t *testing.T) {
	h, _ := testHost()
	h.TurnOn(0)
	h.Tick(0)
	first := h.Current().Runners()[0].Palettes()
	h.SelectEffect("Fire 2012", 10)
	h.Tick(100)
	if h.Current().Runners()[0].Palettes() != first {
		t.Errorf("effects should share the host palette set")
	}

	other, _ := testHost()
	other.TurnOn(0)
	other.Tick(0)
	theirs := other.Current().Runners()[0].Palettes()
	first.Regenerate()
	theirs.Regenerate()
	if *first.Resolve(palette.SmartRandom, palette.Rainbow, pixel.White) == *theirs.Resolve(palette.SmartRandom, palette.Rainbow, pixel.White) {
		t.Errorf("separate hosts generated the same smart random table")
	}
}

func TestHostSleepTimer(t *testing.T) {
	h, _ := testHost()
	h.Values().SetNumber(control.Timer, 1)
	h.TurnOn(0)
	h.minuteTick(60000)
	if h.Light().IsOn() {
		t.Errorf("sleep timer should turn the light off")
	}
	if h.Outro() == nil {
		t.Errorf("sleep timer should play the outro")
	}
}

func TestHostPostNeverBlocks(t *testing.T) {
	h, _ := testHost()
	for i := 0; i < cap(h.commands)+4; i++ {
		h.Post(&ControlMessage{})
	}
	if len(h.commands) != cap(h.commands) {
		t.Errorf("queue holds %d", len(h.commands))
	}
}
