package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

// publishTimeout bounds how long a frame publish may hold up the tick loop.
const publishTimeout = 33 * time.Millisecond

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, retained bool, payload []byte) (err errors.Error)
}

type mqttPublisher struct {
	client mqtt.Client
	qos    byte
}

// NewPublisher wraps an MQTT client.
func NewPublisher(client mqtt.Client, qos byte) Publisher {
	return &mqttPublisher{client: client, qos: qos}
}

func (p *mqttPublisher) Publish(topic string, retained bool, payload []byte) (err errors.Error) {
	if !p.client.IsConnected() {
		return errors.New("not connected").With("topic", topic).With("stack", stack.Trace().TrimRuntime())
	}
	token := p.client.Publish(topic, p.qos, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errors.New("publish timed out").With("topic", topic).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo := token.Error(); errGo != nil {
		return errors.Wrap(errGo).With("topic", topic).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	publisher Publisher
	topic     string
	source    palette.GammaSource
	gamma     *palette.Gamma
	dropped   int
}

// NewStreamer creates an instance of a Streamer. Frames are gamma corrected on
// the way out with whatever exponent gamma reports at the time.
func NewStreamer(publisher Publisher, topic string, gamma palette.GammaSource) *Streamer {
	s := new(Streamer)
	s.publisher = publisher
	s.topic = topic
	s.source = gamma
	s.gamma = palette.NewGamma(gamma.Gamma())
	return s
}

// Flush sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) Flush(pixels []pixel.Color) {
	s.gamma.Sync(s.source.Gamma())
	out := make([]pixel.Color, len(pixels))
	for i, c := range pixels {
		out[i] = s.gamma.Correct(c.FoldWhite())
	}
	if err := s.publisher.Publish(s.topic, false, pixel.MarshalFrame(out)); err != nil {
		s.dropped++
		if s.dropped == 1 || s.dropped%100 == 0 {
			logger.Warn("frame dropped", "dropped", s.dropped, "error", err.Error())
		}
		return
	}
	s.dropped = 0
}
