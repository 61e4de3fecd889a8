package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// Listener feeds light and control messages from an MQTT topic to a Host.
type Listener struct {
	client mqtt.Client
	topic  string
	host   *Host
}

// NewListener creates an instance of a Listener.
func NewListener(client mqtt.Client, topic string, host *Host) *Listener {
	l := new(Listener)
	l.client = client
	l.topic = topic
	l.host = host
	return l
}

func (l *Listener) handleClientMessages(client mqtt.Client, msg mqtt.Message) {
	logger.Debug("received", "id", msg.MessageID(), "topic", msg.Topic(), "payload", string(msg.Payload()))

	m, err := Decode(msg.Payload())
	if err != nil {
		logger.Warn("message ignored", "topic", msg.Topic(), "error", err.Error())
		return
	}
	l.host.Post(m)
}

// Subscribe to the controls topic. Call it again from the connect handler after
// a reconnect.
func (l *Listener) Subscribe() (err errors.Error) {
	if l.topic == "" {
		return nil
	}
	token := l.client.Subscribe(l.topic, 0, l.handleClientMessages)
	if token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error()).With("topic", l.topic).With("stack", stack.Trace().TrimRuntime())
	}
	logger.Info("subscribed", "topic", l.topic)
	return nil
}
