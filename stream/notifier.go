package stream

import (
	"bytes"
	"encoding/json"

	"github.com/cnf/structhash"

	"github.com/matt-g-everett/ledfx/lifecycle"
)

// Notifier publishes what is playing for visualizers. A changed value is
// published retained so late subscribers pick it up; repeats are plain
// heartbeats. Publishing is fire and forget.
type Notifier struct {
	publisher Publisher
	topic     string
	last      []byte
}

// NewNotifier creates an instance of a Notifier.
func NewNotifier(publisher Publisher, topic string) *Notifier {
	n := new(Notifier)
	n.publisher = publisher
	n.topic = topic
	return n
}

// Notify sends m. It matches lifecycle.Options.Notify.
func (n *Notifier) Notify(m lifecycle.Metadata) {
	hash := structhash.Md5(m, 1)
	changed := bytes.Compare(n.last, hash) != 0

	payload, errGo := json.Marshal(m)
	if errGo != nil {
		logger.Warn("now playing not encoded", "error", errGo.Error())
		return
	}
	if err := n.publisher.Publish(n.topic, changed, payload); err != nil {
		logger.Warn("now playing dropped", "effect", m.Effect, "error", err.Error())
		return
	}
	if changed {
		n.last = hash
		logger.Info("now playing", "effect", m.Effect, "palette", m.Palette)
	}
}
