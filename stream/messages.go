package stream

import (
	"encoding/json"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledfx/pixel"
)

// Message base that indicates message type
type Message struct {
	Type string `json:"type"`
}

// LightMessage switches the light, sets its color and brightness or selects an
// effect. Absent fields are left alone.
type LightMessage struct {
	Message
	On         *bool    `json:"on,omitempty"`
	Brightness *float64 `json:"brightness,omitempty"`
	Color      string   `json:"color,omitempty"`
	Gamma      *float64 `json:"gamma,omitempty"`
	Effect     string   `json:"effect,omitempty"`
}

// ControlMessage carries new control surface values keyed by control name.
type ControlMessage struct {
	Message
	Values map[string]interface{} `json:"values"`
}

// Decode parses a payload received on the controls topic into a *LightMessage
// or a *ControlMessage.
func Decode(payload []byte) (msg interface{}, err errors.Error) {
	var base Message
	if errGo := json.Unmarshal(payload, &base); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}

	switch base.Type {
	case "light":
		m := new(LightMessage)
		if errGo := json.Unmarshal(payload, m); errGo != nil {
			return nil, errors.Wrap(errGo).With("type", base.Type).With("stack", stack.Trace().TrimRuntime())
		}
		if m.Color != "" {
			if _, err = parseColor(m.Color); err != nil {
				return nil, err
			}
		}
		return m, nil
	case "controls":
		m := new(ControlMessage)
		if errGo := json.Unmarshal(payload, m); errGo != nil {
			return nil, errors.Wrap(errGo).With("type", base.Type).With("stack", stack.Trace().TrimRuntime())
		}
		return m, nil
	}
	return nil, errors.New("unknown message type").With("type", base.Type).With("stack", stack.Trace().TrimRuntime())
}

// parseColor accepts "#rrggbb".
func parseColor(s string) (c pixel.Color, err errors.Error) {
	col, errGo := colorful.Hex(s)
	if errGo != nil {
		return c, errors.Wrap(errGo).With("color", s).With("stack", stack.Trace().TrimRuntime())
	}
	return pixel.FromColorful(col), nil
}
