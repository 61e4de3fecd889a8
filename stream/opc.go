package stream

// This file contains the Open Pixel Control output that drives fadecandy
// boards directly from the strip.

import (
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/kellydunn/go-opc"

	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
)

// OPC flushes frames to an Open Pixel Control server.
type OPC struct {
	client  *opc.Client
	server  string
	channel uint8
	source  palette.GammaSource
	gamma   *palette.Gamma
	errorC  chan<- errors.Error
}

// DialOPC connects to server. Send failures after that are reported on errorC
// when it is set, and logged otherwise.
func DialOPC(server string, channel uint8, gamma palette.GammaSource, errorC chan<- errors.Error) (o *OPC, err errors.Error) {
	oc := opc.NewClient()
	if errGo := oc.Connect("tcp", server); errGo != nil {
		return nil, errors.Wrap(errGo).With("url", server).With("stack", stack.Trace().TrimRuntime())
	}
	o = &OPC{
		client:  oc,
		server:  server,
		channel: channel,
		source:  gamma,
		gamma:   palette.NewGamma(gamma.Gamma()),
		errorC:  errorC,
	}
	logger.Info("opc connected", "url", server, "channel", channel)
	return o, nil
}

func (o *OPC) message(pixels []pixel.Color) *opc.Message {
	o.gamma.Sync(o.source.Gamma())
	m := opc.NewMessage(o.channel)
	m.SetLength(uint16(len(pixels) * 3))
	for i, c := range pixels {
		c = o.gamma.Correct(c.FoldWhite())
		m.SetPixelColor(i, c.R, c.G, c.B)
	}
	return m
}

// Flush sends one frame.
func (o *OPC) Flush(pixels []pixel.Color) {
	if errGo := o.client.Send(o.message(pixels)); errGo != nil {
		err := errors.Wrap(errGo).With("url", o.server).With("stack", stack.Trace().TrimRuntime())
		if o.errorC == nil {
			logger.Warn("opc send failed", "error", err.Error())
			return
		}
		select {
		case o.errorC <- err:
		default:
			logger.Warn("opc send failed", "error", err.Error())
		}
	}
}
