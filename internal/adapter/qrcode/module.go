package qrcode

import (
	"go.uber.org/fx"

	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/config"
)

// Module exposes the QR encoder implementation to the fx graph.
var Module = fx.Provide(newEncoder)

type encoderParams struct {
	fx.In

	Config *config.Config
}

func newEncoder(p encoderParams) Encoder {
	return NewPNGEncoder(p.Config.QRImageSize)
}
