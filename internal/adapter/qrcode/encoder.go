package qrcode

import (
	"encoding/base64"

	qr "github.com/skip2/go-qrcode"
)

// Encoder produces a QR image for a payload. Failure is tolerated by callers:
// an order is persisted without its QR code rather than failing creation.
type Encoder interface {
	Encode(payload string) ([]byte, error)
}

// PNGEncoder renders QR codes as PNG images of a fixed size.
type PNGEncoder struct {
	size int
}

// NewPNGEncoder creates an encoder producing size x size pixel images.
func NewPNGEncoder(size int) *PNGEncoder {
	if size <= 0 {
		size = 256
	}
	return &PNGEncoder{size: size}
}

// Encode returns the payload rendered as a PNG QR code.
func (e *PNGEncoder) Encode(payload string) ([]byte, error) {
	return qr.Encode(payload, qr.Medium, e.size)
}

// DataURL wraps PNG bytes into a data URL suitable for an <img> tag, the
// format the frontend renders order QR codes from.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
