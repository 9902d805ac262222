package epcqr

import (
	"errors"
	"fmt"
	"strings"

	"rsc.io/qr"
)

// ErrEncoderUnavailable is returned by NoopEncoder. QR rendering is an
// optional capability; callers degrade to an empty image fragment and
// keep going.
var ErrEncoderUnavailable = errors.New("QR encoder unavailable")

// Encoder renders a payload to embeddable SVG markup.
type Encoder interface {
	EncodeSVG(payload string) (string, error)
}

// SVGEncoder encodes payloads with error-correction level M and emits a
// self-contained SVG: white background, black modules, suitable for
// direct inlining into the HTML document.
type SVGEncoder struct {
	// Size is the rendered edge length in pixels. Zero means 128.
	Size int
}

func (e SVGEncoder) EncodeSVG(payload string) (string, error) {
	code, err := qr.Encode(payload, qr.M)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR: %w", err)
	}

	n := code.Size
	size := e.Size
	if size <= 0 {
		size = 128
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		n, n, size, size,
	))
	sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="#fff"/>`, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if code.Black(x, y) {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x, y))
			}
		}
	}
	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// NoopEncoder is the null implementation used when QR rendering is
// disabled or unavailable.
type NoopEncoder struct{}

func (NoopEncoder) EncodeSVG(string) (string, error) {
	return "", ErrEncoderUnavailable
}
