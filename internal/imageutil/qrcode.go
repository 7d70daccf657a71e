// Package imageutil prepares images embedded in rendered invoices.
package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultQRDimension is the largest edge, in pixels, kept for an embedded QR code
const DefaultQRDimension = 512

// ErrEmptyImage is returned when there are no image bytes to decode
var ErrEmptyImage = errors.New("empty image")

// NormalizeQRCode decodes a PNG or JPEG QR code, shrinks it so neither edge
// exceeds maxDimension and re-encodes it as PNG.
// Nearest-neighbour scaling keeps module edges sharp enough to scan.
func NormalizeQRCode(data []byte, maxDimension int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxDimension <= 0 {
		maxDimension = DefaultQRDimension
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode qr code: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	if width > maxDimension || height > maxDimension {
		newWidth, newHeight := fit(width, height, maxDimension)
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return buf.Bytes(), nil
}

// fit scales width and height down so the longer edge equals maxDimension
func fit(width, height, maxDimension int) (int, int) {
	if width >= height {
		h := height * maxDimension / width
		return maxDimension, max(h, 1)
	}
	w := width * maxDimension / height
	return max(w, 1), maxDimension
}
