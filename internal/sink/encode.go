package sink

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pkg/errors"

	"github.com/Nach0t/siss/internal/frame"
)

// DefaultJpegQuality is used by sinks without their own quality setting.
const DefaultJpegQuality = 85

// encodeJpeg renders the raw RGBA payload of f as a JPEG.
func encodeJpeg(f frame.Frame, quality int) ([]byte, error) {
	if want := 4 * f.Width * f.Height; len(f.Pix) != want {
		return nil, errors.Errorf("frame pixel buffer has %d bytes, want %d", len(f.Pix), want)
	}
	img := &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(err, "encoding frame as jpeg")
	}
	return buf.Bytes(), nil
}
