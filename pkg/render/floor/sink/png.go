package sink

import (
	"bytes"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/planforge/pkg/render/floor"
)

// EncodePNG serializes the rendered raster as lossless PNG bytes.
// The canvas is fully opaque, so the encoder emits truecolor without an
// alpha channel. Encoding is deterministic for identical input.
func EncodePNG(r *floor.Rendering) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeThumbnailPNG serializes a preview scaled to the given width,
// preserving the aspect ratio.
func EncodeThumbnailPNG(r *floor.Rendering, width int) ([]byte, error) {
	thumb := imaging.Resize(r.Image, width, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
