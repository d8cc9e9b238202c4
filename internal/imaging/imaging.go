// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging normalizes embedded illustrations to baseline JPEG.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Quality is the JPEG quality every extracted image is written at.
const Quality = 85

// ErrUnsupportedFormat is returned when no registered decoder recognizes an
// image. Extraction cannot proceed past such an image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Normalize decodes an image in any registered format and re-encodes it as
// an opaque RGB JPEG at Quality. Transparent areas are flattened onto white.
func Normalize(blob []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w (%d bytes)", ErrUnsupportedFormat, len(blob))
		}
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, flatten(src), &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding %s image as jpeg: %w", format, err)
	}
	return out.Bytes(), nil
}

// flatten composites src over an opaque white canvas.
func flatten(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, src, b.Min, draw.Over)
	return dst
}
