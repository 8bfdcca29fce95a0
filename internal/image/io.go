package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Decoders registered with image.Decode.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// Load decodes the image file at path into a straight-alpha buffer.
// The format is detected from the content, not the extension.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes any registered format (PNG, JPEG, GIF, WebP, BMP, TIFF).
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return ToNRGBA(img), nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img *image.NRGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG writes img as JPEG. JPEG carries no alpha channel, so the image
// is flattened over opaque white first. quality is clamped to [1, 100].
func EncodeJPEG(w io.Writer, img *image.NRGBA, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

	if err := jpeg.Encode(w, flat, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}
