package clove

import (
	"fmt"
	"io"

	intImage "github.com/gogpu/clove/internal/image"
)

// LoadImage reads an image file into a new pixmap. PNG, JPEG, GIF, WebP,
// BMP and TIFF are recognized by content. Errors match ErrImageLoad.
func LoadImage(path string) (*Pixmap, error) {
	img, err := intImage.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, path, err)
	}
	return fromNRGBA(img), nil
}

// DecodeImage decodes an image from r into a new pixmap. Errors match
// ErrImageLoad.
func DecodeImage(r io.Reader) (*Pixmap, error) {
	img, err := intImage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	return fromNRGBA(img), nil
}

// DecodeImageBytes decodes an in-memory image into a new pixmap. Errors
// match ErrImageLoad.
func DecodeImageBytes(data []byte) (*Pixmap, error) {
	img, err := intImage.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	return fromNRGBA(img), nil
}
