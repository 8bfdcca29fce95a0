package clove

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	intImage "github.com/gogpu/clove/internal/image"
)

// Format is a raster output format.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	// FormatWebP is recognized but cannot be written; encoding it returns
	// an UnsupportedFormatError.
	FormatWebP
)

// DefaultJPEGQuality is the JPEG quality used unless WithJPEGQuality
// overrides it.
const DefaultJPEGQuality = 90

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatWebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the canonical file extension without a dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	default:
		return ""
	}
}

// MimeType returns the media type of the format.
func (f Format) MimeType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// FormatFromPath picks the format from a file extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return 0, &UnsupportedFormatError{Format: ext}
	}
}

// encode writes img in the given format. quality only applies to JPEG and
// is clamped to [0, 100], with 0 treated as 1.
func encode(w io.Writer, img *image.NRGBA, format Format, quality int) error {
	switch format {
	case FormatPNG:
		if err := intImage.EncodePNG(w, img); err != nil {
			return fmt.Errorf("%w: %w", ErrImageEncode, err)
		}
	case FormatJPEG:
		quality = max(1, min(quality, 100))
		if err := intImage.EncodeJPEG(w, img, quality); err != nil {
			return fmt.Errorf("%w: %w", ErrImageEncode, err)
		}
	default:
		return &UnsupportedFormatError{Format: strings.ToLower(format.String())}
	}
	return nil
}
