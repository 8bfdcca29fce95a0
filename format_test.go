package clove

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
		ext  string
	}{
		{"out.png", FormatPNG, true, ""},
		{"dir/OUT.PNG", FormatPNG, true, ""},
		{"photo.jpg", FormatJPEG, true, ""},
		{"photo.jpeg", FormatJPEG, true, ""},
		{"anim.webp", FormatWebP, true, ""},
		{"anim.gif", 0, false, "gif"},
		{"README", 0, false, ""},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
			}
			continue
		}
		var ue *UnsupportedFormatError
		if !errors.As(err, &ue) || ue.Format != tt.ext {
			t.Errorf("FormatFromPath(%q) error = %v, want unsupported %q", tt.path, err, tt.ext)
		}
	}
}

func TestFormatNames(t *testing.T) {
	tests := []struct {
		f               Format
		name, ext, mime string
	}{
		{FormatPNG, "PNG", "png", "image/png"},
		{FormatJPEG, "JPEG", "jpg", "image/jpeg"},
		{FormatWebP, "WebP", "webp", "image/webp"},
	}
	for _, tt := range tests {
		if tt.f.String() != tt.name || tt.f.Extension() != tt.ext || tt.f.MimeType() != tt.mime {
			t.Errorf("%v: got %q %q %q", tt.f, tt.f.String(), tt.f.Extension(), tt.f.MimeType())
		}
	}
}

func TestEncodeQualityClamped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for _, q := range []int{-10, 0, 1, 100, 500} {
		var buf bytes.Buffer
		if err := encode(&buf, img, FormatJPEG, q); err != nil {
			t.Errorf("encode(JPEG, %d) error = %v", q, err)
		}
		if buf.Len() == 0 {
			t.Errorf("encode(JPEG, %d) wrote nothing", q)
		}
	}
	if err := encode(&bytes.Buffer{}, img, FormatWebP, 90); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("encode(WebP) error = %v", err)
	}
}
