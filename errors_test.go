package clove

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/clove/text"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"dimensions", &DimensionsError{Width: 0, Height: 5}, ErrInvalidDimensions, "clove: invalid dimensions 0x5"},
		{"color", &ColorValueError{Component: "hex", Value: "#zz"}, ErrInvalidColorValue, `clove: invalid hex value "#zz"`},
		{"format", &UnsupportedFormatError{Format: "webp"}, ErrUnsupportedFormat, `clove: unsupported format "webp"`},
		{"layer id", &LayerNotFoundError{ID: 7}, ErrLayerNotFound, "clove: layer 7 not found"},
		{"layer name", &LayerNotFoundError{Name: "bg"}, ErrLayerNotFound, `clove: layer "bg" not found`},
		{"layer state", &LayerStateError{ID: 2, WantWidth: 4, WantHeight: 4, GotWidth: 2, GotHeight: 2}, ErrLayerState, "clove: layer 2 buffer is 2x2, want 4x4"},
		{"font", &text.FontNotFoundError{Family: "X"}, ErrFontNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
			if errors.Is(wrapped, ErrInvalidState) {
				t.Errorf("%v matches ErrInvalidState", wrapped)
			}
			if tt.msg != "" && tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.msg)
			}
		})
	}
}

func TestCheckDimensions(t *testing.T) {
	if err := checkDimensions(1, 1); err != nil {
		t.Errorf("checkDimensions(1, 1) = %v", err)
	}
	if err := checkDimensions(MaxDimension, MaxDimension); err != nil {
		t.Errorf("checkDimensions(MaxDimension, MaxDimension) = %v", err)
	}
	for _, d := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {MaxDimension + 1, 1}, {1, MaxDimension + 1}, {1 << 31, 1 << 31}} {
		var de *DimensionsError
		if err := checkDimensions(d[0], d[1]); !errors.As(err, &de) || de.Width != d[0] || de.Height != d[1] {
			t.Errorf("checkDimensions(%d, %d) = %v", d[0], d[1], err)
		}
	}
}
