package clove

import (
	"errors"
	"fmt"

	"github.com/gogpu/clove/text"
)

// Sentinel errors. Typed errors below match them under errors.Is.
var (
	// ErrInvalidDimensions is returned for a zero, negative or oversized
	// canvas, layer or image size.
	ErrInvalidDimensions = errors.New("clove: invalid dimensions")

	// ErrInvalidColorValue is returned when a color component or a color
	// string cannot be parsed or is out of range.
	ErrInvalidColorValue = errors.New("clove: invalid color value")

	// ErrInvalidBlendMode is returned by ParseBlendMode for unknown names.
	ErrInvalidBlendMode = errors.New("clove: invalid blend mode")

	// ErrImageLoad wraps failures to read or decode an image.
	ErrImageLoad = errors.New("clove: image load failed")

	// ErrImageEncode wraps failures to encode or write an image.
	ErrImageEncode = errors.New("clove: image encode failed")

	// ErrUnsupportedFormat is returned for output formats clove cannot write.
	ErrUnsupportedFormat = errors.New("clove: unsupported format")

	// ErrLayerNotFound is returned when a layer lookup fails.
	ErrLayerNotFound = errors.New("clove: layer not found")

	// ErrInvalidState is returned when an operation is called in a state
	// that does not allow it, such as restoring from an empty state stack
	// or filling an empty path.
	ErrInvalidState = errors.New("clove: invalid state")

	// ErrLayerState is returned when a layer buffer no longer matches the
	// layer's declared size.
	ErrLayerState = errors.New("clove: inconsistent layer state")

	// ErrFontNotFound is returned when a font family is not registered.
	ErrFontNotFound = text.ErrFontNotFound

	// ErrFontLoad is returned when a font file cannot be read or parsed.
	ErrFontLoad = text.ErrFontLoad
)

// DimensionsError reports a rejected width and height.
type DimensionsError struct {
	Width, Height int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("clove: invalid dimensions %dx%d", e.Width, e.Height)
}

// Is reports whether target is ErrInvalidDimensions.
func (e *DimensionsError) Is(target error) bool { return target == ErrInvalidDimensions }

// ColorValueError reports an invalid color component or color string.
type ColorValueError struct {
	Component string
	Value     string
}

func (e *ColorValueError) Error() string {
	return fmt.Sprintf("clove: invalid %s value %q", e.Component, e.Value)
}

// Is reports whether target is ErrInvalidColorValue.
func (e *ColorValueError) Is(target error) bool { return target == ErrInvalidColorValue }

// UnsupportedFormatError reports an output format clove cannot write.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("clove: unsupported format %q", e.Format)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// LayerNotFoundError reports a failed lookup by ID or by name.
// Exactly one of ID and Name is set.
type LayerNotFoundError struct {
	ID   LayerID
	Name string
}

func (e *LayerNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("clove: layer %q not found", e.Name)
	}
	return fmt.Sprintf("clove: layer %d not found", e.ID)
}

// Is reports whether target is ErrLayerNotFound.
func (e *LayerNotFoundError) Is(target error) bool { return target == ErrLayerNotFound }

// LayerStateError reports a layer whose buffer size differs from its
// effective size.
type LayerStateError struct {
	ID         LayerID
	WantWidth  int
	WantHeight int
	GotWidth   int
	GotHeight  int
}

func (e *LayerStateError) Error() string {
	return fmt.Sprintf("clove: layer %d buffer is %dx%d, want %dx%d",
		e.ID, e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// Is reports whether target is ErrLayerState.
func (e *LayerStateError) Is(target error) bool { return target == ErrLayerState }

// checkDimensions accepts sides in [1, MaxDimension], which also keeps
// width*height*4 from overflowing.
func checkDimensions(width, height int) error {
	if width < 1 || height < 1 || width > MaxDimension || height > MaxDimension {
		return &DimensionsError{Width: width, Height: height}
	}
	return nil
}
