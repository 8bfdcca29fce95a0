package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound matches every *FontNotFoundError.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrFontLoad matches every *FontLoadError.
	ErrFontLoad = errors.New("text: font load failed")
)

// FontNotFoundError is returned when a family is not registered.
type FontNotFoundError struct {
	Family string
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("text: font family %q not registered", e.Family)
}

// Is reports whether target is ErrFontNotFound.
func (e *FontNotFoundError) Is(target error) bool {
	return target == ErrFontNotFound
}

// FontLoadError is returned when font data cannot be read or parsed.
type FontLoadError struct {
	Name string
	Path string // empty for in-memory data
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("text: load font %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("text: load font %q from %s: %v", e.Name, e.Path, e.Err)
}

// Is reports whether target is ErrFontLoad.
func (e *FontLoadError) Is(target error) bool {
	return target == ErrFontLoad
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}
