package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFamily is returned when a family id has no registered font
	// and no fallback.
	ErrUnknownFamily = errors.New("text: unknown font family")
)

// FontError is returned when registered font data cannot be parsed.
type FontError struct {
	Family int
	Name   string
	Err    error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("text: family %d (%s): %v", e.Family, e.Name, e.Err)
}

func (e *FontError) Unwrap() error { return e.Err }
