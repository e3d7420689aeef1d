package scene

import (
	"fmt"
	"strings"
)

// DocumentType is the type marker every scene document carries.
const DocumentType = "excalidraw"

// FormatError reports input that is not a scene document.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scene: invalid document: %s: %v", e.Reason, e.Err)
	}
	return "scene: invalid document: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

// FrameNotFoundError is returned when a frame selector matches neither a
// frame name nor a frame id.
type FrameNotFoundError struct {
	Selector string
	// Available lists the frames of the scene as "name (id)".
	Available []string
}

func (e *FrameNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("scene: frame %q not found: scene has no frames", e.Selector)
	}
	return fmt.Sprintf("scene: frame %q not found; available: %s", e.Selector, strings.Join(e.Available, ", "))
}

// EmptyFrameError is returned when the selected frame contains no elements.
type EmptyFrameError struct {
	Frame string
}

func (e *EmptyFrameError) Error() string {
	return fmt.Sprintf("scene: frame %q contains no elements", e.Frame)
}
