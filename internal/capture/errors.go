package capture

import (
	"errors"
	"fmt"

	"github.com/bryanchriswhite/winsnap/internal/window"
)

// ErrEmptyImage reports that the server returned no pixel data.
var ErrEmptyImage = errors.New("empty image")

// GeometryError reports that a window's geometry could not be read.
type GeometryError struct {
	Window window.Handle
	Err    error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("Unable to get the window attributes of %s: %v", e.Window, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// PixelReadError reports that a window's pixels could not be read or decoded.
type PixelReadError struct {
	Window window.Handle
	Err    error
}

func (e *PixelReadError) Error() string {
	return fmt.Sprintf("Unable to get the pixel data from window %s: %v", e.Window, e.Err)
}

func (e *PixelReadError) Unwrap() error { return e.Err }
