package window

import (
	"errors"
	"fmt"
)

// ErrPropertyNotSet reports that a window has no value for a property.
var ErrPropertyNotSet = errors.New("property not set")

// TreeQueryError reports a failed children query. It aborts the whole
// traversal since a partial tree cannot be trusted.
type TreeQueryError struct {
	Window Handle
	Err    error
}

func (e *TreeQueryError) Error() string {
	return fmt.Sprintf("Unable to query the window tree for window %s: %v", e.Window, e.Err)
}

func (e *TreeQueryError) Unwrap() error { return e.Err }

// PropertyReadError reports a property read that failed for a reason other
// than the property being absent. Title resolution absorbs it.
type PropertyReadError struct {
	Window   Handle
	Property string
	Err      error
}

func (e *PropertyReadError) Error() string {
	return fmt.Sprintf("Unable to read the window property %s of %s: %v", e.Property, e.Window, e.Err)
}

func (e *PropertyReadError) Unwrap() error { return e.Err }
