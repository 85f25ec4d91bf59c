package usecase

import "fmt"

// WindowNotFoundError reports that no window carries the searched title
type WindowNotFoundError struct {
	Title string
}

func (e *WindowNotFoundError) Error() string {
	return fmt.Sprintf("Unable to find the window with title %q", e.Title)
}
