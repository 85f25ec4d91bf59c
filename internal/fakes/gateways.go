package fakes

import (
	"errors"
	"image"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// WindowSystem is a configurable window system gateway. Unset results fail.
type WindowSystem struct {
	FindWindowResult     func() (window.Handle, bool, error)
	TakeScreenshotResult func() (*capture.Raster, error)
	ListWindowsResult    func() ([]string, error)

	Searched []string
	Captured []window.Handle
}

func (w *WindowSystem) FindWindow(title string) (window.Handle, bool, error) {
	w.Searched = append(w.Searched, title)
	if w.FindWindowResult == nil {
		return 0, false, errors.New("Unable to list windows.")
	}
	return w.FindWindowResult()
}

func (w *WindowSystem) TakeScreenshot(win window.Handle) (*capture.Raster, error) {
	w.Captured = append(w.Captured, win)
	if w.TakeScreenshotResult == nil {
		return nil, errors.New("Unable to take screenshot.")
	}
	return w.TakeScreenshotResult()
}

func (w *WindowSystem) ListWindows() ([]string, error) {
	if w.ListWindowsResult == nil {
		return nil, errors.New("Unable to list windows.")
	}
	return w.ListWindowsResult()
}

// Saved is one recorded SaveImage call
type Saved struct {
	Image image.Image
	Path  string
}

// FileSystem records saved images. Without a Result it fails every save.
type FileSystem struct {
	Saved  []Saved
	Result func() error
}

func (f *FileSystem) SaveImage(img image.Image, path string) error {
	f.Saved = append(f.Saved, Saved{Image: img, Path: path})
	if f.Result == nil {
		return errors.New("Unable to save file")
	}
	return f.Result()
}
