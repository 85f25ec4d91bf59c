package usecase

import (
	"image"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// ScreenshotGateway locates and captures windows by title
type ScreenshotGateway interface {
	FindWindow(title string) (window.Handle, bool, error)
	TakeScreenshot(win window.Handle) (*capture.Raster, error)
}

// ListWindowsGateway enumerates window titles
type ListWindowsGateway interface {
	ListWindows() ([]string, error)
}

// FileSystemGateway persists a captured image
type FileSystemGateway interface {
	SaveImage(img image.Image, path string) error
}
