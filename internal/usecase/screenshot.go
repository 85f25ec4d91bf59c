package usecase

import "github.com/bryanchriswhite/winsnap/internal/logger"

// TakeScreenshot captures the window with a given title and saves it
type TakeScreenshot struct {
	windows ScreenshotGateway
	fs      FileSystemGateway
}

// NewTakeScreenshot creates the use case
func NewTakeScreenshot(windows ScreenshotGateway, fs FileSystemGateway) *TakeScreenshot {
	return &TakeScreenshot{windows: windows, fs: fs}
}

// Execute finds, captures and saves in that order, stopping at the first
// failure. Errors are returned unchanged.
func (u *TakeScreenshot) Execute(title, outputPath string) (Result, error) {
	log := logger.WithComponent("usecase")

	win, found, err := u.windows.FindWindow(title)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &WindowNotFoundError{Title: title}
	}

	log.Debug().
		Str("title", title).
		Stringer("window", win).
		Msg("Found window")

	img, err := u.windows.TakeScreenshot(win)
	if err != nil {
		return nil, err
	}
	if err := u.fs.SaveImage(img, outputPath); err != nil {
		return nil, err
	}

	log.Info().
		Stringer("window", win).
		Str("path", outputPath).
		Msg("Screenshot saved")
	return ScreenshotResult{Path: outputPath}, nil
}
