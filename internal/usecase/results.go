package usecase

// Result is the outcome of a successful use case
type Result interface {
	isResult()
}

// ListWindowsResult carries the enumerated titles
type ListWindowsResult struct {
	Windows []string
}

// ScreenshotResult marks a saved capture
type ScreenshotResult struct {
	Path string
}

func (ListWindowsResult) isResult() {}
func (ScreenshotResult) isResult()  {}
