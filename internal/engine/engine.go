package engine

import (
	"sync"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// Session is everything the engine needs from a display server connection
type Session interface {
	window.Session
	capture.Source
}

// Engine ties the locator, enumerator and capturer to one display server
// session. Calls are serialized so the engine can back concurrent callers
// such as the HTTP API.
type Engine struct {
	session    Session
	locator    *window.Locator
	enumerator *window.Enumerator
	capturer   *capture.Capturer
	mu         sync.Mutex
}

// New creates an engine owning session
func New(session Session) *Engine {
	walker := window.NewTreeWalker(session)
	resolver := window.NewPropertyResolver(session)

	return &Engine{
		session:    session,
		locator:    window.NewLocator(walker, resolver),
		enumerator: window.NewEnumerator(walker, resolver),
		capturer:   capture.NewCapturer(session),
	}
}

// FindWindow returns the first window whose title equals title exactly
func (e *Engine) FindWindow(title string) (window.Handle, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.locator.Find(e.session.Root(), title)
}

// TakeScreenshot captures a window
func (e *Engine) TakeScreenshot(win window.Handle) (*capture.Raster, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.capturer.Capture(win)
}

// ListWindows returns the titles of all titled windows in traversal order
func (e *Engine) ListWindows() ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enumerator.List(e.session.Root())
}
