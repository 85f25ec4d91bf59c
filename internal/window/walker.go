package window

import "github.com/bryanchriswhite/winsnap/internal/logger"

// VisitFunc is called once per direct child. Returning found=true stops the
// walk and hands the returned handle back to the caller.
type VisitFunc func(child Handle) (result Handle, found bool, err error)

// Walker iterates the direct children of a window.
type Walker interface {
	Walk(parent Handle, visit VisitFunc) (Handle, bool, error)
}

// TreeWalker walks the window tree of a display server session.
type TreeWalker struct {
	session Session
}

var _ Walker = (*TreeWalker)(nil)

// NewTreeWalker creates a walker over the given session
func NewTreeWalker(session Session) *TreeWalker {
	return &TreeWalker{session: session}
}

// Walk visits the children of parent in server order and returns the first
// result a visitor reports as found. A window without children yields no
// result. The child list is released on every return path.
func (w *TreeWalker) Walk(parent Handle, visit VisitFunc) (Handle, bool, error) {
	children, err := w.session.QueryChildren(parent)
	if err != nil {
		return 0, false, &TreeQueryError{Window: parent, Err: err}
	}
	defer children.Release()

	handles := children.Handles()
	logger.WithWindow("tree-walker", uint64(parent)).Debug().
		Int("child_count", len(handles)).
		Msg("Walking children")

	for _, child := range handles {
		result, found, err := visit(child)
		if err != nil {
			return 0, false, err
		}
		if found {
			return result, true, nil
		}
	}
	return 0, false, nil
}
