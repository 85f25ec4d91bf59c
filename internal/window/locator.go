package window

import "github.com/bryanchriswhite/winsnap/internal/logger"

// Locator finds a window by exact title.
type Locator struct {
	walker   Walker
	resolver TitleResolver
}

// NewLocator creates a locator from a walker and a title resolver
func NewLocator(walker Walker, resolver TitleResolver) *Locator {
	return &Locator{walker: walker, resolver: resolver}
}

// Find returns the first window, in pre-order from root, whose title equals
// title exactly. The root itself is a candidate. Windows without a title
// never match, not even an empty search string.
func (l *Locator) Find(root Handle, title string) (Handle, bool, error) {
	if l.matches(root, title) {
		return root, true, nil
	}
	return l.findBelow(root, title)
}

func (l *Locator) findBelow(parent Handle, title string) (Handle, bool, error) {
	return l.walker.Walk(parent, func(child Handle) (Handle, bool, error) {
		if l.matches(child, title) {
			return child, true, nil
		}
		return l.findBelow(child, title)
	})
}

func (l *Locator) matches(window Handle, title string) bool {
	got, ok := l.resolver.Resolve(window)
	logger.WithWindow("locator", uint64(window)).Debug().
		Bool("titled", ok).
		Str("title", got).
		Msg("Discovering window")
	return ok && got == title
}
