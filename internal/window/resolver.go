package window

import (
	"errors"

	"github.com/bryanchriswhite/winsnap/internal/logger"
)

// TitleResolver returns the display title of a window, if it has one.
type TitleResolver interface {
	Resolve(window Handle) (string, bool)
}

// PropertyResolver resolves titles from _NET_WM_NAME first and the legacy
// WM_NAME second. Clients differ in which of the two they populate, so a
// failed or missing modern property always falls through to the legacy one.
type PropertyResolver struct {
	session Session
}

var _ TitleResolver = (*PropertyResolver)(nil)

// NewPropertyResolver creates a resolver reading from the given session
func NewPropertyResolver(session Session) *PropertyResolver {
	return &PropertyResolver{session: session}
}

// Resolve never fails: read errors degrade to an absent title.
func (r *PropertyResolver) Resolve(window Handle) (string, bool) {
	title, err := r.session.Property(window, NetWMName, UTF8String)
	if err == nil {
		return title, true
	}
	if !errors.Is(err, ErrPropertyNotSet) {
		logger.WithWindow("title-resolver", uint64(window)).Debug().
			Err(err).
			Msg("_NET_WM_NAME read failed, trying WM_NAME")
	}

	title, err = r.session.LegacyName(window)
	if err == nil {
		return title, true
	}
	if !errors.Is(err, ErrPropertyNotSet) {
		logger.WithWindow("title-resolver", uint64(window)).Debug().
			Err(err).
			Msg("WM_NAME read failed, window has no title")
	}
	return "", false
}
