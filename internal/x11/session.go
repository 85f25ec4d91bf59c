package x11

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// Options configure a Session
type Options struct {
	// Display is the X display to connect to; empty means $DISPLAY
	Display string

	// UseComposite reads pixels from the Composite backing pixmap when the
	// extension is available
	UseComposite bool
}

// ConnectionError reports that the X server could not be reached
type ConnectionError struct {
	Display string
	Err     error
}

func (e *ConnectionError) Error() string {
	display := e.Display
	if display == "" {
		display = "$DISPLAY"
	}
	return fmt.Sprintf("Unable to open X server display %s: %v", display, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Session is a connection to an X server. It implements window.Session and
// capture.Source and must not be used from several goroutines at once.
type Session struct {
	xu               *xgbutil.XUtil
	conn             *xgb.Conn
	root             xproto.Window
	compositeEnabled bool
}

var (
	_ window.Session = (*Session)(nil)
	_ capture.Source = (*Session)(nil)
)

// Connect opens a session on the X server
func Connect(opts Options) (*Session, error) {
	log := logger.WithComponent("x11-session")

	conn, err := xgb.NewConnDisplay(opts.Display)
	if err != nil {
		return nil, &ConnectionError{Display: opts.Display, Err: err}
	}

	xu, err := xgbutil.NewConnXgb(conn)
	if err != nil {
		conn.Close()
		return nil, &ConnectionError{Display: opts.Display, Err: err}
	}

	s := &Session{
		xu:   xu,
		conn: conn,
		root: xu.RootWin(),
	}

	if opts.UseComposite {
		if err := composite.Init(conn); err != nil {
			log.Warn().
				Err(err).
				Msg("Composite extension not available - capturing window drawables directly")
		} else {
			s.compositeEnabled = true
			log.Debug().Msg("Composite extension initialized")
		}
	}

	if wm, err := ewmh.GetEwmhWM(xu); err == nil {
		log.Debug().Str("window_manager", wm).Msg("Connected to X server")
	} else {
		log.Debug().Msg("Connected to X server (no EWMH window manager)")
	}

	return s, nil
}

// Close closes the X connection
func (s *Session) Close() error {
	s.conn.Close()
	return nil
}

// Root returns the root window of the default screen
func (s *Session) Root() window.Handle {
	return window.Handle(s.root)
}

// QueryChildren lists the direct children of a window in stacking order
func (s *Session) QueryChildren(win window.Handle) (window.ChildList, error) {
	xwin, err := toWindow(win)
	if err != nil {
		return nil, err
	}

	tree, err := xproto.QueryTree(s.conn, xwin).Reply()
	if err != nil {
		return nil, err
	}
	return newChildList(tree.Children), nil
}

// Property reads a property of the given type as a string. The value is cut
// at the first NUL byte.
func (s *Session) Property(win window.Handle, name, typ string) (string, error) {
	xwin, err := toWindow(win)
	if err != nil {
		return "", err
	}

	nameAtom, err := xprop.Atm(s.xu, name)
	if err != nil {
		return "", &window.PropertyReadError{Window: win, Property: name, Err: err}
	}
	typeAtom, err := xprop.Atm(s.xu, typ)
	if err != nil {
		return "", &window.PropertyReadError{Window: win, Property: name, Err: err}
	}

	reply, err := xproto.GetProperty(
		s.conn,
		false,
		xwin,
		nameAtom,
		typeAtom,
		0,
		(1<<32)-1,
	).Reply()
	if err != nil {
		return "", &window.PropertyReadError{Window: win, Property: name, Err: err}
	}

	if unset(reply) {
		return "", window.ErrPropertyNotSet
	}
	if reply.Type != typeAtom {
		return "", &window.PropertyReadError{
			Window:   win,
			Property: name,
			Err:      fmt.Errorf("property has type %d, want %s", reply.Type, typ),
		}
	}
	if reply.Format != 8 {
		return "", &window.PropertyReadError{
			Window:   win,
			Property: name,
			Err:      fmt.Errorf("property has format %d, want 8", reply.Format),
		}
	}

	value, _, _ := strings.Cut(string(reply.Value), "\x00")
	return value, nil
}

// LegacyName reads WM_NAME through ICCCM. A window without WM_NAME yields
// ErrPropertyNotSet.
func (s *Session) LegacyName(win window.Handle) (string, error) {
	xwin, err := toWindow(win)
	if err != nil {
		return "", err
	}

	name, err := icccm.WmNameGet(s.xu, xwin)
	if err != nil {
		// icccm reports a missing property as a plain error; ask the server
		// whether WM_NAME exists at all.
		reply, qerr := xproto.GetProperty(s.conn, false, xwin, xproto.AtomWmName, xproto.AtomAny, 0, 0).Reply()
		if qerr == nil && unset(reply) {
			return "", window.ErrPropertyNotSet
		}
		return "", &window.PropertyReadError{Window: win, Property: "WM_NAME", Err: err}
	}
	name, _, _ = strings.Cut(name, "\x00")
	return name, nil
}

// unset reports whether a GetProperty reply describes a missing property
func unset(reply *xproto.GetPropertyReply) bool {
	return reply == nil || reply.Type == xproto.AtomNone || reply.Format == 0
}

// Geometry returns the current size of a window
func (s *Session) Geometry(win window.Handle) (capture.Geometry, error) {
	xwin, err := toWindow(win)
	if err != nil {
		return capture.Geometry{}, err
	}

	geom, err := xproto.GetGeometry(s.conn, xproto.Drawable(xwin)).Reply()
	if err != nil {
		return capture.Geometry{}, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return capture.Geometry{Width: int(geom.Width), Height: int(geom.Height)}, nil
}

var errWindowRange = errors.New("window id out of range for X11")

func toWindow(win window.Handle) (xproto.Window, error) {
	if uint64(win) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s", errWindowRange, win)
	}
	return xproto.Window(win), nil
}

// childList is the reply of one QueryTree request
type childList struct {
	handles []window.Handle
}

func newChildList(children []xproto.Window) *childList {
	handles := make([]window.Handle, len(children))
	for i, c := range children {
		handles[i] = window.Handle(c)
	}
	return &childList{handles: handles}
}

func (l *childList) Handles() []window.Handle {
	out := make([]window.Handle, len(l.handles))
	copy(out, l.handles)
	return out
}

func (l *childList) Release() {
	l.handles = nil
}
