package fakes

import (
	"errors"

	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// Session is an in-memory display server. It records how many child lists
// were handed out and released.
type Session struct {
	RootHandle window.Handle

	children    map[window.Handle][]window.Handle
	netNames    map[window.Handle]string
	legacyNames map[window.Handle]string
	propErrors  map[window.Handle]error
	treeErrors  map[window.Handle]error
	geometries  map[window.Handle]capture.Geometry
	images      map[window.Handle]*capture.PixelImage

	GeometryErr error
	ImageErr    error

	Acquired int
	Released int
	// Queried lists the windows whose children were queried, in order.
	Queried []window.Handle
}

// NewSession creates a session with an untitled root
func NewSession(root window.Handle) *Session {
	return &Session{
		RootHandle:  root,
		children:    make(map[window.Handle][]window.Handle),
		netNames:    make(map[window.Handle]string),
		legacyNames: make(map[window.Handle]string),
		propErrors:  make(map[window.Handle]error),
		treeErrors:  make(map[window.Handle]error),
		geometries:  make(map[window.Handle]capture.Geometry),
		images:      make(map[window.Handle]*capture.PixelImage),
	}
}

// AddChild appends child under parent with a _NET_WM_NAME title
func (s *Session) AddChild(parent, child window.Handle, title string) *Session {
	s.children[parent] = append(s.children[parent], child)
	s.netNames[child] = title
	return s
}

// AddUntitled appends child under parent without any name property
func (s *Session) AddUntitled(parent, child window.Handle) *Session {
	s.children[parent] = append(s.children[parent], child)
	return s
}

// SetNetName sets the _NET_WM_NAME of a window
func (s *Session) SetNetName(win window.Handle, title string) *Session {
	s.netNames[win] = title
	return s
}

// ClearNetName removes the _NET_WM_NAME of a window
func (s *Session) ClearNetName(win window.Handle) *Session {
	delete(s.netNames, win)
	return s
}

// SetLegacyName sets the WM_NAME of a window
func (s *Session) SetLegacyName(win window.Handle, title string) *Session {
	s.legacyNames[win] = title
	return s
}

// FailProperty makes the _NET_WM_NAME read of a window fail with err
func (s *Session) FailProperty(win window.Handle, err error) *Session {
	s.propErrors[win] = err
	return s
}

// FailTree makes the children query of a window fail with err
func (s *Session) FailTree(win window.Handle, err error) *Session {
	s.treeErrors[win] = err
	return s
}

// SetImage sets the geometry and pixels returned for a window
func (s *Session) SetImage(win window.Handle, geom capture.Geometry, img *capture.PixelImage) *Session {
	s.geometries[win] = geom
	s.images[win] = img
	return s
}

// Balanced reports whether every acquired child list was released
func (s *Session) Balanced() bool {
	return s.Acquired == s.Released
}

func (s *Session) Root() window.Handle {
	return s.RootHandle
}

func (s *Session) QueryChildren(win window.Handle) (window.ChildList, error) {
	s.Queried = append(s.Queried, win)
	if err, ok := s.treeErrors[win]; ok {
		return nil, err
	}
	s.Acquired++
	handles := make([]window.Handle, len(s.children[win]))
	copy(handles, s.children[win])
	return &childList{session: s, handles: handles}, nil
}

func (s *Session) Property(win window.Handle, name, typ string) (string, error) {
	if name != window.NetWMName || typ != window.UTF8String {
		return "", window.ErrPropertyNotSet
	}
	if err, ok := s.propErrors[win]; ok {
		return "", &window.PropertyReadError{Window: win, Property: name, Err: err}
	}
	title, ok := s.netNames[win]
	if !ok {
		return "", window.ErrPropertyNotSet
	}
	return title, nil
}

func (s *Session) LegacyName(win window.Handle) (string, error) {
	title, ok := s.legacyNames[win]
	if !ok {
		return "", window.ErrPropertyNotSet
	}
	return title, nil
}

func (s *Session) Geometry(win window.Handle) (capture.Geometry, error) {
	if s.GeometryErr != nil {
		return capture.Geometry{}, s.GeometryErr
	}
	geom, ok := s.geometries[win]
	if !ok {
		return capture.Geometry{}, errors.New("BadWindow")
	}
	return geom, nil
}

func (s *Session) Image(win window.Handle, geom capture.Geometry) (*capture.PixelImage, error) {
	if s.ImageErr != nil {
		return nil, s.ImageErr
	}
	return s.images[win], nil
}

type childList struct {
	session  *Session
	handles  []window.Handle
	released bool
}

func (l *childList) Handles() []window.Handle {
	out := make([]window.Handle, len(l.handles))
	copy(out, l.handles)
	return out
}

func (l *childList) Release() {
	if l.released {
		panic("child list released twice")
	}
	l.released = true
	l.session.Released++
}

// UniformImage builds a 32 bpp little-endian image where every pixel is the
// same native word, with 0xFF0000/0x00FF00/0x0000FF masks
func UniformImage(width, height int, pixel uint32) *capture.PixelImage {
	data := make([]byte, width*height*4)
	for i := 0; i < len(data); i += 4 {
		data[i] = byte(pixel)
		data[i+1] = byte(pixel >> 8)
		data[i+2] = byte(pixel >> 16)
		data[i+3] = byte(pixel >> 24)
	}
	return &capture.PixelImage{
		Width:        width,
		Height:       height,
		Depth:        24,
		BitsPerPixel: 32,
		Stride:       width * 4,
		ByteOrder:    capture.LSBFirst,
		Masks:        capture.ChannelMasks{Red: 0xFF0000, Green: 0x00FF00, Blue: 0x0000FF},
		Data:         data,
	}
}
