package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/bryanchriswhite/winsnap/internal/capture"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// allPlanes requests every bit plane of the drawable
const allPlanes = 0xffffffff

// Image reads the window rectangle as a ZPixmap at native depth and
// attaches the visual's channel masks and the server's pixel layout
func (s *Session) Image(win window.Handle, geom capture.Geometry) (*capture.PixelImage, error) {
	xwin, err := toWindow(win)
	if err != nil {
		return nil, err
	}

	attrs, err := xproto.GetWindowAttributes(s.conn, xwin).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get window attributes: %w", err)
	}

	drawable, release := s.drawableFor(xwin)
	defer release()

	reply, err := xproto.GetImage(
		s.conn,
		xproto.ImageFormatZPixmap,
		drawable,
		0, 0,
		uint16(geom.Width), uint16(geom.Height),
		allPlanes,
	).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, capture.ErrEmptyImage
	}

	// Pixmaps carry no visual; fall back to the window's.
	visual := reply.Visual
	if visual == 0 {
		visual = attrs.Visual
	}
	masks, ok := visualMasks(s.xu.Screen(), visual)
	if !ok {
		return nil, fmt.Errorf("visual %#x not found on screen", visual)
	}

	format, ok := pixmapFormat(s.xu.Setup(), reply.Depth)
	if !ok {
		return nil, fmt.Errorf("no pixmap format for depth %d", reply.Depth)
	}

	return &capture.PixelImage{
		Width:        geom.Width,
		Height:       geom.Height,
		Depth:        int(reply.Depth),
		BitsPerPixel: int(format.BitsPerPixel),
		Stride:       scanlineStride(geom.Width, int(format.BitsPerPixel), int(format.ScanlinePad)),
		ByteOrder:    imageByteOrder(s.xu.Setup()),
		Masks:        masks,
		Data:         reply.Data,
	}, nil
}

// drawableFor returns the drawable to read pixels from and a function
// releasing anything acquired for it. With Composite, that is the window's
// backing pixmap; otherwise the window itself.
func (s *Session) drawableFor(win xproto.Window) (xproto.Drawable, func()) {
	noop := func() {}
	if !s.compositeEnabled {
		return xproto.Drawable(win), noop
	}

	log := logger.WithWindow("x11-session", uint64(win))

	err := composite.RedirectWindowChecked(s.conn, win, composite.RedirectAutomatic).Check()
	if err != nil {
		log.Warn().
			Err(err).
			Msg("Failed to redirect window via Composite, falling back to direct capture")
		return xproto.Drawable(win), noop
	}
	unredirect := func() {
		composite.UnredirectWindow(s.conn, win, composite.RedirectAutomatic)
	}

	pixmap, err := xproto.NewPixmapId(s.conn)
	if err != nil {
		return xproto.Drawable(win), unredirect
	}
	if err := composite.NameWindowPixmapChecked(s.conn, win, pixmap).Check(); err != nil {
		log.Debug().Err(err).Msg("NameWindowPixmap failed, falling back to direct capture")
		return xproto.Drawable(win), unredirect
	}

	log.Debug().Msg("Using Composite pixmap for window capture")
	return xproto.Drawable(pixmap), func() {
		xproto.FreePixmap(s.conn, pixmap)
		unredirect()
	}
}

// visualMasks looks up the channel masks of a visual on the screen
func visualMasks(screen *xproto.ScreenInfo, visual xproto.Visualid) (capture.ChannelMasks, bool) {
	if screen == nil {
		return capture.ChannelMasks{}, false
	}
	for _, depth := range screen.AllowedDepths {
		for _, v := range depth.Visuals {
			if v.VisualId == visual {
				return capture.ChannelMasks{
					Red:   v.RedMask,
					Green: v.GreenMask,
					Blue:  v.BlueMask,
				}, true
			}
		}
	}
	return capture.ChannelMasks{}, false
}

// pixmapFormat finds the ZPixmap layout the server uses for a depth
func pixmapFormat(setup *xproto.SetupInfo, depth byte) (xproto.Format, bool) {
	if setup == nil {
		return xproto.Format{}, false
	}
	for _, f := range setup.PixmapFormats {
		if f.Depth == depth {
			return f, true
		}
	}
	return xproto.Format{}, false
}

// scanlineStride is the byte length of one scanline, padded to pad bits
func scanlineStride(width, bitsPerPixel, pad int) int {
	if pad <= 0 {
		pad = 8
	}
	bitsPerLine := width * bitsPerPixel
	return ((bitsPerLine + pad - 1) / pad) * pad / 8
}

func imageByteOrder(setup *xproto.SetupInfo) capture.ByteOrder {
	if setup != nil && setup.ImageByteOrder == xproto.ImageOrderMSBFirst {
		return capture.MSBFirst
	}
	return capture.LSBFirst
}
