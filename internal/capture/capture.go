package capture

import (
	"fmt"

	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

// Source reads window geometry and raw pixels from a display server
type Source interface {
	// Geometry returns the current size of a window
	Geometry(win window.Handle) (Geometry, error)

	// Image returns the raw pixels of the window rectangle of the given
	// geometry at the window's native depth, with its channel masks
	Image(win window.Handle, geom Geometry) (*PixelImage, error)
}

// Capturer converts a window's native pixels into an RGB raster
type Capturer struct {
	source Source
}

// NewCapturer creates a capturer reading from source
func NewCapturer(source Source) *Capturer {
	return &Capturer{source: source}
}

// Capture snapshots a window. The raster takes its size from the geometry
// read first; a resize before the pixel read is not compensated for.
// Failures are terminal and never retried.
func (c *Capturer) Capture(win window.Handle) (*Raster, error) {
	log := logger.WithWindow("capturer", uint64(win))

	geom, err := c.source.Geometry(win)
	if err != nil {
		return nil, &GeometryError{Window: win, Err: err}
	}
	if geom.Width <= 0 || geom.Height <= 0 {
		return nil, &GeometryError{Window: win, Err: fmt.Errorf("window has empty geometry %dx%d", geom.Width, geom.Height)}
	}

	log.Debug().
		Int("width", geom.Width).
		Int("height", geom.Height).
		Msg("Capturing window")

	img, err := c.source.Image(win, geom)
	if err != nil {
		return nil, &PixelReadError{Window: win, Err: err}
	}
	if img == nil || len(img.Data) == 0 {
		return nil, &PixelReadError{Window: win, Err: ErrEmptyImage}
	}
	if img.Width < geom.Width || img.Height < geom.Height {
		return nil, &PixelReadError{Window: win, Err: fmt.Errorf("image %dx%d smaller than window %dx%d", img.Width, img.Height, geom.Width, geom.Height)}
	}
	if err := img.Validate(); err != nil {
		return nil, &PixelReadError{Window: win, Err: err}
	}

	log.Debug().
		Int("depth", img.Depth).
		Int("bpp", img.BitsPerPixel).
		Stringer("byte_order", img.ByteOrder).
		Str("red_mask", fmt.Sprintf("%#x", img.Masks.Red)).
		Str("green_mask", fmt.Sprintf("%#x", img.Masks.Green)).
		Str("blue_mask", fmt.Sprintf("%#x", img.Masks.Blue)).
		Msg("Decoding pixels")

	return Decode(img, geom), nil
}

// Decode converts every pixel of the geometry rectangle, row-major.
func Decode(img *PixelImage, geom Geometry) *Raster {
	raster := NewRaster(geom.Width, geom.Height)
	masks := img.Masks
	i := 0
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			c := masks.Decode(img.Pixel(x, y))
			raster.Pix[i] = c.R
			raster.Pix[i+1] = c.G
			raster.Pix[i+2] = c.B
			i += 3
		}
	}
	return raster
}
