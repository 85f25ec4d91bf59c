package capture

import (
	"image"
	"image/color"
)

// RGB is one raster pixel.
type RGB struct {
	R, G, B uint8
}

// Raster is a dense width x height grid of RGB triples, row-major with the
// origin at the top left. It implements image.Image so the standard encoders
// can persist it.
type Raster struct {
	Width  int
	Height int
	// Pix holds 3 bytes per pixel, R then G then B.
	Pix []uint8
}

var _ image.Image = (*Raster)(nil)

// NewRaster allocates a black raster of the given size
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

func (r *Raster) offset(x, y int) int {
	return (y*r.Width + x) * 3
}

// SetRGB writes the pixel at (x, y). Out of range coordinates are ignored.
func (r *Raster) SetRGB(x, y int, c RGB) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	i := r.offset(x, y)
	r.Pix[i] = c.R
	r.Pix[i+1] = c.G
	r.Pix[i+2] = c.B
}

// RGBAt returns the pixel at (x, y), black when out of range.
func (r *Raster) RGBAt(x, y int) RGB {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return RGB{}
	}
	i := r.offset(x, y)
	return RGB{R: r.Pix[i], G: r.Pix[i+1], B: r.Pix[i+2]}
}

func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

func (r *Raster) At(x, y int) color.Color {
	c := r.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
