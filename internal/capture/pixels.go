package capture

import "fmt"

// ByteOrder is the order of bytes inside a native pixel word.
type ByteOrder int

const (
	LSBFirst ByteOrder = iota
	MSBFirst
)

func (o ByteOrder) String() string {
	if o == MSBFirst {
		return "msb-first"
	}
	return "lsb-first"
}

// Geometry is the size of a window at capture time.
type Geometry struct {
	Width  int
	Height int
}

// PixelImage is the raw pixel buffer of a window as the display server
// returned it, together with the masks describing its pixel packing.
type PixelImage struct {
	Width        int
	Height       int
	Depth        int
	BitsPerPixel int
	// Stride is the number of bytes per scanline, including padding.
	Stride    int
	ByteOrder ByteOrder
	Masks     ChannelMasks
	Data      []byte
}

// Validate checks that the buffer can be decoded pixel by pixel.
func (p *PixelImage) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("image has empty size %dx%d", p.Width, p.Height)
	}
	switch p.BitsPerPixel {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bits per pixel: %d", p.BitsPerPixel)
	}
	bytesPerPixel := p.BitsPerPixel / 8
	if p.Stride < p.Width*bytesPerPixel {
		return fmt.Errorf("stride %d too small for width %d at %d bpp", p.Stride, p.Width, p.BitsPerPixel)
	}
	need := p.Stride*(p.Height-1) + p.Width*bytesPerPixel
	if len(p.Data) < need {
		return fmt.Errorf("short image data: got %d bytes, need %d", len(p.Data), need)
	}
	if !p.Masks.Valid() {
		return fmt.Errorf("missing channel masks (red=%#x green=%#x blue=%#x)", p.Masks.Red, p.Masks.Green, p.Masks.Blue)
	}
	return nil
}

// Pixel returns the packed native pixel word at (x, y). The image must have
// passed Validate.
func (p *PixelImage) Pixel(x, y int) uint32 {
	bytesPerPixel := p.BitsPerPixel / 8
	i := y*p.Stride + x*bytesPerPixel
	b := p.Data[i : i+bytesPerPixel]

	var v uint32
	if p.ByteOrder == MSBFirst {
		for _, c := range b {
			v = v<<8 | uint32(c)
		}
		return v
	}
	for k := len(b) - 1; k >= 0; k-- {
		v = v<<8 | uint32(b[k])
	}
	return v
}
