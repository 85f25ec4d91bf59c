package capture

import "math/bits"

// ChannelMasks describe which bits of a packed native pixel word carry each
// color channel. They come from the display server with every capture.
type ChannelMasks struct {
	Red   uint32
	Green uint32
	Blue  uint32
}

// Decode extracts the three channels of a native pixel. Each channel is
// masked, shifted down by the position of the mask's lowest set bit and
// truncated to its low 8 bits.
func (m ChannelMasks) Decode(pixel uint32) RGB {
	return RGB{
		R: extract(pixel, m.Red),
		G: extract(pixel, m.Green),
		B: extract(pixel, m.Blue),
	}
}

// Valid reports whether every channel has a mask.
func (m ChannelMasks) Valid() bool {
	return m.Red != 0 && m.Green != 0 && m.Blue != 0
}

func extract(pixel, mask uint32) uint8 {
	if mask == 0 {
		return 0
	}
	return uint8((pixel & mask) >> shift(mask))
}

// shift is the bit position of the lowest set bit of mask.
func shift(mask uint32) uint {
	return uint(bits.TrailingZeros32(mask))
}
