package window

import "strconv"

// Handle identifies a window on the display server. It is a plain value,
// only meaningful for the session that produced it, and is never freed.
type Handle uint64

// String formats the handle the way X tools print window ids.
func (h Handle) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}
