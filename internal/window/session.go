package window

// Property and type names used for the modern title lookup.
const (
	NetWMName  = "_NET_WM_NAME"
	UTF8String = "UTF8_STRING"
)

// ChildList holds the child handles returned by one children query.
// The list is owned by the display server; Release must be called exactly
// once, after the handles have been copied out.
type ChildList interface {
	// Handles returns a copy of the child handles in server order.
	Handles() []Handle

	// Release hands the list back to the server.
	Release()
}

// Session is a connection to a display server exposing a window tree and
// per-window named properties. A Session is not safe for concurrent use.
type Session interface {
	// Root returns the root window of the default screen.
	Root() Handle

	// QueryChildren lists the direct children of a window.
	QueryChildren(window Handle) (ChildList, error)

	// Property reads a named property, requiring the given type, and decodes
	// it as a string. It returns ErrPropertyNotSet when the window has no
	// such property.
	Property(window Handle, name, typ string) (string, error)

	// LegacyName reads the window name through the legacy naming protocol.
	LegacyName(window Handle) (string, error)
}
