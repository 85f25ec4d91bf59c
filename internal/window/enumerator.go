package window

// Enumerator lists the titles of all titled windows.
type Enumerator struct {
	walker   Walker
	resolver TitleResolver
}

// NewEnumerator creates an enumerator from a walker and a title resolver
func NewEnumerator(walker Walker, resolver TitleResolver) *Enumerator {
	return &Enumerator{walker: walker, resolver: resolver}
}

// List returns the titles of every titled window in pre-order from root,
// root included. Untitled windows are skipped. The order is the server's
// child order, which is stable only while the hierarchy is unchanged.
func (e *Enumerator) List(root Handle) ([]string, error) {
	titles := make([]string, 0)
	if title, ok := e.resolver.Resolve(root); ok {
		titles = append(titles, title)
	}
	if err := e.collect(root, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

func (e *Enumerator) collect(parent Handle, titles *[]string) error {
	_, _, err := e.walker.Walk(parent, func(child Handle) (Handle, bool, error) {
		if title, ok := e.resolver.Resolve(child); ok {
			*titles = append(*titles, title)
		}
		return 0, false, e.collect(child, titles)
	})
	return err
}
