package hashpages

// Page is the contract every navigable screen satisfies. Descriptors are
// created once at startup and are immutable afterwards; the router never
// inspects what a page renders.
type Page interface {
	// ID is an opaque unique identifier, attached to the document as the
	// page-identity marker for styling and testing hooks.
	ID() string
	// Title is the human-readable label applied to the document title on
	// activation.
	Title() string
	// Route is the path fragment identifying this page. A leading '#' is
	// optional; normalization is the router's job.
	Route() string
	// Mount synchronously populates the container with the page's content.
	// The router never calls Mount twice without an intervening clear.
	Mount(c Container) error
}

// Disposer is the optional cleanup capability of a [Page]. Pages that
// acquire resources during Mount implement it; the router invokes Dispose
// before the next page touches the container. Absence means "nothing to
// release".
type Disposer interface {
	Dispose() error
}

// StaticPage is a declarative [Page] descriptor. Either HTML or MountFunc
// provides the body; when both are set MountFunc wins.
type StaticPage struct {
	PageID      string
	PageTitle   string
	PageRoute   string
	HTML        string
	MountFunc   func(c Container) error
	DisposeFunc func() error
}

func (p StaticPage) ID() string    { return p.PageID }
func (p StaticPage) Title() string { return p.PageTitle }
func (p StaticPage) Route() string { return p.PageRoute }

func (p StaticPage) Mount(c Container) error {
	if p.MountFunc != nil {
		return p.MountFunc(c)
	}
	_, err := c.Write([]byte(p.HTML))
	return err
}

// Dispose delegates to DisposeFunc when set. StaticPage always satisfies
// [Disposer] so the zero DisposeFunc must stay a no-op.
func (p StaticPage) Dispose() error {
	if p.DisposeFunc != nil {
		return p.DisposeFunc()
	}
	return nil
}
