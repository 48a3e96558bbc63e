package hashpages

import (
	"context"

	"github.com/a-h/templ"
)

// TemplPage is a [Page] whose body is a templ component, rendered into the
// container on every mount. TemplPage deliberately has no dispose
// capability: components are pure render functions and hold nothing the
// router needs to release.
type TemplPage struct {
	PageID    string
	PageTitle string
	PageRoute string
	Component templ.Component
}

func (p TemplPage) ID() string    { return p.PageID }
func (p TemplPage) Title() string { return p.PageTitle }
func (p TemplPage) Route() string { return p.PageRoute }

func (p TemplPage) Mount(c Container) error {
	return RenderTempl(context.Background(), c, p.Component)
}

// RenderTempl renders a templ component into a container. Pages with their
// own Mount implementations can use it to mix templ output with other
// writes.
func RenderTempl(ctx context.Context, c Container, component templ.Component) error {
	return component.Render(ctx, c)
}
