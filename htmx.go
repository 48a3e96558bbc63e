package hashpages

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// Bridge exposes a registry's pages over HTTP for progressive enhancement:
// htmx-flavoured clients fetch page bodies as fragments while the browser
// hash stays the single source of navigation truth. The bridge is the
// server-side face of the declarative navigation trigger: an element with an
// hx-get to the bridge swaps the app container and pushes the corresponding
// fragment URL.
//
// Unknown routes fall back to the default page with status 200, matching
// [Router.Resolve]: a missing route is never surfaced to the client.
type Bridge struct {
	registry *Registry
	appName  string
	target   string
}

// BridgeOption configures a [Bridge].
type BridgeOption func(*Bridge)

// WithTarget overrides the CSS selector of the app container that htmx
// responses retarget. The default is "#app".
func WithTarget(selector string) BridgeOption {
	return func(b *Bridge) {
		b.target = selector
	}
}

// NewBridge builds a bridge over the registry. appName is echoed in the
// X-Page-Title header so shells can sync the document title without parsing
// the body.
func NewBridge(registry *Registry, appName string, opts ...BridgeOption) *Bridge {
	b := &Bridge{registry: registry, appName: appName, target: "#app"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ServeHTTP serves the page named by the "route" path value, as registered
// by [MountBridge] or a ServeMux pattern like "GET /pages/{route}".
func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.ServePage(w, r, r.PathValue("route"))
}

// ServePage renders the page for route into the response. The route may
// arrive in any raw form; it is normalized before lookup.
func (b *Bridge) ServePage(w http.ResponseWriter, r *http.Request, route string) {
	page, ok := b.registry.Lookup(route)
	if !ok {
		page, _ = b.registry.Lookup(b.registry.DefaultRoute())
	}
	if page == nil {
		http.Error(w, "no default page registered", http.StatusInternalServerError)
		return
	}

	c := getContainer()
	defer releaseContainer(c)
	if err := page.Mount(c); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if d, ok := page.(Disposer); ok {
		// Bridge renders are throwaway; release immediately.
		_ = d.Dispose()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Page-Title", b.appName+" | "+page.Title())
	w.Header().Set("X-Page-ID", page.ID())
	if htmx.IsHTMX(r) {
		resp := htmx.NewResponse().
			Retarget(b.target).
			Reswap(htmx.SwapInnerHTML).
			PushURL("/" + Normalize(page.Route()))
		if err := resp.Write(w); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	_, _ = w.Write([]byte(c.HTML()))
}

// routeParam strips the fragment delimiter for use in URL paths, the inverse
// of what ServePage's normalization re-adds.
func routeParam(route string) string {
	return strings.TrimLeft(Normalize(route), "#")
}
