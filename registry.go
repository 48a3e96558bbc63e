package hashpages

import "fmt"

// DuplicateRouteError reports two pages whose routes normalize to the same
// key. Registry construction fails fast rather than silently keeping the
// later entry, so a shadowed page can never ship unnoticed.
type DuplicateRouteError struct {
	Route    string
	FirstID  string
	SecondID string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("hashpages: pages %q and %q both register route %q", e.FirstID, e.SecondID, e.Route)
}

// Registry is a static ordered collection of pages plus the designated
// default route. It is built once at startup and read-only afterwards.
type Registry struct {
	pages        []Page
	byRoute      map[string]Page
	defaultRoute string
}

// NewRegistry builds the route map from the given pages, normalizing every
// route. Two pages normalizing to the same route is a construction error
// naming both ids. defaultRoute is normalized once and used as the
// resolution fallback; whether it is actually registered is checked by
// [New], since wrapping layers may still add pages between the two calls.
func NewRegistry(defaultRoute string, pages ...Page) (*Registry, error) {
	byRoute := make(map[string]Page, len(pages))
	for _, p := range pages {
		route := Normalize(p.Route())
		if prev, ok := byRoute[route]; ok {
			return nil, &DuplicateRouteError{Route: route, FirstID: prev.ID(), SecondID: p.ID()}
		}
		byRoute[route] = p
	}
	return &Registry{
		pages:        pages,
		byRoute:      byRoute,
		defaultRoute: Normalize(defaultRoute),
	}, nil
}

// Lookup returns the page registered for the normalized form of route.
func (r *Registry) Lookup(route string) (Page, bool) {
	p, ok := r.byRoute[Normalize(route)]
	return p, ok
}

// DefaultRoute returns the normalized fallback route.
func (r *Registry) DefaultRoute() string { return r.defaultRoute }

// Pages returns the pages in registration order.
func (r *Registry) Pages() []Page { return r.pages }
