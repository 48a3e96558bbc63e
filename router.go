package hashpages

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Router owns all screen transitions for one application session. It
// consumes a [Registry], binds to the navigation [Signal], resolves the
// active route to a page and drives that page's mount/dispose lifecycle
// inside the container.
//
// All transitions execute synchronously on the goroutine delivering the
// signal notification (or the construction call), so mount and dispose are
// never concurrent with each other and the dispose-clear-mount order is
// strict and unconditional.
type Router struct {
	registry    *Registry
	container   Container
	document    Document
	signal      Signal
	appName     string
	logger      zerolog.Logger
	onError     func(error)
	unsubscribe func()
	current     Page
}

// Option configures a [Router].
type Option func(*Router)

// WithLogger attaches a structured logger. Transitions are logged at debug
// level; the default logger is a no-op.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithErrorHandler sets the handler invoked when a transition triggered by a
// signal notification fails (a page's Dispose or Mount returning an error).
// Dispose failures indicate a resource-cleanup bug and are not masked: the
// default handler panics rather than continuing with stale resources alive
// alongside the next page.
func WithErrorHandler(onError func(error)) Option {
	return func(r *Router) {
		r.onError = onError
	}
}

// New builds a Router over the registry, subscribes it to the signal and
// performs one immediate resolution against the current signal value,
// falling back to the default route when the signal is empty.
//
// appName prefixes every document title as "<appName> | <page title>".
//
// The default route missing from the registry is a misconfiguration, not a
// runtime-recoverable condition: New refuses to start rather than produce an
// undefined screen. Errors from the initial transition are returned as well.
func New(registry *Registry, container Container, document Document, signal Signal, appName string, opts ...Option) (*Router, error) {
	if _, ok := registry.Lookup(registry.DefaultRoute()); !ok {
		return nil, fmt.Errorf("hashpages: default route %q is not registered", registry.DefaultRoute())
	}
	r := &Router{
		registry:  registry,
		container: container,
		document:  document,
		signal:    signal,
		appName:   appName,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.onError == nil {
		r.onError = func(err error) { panic(err) }
	}
	r.unsubscribe = signal.Subscribe(r.onChange)

	route := signal.Value()
	if route == "" {
		route = registry.DefaultRoute()
	}
	if err := r.activate(r.Resolve(route)); err != nil {
		r.unsubscribe()
		return nil, err
	}
	return r, nil
}

// Resolve normalizes raw, looks it up in the route map and falls back to the
// default route's page when absent. Construction guarantees the default
// route resolves.
func (r *Router) Resolve(raw string) Page {
	if p, ok := r.registry.Lookup(raw); ok {
		return p
	}
	p, ok := r.registry.Lookup(r.registry.DefaultRoute())
	if !ok {
		panic(fmt.Sprintf("hashpages: default route %q vanished from registry", r.registry.DefaultRoute()))
	}
	return p
}

// Navigate writes the route to the navigation signal, keeping any query
// intact. The transition itself happens through the signal's change
// notification; writing the already-current fragment fires none, so
// navigating to the active route is a no-op by platform semantics rather
// than an explicit check here.
func (r *Router) Navigate(route string) {
	r.signal.Set(fragment(route))
}

// Current returns the page currently mounted, or nil before the first
// resolution completes.
func (r *Router) Current() Page { return r.current }

// Teardown detaches the router from the navigation signal. No further
// automatic transitions occur; Navigate still writes the signal but nothing
// reacts. The last mounted page stays mounted.
func (r *Router) Teardown() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
		r.logger.Debug().Msg("router detached from navigation signal")
	}
}

func (r *Router) onChange(value string) {
	if err := r.activate(r.Resolve(value)); err != nil {
		r.onError(err)
	}
}

// activate performs one transition: dispose the current page (when it has
// that capability), wipe the container, mount the new page, then publish the
// document title and page-identity marker. Dispose runs to completion before
// the new page touches the container, so no two pages' resources are ever
// live simultaneously.
func (r *Router) activate(page Page) error {
	if r.current != nil {
		if d, ok := r.current.(Disposer); ok {
			if err := d.Dispose(); err != nil {
				return fmt.Errorf("hashpages: disposing page %s: %w", r.current.ID(), err)
			}
		}
	}
	r.container.Clear()
	if err := page.Mount(r.container); err != nil {
		return fmt.Errorf("hashpages: mounting page %s: %w", page.ID(), err)
	}
	r.document.SetTitle(r.appName + " | " + page.Title())
	r.document.SetPageID(page.ID())
	r.current = page
	r.logger.Debug().
		Str("page", page.ID()).
		Str("route", Normalize(page.Route())).
		Msg("page activated")
	return nil
}
