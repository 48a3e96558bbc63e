// Package hashpages is a fragment-based navigation engine for single page
// applications. It maps location-hash routes to [Page] implementations,
// drives the mount/dispose lifecycle of the active page inside a [Container],
// and keeps the document title and page-identity marker in sync.
//
// The engine is deliberately small: a [Registry] holds the route map and the
// default route, and a [Router] subscribes to a [Signal] (the navigation
// source) and performs one transition per change notification. What a page
// renders is opaque to the router; pages receive the container and populate
// it however they like.
package hashpages
