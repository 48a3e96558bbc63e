package hashpages

import "strings"

// Normalize produces the canonical form of a route: exactly one leading '#'
// and nothing from the first '?' onward. It is total and idempotent, and it
// is the only gate between raw navigation payloads and map lookups, so the
// route map is always queried with a consistent key space.
//
//	Normalize("settings")       // "#settings"
//	Normalize("#about?ref=1")   // "#about"
//	Normalize("")               // "#"
func Normalize(route string) string {
	route = fragment(route)
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}
	return route
}

// fragment ensures exactly one leading '#' but keeps any query intact.
// Navigate writes this form to the signal so the raw fragment round-trips
// the way a browser would carry it; only lookups strip the query.
func fragment(route string) string {
	return "#" + strings.TrimLeft(route, "#")
}
