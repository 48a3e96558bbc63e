package hashpages

import (
	"fmt"
	"strings"
)

// PrintRoutes returns a human-readable listing of a registry's pages, in
// registration order, for startup logs.
//
//	log.Printf("Registered pages:\n%s", hashpages.PrintRoutes(reg))
func PrintRoutes(reg *Registry) string {
	var sb strings.Builder
	for _, p := range reg.Pages() {
		route := Normalize(p.Route())
		fmt.Fprintf(&sb, "%s -> %s (%s)", route, p.ID(), p.Title())
		if route == reg.DefaultRoute() {
			sb.WriteString(" [default]")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "bridge: GET /pages/{route}, e.g. /pages/%s\n", routeParam(reg.DefaultRoute()))
	return sb.String()
}
