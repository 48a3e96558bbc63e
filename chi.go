package hashpages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountBridge registers the bridge on a chi router under
// "GET /pages/{route}". Hosts with their own URL scheme can skip this and
// call [Bridge.ServePage] directly.
func MountBridge(r chi.Router, b *Bridge) {
	r.Get("/pages/{route}", func(w http.ResponseWriter, req *http.Request) {
		b.ServePage(w, req, chi.URLParam(req, "route"))
	})
}
