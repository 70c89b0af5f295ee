package http

import "net/http"

// withoutQuery answers 404 for any request URL carrying a query, even an
// empty one ("/?"). Routes match the exact request target, so "/sub?x=1" is
// not "/sub".
func (h *Handler) withoutQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" || r.URL.ForceQuery {
			h.notFound(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
