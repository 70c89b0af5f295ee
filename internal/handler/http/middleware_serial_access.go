package http

import (
	"net/http"

	"github.com/MKhiriev/go-merge-relay/internal/app"
	"github.com/MKhiriev/go-merge-relay/internal/logger"
)

// withSerialAccess admits at most cap(h.slots) requests at a time; the others
// wait for a free slot. With a single slot requests are
// handled strictly one after another. A waiting request whose context ends
// is answered with 503 and never reaches the handler.
func (h *Handler) withSerialAccess(next http.Handler) http.Handler {
	if h.slots == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case h.slots <- struct{}{}:
		case <-r.Context().Done():
			logger.FromRequest(r).Warn().
				Err(ErrRequestDropped).
				AnErr("cause", r.Context().Err()).
				Str("uri", r.RequestURI).
				Send()
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		}
		defer func() { <-h.slots }()

		next.ServeHTTP(w, r)
	})
}
