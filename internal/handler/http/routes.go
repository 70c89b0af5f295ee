package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressLevel is the gzip level used for responses of clients that accept it.
const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withoutQuery)
	router.Use(h.withSerialAccess)
	router.Use(middleware.Compress(compressLevel, "text/html", "text/plain", "application/json"))

	// every route answers GET and POST the same way
	relayRoute(router, "/", h.index)
	relayRoute(router, "/sub", h.sub)
	relayRoute(router, "/up", h.up)
	relayRoute(router, "/re", h.re)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func relayRoute(r chi.Router, pattern string, handlerFn http.HandlerFunc) {
	r.Get(pattern, handlerFn)
	r.Post(pattern, handlerFn)
}
