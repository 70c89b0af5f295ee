// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-merge-relay/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed whenever a request path matches a
// registered route but the HTTP method is not handled. The relay instead
// answers 501 Not Implemented with the plain-text body "Unsupported method"
// for such requests, the status a server returns for a method it does not
// implement at all.
//
// The lookup iterates over all routes registered on router and compares each
// route's pattern against the raw request path ([http.Request.URL.Path]).
// Only exact pattern matches are considered. A path that matches no route is
// answered with 404 Not Found.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path

		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				http.Error(w, app.MsgUnsupportedMethod, http.StatusNotImplemented)
				return
			}
		}

		http.Error(w, app.MsgNotFound, http.StatusNotFound)
	}
}
