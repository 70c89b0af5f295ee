// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport used to retrieve remote
// documents.
//
// The primary abstraction is [Fetcher], which decouples the merge service
// from the underlying HTTP client. The package ships a resty-based
// implementation ([NewHTTPFetcher]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnexpectedStatus] for any
// non-2xx answer).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fetcher_mock.go -package=mock

// Fetcher retrieves a single remote document.
type Fetcher interface {
	// Fetch issues one GET request to url and returns the full response
	// body. Transport failures, invalid URLs and non-2xx answers are
	// returned as errors; nothing is retried.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
