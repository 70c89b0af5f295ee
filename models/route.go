// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Route identifies one of the relay endpoints and, with it, the configured
// URL list it merges.
type Route string

const (
	// RouteSub merges the sub-paths appended to the base URL and answers
	// with the base64 of the merged bytes.
	RouteSub Route = "sub"

	// RouteUp merges the "up" URLs and answers with the merged text.
	RouteUp Route = "up"

	// RouteRe merges the "re" URLs and answers with the merged text.
	RouteRe Route = "re"
)

// String returns the route name.
func (r Route) String() string {
	return string(r)
}
