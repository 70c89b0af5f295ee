// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// relay's HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. They are part of the public HTTP contract, so clients may match on
// them; keep the wording stable.
package app

const (
	// MsgHello is the body of the root route.
	MsgHello = "Hello, World!"

	// MsgUnableToMergeFiles is the plain-text body of a failed /sub request:
	// none of the configured sub-path documents could be retrieved.
	MsgUnableToMergeFiles = "unable to merge files"

	// MsgContentNotText is the JSON error of a text route whose merged
	// documents are not valid UTF-8.
	MsgContentNotText = "content cannot be decoded as text"

	// MsgUnsupportedMethod is returned for a known path requested with a
	// method other than GET or POST.
	MsgUnsupportedMethod = "Unsupported method"

	// MsgNotFound is returned for any path the relay does not serve.
	MsgNotFound = "Not Found"

	// MsgServiceUnavailable is returned to a request abandoned while waiting
	// for a processing slot.
	MsgServiceUnavailable = "Service Unavailable"
)

// MsgUnableToRequest is the JSON error of a text route whose merge came back
// empty, e.g. "unable to request up".
func MsgUnableToRequest(route string) string {
	return "unable to request " + route
}
