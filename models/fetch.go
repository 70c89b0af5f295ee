package models

// FetchResult is the outcome of retrieving a single remote document.
// It lives only for the duration of one request.
type FetchResult struct {
	// URL is the address the document was requested from.
	URL string

	// Body is the full response body. Nil when Err is set.
	Body []byte

	// Err describes why the document could not be retrieved
	// (transport failure, non-2xx status, invalid URL).
	Err error
}

// OK reports whether the document was retrieved.
func (r FetchResult) OK() bool {
	return r.Err == nil
}
