package models

// APIResponse is the JSON envelope returned by the text relay routes.
// It has two variants: a success carrying Content, or a failure carrying
// Error. Exactly one of the two is non-nil, so the serialized form is either
//
//	{"status":200,"content":"..."}
//
// or
//
//	{"status":400,"error":"..."}
type APIResponse struct {
	// Status mirrors the HTTP status code of the response.
	Status int `json:"status"`

	// Content holds the merged remote documents decoded as UTF-8 text.
	// Set only on success.
	Content *string `json:"content,omitempty"`

	// Error is a human-readable failure description.
	// Set only on failure.
	Error *string `json:"error,omitempty"`
}

// NewContentResponse builds the success variant of [APIResponse].
func NewContentResponse(status int, content string) APIResponse {
	return APIResponse{Status: status, Content: &content}
}

// NewErrorResponse builds the failure variant of [APIResponse].
func NewErrorResponse(status int, message string) APIResponse {
	return APIResponse{Status: status, Error: &message}
}

// IsError reports whether the response is the failure variant.
func (r APIResponse) IsError() bool {
	return r.Error != nil
}
