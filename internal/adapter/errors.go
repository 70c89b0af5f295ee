package adapter

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid remote url")
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrNotFound    = errors.New("remote document not found")
	ErrClientError = errors.New("remote rejected the request")
	ErrServerError = errors.New("remote server error")
)
