package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into an error wrapping
// [ErrUnexpectedStatus] and, where it applies, a status class sentinel.
// 2xx responses yield nil.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	status := fmt.Sprintf("%d %s", code, http.StatusText(code))

	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrNotFound, status)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrClientError, status)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrServerError, status)
	default:
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, status)
	}
}
