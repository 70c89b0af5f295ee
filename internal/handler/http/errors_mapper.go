package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-merge-relay/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrContentNotText: http.StatusBadRequest,
	service.ErrEmptyMerge:     http.StatusInternalServerError,
	service.ErrUnknownRoute:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
