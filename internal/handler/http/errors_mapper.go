package http

import (
	"errors"
	"net/http"

	"github.com/Rajshri-Priya/fundoo-notes/internal/adapter"
	"github.com/Rajshri-Priya/fundoo-notes/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrConflict:            http.StatusConflict,
	service.ErrValidation:          http.StatusBadRequest,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrUpstreamUnavailable: http.StatusServiceUnavailable,

	adapter.ErrUnauthorized:    http.StatusUnauthorized,
	adapter.ErrUnavailable:     http.StatusServiceUnavailable,
	adapter.ErrInvalidResponse: http.StatusServiceUnavailable,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoCaller:                   http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidPathParam:           http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError hides the details of unexpected failures from clients.
func messageFromError(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}
