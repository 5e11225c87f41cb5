package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// ErrUnavailable covers timeouts, transport failures and 5xx answers.
	ErrUnavailable = errors.New("upstream service unavailable")

	ErrInvalidResponse = errors.New("invalid upstream response")
	ErrInvalidAddress  = errors.New("invalid adapter address")
)
