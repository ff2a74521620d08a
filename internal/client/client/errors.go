package client

import (
	"errors"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("unable to reach server")
)

// APIError is a non-2xx API response. Message is the server's text and is
// safe to show to the user.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}

	var kind error
	switch {
	case status == http.StatusBadRequest:
		kind = ErrValidation
	case status == http.StatusConflict:
		kind = ErrConflict
	case status == http.StatusUnauthorized:
		kind = ErrUnauthorized
	case status >= http.StatusInternalServerError:
		kind = ErrServer
	}
	return &APIError{Status: status, Message: message, kind: kind}
}
