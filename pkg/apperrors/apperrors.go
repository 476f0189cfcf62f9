package apperrors

import (
	"errors"
	"net/http"
)

// Error kinds. Wrap one of these into every domain error so the HTTP
// boundary can classify with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("unauthorized")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
	ErrUpstream   = errors.New("upstream failure")
)

type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// E builds a domain error carrying both a kind and a client-facing message.
func E(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
