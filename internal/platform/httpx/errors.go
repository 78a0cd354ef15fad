// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors mapped onto HTTP statuses.
var (
	ErrNotFound         = errors.New("endpoint not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrValidation       = errors.New("validation failed")
)

// RespondError maps errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrMethodNotAllowed):
		Problem(w, http.StatusMethodNotAllowed, "Method Not Allowed", err.Error())
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
