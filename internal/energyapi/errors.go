package energyapi

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks bodies that cannot be decoded or fail shape checks.
var ErrMalformedResponse = errors.New("energyapi: malformed response")

// APIError reports a non-2xx answer from the backend.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("energyapi: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("energyapi: %s returned %d", e.Endpoint, e.StatusCode)
}

// ServerMessage extracts the backend supplied error string, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}
