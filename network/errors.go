package network

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport reports a request that never produced a complete response.
	ErrTransport = errors.New("transport error")

	// ErrDecode reports a response body that is not the expected JSON document.
	ErrDecode = errors.New("decode error")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// IsStatus reports whether err carries a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
