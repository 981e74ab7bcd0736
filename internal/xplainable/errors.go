package xplainable

import (
	"errors"
	"fmt"
)

// ErrNullResponse is returned when the platform responds with a JSON null
// body where a collection was expected. Some backend endpoints do this
// instead of returning an empty list; callers that want the lenient
// behaviour should map it to an empty collection (see internal/respond).
var ErrNullResponse = errors.New("platform returned null where a collection was expected")

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("platform returned %d", e.StatusCode)
}
