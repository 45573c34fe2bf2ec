package cart

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// TransportError reports a failed backend call: a non-2xx status, or an
// unreachable resource (Status 0, Err set).
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets a 404 from the wire match ErrLineNotFound, so callers dispatch the
// same way regardless of which adapter produced the error.
func (e *TransportError) Is(target error) bool {
	return target == ErrLineNotFound && e.Status == http.StatusNotFound
}
