package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an update or delete targets an id or name
// that no longer exists in its collection.
var ErrNotFound = errors.New("record not found")

// ValidationError reports rejected input (empty required field, duplicate
// product-type name). The offending write is never persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InUseError blocks deleting a product type whose name is still referenced
// by machines, and names them.
type InUseError struct {
	Product  string
	Machines []string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("product type %q is in use by %s", e.Product, strings.Join(e.Machines, ", "))
}
