// Package apperr holds error types that carry a transport status hint.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// StatusCoder is implemented by errors that know which HTTP status they map to.
type StatusCoder interface {
	StatusCode() int
}

// NotFoundError reports a lookup that matched no rows. Key is the id or the
// search term that was used.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %v", e.Entity, e.Key)
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound returns a *NotFoundError for entity and key.
func NotFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// StatusCode returns the status hint carried by err, or 500 when it has none.
func StatusCode(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}
