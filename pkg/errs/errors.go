package errs

import (
	"errors"
	"net/http"
)

// ConflictError marks a business-rule violation. The message text is part of
// the client contract and is rendered verbatim.
type ConflictError struct {
	Message string
}

func NewConflict(message string) error {
	return ConflictError{Message: message}
}

func (e ConflictError) Error() string {
	return e.Message
}

// NotFoundError marks an absent entity where the caller required presence.
type NotFoundError struct {
	Message string
}

func NewNotFound(message string) error {
	return NotFoundError{Message: message}
}

func (e NotFoundError) Error() string {
	return e.Message
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}

// HTTPStatus maps domain errors to response codes. Infrastructure errors stay
// internal.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsConflict(err):
		return http.StatusConflict
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
