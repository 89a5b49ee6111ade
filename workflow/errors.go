package workflow

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError means the target entity does not exist (or is soft-deleted).
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InvalidStateError means the entity exists but the requested transition is
// not allowed from its current status.
type InvalidStateError struct {
	Entity string
	ID     uint
	Status string
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d cannot be %s from status %s", e.Entity, e.ID, e.Op, e.Status)
}

// PreconditionError means a related entity is not in the state the operation
// requires (e.g. assigning a project to an unapproved trainee).
type PreconditionError struct {
	Entity string
	ID     uint
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, e.Reason)
}

// ValidationError means the input itself is missing or out of range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// HTTPStatus maps a workflow error to an HTTP status code and message for
// the API layer.
func HTTPStatus(err error) (int, string) {
	var nf *NotFoundError
	var is *InvalidStateError
	var pc *PreconditionError
	var vl *ValidationError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error()
	case errors.As(err, &is):
		return http.StatusConflict, is.Error()
	case errors.As(err, &pc):
		return http.StatusPreconditionFailed, pc.Error()
	case errors.As(err, &vl):
		return http.StatusUnprocessableEntity, vl.Error()
	}
	return http.StatusInternalServerError, "Something went wrong!"
}
