package booking

import (
	"fmt"

	"eventra/models"
)

// NotFoundError indicates that no booking or service matches the given key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// ForbiddenError indicates that the actor lacks the role required for the
// requested transition. The booking is left unchanged.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// InvalidTransitionError indicates that the booking exists but is not in the
// state the requested edge starts from. It carries both states for
// diagnostics.
type InvalidTransitionError struct {
	Current   models.BookingStatus
	Attempted models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.Current, e.Attempted)
}

// ValidationError indicates missing or invalid request fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InfrastructureError wraps a persistence failure. It is fatal for the
// operation and not retried by this subsystem.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}
