package bookingRepo

import (
	"context"
	"errors"

	"eventra/models"
)

var (
	// ErrNotFound is returned when no booking matches the given reference.
	ErrNotFound = errors.New("booking not found")
	// ErrStatusConflict is returned by UpdateStatus when the booking exists
	// but its status no longer equals the expected from-state. Callers
	// re-read the booking to report the state they actually lost to.
	ErrStatusConflict = errors.New("booking status changed concurrently")
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	// UpdateStatus moves a booking from one status to another as a single
	// compare-and-swap, so two concurrent transitions on the same reference
	// can never both observe the from-state and both succeed.
	UpdateStatus(ctx context.Context, reference string, from, to models.BookingStatus) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
}
