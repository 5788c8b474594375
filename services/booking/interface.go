package booking

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	offeringRepo "eventra/database/repository/offering"
	"eventra/models"
	"eventra/services/events"

	"go.uber.org/zap"
)

// BookingService coordinates the lifecycle of a booking between a customer
// and a service provider. Every method validates actor authority and
// current-state legality before persisting, and publishes the matching
// domain event after the transition commits.
type BookingService interface {
	CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error)
	AcceptBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	RejectBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	CustomerCancelBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	ProviderCancelBooking(ctx context.Context, reference string, actor models.Actor, reason string) (*models.Booking, error)
	// ConfirmPayment and FailPayment are reserved to the trusted payment
	// component; they take no actor because the caller itself is the check.
	ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error)
	FailPayment(ctx context.Context, reference string) (*models.Booking, error)
	MarkCompleted(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)

	GetByReference(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error)
	ListMineAsCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListMineAsProvider(ctx context.Context, providerID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService. All collaborators are
// stateless injected services; per-call parameters never live on the struct,
// so one instance is safe to share across concurrent requests.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Offerings offeringRepo.OfferedServiceRepository
	Refs      *ReferenceGenerator
	Events    *events.Dispatcher
	Logger    *zap.Logger
}
