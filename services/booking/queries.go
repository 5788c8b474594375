package booking

import (
	"context"

	"eventra/models"
)

// GetByReference retrieves a booking. Only the requesting customer or the
// provider owning the booked service may view it.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	b, err := s.load(ctx, reference)
	if err != nil {
		return nil, err
	}

	isCustomer := actor.Role == models.RoleCustomer && actor.ID == b.CustomerID
	isProvider := actor.Role == models.RoleServiceProvider && actor.ID == b.ProviderID
	if !isCustomer && !isProvider {
		return nil, &ForbiddenError{Message: "you are not authorized to view this booking"}
	}
	return b, nil
}

// ListMineAsCustomer retrieves all bookings the customer has made.
func (s *DefaultBookingService) ListMineAsCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, &InfrastructureError{Op: "list customer bookings", Err: err}
	}
	return bookings, nil
}

// ListMineAsProvider retrieves all bookings made against the provider's services.
func (s *DefaultBookingService) ListMineAsProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, &InfrastructureError{Op: "list provider bookings", Err: err}
	}
	return bookings, nil
}
