package booking

import (
	"context"
	"time"

	offeringRepo "eventra/database/repository/offering"
	"eventra/models"
	"eventra/services/events"

	"go.uber.org/zap"
)

// CreateBooking submits a new booking request for an offered service. The
// service must be available and not owned by the requesting customer; its
// current price is snapshotted onto the booking and never re-read afterwards.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.Booking, error) {
	if req.ServiceID == "" {
		return nil, &ValidationError{Message: "offered service ID is required"}
	}
	if req.RequestName == "" {
		return nil, &ValidationError{Message: "request name is required"}
	}

	svc, err := s.Offerings.GetByID(ctx, req.ServiceID)
	if err != nil {
		if err == offeringRepo.ErrNotFound {
			return nil, &NotFoundError{Resource: "offered service", Key: req.ServiceID}
		}
		return nil, &InfrastructureError{Op: "load offered service", Err: err}
	}

	if !svc.Available {
		return nil, &ValidationError{Message: "selected service is currently not available"}
	}
	if svc.ProviderID == customerID {
		return nil, &ValidationError{Message: "service provider cannot book their own service"}
	}

	reference, err := s.Refs.Generate(ctx)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		Reference:     reference,
		CustomerID:    customerID,
		ServiceID:     svc.ID,
		ProviderID:    svc.ProviderID,
		RequestName:   req.RequestName,
		Description:   req.Description,
		Location:      req.Location,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Price:         svc.Price,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, &InfrastructureError{Op: "create booking", Err: err}
	}

	s.Logger.Info("booking created",
		zap.String("bookingReference", booking.Reference),
		zap.String("customerId", customerID),
		zap.String("serviceId", svc.ID),
	)

	s.publish(events.CreatedEvent{Snapshot: *booking})
	return booking, nil
}
