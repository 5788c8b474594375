package booking

import (
	"context"

	bookingRepo "eventra/database/repository/booking"
	"eventra/models"
	"eventra/services/events"

	"go.uber.org/zap"
)

// AcceptBooking moves a PENDING booking to ACCEPTED_AWAITING_PAYMENT. Only
// the provider owning the offered service may accept.
func (s *DefaultBookingService) AcceptBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return s.transition(ctx, reference, actor, owningProvider, models.StatusAcceptedAwaitingPayment, func(b models.Booking) events.Event {
		return events.AcceptedEvent{Snapshot: b}
	})
}

// RejectBooking moves a PENDING booking to REJECTED. Only the provider
// owning the offered service may reject.
func (s *DefaultBookingService) RejectBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return s.transition(ctx, reference, actor, owningProvider, models.StatusRejected, func(b models.Booking) events.Event {
		return events.RejectedEvent{Snapshot: b}
	})
}

// CustomerCancelBooking cancels a booking on behalf of the requesting
// customer. Permitted while the booking is PENDING or awaiting payment.
func (s *DefaultBookingService) CustomerCancelBooking(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return s.transition(ctx, reference, actor, requestingCustomer, models.StatusCancelled, func(b models.Booking) events.Event {
		return events.CancelledByCustomerEvent{Snapshot: b}
	})
}

// ProviderCancelBooking cancels a booking on behalf of the owning provider,
// with an optional reason that is carried on the published event.
func (s *DefaultBookingService) ProviderCancelBooking(ctx context.Context, reference string, actor models.Actor, reason string) (*models.Booking, error) {
	return s.transition(ctx, reference, actor, owningProvider, models.StatusCancelled, func(b models.Booking) events.Event {
		return events.CancelledByProviderEvent{Snapshot: b, Reason: reason}
	})
}

// ConfirmPayment moves a booking awaiting payment to CONFIRMED. It is
// invoked only by the trusted payment component.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, reference string) (*models.Booking, error) {
	return s.transition(ctx, reference, models.SystemActor(), systemOnly, models.StatusConfirmed, func(b models.Booking) events.Event {
		return events.PaymentConfirmedEvent{Snapshot: b}
	})
}

// FailPayment moves a booking awaiting payment to PAYMENT_FAILED. It is
// invoked only by the trusted payment component.
func (s *DefaultBookingService) FailPayment(ctx context.Context, reference string) (*models.Booking, error) {
	return s.transition(ctx, reference, models.SystemActor(), systemOnly, models.StatusPaymentFailed, func(b models.Booking) events.Event {
		return events.PaymentFailedEvent{Snapshot: b}
	})
}

// MarkCompleted moves a CONFIRMED booking to COMPLETED once the provider has
// rendered the service.
func (s *DefaultBookingService) MarkCompleted(ctx context.Context, reference string, actor models.Actor) (*models.Booking, error) {
	return s.transition(ctx, reference, actor, owningProvider, models.StatusCompleted, func(b models.Booking) events.Event {
		return events.CompletedEvent{Snapshot: b}
	})
}

// transition runs the shared command contract: load, authorize the actor
// under the command's own rule, check edge legality, compare-and-swap the
// status, then publish the domain event built from the committed snapshot.
// Each command fixes its rule at the call site so a provider can never drive
// a customer command (or vice versa) just because both roles may reach the
// same target status.
func (s *DefaultBookingService) transition(
	ctx context.Context,
	reference string,
	actor models.Actor,
	as actorRule,
	target models.BookingStatus,
	buildEvent func(models.Booking) events.Event,
) (*models.Booking, error) {
	b, err := s.load(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !satisfies(actor, b, as) {
		return nil, &ForbiddenError{Message: "you are not authorized to perform this action on the booking"}
	}
	if !canTransitionAs(b.Status, target, as) {
		return nil, &InvalidTransitionError{Current: b.Status, Attempted: target}
	}

	updated, err := s.Repo.UpdateStatus(ctx, reference, b.Status, target)
	if err != nil {
		switch err {
		case bookingRepo.ErrNotFound:
			return nil, &NotFoundError{Resource: "booking", Key: reference}
		case bookingRepo.ErrStatusConflict:
			// Lost a race with a concurrent transition; report the state
			// the booking actually reached.
			if current, rerr := s.load(ctx, reference); rerr == nil {
				return nil, &InvalidTransitionError{Current: current.Status, Attempted: target}
			}
			return nil, &InvalidTransitionError{Current: b.Status, Attempted: target}
		default:
			return nil, &InfrastructureError{Op: "update booking status", Err: err}
		}
	}

	s.Logger.Info("booking transition applied",
		zap.String("bookingReference", reference),
		zap.String("from", string(b.Status)),
		zap.String("to", string(target)),
		zap.String("actorId", actor.ID),
	)

	s.publish(buildEvent(*updated))
	return updated, nil
}

func (s *DefaultBookingService) load(ctx context.Context, reference string) (*models.Booking, error) {
	b, err := s.Repo.GetByReference(ctx, reference)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, &NotFoundError{Resource: "booking", Key: reference}
		}
		return nil, &InfrastructureError{Op: "load booking", Err: err}
	}
	return b, nil
}

// publish hands the event to the dispatcher. The transition has already
// committed; a publish failure must never reverse it, so the dispatcher
// absorbs subscriber errors and this method cannot fail.
func (s *DefaultBookingService) publish(evt events.Event) {
	if s.Events == nil {
		return
	}
	s.Events.Publish(evt)
}
