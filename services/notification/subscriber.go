package notification

import (
	"context"
	"fmt"

	offeringRepo "eventra/database/repository/offering"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/events"

	"go.uber.org/zap"
)

// Subscriber turns booking domain events into persisted notifications. One
// handler per event variant is registered against the dispatcher at startup;
// strategy resolution is a compile-time switch on the event type, never a
// name lookup.
type Subscriber struct {
	Notifications NotificationService
	Users         userRepo.UserRepository
	Offerings     offeringRepo.OfferedServiceRepository
	Push          *PushSender        // nil disables push delivery
	Reminders     *ReminderScheduler // nil disables scheduled reminders
	Logger        *zap.Logger
}

// Register subscribes the notification handlers to every booking event variant.
func (s *Subscriber) Register(d *events.Dispatcher) {
	d.Register(events.BookingCreated, s.handleBookingCreated)
	d.Register(events.BookingAccepted, s.handleBookingAccepted)
	d.Register(events.BookingRejected, s.handleBookingRejected)
	d.Register(events.BookingCancelledByCustomer, s.handleBookingCancelledByCustomer)
	d.Register(events.BookingCancelledByProvider, s.handleBookingCancelledByProvider)
	d.Register(events.BookingPaymentConfirmed, s.handleBookingPaymentConfirmed)
	d.Register(events.BookingPaymentFailed, s.handleBookingPaymentFailed)
	d.Register(events.BookingCompleted, s.handleBookingCompleted)
}

func (s *Subscriber) handleBookingCreated(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.provider
	subject, body := newBookingRequestContent(in)
	return s.deliver(ctx, in, models.NotificationNewBookingRequest, subject, body)
}

func (s *Subscriber) handleBookingAccepted(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.customer
	subject, body := bookingAcceptedContent(in)
	return s.deliver(ctx, in, models.NotificationBookingRequestAccepted, subject, body)
}

func (s *Subscriber) handleBookingRejected(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.customer
	subject, body := bookingRejectedContent(in)
	return s.deliver(ctx, in, models.NotificationBookingRequestRejected, subject, body)
}

func (s *Subscriber) handleBookingCancelledByCustomer(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.provider
	subject, body := bookingCancelledByCustomerContent(in)
	return s.deliver(ctx, in, models.NotificationBookingCancelledByCustomer, subject, body)
}

func (s *Subscriber) handleBookingCancelledByProvider(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	if cancelled, ok := evt.(events.CancelledByProviderEvent); ok {
		in.reason = cancelled.Reason
	}
	in.recipient = in.customer
	subject, body := bookingCancelledByProviderContent(in)
	return s.deliver(ctx, in, models.NotificationBookingCancelledByProvider, subject, body)
}

// handleBookingPaymentConfirmed notifies both sides: the confirmed-booking
// strategy is invoked once per recipient and renders role-appropriate text.
func (s *Subscriber) handleBookingPaymentConfirmed(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}

	in.recipient = in.customer
	subject, body := bookingConfirmedContent(in)
	if err := s.deliver(ctx, in, models.NotificationBookingConfirmed, subject, body); err != nil {
		return err
	}

	in.recipient = in.provider
	subject, body = bookingConfirmedContent(in)
	if err := s.deliver(ctx, in, models.NotificationBookingConfirmed, subject, body); err != nil {
		return err
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, in); err != nil {
			// The confirmation notifications already landed; a lost reminder
			// must not fail the handler.
			s.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingReference", in.booking.Reference),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *Subscriber) handleBookingPaymentFailed(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.customer
	subject, body := bookingPaymentFailedContent(in)
	return s.deliver(ctx, in, models.NotificationBookingPaymentFailed, subject, body)
}

func (s *Subscriber) handleBookingCompleted(ctx context.Context, evt events.Event) error {
	in, err := s.resolve(ctx, evt.Booking())
	if err != nil {
		return err
	}
	in.recipient = in.customer
	subject, body := bookingCompletedContent(in)
	return s.deliver(ctx, in, models.NotificationBookingCompleted, subject, body)
}

// resolve loads the users and the offered service referenced by the booking
// snapshot so the content strategies can render names.
func (s *Subscriber) resolve(ctx context.Context, b models.Booking) (contentInput, error) {
	in := contentInput{booking: b}

	customer, err := s.Users.GetByID(ctx, b.CustomerID)
	if err != nil {
		return in, fmt.Errorf("resolve customer %s: %w", b.CustomerID, err)
	}
	provider, err := s.Users.GetByID(ctx, b.ProviderID)
	if err != nil {
		return in, fmt.Errorf("resolve provider %s: %w", b.ProviderID, err)
	}
	svc, err := s.Offerings.GetByID(ctx, b.ServiceID)
	if err != nil {
		return in, fmt.Errorf("resolve offered service %s: %w", b.ServiceID, err)
	}

	in.customer = *customer
	in.provider = *provider
	in.service = *svc
	return in, nil
}

// deliver persists the rendered notification and, when push delivery is
// enabled, forwards it best-effort to the recipient's device.
func (s *Subscriber) deliver(ctx context.Context, in contentInput, t models.NotificationType, subject, body string) error {
	if _, err := s.Notifications.CreateNotification(ctx, in.recipient.ID, t, subject, body, in.booking.Reference); err != nil {
		return err
	}

	if s.Push != nil {
		if err := s.Push.Send(ctx, in.recipient, subject, body, map[string]string{
			"type":             string(t),
			"bookingReference": in.booking.Reference,
		}); err != nil {
			// Push is best-effort on top of the stored notification.
			s.Logger.Warn("push delivery failed",
				zap.String("recipientId", in.recipient.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}
