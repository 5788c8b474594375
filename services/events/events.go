package events

import "eventra/models"

// Type identifies one booking domain event variant.
type Type string

const (
	BookingCreated              Type = "booking.created"
	BookingAccepted             Type = "booking.accepted"
	BookingRejected             Type = "booking.rejected"
	BookingCancelledByCustomer  Type = "booking.cancelled_by_customer"
	BookingCancelledByProvider  Type = "booking.cancelled_by_provider"
	BookingPaymentConfirmed     Type = "booking.payment_confirmed"
	BookingPaymentFailed        Type = "booking.payment_failed"
	BookingCompleted            Type = "booking.completed"
)

// Event is an immutable record of a completed booking transition. Each
// variant carries a snapshot of the booking at the moment the transition
// committed; events are created once, published once and never mutated.
type Event interface {
	Type() Type
	Booking() models.Booking
}

// CreatedEvent fires after a booking request is persisted.
type CreatedEvent struct{ Snapshot models.Booking }

func (e CreatedEvent) Type() Type              { return BookingCreated }
func (e CreatedEvent) Booking() models.Booking { return e.Snapshot }

// AcceptedEvent fires after the provider accepts a pending booking.
type AcceptedEvent struct{ Snapshot models.Booking }

func (e AcceptedEvent) Type() Type              { return BookingAccepted }
func (e AcceptedEvent) Booking() models.Booking { return e.Snapshot }

// RejectedEvent fires after the provider rejects a pending booking.
type RejectedEvent struct{ Snapshot models.Booking }

func (e RejectedEvent) Type() Type              { return BookingRejected }
func (e RejectedEvent) Booking() models.Booking { return e.Snapshot }

// CancelledByCustomerEvent fires after the requesting customer cancels.
type CancelledByCustomerEvent struct{ Snapshot models.Booking }

func (e CancelledByCustomerEvent) Type() Type              { return BookingCancelledByCustomer }
func (e CancelledByCustomerEvent) Booking() models.Booking { return e.Snapshot }

// CancelledByProviderEvent fires after the owning provider cancels. Reason
// travels on the event itself, never as dispatcher or strategy state.
type CancelledByProviderEvent struct {
	Snapshot models.Booking
	Reason   string
}

func (e CancelledByProviderEvent) Type() Type              { return BookingCancelledByProvider }
func (e CancelledByProviderEvent) Booking() models.Booking { return e.Snapshot }

// PaymentConfirmedEvent fires after the payment subsystem confirms payment.
type PaymentConfirmedEvent struct{ Snapshot models.Booking }

func (e PaymentConfirmedEvent) Type() Type              { return BookingPaymentConfirmed }
func (e PaymentConfirmedEvent) Booking() models.Booking { return e.Snapshot }

// PaymentFailedEvent fires after the payment subsystem reports a failed payment.
type PaymentFailedEvent struct{ Snapshot models.Booking }

func (e PaymentFailedEvent) Type() Type              { return BookingPaymentFailed }
func (e PaymentFailedEvent) Booking() models.Booking { return e.Snapshot }

// CompletedEvent fires after the provider marks the service as rendered.
type CompletedEvent struct{ Snapshot models.Booking }

func (e CompletedEvent) Type() Type              { return BookingCompleted }
func (e CompletedEvent) Booking() models.Booking { return e.Snapshot }
