package models

import "time"

// BookingStatus is the lifecycle state of a booking. The string values are
// wire-stable: they are persisted verbatim and round-trip through JSON.
type BookingStatus string

const (
	StatusPending                 BookingStatus = "PENDING"
	StatusAcceptedAwaitingPayment BookingStatus = "ACCEPTED_AWAITING_PAYMENT"
	StatusConfirmed               BookingStatus = "CONFIRMED"
	StatusRejected                BookingStatus = "REJECTED"
	StatusCancelled               BookingStatus = "CANCELLED"
	StatusCompleted               BookingStatus = "COMPLETED"
	StatusPaymentFailed           BookingStatus = "PAYMENT_FAILED"
)

// IsTerminal reports whether no further transition is permitted out of s.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted, StatusPaymentFailed:
		return true
	}
	return false
}

// Booking records a customer's request for an offered service and its
// lifecycle state. Reference and Price are assigned once at creation and
// never change afterwards; Status only moves through the booking service.
type Booking struct {
	Reference     string        `bson:"booking_reference" json:"bookingReference"` // Short unique human-readable code
	CustomerID    string        `bson:"customer_id" json:"customerId"`
	ServiceID     string        `bson:"service_id" json:"serviceId"`
	ProviderID    string        `bson:"provider_id" json:"providerId"` // Derived from the offered service at creation
	RequestName   string        `bson:"request_name" json:"requestName"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	Location      string        `bson:"location,omitempty" json:"location,omitempty"`
	PreferredDate string        `bson:"preferred_date,omitempty" json:"preferredDate,omitempty"` // "YYYY-MM-DD"
	PreferredTime string        `bson:"preferred_time,omitempty" json:"preferredTime,omitempty"` // "HH:MM"
	Price         float64       `bson:"price" json:"price"`                                      // Snapshot of the service price at creation
	Status        BookingStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingReference is one issued booking code. The ledger of issued codes
// grows monotonically; entries are never removed.
type BookingReference struct {
	Code      string    `bson:"code" json:"code"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// CreateBookingRequest carries the customer-supplied fields for a new booking.
type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	RequestName   string `json:"requestName" binding:"required"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}
