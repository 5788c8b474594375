package models

import "time"

// NotificationType tags a notification with the booking event it was
// rendered for.
type NotificationType string

const (
	NotificationNewBookingRequest          NotificationType = "NEW_BOOKING_REQUEST"
	NotificationBookingRequestAccepted     NotificationType = "BOOKING_REQUEST_ACCEPTED"
	NotificationBookingRequestRejected     NotificationType = "BOOKING_REQUEST_REJECTED"
	NotificationBookingConfirmed           NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelledByCustomer NotificationType = "BOOKING_CANCELLED_BY_CUSTOMER"
	NotificationBookingCancelledByProvider NotificationType = "BOOKING_CANCELLED_BY_PROVIDER"
	NotificationBookingCompleted           NotificationType = "BOOKING_COMPLETED"
	NotificationBookingPaymentFailed       NotificationType = "BOOKING_PAYMENT_FAILED"
	NotificationBookingReminder            NotificationType = "BOOKING_REMINDER"
)

// Notification is a rendered subject/body pair addressed to one recipient.
// Once persisted it is owned by the notification store; the booking
// subsystem never mutates it again.
type Notification struct {
	ID               string           `bson:"id" json:"id"`
	RecipientID      string           `bson:"recipient_id" json:"recipientId"`
	Type             NotificationType `bson:"type" json:"type"`
	Subject          string           `bson:"subject" json:"subject"`
	Body             string           `bson:"body" json:"body"`
	BookingReference string           `bson:"booking_reference,omitempty" json:"bookingReference,omitempty"`
	Read             bool             `bson:"read" json:"read"`
	CreatedAt        time.Time        `bson:"created_at" json:"createdAt"`
}
