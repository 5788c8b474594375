package notification

import (
	"fmt"

	"eventra/models"
)

// contentInput gathers everything a content strategy may read. Strategies
// are pure functions of their input; per-event context such as a
// cancellation reason rides on the input, never on service state.
type contentInput struct {
	booking   models.Booking
	service   models.OfferedService
	customer  models.User
	provider  models.User
	recipient models.User
	reason    string // provider cancellation only
}

// newBookingRequestContent addresses the provider of the requested service.
func newBookingRequestContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("New Booking Request: %s for %s", in.booking.RequestName, in.service.Name)
	body = fmt.Sprintf(
		"Hello %s,\n\nYou have a new booking request from %s %s for your service '%s'.\nRequest: %s\nBooking Reference: %s\nPlease review and respond.",
		in.provider.FirstName,
		in.customer.FirstName,
		in.customer.LastName,
		in.service.Name,
		in.booking.RequestName,
		in.booking.Reference,
	)
	return subject, body
}

// bookingAcceptedContent addresses the requesting customer.
func bookingAcceptedContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Booking Request Accepted: %s", in.service.Name)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour booking request for '%s' (Ref: %s) has been accepted by the provider.\nPlease proceed with payment to confirm.",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	return subject, body
}

// bookingRejectedContent addresses the requesting customer.
func bookingRejectedContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Booking Request Update: %s", in.service.Name)
	body = fmt.Sprintf(
		"Hello %s,\n\nRegarding your booking request for '%s' (Ref: %s), the provider was unable to accept it at this time.\nWe encourage you to browse for other available services.",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	return subject, body
}

// bookingConfirmedContent renders role-appropriate text for either side of
// the booking; payment confirmation notifies both, through this one strategy
// invoked once per recipient.
func bookingConfirmedContent(in contentInput) (subject, body string) {
	if in.recipient.Role == models.RoleServiceProvider {
		subject = fmt.Sprintf("Booking Confirmed: %s (Ref: %s) with %s", in.service.Name, in.booking.Reference, in.customer.FirstName)
		body = fmt.Sprintf(
			"Hello %s,\n\nThe booking for '%s' (Ref: %s) by %s %s is now confirmed.",
			in.recipient.FirstName,
			in.service.Name,
			in.booking.Reference,
			in.customer.FirstName,
			in.customer.LastName,
		)
		return subject, body
	}
	subject = fmt.Sprintf("Booking Confirmed: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour booking for '%s' is confirmed! We look forward to serving you.\nBooking Reference: %s",
		in.recipient.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	return subject, body
}

// bookingCancelledByCustomerContent addresses the provider.
func bookingCancelledByCustomerContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Booking Cancelled by Customer: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	body = fmt.Sprintf(
		"Hello %s,\n\nThe booking for your service '%s' (Ref: %s) made by %s %s has been cancelled by the customer.",
		in.provider.FirstName,
		in.service.Name,
		in.booking.Reference,
		in.customer.FirstName,
		in.customer.LastName,
	)
	return subject, body
}

// bookingCancelledByProviderContent addresses the customer; the reason, when
// present, is appended to the body.
func bookingCancelledByProviderContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Booking Cancelled by Provider: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour booking for '%s' (Ref: %s) has been cancelled by the provider.",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	if in.reason != "" {
		body += "\nReason: " + in.reason
	}
	return subject, body
}

// bookingPaymentFailedContent addresses the customer.
func bookingPaymentFailedContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Payment Failed: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	body = fmt.Sprintf(
		"Hello %s,\n\nUnfortunately the payment for your booking '%s' (Ref: %s) could not be processed.\nThe booking has been closed.",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	return subject, body
}

// bookingReminderContent addresses the customer ahead of the service date.
func bookingReminderContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Upcoming Booking: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	when := in.booking.PreferredDate
	if in.booking.PreferredTime != "" {
		when += " at " + in.booking.PreferredTime
	}
	body = fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder for your booking '%s' (Ref: %s) scheduled for %s.\nWe look forward to seeing you!",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
		when,
	)
	return subject, body
}

// bookingCompletedContent addresses the customer.
func bookingCompletedContent(in contentInput) (subject, body string) {
	subject = fmt.Sprintf("Booking Completed: %s (Ref: %s)", in.service.Name, in.booking.Reference)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour booking for '%s' (Ref: %s) has been marked as completed by the provider.\nWe hope you enjoyed the service!",
		in.customer.FirstName,
		in.service.Name,
		in.booking.Reference,
	)
	return subject, body
}
