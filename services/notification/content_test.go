package notification

import (
	"testing"

	"eventra/models"

	"github.com/stretchr/testify/assert"
)

func sampleInput() contentInput {
	return contentInput{
		booking: models.Booking{
			Reference:   "REF1234XYZ",
			RequestName: "Weekend cleanup",
		},
		service:  models.OfferedService{Name: "Garden Cleanup"},
		customer: models.User{ID: "cust-1", FirstName: "Ada", LastName: "Lovelace", Role: models.RoleCustomer},
		provider: models.User{ID: "prov-1", FirstName: "Grace", LastName: "Hopper", Role: models.RoleServiceProvider},
	}
}

func TestNewBookingRequestContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.provider

	subject, body := newBookingRequestContent(in)
	assert.Equal(t, "New Booking Request: Weekend cleanup for Garden Cleanup", subject)
	assert.Contains(t, body, "Hello Grace,")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Booking Reference: REF1234XYZ")
	assert.Contains(t, body, "Please review and respond.")
}

func TestBookingAcceptedContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.customer

	subject, body := bookingAcceptedContent(in)
	assert.Equal(t, "Booking Request Accepted: Garden Cleanup", subject)
	assert.Contains(t, body, "Hello Ada,")
	assert.Contains(t, body, "(Ref: REF1234XYZ)")
	assert.Contains(t, body, "Please proceed with payment to confirm.")
}

func TestBookingRejectedContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.customer

	subject, body := bookingRejectedContent(in)
	assert.Equal(t, "Booking Request Update: Garden Cleanup", subject)
	assert.Contains(t, body, "the provider was unable to accept it at this time")
	assert.NotContains(t, body, "rejected", "the customer-facing copy softens the wording")
}

func TestBookingConfirmedContentPerRecipient(t *testing.T) {
	t.Run("customer copy", func(t *testing.T) {
		in := sampleInput()
		in.recipient = in.customer

		subject, body := bookingConfirmedContent(in)
		assert.Equal(t, "Booking Confirmed: Garden Cleanup (Ref: REF1234XYZ)", subject)
		assert.Contains(t, body, "Hello Ada,")
		assert.Contains(t, body, "We look forward to serving you.")
	})

	t.Run("provider copy", func(t *testing.T) {
		in := sampleInput()
		in.recipient = in.provider

		subject, body := bookingConfirmedContent(in)
		assert.Contains(t, subject, "with Ada")
		assert.Contains(t, body, "Hello Grace,")
		assert.Contains(t, body, "by Ada Lovelace is now confirmed.")
	})
}

func TestBookingCancelledByCustomerContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.provider

	subject, body := bookingCancelledByCustomerContent(in)
	assert.Equal(t, "Booking Cancelled by Customer: Garden Cleanup (Ref: REF1234XYZ)", subject)
	assert.Contains(t, body, "Hello Grace,")
	assert.Contains(t, body, "has been cancelled by the customer.")
}

func TestBookingCancelledByProviderContent(t *testing.T) {
	t.Run("without reason", func(t *testing.T) {
		in := sampleInput()
		in.recipient = in.customer

		_, body := bookingCancelledByProviderContent(in)
		assert.Contains(t, body, "has been cancelled by the provider.")
		assert.NotContains(t, body, "Reason:")
	})

	t.Run("with reason", func(t *testing.T) {
		in := sampleInput()
		in.recipient = in.customer
		in.reason = "equipment breakdown"

		_, body := bookingCancelledByProviderContent(in)
		assert.Contains(t, body, "\nReason: equipment breakdown")
	})
}

func TestBookingPaymentFailedContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.customer

	subject, body := bookingPaymentFailedContent(in)
	assert.Equal(t, "Payment Failed: Garden Cleanup (Ref: REF1234XYZ)", subject)
	assert.Contains(t, body, "could not be processed")
	assert.Contains(t, body, "The booking has been closed.")
}

func TestBookingCompletedContent(t *testing.T) {
	in := sampleInput()
	in.recipient = in.customer

	subject, body := bookingCompletedContent(in)
	assert.Equal(t, "Booking Completed: Garden Cleanup (Ref: REF1234XYZ)", subject)
	assert.Contains(t, body, "has been marked as completed by the provider.")
	assert.Contains(t, body, "We hope you enjoyed the service!")
}
