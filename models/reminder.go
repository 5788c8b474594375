package models

// ReminderPayload is the body of a scheduled reminder task. It carries the
// fully rendered subject/body so the worker delivers without re-resolving
// users or services at fire time.
type ReminderPayload struct {
	BookingReference string `json:"bookingReference"`
	RecipientID      string `json:"recipientId"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	FireAt           string `json:"fireAt"` // RFC 3339
}
