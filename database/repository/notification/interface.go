package notificationRepo

import (
	"context"
	"errors"

	"eventra/models"
)

// ErrNotFound is returned when no notification matches the given id.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification data access.
// Records written here are owned by the notification store from that point
// on; the booking subsystem never mutates them again.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
