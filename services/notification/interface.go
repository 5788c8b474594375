package notification

import (
	"context"
	"errors"

	notificationRepo "eventra/database/repository/notification"
	"eventra/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotRecipient is returned when a user tries to act on a notification
// addressed to someone else.
var ErrNotRecipient = errors.New("notification does not belong to this user")

// ErrNotFound is returned when no notification matches the given id.
var ErrNotFound = errors.New("notification not found")

// NotificationService persists and serves rendered notifications.
type NotificationService interface {
	CreateNotification(ctx context.Context, recipientID string, t models.NotificationType, subject, body, bookingReference string) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// DefaultNotificationService is the production implementation, backed by the
// notification repository.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Logger *zap.Logger
}

// CreateNotification renders nothing itself; it records an already-rendered
// subject/body pair addressed to one recipient.
func (s *DefaultNotificationService) CreateNotification(ctx context.Context, recipientID string, t models.NotificationType, subject, body, bookingReference string) (*models.Notification, error) {
	if recipientID == "" {
		return nil, errors.New("recipient cannot be empty for notification")
	}

	n := &models.Notification{
		ID:               uuid.New().String(),
		RecipientID:      recipientID,
		Type:             t,
		Subject:          subject,
		Body:             body,
		BookingReference: bookingReference,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.Logger.Info("notification created",
		zap.String("type", string(t)),
		zap.String("recipientId", recipientID),
		zap.String("bookingReference", bookingReference),
	)
	return n, nil
}

// ListForUser retrieves all notifications addressed to a user, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(ctx, userID)
}

// MarkRead flags a notification as read after verifying ownership.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.Repo.GetByID(ctx, notificationID)
	if err != nil {
		if err == notificationRepo.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	if n.RecipientID != userID {
		return ErrNotRecipient
	}
	return s.Repo.MarkRead(ctx, notificationID)
}
