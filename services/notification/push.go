package notification

import (
	"context"
	"fmt"

	"eventra/models"

	"firebase.google.com/go/v4/messaging"
)

// PushSender delivers rendered notifications to a recipient's device via FCM.
type PushSender struct {
	Client *messaging.Client
}

// Send pushes a notification to the recipient's registered device. Users
// without an FCM token are skipped silently.
func (p *PushSender) Send(ctx context.Context, recipient models.User, title, body string, data map[string]string) error {
	if p.Client == nil {
		return nil
	}
	if recipient.FCMToken == "" {
		return nil
	}

	msg := &messaging.Message{
		Token: recipient.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := p.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to %s: %w", recipient.ID, err)
	}
	return nil
}
