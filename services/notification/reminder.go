package notification

import (
	"context"
	"fmt"
	"time"

	"eventra/models"
	"eventra/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// reminderLeadTime is how long before the preferred service time the
// customer is reminded.
const reminderLeadTime = 24 * time.Hour

// reminderEnqueuer is the slice of *asynq.Client the scheduler needs.
type reminderEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues a reminder notification for a confirmed booking,
// to be delivered by the reminder worker ahead of the service date.
type ReminderScheduler struct {
	Client reminderEnqueuer
	Logger *zap.Logger
}

// Schedule enqueues a reminder for the booking's customer. Bookings without
// a usable preferred date, or whose reminder time has already passed, are
// skipped without error.
func (s *ReminderScheduler) Schedule(ctx context.Context, in contentInput) error {
	fireAt, ok := reminderFireTime(in.booking, time.Now())
	if !ok {
		return nil
	}

	subject, body := bookingReminderContent(in)
	payload := models.ReminderPayload{
		BookingReference: in.booking.Reference,
		RecipientID:      in.customer.ID,
		Subject:          subject,
		Body:             body,
		FireAt:           fireAt.Format(time.RFC3339),
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", in.booking.Reference, err)
	}

	s.Logger.Info("booking reminder scheduled",
		zap.String("bookingReference", in.booking.Reference),
		zap.String("recipientId", in.customer.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// reminderFireTime derives the reminder instant from the booking's preferred
// date and time. The second return value is false when no reminder should be
// scheduled: the date is absent or unparseable, or the reminder would fire in
// the past.
func reminderFireTime(b models.Booking, now time.Time) (time.Time, bool) {
	if b.PreferredDate == "" {
		return time.Time{}, false
	}

	layout := "2006-01-02"
	value := b.PreferredDate
	if b.PreferredTime != "" {
		layout = "2006-01-02 15:04"
		value = b.PreferredDate + " " + b.PreferredTime
	}

	serviceAt, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	fireAt := serviceAt.Add(-reminderLeadTime)
	if !fireAt.After(now) {
		return time.Time{}, false
	}
	return fireAt, true
}
