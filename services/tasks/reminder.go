package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"eventra/models"

	"github.com/hibiken/asynq"
)

// TypeReminderSend is the task type of scheduled booking reminders.
const TypeReminderSend = "reminder:send"

// NewReminderTask builds an asynq task that fires at the given time and
// delivers the payload's rendered reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return asynq.NewTask(TypeReminderSend, data), opts, nil
}
